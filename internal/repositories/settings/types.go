package settings

import "time"

// Timer identifies one configurable duration
type Timer string

const (
	TimerAsking       Timer = "asking"
	TimerAnswering    Timer = "answering"
	TimerDiceRoll     Timer = "dice_roll"
	TimerAcceptReject Timer = "accept_reject"
	TimerVote         Timer = "vote"
)

// Bounds for admin-configured durations
const (
	MinDuration = 10 * time.Second
	MaxDuration = 30 * time.Minute
)

// TimerSettings holds every configurable duration for one chat
type TimerSettings struct {
	Asking       time.Duration `json:"asking"`
	Answering    time.Duration `json:"answering"`
	DiceRoll     time.Duration `json:"dice_roll"`
	AcceptReject time.Duration `json:"accept_reject"`
	Vote         time.Duration `json:"vote"`
}

// DefaultSettings mirrors the stock configuration
func DefaultSettings() TimerSettings {
	return TimerSettings{
		Asking:       3 * time.Minute,
		Answering:    5 * time.Minute,
		DiceRoll:     time.Minute,
		AcceptReject: 2 * time.Minute,
		Vote:         30 * time.Second,
	}
}

// Duration returns the setting for one timer
func (s TimerSettings) Duration(timer Timer) time.Duration {
	switch timer {
	case TimerAsking:
		return s.Asking
	case TimerAnswering:
		return s.Answering
	case TimerDiceRoll:
		return s.DiceRoll
	case TimerAcceptReject:
		return s.AcceptReject
	case TimerVote:
		return s.Vote
	default:
		return 0
	}
}

// GetSettingsInput contains parameters for GetSettings
type GetSettingsInput struct {
	ChatID string
}

// GetSettingsOutput contains a chat's timer settings
type GetSettingsOutput struct {
	Settings TimerSettings
}

// UpdateSettingInput contains parameters for UpdateSetting
type UpdateSettingInput struct {
	ChatID   string
	Timer    Timer
	Duration time.Duration
}
