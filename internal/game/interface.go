package game

import (
	"context"
	"time"

	"github.com/frostveil/frozenbridges/internal/timers"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_interface.go github.com/frostveil/frozenbridges/internal/game Service,Notifier,AdminChecker,Scheduler,Clock,Roller

// Service defines the interface for the game engine
type Service interface {
	// CreateGame opens a lobby in a chat
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to the lobby or running game
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player voluntarily
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// StartGame moves a lobby with enough players into play
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AskQuestion records the current player's question and opens answering
	AskQuestion(ctx context.Context, input *AskQuestionInput) (*AskQuestionOutput, error)

	// ChooseAnswerer binds the asker's question to a target player
	ChooseAnswerer(ctx context.Context, input *ChooseAnswererInput) (*ChooseAnswererOutput, error)

	// SubmitAnswer records the answerer's answer
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// AcceptAnswer marks the answer as accepted and opens the rating window
	AcceptAnswer(ctx context.Context, input *AcceptAnswerInput) (*AcceptAnswerOutput, error)

	// RejectAnswer sends the answerer back to answering
	RejectAnswer(ctx context.Context, input *RejectAnswerInput) (*RejectAnswerOutput, error)

	// RateDifficulty awards points and opens the reveal roll
	RateDifficulty(ctx context.Context, input *RateDifficultyInput) (*RateDifficultyOutput, error)

	// RollDice records one side's reveal roll
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// RequestQuestionChange asks the asker for a different question
	RequestQuestionChange(ctx context.Context, input *RequestQuestionChangeInput) (*RequestQuestionChangeOutput, error)

	// RespondQuestionChange resolves a pending change request
	RespondQuestionChange(ctx context.Context, input *RespondQuestionChangeInput) (*RespondQuestionChangeOutput, error)

	// GiveUp forfeits the caller's side of the current turn
	GiveUp(ctx context.Context, input *GiveUpInput) (*GiveUpOutput, error)

	// StartVote opens a skip, end or kick vote
	StartVote(ctx context.Context, input *StartVoteInput) (*StartVoteOutput, error)

	// CastVote records a ballot on the active vote
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// AdminSkip skips the current turn without a vote
	AdminSkip(ctx context.Context, input *AdminSkipInput) (*AdminSkipOutput, error)

	// AdminKick removes a player without a vote
	AdminKick(ctx context.Context, input *AdminKickInput) (*AdminKickOutput, error)

	// AdminEnd ends the game without a vote
	AdminEnd(ctx context.Context, input *AdminEndInput) (*AdminEndOutput, error)

	// GetSummary returns the live scoreboard
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// GetTimerSettings returns the chat's timer durations
	GetTimerSettings(ctx context.Context, input *GetTimerSettingsInput) (*GetTimerSettingsOutput, error)

	// UpdateTimerSetting changes one timer duration, admins only
	UpdateTimerSetting(ctx context.Context, input *UpdateTimerSettingInput) (*UpdateTimerSettingOutput, error)
}

// Notifier delivers game notifications to the chat platform
type Notifier interface {
	Send(ctx context.Context, note *Notification) error
}

// AdminChecker answers whether a player holds admin rights in a chat
type AdminChecker interface {
	IsAdmin(ctx context.Context, chatID string, playerID string) (bool, error)
}

// Scheduler runs at most one countdown per chat
type Scheduler interface {
	Arm(ctx context.Context, chatID string, kind timers.Kind, duration time.Duration, hooks timers.Hooks)
	Cancel(chatID string)
}

// Clock is the time source, injectable for tests
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Roller supplies die rolls for timeout auto-rolls
type Roller interface {
	RollD6() int
}
