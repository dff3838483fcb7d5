package game

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/repositories/stats"
	"github.com/frostveil/frozenbridges/internal/timers"
)

// The service implements timers.Hooks: countdown tasks call back here and
// the game state only ever changes under the instance lock.

// TimerStillValid reports whether the phase a countdown was armed for is
// still the live one
func (s *service) TimerStillValid(chatID string, kind timers.Kind) bool {
	inst, err := s.registry.Get(chatID)
	if err != nil {
		return false
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	return timerValidLocked(inst, kind)
}

func timerValidLocked(inst *Instance, kind timers.Kind) bool {
	switch kind {
	case timers.KindAsking:
		return inst.phase == models.PhasePlaying && inst.currentPlayerID != ""
	case timers.KindAnswering:
		return inst.phase == models.PhaseAnswering && inst.answererID != "" && inst.answer == ""
	case timers.KindAcceptReject:
		return inst.phase == models.PhaseAnswering && inst.answer != ""
	case timers.KindDiceRoll:
		return inst.phase == models.PhaseRolling
	default:
		return false
	}
}

// OnWarning publishes a countdown warning with the player on the clock
func (s *service) OnWarning(ctx context.Context, chatID string, kind timers.Kind, remaining time.Duration) {
	inst, err := s.registry.Get(chatID)
	if err != nil {
		return
	}

	inst.mu.Lock()
	if !timerValidLocked(inst, kind) {
		inst.mu.Unlock()
		return
	}

	note := &Notification{
		Type:      NoteTimerWarning,
		ChatID:    chatID,
		TimerKind: kind,
		Remaining: remaining,
	}
	if subject := timerSubjectLocked(inst, kind); subject != nil {
		note.Player = *subject
	}
	inst.mu.Unlock()

	s.send(ctx, []*Notification{note})
}

// timerSubjectLocked names the player a countdown is waiting on. For the
// dice roll both sides are on the clock; the asker is reported.
func timerSubjectLocked(inst *Instance, kind timers.Kind) *models.Player {
	switch kind {
	case timers.KindAnswering:
		return inst.answerer()
	default:
		return inst.currentPlayer()
	}
}

// OnExpire resolves an expired countdown. Validity is re-checked under the
// lock: the scheduler's own check raced with whatever was happening in the
// game.
func (s *service) OnExpire(ctx context.Context, chatID string, kind timers.Kind) {
	inst, err := s.registry.Get(chatID)
	if err != nil {
		return
	}

	cfg := s.timerSettings(ctx, chatID)

	var notes []*Notification
	var deltas []statDelta

	inst.mu.Lock()
	if !timerValidLocked(inst, kind) {
		inst.mu.Unlock()
		return
	}

	log.Info().
		Str("chat_id", chatID).
		Str("timer", string(kind)).
		Msg("timer expired")

	switch kind {
	case timers.KindAsking, timers.KindAnswering:
		s.expireAfkLocked(ctx, inst, cfg, kind, &notes, &deltas)
	case timers.KindAcceptReject:
		s.expireDecisionLocked(ctx, inst, cfg, &notes, &deltas)
	case timers.KindDiceRoll:
		s.expireRollLocked(ctx, inst, cfg, &notes, &deltas)
	}
	inst.mu.Unlock()

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)
}

// expireAfkLocked deactivates the player who ran out the asking or answering
// clock, then ends the game or advances the turn
func (s *service) expireAfkLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, kind timers.Kind, notes *[]*Notification, deltas *[]statDelta) {
	subject := timerSubjectLocked(inst, kind)
	if subject == nil {
		return
	}

	removed := *subject
	*deltas = append(*deltas, statDelta{playerID: removed.ID, stat: stats.StatTimeouts})
	*notes = append(*notes, &Notification{
		Type:      NotePlayerTimedOut,
		ChatID:    inst.ChatID,
		Player:    removed,
		TimerKind: kind,
	})

	inst.handlePlayerLeave(removed.ID)

	if inst.roster.ActiveCount() <= 1 {
		s.endLocked(inst, notes, "not enough players left")
		return
	}
	s.endTurnLocked(ctx, inst, cfg, notes)
}

// expireDecisionLocked auto-accepts a submitted answer the asker never ruled
// on. The answerer gets the floor rating, the reveal contest is skipped and
// the turn advances.
func (s *service) expireDecisionLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, notes *[]*Notification, deltas *[]statDelta) {
	asker := inst.currentPlayer()
	answerer := inst.answerer()
	if answerer == nil {
		s.endTurnLocked(ctx, inst, cfg, notes)
		return
	}

	answerer.AnswerPoints += s.autoAcceptRating

	if asker != nil {
		*deltas = append(*deltas, statDelta{playerID: asker.ID, stat: stats.StatTimeouts})
	}
	*notes = append(*notes, &Notification{
		Type:   NoteAnswerAutoAccepted,
		ChatID: inst.ChatID,
		Player: *answerer,
		Rating: s.autoAcceptRating,
	})

	s.endTurnLocked(ctx, inst, cfg, notes)
}

// expireRollLocked rolls for whoever never rolled, then resolves the contest
// like a normal pair of rolls. A tie restarts the countdown.
func (s *service) expireRollLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, notes *[]*Notification, deltas *[]statDelta) {
	autoRoll := func(p *models.Player) {
		if p == nil {
			return
		}
		value := s.roller.RollD6()
		inst.recordRoll(p.ID, value)
		*deltas = append(*deltas, statDelta{playerID: p.ID, stat: stats.StatTimeouts})
		*notes = append(*notes, &Notification{
			Type:     NoteRollResult,
			ChatID:   inst.ChatID,
			Player:   *p,
			Roll:     value,
			AutoRoll: true,
		})
	}

	if inst.askerRoll == 0 {
		autoRoll(inst.currentPlayer())
	}
	if inst.answererRoll == 0 {
		autoRoll(inst.answerer())
	}

	if !inst.bothRolled() {
		// A side has no player to roll for; nothing left to contest
		s.endTurnLocked(ctx, inst, cfg, notes)
		return
	}

	s.resolveRollsLocked(ctx, inst, cfg, notes, deltas)
}
