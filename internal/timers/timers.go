// Package timers runs the per-game countdown tasks: one live timer per chat,
// warning notifications on a descending offset schedule, and a deterministic
// expiry callback. Arming a new timer always replaces the previous one; a
// running task never cancels itself and instead re-checks on every iteration
// that it is still the current generation and that the state it was armed for
// still holds.
package timers

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Kind identifies which phase deadline a timer enforces
type Kind string

const (
	// KindAsking guards the window for asking a question
	KindAsking Kind = "asking"

	// KindAnswering guards the window for submitting an answer
	KindAnswering Kind = "answering"

	// KindDiceRoll guards the window for both reveal rolls
	KindDiceRoll Kind = "dice_roll"

	// KindAcceptReject guards the asker's accept/reject/rating window
	KindAcceptReject Kind = "accept_reject"
)

// Hooks is implemented by the game engine. The scheduler calls back through
// it; it never mutates game state itself.
type Hooks interface {
	// TimerStillValid reports whether the phase the timer was armed for is
	// still current and its subject player still exists. A false return makes
	// the task exit silently with no side effects.
	TimerStillValid(chatID string, kind Kind) bool

	// OnWarning fires at most once per warning offset, with the rounded
	// remaining duration the offset represents
	OnWarning(ctx context.Context, chatID string, kind Kind, remaining time.Duration)

	// OnExpire fires when the deadline passes while the timer is still valid
	OnExpire(ctx context.Context, chatID string, kind Kind)
}

// Config holds configuration for the scheduler
type Config struct {
	// Clock is the time source; a fake clock in tests
	Clock clockwork.Clock

	// PollInterval is how often a countdown task samples elapsed time.
	// Defaults to one second.
	PollInterval time.Duration
}

// Scheduler owns at most one live countdown task per chat
type Scheduler struct {
	clock clockwork.Clock
	poll  time.Duration

	mu     sync.Mutex
	active map[string]*handle
}

type handle struct {
	cancel chan struct{}
	once   sync.Once
}

func (h *handle) stop() {
	h.once.Do(func() { close(h.cancel) })
}

// New creates a scheduler
func New(cfg *Config) *Scheduler {
	poll := time.Second
	clock := clockwork.Clock(clockwork.NewRealClock())
	if cfg != nil {
		if cfg.PollInterval > 0 {
			poll = cfg.PollInterval
		}
		if cfg.Clock != nil {
			clock = cfg.Clock
		}
	}

	return &Scheduler{
		clock:  clock,
		poll:   poll,
		active: make(map[string]*handle),
	}
}

// Arm starts a countdown for the chat, unconditionally replacing any timer
// already running there. The duration is whatever the caller fetched at arm
// time; it is not re-read mid-countdown. The countdown task outlives the
// arming request, so it is detached from the caller's cancelation.
func (s *Scheduler) Arm(ctx context.Context, chatID string, kind Kind, duration time.Duration, hooks Hooks) {
	h := &handle{cancel: make(chan struct{})}

	s.mu.Lock()
	if prev, ok := s.active[chatID]; ok {
		prev.stop()
	}
	s.active[chatID] = h
	s.mu.Unlock()

	log.Debug().
		Str("chat_id", chatID).
		Str("kind", string(kind)).
		Dur("duration", duration).
		Msg("armed timer")

	deadline := s.clock.Now().Add(duration)
	go s.run(context.WithoutCancel(ctx), chatID, kind, duration, deadline, hooks, h)
}

// Cancel stops the chat's live timer, if any. Idempotent: cancelling an
// already-finished or already-cancelled timer is a no-op.
func (s *Scheduler) Cancel(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.active[chatID]; ok {
		h.stop()
		delete(s.active, chatID)
	}
}

// current reports whether h is still the chat's live timer
func (s *Scheduler) current(chatID string, h *handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active[chatID] == h
}

// retire removes h from the active map once it has run to completion
func (s *Scheduler) retire(chatID string, h *handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active[chatID] == h {
		delete(s.active, chatID)
	}
}

func (s *Scheduler) run(ctx context.Context, chatID string, kind Kind, duration time.Duration, deadline time.Time, hooks Hooks, h *handle) {
	defer func() {
		if r := recover(); r != nil {
			// A failing timer must never take down sibling games.
			log.Error().
				Str("chat_id", chatID).
				Str("kind", string(kind)).
				Interface("panic", r).
				Msg("timer task panicked")
		}
	}()

	offsets := WarningOffsets(duration)

	for {
		remaining := deadline.Sub(s.clock.Now())
		if remaining <= 0 {
			break
		}

		if !s.current(chatID, h) || !hooks.TimerStillValid(chatID, kind) {
			return
		}

		for len(offsets) > 0 && remaining <= offsets[0] {
			offset := offsets[0]
			offsets = offsets[1:]
			// Fire only inside the offset's one-poll window; an offset the
			// loop overslept past is skipped, never fired late.
			if remaining > offset-s.poll {
				hooks.OnWarning(ctx, chatID, kind, offset)
				break
			}
		}

		select {
		case <-h.cancel:
			return
		case <-s.clock.After(s.poll):
		}
	}

	if !s.current(chatID, h) || !hooks.TimerStillValid(chatID, kind) {
		return
	}

	s.retire(chatID, h)

	log.Debug().
		Str("chat_id", chatID).
		Str("kind", string(kind)).
		Msg("timer expired")

	hooks.OnExpire(ctx, chatID, kind)
}

// WarningOffsets computes the descending warning schedule for a countdown:
// every whole minute remaining, plus 30s when the duration exceeds 30s, plus
// 10s when it exceeds 10s.
func WarningOffsets(duration time.Duration) []time.Duration {
	seen := make(map[time.Duration]bool)
	var offsets []time.Duration

	add := func(d time.Duration) {
		if d <= duration && d > 0 && !seen[d] {
			seen[d] = true
			offsets = append(offsets, d)
		}
	}

	for m := duration / time.Minute; m > 0; m-- {
		add(m * time.Minute)
	}
	if duration > 30*time.Second {
		add(30 * time.Second)
	}
	if duration > 10*time.Second {
		add(10 * time.Second)
	}

	// Whole minutes are appended in descending order already, but the 30s and
	// 10s marks may interleave with sub-minute durations.
	for i := 1; i < len(offsets); i++ {
		for j := i; j > 0 && offsets[j] > offsets[j-1]; j-- {
			offsets[j], offsets[j-1] = offsets[j-1], offsets[j]
		}
	}

	return offsets
}
