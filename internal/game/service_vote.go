package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
)

// StartVote opens a skip, end or kick vote. With exactly two active players
// a majority of two is the starter alone, so the action applies immediately
// and no vote is created.
func (s *service) StartVote(ctx context.Context, input *StartVoteInput) (*StartVoteOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	out := &StartVoteOutput{}
	var watch *Vote

	inst.mu.Lock()
	if inst.phase == models.PhaseWaiting || inst.phase == models.PhaseEnded {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}

	starter := inst.roster.Get(input.PlayerID)
	if starter == nil || !starter.IsActive {
		inst.mu.Unlock()
		return nil, ErrPlayerNotInGame
	}
	if inst.vote != nil {
		inst.mu.Unlock()
		return nil, ErrVoteInProgress
	}

	targetID := ""
	switch input.Type {
	case models.VoteTypeSkip:
		targetID = inst.currentPlayerID
		if targetID == "" {
			inst.mu.Unlock()
			return nil, ErrInvalidTarget
		}
	case models.VoteTypeKick:
		target := inst.roster.Get(input.TargetID)
		if target == nil || !target.IsActive {
			inst.mu.Unlock()
			return nil, ErrInvalidTarget
		}
		// Kicking yourself is just leaving; skipping your own turn via a
		// vote is allowed
		if input.TargetID == input.PlayerID {
			inst.mu.Unlock()
			return nil, ErrVoteSelfTarget
		}
		targetID = input.TargetID
	case models.VoteTypeEnd:
		// no target
	default:
		inst.mu.Unlock()
		return nil, ErrInvalidTarget
	}

	if inst.roster.ActiveCount() == 2 {
		// The starter alone is already a majority of two, so skip and end
		// apply directly. Unlike a passed skip vote, a bypassed skip keeps
		// the skipped player active. A kick has nobody to outvote, so
		// nothing happens.
		out.Bypassed = true
		switch input.Type {
		case models.VoteTypeSkip:
			notes = append(notes, &Notification{
				Type:   NoteTurnSkipped,
				ChatID: input.ChatID,
				Player: *inst.currentPlayer(),
				Reason: "skipped by " + starter.DisplayName,
			})
			s.endTurnLocked(ctx, inst, cfg, &notes)
		case models.VoteTypeEnd:
			s.endLocked(inst, &notes, "ended by "+starter.DisplayName)
		case models.VoteTypeKick:
			// no-op
		}
		inst.mu.Unlock()

		s.send(ctx, notes)
		return out, nil
	}

	inst.vote = NewVote(uuid.New().String(), input.Type, input.PlayerID, targetID)
	watch = inst.vote

	notes = append(notes, &Notification{
		Type:   NoteVoteStarted,
		ChatID: input.ChatID,
		Vote:   s.voteStatusLocked(inst),
	})
	inst.mu.Unlock()

	log.Info().
		Str("chat_id", input.ChatID).
		Str("vote_id", watch.ID).
		Str("vote_type", string(input.Type)).
		Str("target_id", targetID).
		Msg("vote started")

	s.watchVote(input.ChatID, watch.ID, cfg.Vote)
	s.send(ctx, notes)

	return out, nil
}

// CastVote records a ballot on the active vote and applies the outcome
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	out := &CastVoteOutput{}

	inst.mu.Lock()
	voter := inst.roster.Get(input.PlayerID)
	if voter == nil || !voter.IsActive {
		inst.mu.Unlock()
		return nil, ErrPlayerNotInGame
	}
	if inst.vote == nil {
		inst.mu.Unlock()
		return nil, ErrNoActiveVote
	}

	outcome, err := inst.vote.CastBallot(input.PlayerID, input.Yes, inst.roster.ActiveCount())
	if err != nil {
		inst.mu.Unlock()
		return nil, err
	}
	out.Outcome = outcome

	status := s.voteStatusLocked(inst)
	voteType := inst.vote.Type
	targetID := inst.vote.TargetID

	switch outcome {
	case VoteOngoing:
		notes = append(notes, &Notification{
			Type:   NoteVoteUpdated,
			ChatID: input.ChatID,
			Vote:   status,
		})

	case VotePassed:
		status.Resolution = VoteResolutionPassed
		inst.vote = nil
		notes = append(notes, &Notification{
			Type:   NoteVoteResolved,
			ChatID: input.ChatID,
			Vote:   status,
		})
		s.applyVoteLocked(ctx, inst, cfg, voteType, targetID, &notes)

	case VoteFailedImpossible:
		status.Resolution = VoteResolutionImpossible
		inst.vote = nil
		notes = append(notes, &Notification{
			Type:   NoteVoteResolved,
			ChatID: input.ChatID,
			Vote:   status,
		})
	}
	inst.mu.Unlock()

	s.send(ctx, notes)

	return out, nil
}

// applyVoteLocked carries out a passed vote's action
func (s *service) applyVoteLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, voteType models.VoteType, targetID string, notes *[]*Notification) {
	switch voteType {
	case models.VoteTypeEnd:
		s.endLocked(inst, notes, "ended by vote")

	case models.VoteTypeSkip:
		// Only meaningful while the voted-on player still holds the turn
		if targetID == "" || targetID != inst.currentPlayerID {
			return
		}
		wasCurrent := inst.handlePlayerLeave(targetID)
		if inst.roster.ActiveCount() <= 1 {
			s.endLocked(inst, notes, "not enough players left")
			return
		}
		if wasCurrent {
			s.endTurnLocked(ctx, inst, cfg, notes)
		}

	case models.VoteTypeKick:
		if inst.roster.Get(targetID) == nil {
			return
		}
		wasCurrent := inst.handlePlayerLeave(targetID)
		if inst.roster.ActiveCount() <= 1 {
			s.endLocked(inst, notes, "not enough players left")
			return
		}
		if wasCurrent {
			s.endTurnLocked(ctx, inst, cfg, notes)
		}
	}
}

// voteStatusLocked snapshots the active vote's tally for rendering
func (s *service) voteStatusLocked(inst *Instance) *VoteStatus {
	v := inst.vote
	if v == nil {
		return nil
	}

	status := &VoteStatus{
		Type:        v.Type,
		YesCount:    v.YesCount(),
		NoCount:     v.NoCount(),
		Required:    RequiredVotes(inst.roster.ActiveCount()),
		ActiveCount: inst.roster.ActiveCount(),
	}
	if p := inst.roster.Get(v.StarterID); p != nil {
		status.Starter = *p
	}
	if v.TargetID != "" {
		if p := inst.roster.Get(v.TargetID); p != nil {
			status.Target = *p
		}
	}

	yesIDs, noIDs := v.Voters()
	status.YesVoters = s.displayNamesLocked(inst, yesIDs)
	status.NoVoters = s.displayNamesLocked(inst, noIDs)

	return status
}

func (s *service) displayNamesLocked(inst *Instance, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p := inst.roster.Get(id); p != nil {
			names = append(names, p.DisplayName)
		} else {
			names = append(names, id)
		}
	}
	return names
}

// watchVote expires an unresolved vote after the configured window. The task
// is keyed by the vote's id, so a vote that resolved and was replaced by a
// newer one is never touched by a stale task. Votes run on their own clock,
// independent of the phase scheduler.
func (s *service) watchVote(chatID, voteID string, d time.Duration) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("chat_id", chatID).
					Str("vote_id", voteID).
					Interface("panic", r).
					Msg("vote watcher panicked")
			}
		}()

		<-s.clock.After(d)

		inst, err := s.registry.Get(chatID)
		if err != nil {
			return
		}

		var notes []*Notification

		inst.mu.Lock()
		if inst.vote == nil || inst.vote.ID != voteID {
			inst.mu.Unlock()
			return
		}

		status := s.voteStatusLocked(inst)
		status.Resolution = VoteResolutionTimedOut
		inst.vote = nil

		notes = append(notes, &Notification{
			Type:   NoteVoteResolved,
			ChatID: chatID,
			Vote:   status,
		})
		inst.mu.Unlock()

		s.send(context.Background(), notes)
	}()
}

// AdminSkip advances past the current turn without a vote. Unlike a passed
// skip vote, the skipped player stays active.
func (s *service) AdminSkip(ctx context.Context, input *AdminSkipInput) (*AdminSkipOutput, error) {
	if err := s.requireAdmin(ctx, input.ChatID, input.AdminID); err != nil {
		return nil, err
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification

	inst.mu.Lock()
	if inst.phase == models.PhaseWaiting || inst.phase == models.PhaseEnded {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}
	if inst.currentPlayerID == "" {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}

	notes = append(notes, &Notification{
		Type:   NoteTurnSkipped,
		ChatID: input.ChatID,
		Player: *inst.currentPlayer(),
		Reason: "skipped by admin",
	})
	s.endTurnLocked(ctx, inst, cfg, &notes)
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &AdminSkipOutput{}, nil
}

// AdminKick removes a player without a vote
func (s *service) AdminKick(ctx context.Context, input *AdminKickInput) (*AdminKickOutput, error) {
	if err := s.requireAdmin(ctx, input.ChatID, input.AdminID); err != nil {
		return nil, err
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	ended := false

	inst.mu.Lock()
	target := inst.roster.Get(input.TargetID)
	if target == nil {
		inst.mu.Unlock()
		return nil, ErrPlayerNotFound
	}
	if !target.IsActive {
		inst.mu.Unlock()
		return nil, ErrPlayerNotInGame
	}

	notes = append(notes, &Notification{
		Type:   NotePlayerLeft,
		ChatID: input.ChatID,
		Player: *target,
		Reason: "kicked by admin",
	})

	if inst.phase == models.PhaseWaiting {
		inst.roster.Remove(input.TargetID)
		if inst.roster.ActiveCount() == 0 {
			s.discardLocked(inst, &notes, "everyone left the lobby")
			ended = true
		}
	} else {
		wasCurrent := inst.handlePlayerLeave(input.TargetID)
		switch {
		case inst.roster.ActiveCount() <= 1:
			s.endLocked(inst, &notes, "not enough players left")
			ended = true
		case wasCurrent:
			s.endTurnLocked(ctx, inst, cfg, &notes)
		}
	}
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &AdminKickOutput{GameEnded: ended}, nil
}

// AdminEnd ends the game without a vote
func (s *service) AdminEnd(ctx context.Context, input *AdminEndInput) (*AdminEndOutput, error) {
	if err := s.requireAdmin(ctx, input.ChatID, input.AdminID); err != nil {
		return nil, err
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	var notes []*Notification

	inst.mu.Lock()
	if inst.phase == models.PhaseWaiting {
		s.discardLocked(inst, &notes, "closed by admin")
	} else {
		s.endLocked(inst, &notes, "ended by admin")
	}
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &AdminEndOutput{}, nil
}

func (s *service) requireAdmin(ctx context.Context, chatID, playerID string) error {
	isAdmin, err := s.admin.IsAdmin(ctx, chatID, playerID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return nil
}
