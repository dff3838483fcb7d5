package game

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/repositories/stats"
	"github.com/frostveil/frozenbridges/internal/timers"
)

// AskQuestion records the current player's question. The phase stays PLAYING
// until the asker picks an answerer; the asking countdown keeps running over
// both steps.
func (s *service) AskQuestion(ctx context.Context, input *AskQuestionInput) (*AskQuestionOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	var notes []*Notification
	var deltas []statDelta

	inst.mu.Lock()
	if err := inst.canAsk(input.PlayerID); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	inst.question = question
	deltas = append(deltas, statDelta{playerID: input.PlayerID, stat: stats.StatQuestionsAsked})
	notes = append(notes, &Notification{
		Type:   NoteQuestionAsked,
		ChatID: input.ChatID,
		Player: *inst.currentPlayer(),
	})
	inst.mu.Unlock()

	log.Info().
		Str("chat_id", input.ChatID).
		Str("asker_id", input.PlayerID).
		Msg("question recorded")

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)

	return &AskQuestionOutput{}, nil
}

// ChooseAnswerer binds the stored question to a target player and opens the
// answering window
func (s *service) ChooseAnswerer(ctx context.Context, input *ChooseAnswererInput) (*ChooseAnswererOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification

	inst.mu.Lock()
	if inst.phase != models.PhasePlaying {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}
	if inst.currentPlayerID != input.PlayerID {
		inst.mu.Unlock()
		return nil, ErrNotYourTurn
	}
	if inst.question == "" {
		inst.mu.Unlock()
		return nil, ErrNoQuestion
	}

	target := inst.roster.Get(input.TargetID)
	if target == nil || !target.IsActive || input.TargetID == input.PlayerID {
		inst.mu.Unlock()
		return nil, ErrInvalidTarget
	}

	inst.answererID = input.TargetID
	inst.bindChangeAnswerer(input.TargetID)
	inst.phase = models.PhaseAnswering

	notes = append(notes, &Notification{
		Type:     NoteAnswererChosen,
		ChatID:   input.ChatID,
		Player:   *inst.currentPlayer(),
		Target:   *target,
		Question: inst.question,
	})

	s.scheduler.Arm(ctx, input.ChatID, timers.KindAnswering, cfg.Answering, s)
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &ChooseAnswererOutput{}, nil
}

// SubmitAnswer records the answerer's answer and hands the turn to the asker
// for the accept/reject decision
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	var deltas []statDelta

	inst.mu.Lock()
	if err := inst.canAnswer(input.PlayerID); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	inst.answer = answer
	deltas = append(deltas, statDelta{playerID: input.PlayerID, stat: stats.StatAnswersGiven})
	notes = append(notes, &Notification{
		Type:   NoteAnswerSubmitted,
		ChatID: input.ChatID,
		Player: *inst.answerer(),
		Target: *inst.currentPlayer(),
		Answer: answer,
	})

	// The asker now owes a decision, so the countdown switches subjects
	s.scheduler.Arm(ctx, input.ChatID, timers.KindAcceptReject, cfg.AcceptReject, s)
	inst.mu.Unlock()

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)

	return &SubmitAnswerOutput{}, nil
}

// AcceptAnswer marks the answer as accepted and opens the rating window
func (s *service) AcceptAnswer(ctx context.Context, input *AcceptAnswerInput) (*AcceptAnswerOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification

	inst.mu.Lock()
	if err := inst.canDecide(input.PlayerID); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	inst.answerAccepted = true
	notes = append(notes, &Notification{
		Type:   NoteAnswerAccepted,
		ChatID: input.ChatID,
		Player: *inst.currentPlayer(),
		Target: *inst.answerer(),
	})

	// A fresh window for the difficulty rating
	s.scheduler.Arm(ctx, input.ChatID, timers.KindAcceptReject, cfg.AcceptReject, s)
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &AcceptAnswerOutput{}, nil
}

// RejectAnswer clears the answer and sends the answerer back to answering
func (s *service) RejectAnswer(ctx context.Context, input *RejectAnswerInput) (*RejectAnswerOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification

	inst.mu.Lock()
	if err := inst.canDecide(input.PlayerID); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	inst.answer = ""
	notes = append(notes, &Notification{
		Type:   NoteAnswerRejected,
		ChatID: input.ChatID,
		Player: *inst.currentPlayer(),
		Target: *inst.answerer(),
	})

	// Back to the answerer's clock
	s.scheduler.Arm(ctx, input.ChatID, timers.KindAnswering, cfg.Answering, s)
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &RejectAnswerOutput{}, nil
}

// RateDifficulty awards the accepted answer's points and opens the reveal
// contest
func (s *service) RateDifficulty(ctx context.Context, input *RateDifficultyInput) (*RateDifficultyOutput, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification

	inst.mu.Lock()
	if inst.phase != models.PhaseAnswering {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}
	if inst.currentPlayerID != input.PlayerID {
		inst.mu.Unlock()
		return nil, ErrNotYourTurn
	}
	if !inst.answerAccepted {
		inst.mu.Unlock()
		return nil, ErrAnswerNotAccepted
	}

	answerer := inst.answerer()
	answerer.AnswerPoints += input.Rating
	inst.phase = models.PhaseRolling

	notes = append(notes, &Notification{
		Type:   NoteDifficultyRated,
		ChatID: input.ChatID,
		Player: *inst.currentPlayer(),
		Target: *answerer,
		Rating: input.Rating,
	})

	s.scheduler.Arm(ctx, input.ChatID, timers.KindDiceRoll, cfg.DiceRoll, s)
	inst.mu.Unlock()

	s.send(ctx, notes)

	return &RateDifficultyOutput{}, nil
}

// RollDice records one side's reveal roll, resolving the contest once both
// sides have rolled. A tie clears both rolls and restarts the countdown for
// a true retry.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input.Value < 1 || input.Value > 6 {
		return nil, ErrInvalidRoll
	}

	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	var deltas []statDelta
	out := &RollDiceOutput{}

	inst.mu.Lock()
	if err := inst.canRoll(input.PlayerID); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	inst.recordRoll(input.PlayerID, input.Value)

	roller := inst.roster.Get(input.PlayerID)
	notes = append(notes, &Notification{
		Type:   NoteRollResult,
		ChatID: input.ChatID,
		Player: *roller,
		Roll:   input.Value,
	})

	if inst.bothRolled() {
		out.Resolved = true
		out.Outcome = s.resolveRollsLocked(ctx, inst, cfg, &notes, &deltas)
	}
	inst.mu.Unlock()

	if out.Resolved {
		log.Info().
			Str("chat_id", input.ChatID).
			Bool("revealed", out.Outcome == RollRevealed).
			Bool("tie", out.Outcome == RollTie).
			Msg("reveal contest resolved")
	}

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)

	return out, nil
}

// resolveRollsLocked compares the two rolls, publishes the outcome and either
// restarts the contest on a tie or finishes the turn
func (s *service) resolveRollsLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, notes *[]*Notification, deltas *[]statDelta) RollOutcome {
	asker := *inst.currentPlayer()
	answerer := *inst.answerer()
	question := inst.question
	answer := inst.answer

	outcome := inst.resolveRolls()

	switch outcome {
	case RollTie:
		*notes = append(*notes, &Notification{
			Type:   NoteRollTie,
			ChatID: inst.ChatID,
			Player: asker,
			Target: answerer,
		})
		s.scheduler.Arm(ctx, inst.ChatID, timers.KindDiceRoll, cfg.DiceRoll, s)
		return outcome

	case RollRevealed:
		*deltas = append(*deltas,
			statDelta{playerID: asker.ID, stat: stats.StatTimesRevealed},
			statDelta{playerID: answerer.ID, stat: stats.StatTimesExposed},
		)
		*notes = append(*notes, &Notification{
			Type:     NoteRevealResult,
			ChatID:   inst.ChatID,
			Player:   asker,
			Target:   answerer,
			Question: question,
			Answer:   answer,
			Revealed: true,
		})

	case RollHidden:
		*deltas = append(*deltas,
			statDelta{playerID: asker.ID, stat: stats.StatTimesFailedReveal},
			statDelta{playerID: answerer.ID, stat: stats.StatTimesLucky},
		)
		*notes = append(*notes, &Notification{
			Type:   NoteRevealResult,
			ChatID: inst.ChatID,
			Player: asker,
			Target: answerer,
		})
	}

	s.endTurnLocked(ctx, inst, cfg, notes)
	return outcome
}

// RequestQuestionChange asks the asker for a different question. The budget
// is charged on the asker's decision, not on the request.
func (s *service) RequestQuestionChange(ctx context.Context, input *RequestQuestionChangeInput) (*RequestQuestionChangeOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	var notes []*Notification
	out := &RequestQuestionChangeOutput{ChangesMax: s.maxQuestionChanges}

	inst.mu.Lock()
	if inst.phase != models.PhaseAnswering {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}
	if inst.answererID != input.PlayerID {
		inst.mu.Unlock()
		return nil, ErrNotAnswerer
	}
	if inst.answer != "" {
		inst.mu.Unlock()
		return nil, ErrAnswerAlreadySubmitted
	}
	if inst.changePending {
		inst.mu.Unlock()
		return nil, ErrChangePending
	}
	if inst.changeRequestsUsed >= s.maxQuestionChanges {
		inst.mu.Unlock()
		return nil, ErrChangeLimitReached
	}

	inst.changePending = true
	out.ChangesUsed = inst.changeRequestsUsed

	notes = append(notes, &Notification{
		Type:        NoteChangeRequested,
		ChatID:      input.ChatID,
		Player:      *inst.answerer(),
		Target:      *inst.currentPlayer(),
		ChangesUsed: inst.changeRequestsUsed,
		ChangesMax:  s.maxQuestionChanges,
	})
	inst.mu.Unlock()

	s.send(ctx, notes)

	return out, nil
}

// RespondQuestionChange resolves a pending change request. Accepting clears
// the question and returns to PLAYING for a fresh ask; rejecting keeps the
// original question and the answering clock. Either decision spends one
// request from the answerer's budget.
func (s *service) RespondQuestionChange(ctx context.Context, input *RespondQuestionChangeInput) (*RespondQuestionChangeOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	out := &RespondQuestionChangeOutput{ChangesMax: s.maxQuestionChanges}

	inst.mu.Lock()
	if inst.phase != models.PhaseAnswering {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}
	if inst.currentPlayerID != input.PlayerID {
		inst.mu.Unlock()
		return nil, ErrNotYourTurn
	}
	if !inst.changePending {
		inst.mu.Unlock()
		return nil, ErrNoChangeRequested
	}

	inst.changePending = false
	inst.changeRequestsUsed++
	out.ChangesUsed = inst.changeRequestsUsed

	notes = append(notes, &Notification{
		Type:        NoteChangeDecided,
		ChatID:      input.ChatID,
		Player:      *inst.currentPlayer(),
		Target:      *inst.answerer(),
		Accepted:    input.Accept,
		ChangesUsed: inst.changeRequestsUsed,
		ChangesMax:  s.maxQuestionChanges,
	})

	if input.Accept {
		// Same turn, new question: the answerer binding and the spent
		// budget survive, the question does not
		inst.question = ""
		inst.answer = ""
		inst.answererID = ""
		inst.phase = models.PhasePlaying
		s.scheduler.Arm(ctx, input.ChatID, timers.KindAsking, cfg.Asking, s)
	} else {
		s.scheduler.Arm(ctx, input.ChatID, timers.KindAnswering, cfg.Answering, s)
	}
	inst.mu.Unlock()

	s.send(ctx, notes)

	return out, nil
}

// GiveUp forfeits the caller's side of the current turn. No points move;
// the turn advances.
func (s *service) GiveUp(ctx context.Context, input *GiveUpInput) (*GiveUpOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	var deltas []statDelta

	inst.mu.Lock()
	if inst.phase == models.PhaseWaiting || inst.phase == models.PhaseEnded {
		inst.mu.Unlock()
		return nil, ErrInvalidPhase
	}

	var stat string
	switch {
	case input.PlayerID == inst.currentPlayerID && inst.currentPlayerID != "":
		stat = stats.StatGiveupsAsker
	case input.PlayerID == inst.answererID && inst.answererID != "":
		stat = stats.StatGiveupsAnswerer
	default:
		inst.mu.Unlock()
		return nil, ErrNotInvolvedInTurn
	}

	deltas = append(deltas, statDelta{playerID: input.PlayerID, stat: stat})
	notes = append(notes, &Notification{
		Type:   NoteTurnSkipped,
		ChatID: input.ChatID,
		Player: *inst.roster.Get(input.PlayerID),
		Reason: "gave up",
	})

	s.endTurnLocked(ctx, inst, cfg, &notes)
	inst.mu.Unlock()

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)

	return &GiveUpOutput{}, nil
}
