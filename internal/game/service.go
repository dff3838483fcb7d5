package game

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/repositories/stats"
	"github.com/frostveil/frozenbridges/internal/timers"
)

const (
	defaultMaxQuestionChanges = 3
	defaultAutoAcceptRating   = 1
)

type service struct {
	registry *Registry

	notifier     Notifier
	statsRepo    stats.Repository
	settingsRepo settings.Repository
	admin        AdminChecker
	scheduler    Scheduler
	clock        Clock
	roller       Roller

	maxQuestionChanges int
	autoAcceptRating   int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.AdminChecker == nil {
		return nil, ErrNilAdminChecker
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	maxChanges := cfg.MaxQuestionChanges
	if maxChanges <= 0 {
		maxChanges = defaultMaxQuestionChanges
	}
	autoRating := cfg.AutoAcceptRating
	if autoRating <= 0 {
		autoRating = defaultAutoAcceptRating
	}

	return &service{
		registry:           NewRegistry(),
		notifier:           cfg.Notifier,
		statsRepo:          cfg.StatsRepo,
		settingsRepo:       cfg.SettingsRepo,
		admin:              cfg.AdminChecker,
		scheduler:          cfg.Scheduler,
		clock:              cfg.Clock,
		roller:             cfg.Roller,
		maxQuestionChanges: maxChanges,
		autoAcceptRating:   autoRating,
	}, nil
}

// statDelta is a counter increment collected under the instance lock and
// flushed afterwards, so repository calls never run while the game is locked
type statDelta struct {
	playerID string
	stat     string
}

// send delivers collected notifications, logging failures instead of
// propagating them: a dropped message never rolls back a game transition
func (s *service) send(ctx context.Context, notes []*Notification) {
	for _, note := range notes {
		if err := s.notifier.Send(ctx, note); err != nil {
			log.Error().Err(err).
				Str("chat_id", note.ChatID).
				Str("note_type", string(note.Type)).
				Msg("failed to deliver notification")
		}
	}
}

// flushStats applies collected counter increments
func (s *service) flushStats(ctx context.Context, deltas []statDelta) {
	for _, d := range deltas {
		err := s.statsRepo.IncrementStat(ctx, &stats.IncrementStatInput{
			PlayerID: d.playerID,
			Stat:     d.stat,
		})
		if err != nil {
			log.Error().Err(err).
				Str("player_id", d.playerID).
				Str("stat", d.stat).
				Msg("failed to record stat")
		}
	}
}

// timerSettings fetches the chat's timer durations, falling back to the
// defaults when the lookup fails. Fetched before taking the instance lock so
// repository latency never extends the critical section.
func (s *service) timerSettings(ctx context.Context, chatID string) settings.TimerSettings {
	out, err := s.settingsRepo.GetSettings(ctx, &settings.GetSettingsInput{ChatID: chatID})
	if err != nil {
		log.Warn().Err(err).Str("chat_id", chatID).Msg("falling back to default timer settings")
		return settings.DefaultSettings()
	}
	return out.Settings
}

// CreateGame opens a lobby in a chat
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if s.registry.PlayerActiveAnywhere(input.CreatorID) {
		return nil, ErrPlayerInOtherGame
	}

	inst := newInstance(uuid.New().String(), input.ChatID)
	creator := &models.Player{ID: input.CreatorID, DisplayName: input.CreatorName}
	inst.roster.Add(creator)

	if err := s.registry.Put(inst); err != nil {
		return nil, err
	}

	log.Info().
		Str("game_id", inst.ID).
		Str("chat_id", input.ChatID).
		Str("creator_id", input.CreatorID).
		Msg("lobby opened")

	s.send(ctx, []*Notification{{
		Type:   NoteLobbyOpened,
		ChatID: input.ChatID,
		Player: *creator,
	}})

	return &CreateGameOutput{GameID: inst.ID}, nil
}

// JoinGame adds a player to the lobby or running game. A former player
// rejoins with their points intact; joining appends to the end of the turn
// queue either way.
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	// Scanned before taking the instance lock: locking another instance
	// underneath this one would invert the lock order.
	if s.registry.PlayerActiveAnywhere(input.PlayerID) {
		if inst.playerActive(input.PlayerID) {
			return nil, ErrPlayerAlreadyInGame
		}
		return nil, ErrPlayerInOtherGame
	}

	var note *Notification
	reactivated := false

	inst.mu.Lock()
	if inst.phase == models.PhaseEnded {
		inst.mu.Unlock()
		return nil, ErrGameNotFound
	}

	if existing := inst.roster.Get(input.PlayerID); existing != nil {
		if existing.IsActive {
			inst.mu.Unlock()
			return nil, ErrPlayerAlreadyInGame
		}
		reactivated = true
	}

	player := &models.Player{ID: input.PlayerID, DisplayName: input.PlayerName}
	if reactivated {
		player = inst.roster.Get(input.PlayerID)
		player.DisplayName = input.PlayerName
	}
	inst.roster.Add(player)

	note = &Notification{
		Type:   NotePlayerJoined,
		ChatID: input.ChatID,
		Player: *player,
	}
	inst.mu.Unlock()

	s.send(ctx, []*Notification{note})

	return &JoinGameOutput{Reactivated: reactivated}, nil
}

// LeaveGame removes a player voluntarily
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	ended := false

	inst.mu.Lock()
	player := inst.roster.Get(input.PlayerID)
	if player == nil || !player.IsActive {
		inst.mu.Unlock()
		return nil, ErrPlayerNotInGame
	}

	left := *player
	notes = append(notes, &Notification{
		Type:   NotePlayerLeft,
		ChatID: input.ChatID,
		Player: left,
	})

	if inst.phase == models.PhaseWaiting {
		inst.roster.Remove(input.PlayerID)
		if inst.roster.ActiveCount() == 0 {
			s.discardLocked(inst, &notes, "everyone left the lobby")
			ended = true
		}
	} else {
		wasCurrent := inst.handlePlayerLeave(input.PlayerID)
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

	return &LeaveGameOutput{GameEnded: ended}, nil
}

// StartGame moves a lobby with enough players into play and arms the first
// asking countdown
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	cfg := s.timerSettings(ctx, input.ChatID)

	var notes []*Notification
	var deltas []statDelta
	var firstID string

	inst.mu.Lock()
	caller := inst.roster.Get(input.PlayerID)
	if caller == nil || !caller.IsActive {
		inst.mu.Unlock()
		return nil, ErrPlayerNotInGame
	}

	if err := inst.start(s.clock.Now()); err != nil {
		inst.mu.Unlock()
		return nil, err
	}

	for _, p := range inst.roster.Active() {
		deltas = append(deltas, statDelta{playerID: p.ID, stat: stats.StatGamesPlayed})
	}

	firstID = inst.currentPlayerID
	first := inst.currentPlayer()

	notes = append(notes,
		&Notification{Type: NoteGameStarted, ChatID: input.ChatID, Player: *caller},
		&Notification{Type: NoteTurnStarted, ChatID: input.ChatID, Player: *first},
	)

	s.scheduler.Arm(ctx, input.ChatID, timers.KindAsking, cfg.Asking, s)
	inst.mu.Unlock()

	log.Info().
		Str("game_id", inst.ID).
		Str("chat_id", input.ChatID).
		Str("first_player", firstID).
		Msg("game started")

	s.flushStats(ctx, deltas)
	s.send(ctx, notes)

	return &StartGameOutput{FirstPlayerID: firstID}, nil
}

// GetSummary returns the live scoreboard
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	inst, err := s.registry.Get(input.ChatID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	return &GetSummaryOutput{
		Phase:           inst.phase,
		CurrentPlayerID: inst.currentPlayerID,
		Summary:         s.summaryLocked(inst),
	}, nil
}

// GetTimerSettings returns the chat's timer durations
func (s *service) GetTimerSettings(ctx context.Context, input *GetTimerSettingsInput) (*GetTimerSettingsOutput, error) {
	out, err := s.settingsRepo.GetSettings(ctx, &settings.GetSettingsInput{ChatID: input.ChatID})
	if err != nil {
		return nil, err
	}
	return &GetTimerSettingsOutput{Settings: out.Settings}, nil
}

// UpdateTimerSetting changes one timer duration, admins only
func (s *service) UpdateTimerSetting(ctx context.Context, input *UpdateTimerSettingInput) (*UpdateTimerSettingOutput, error) {
	isAdmin, err := s.admin.IsAdmin(ctx, input.ChatID, input.AdminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrNotAdmin
	}

	err = s.settingsRepo.UpdateSetting(ctx, &settings.UpdateSettingInput{
		ChatID:   input.ChatID,
		Timer:    input.Timer,
		Duration: input.Duration,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("chat_id", input.ChatID).
		Str("timer", string(input.Timer)).
		Dur("duration", input.Duration).
		Msg("timer setting updated")

	return &UpdateTimerSettingOutput{}, nil
}

// summaryLocked builds the scoreboard from the full roster, highest points
// first, ties broken by display name
func (s *service) summaryLocked(inst *Instance) *Summary {
	all := inst.roster.All()

	entries := make([]SummaryEntry, 0, len(all))
	for _, p := range all {
		entries = append(entries, SummaryEntry{
			PlayerID:    p.ID,
			DisplayName: p.DisplayName,
			Points:      p.AnswerPoints,
			Active:      p.IsActive,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	summary := &Summary{Entries: entries}
	if !inst.startedAt.IsZero() {
		summary.Elapsed = s.clock.Now().Sub(inst.startedAt)
	}
	return summary
}

// endLocked finishes a started game: the scoreboard is published, the timer
// is cancelled and the instance leaves the registry
func (s *service) endLocked(inst *Instance, notes *[]*Notification, reason string) {
	inst.phase = models.PhaseEnded
	inst.vote = nil

	*notes = append(*notes, &Notification{
		Type:    NoteGameEnded,
		ChatID:  inst.ChatID,
		Reason:  reason,
		Summary: s.summaryLocked(inst),
	})

	s.scheduler.Cancel(inst.ChatID)
	s.registry.Delete(inst.ChatID)

	log.Info().
		Str("game_id", inst.ID).
		Str("chat_id", inst.ChatID).
		Str("reason", reason).
		Msg("game ended")
}

// discardLocked drops a lobby that never started; no scoreboard is published
func (s *service) discardLocked(inst *Instance, notes *[]*Notification, reason string) {
	inst.phase = models.PhaseEnded

	*notes = append(*notes, &Notification{
		Type:   NoteGameEnded,
		ChatID: inst.ChatID,
		Reason: reason,
	})

	s.scheduler.Cancel(inst.ChatID)
	s.registry.Delete(inst.ChatID)
}

// endTurnLocked advances the rotation then arms the next asking countdown,
// or ends the game when no player is left to seat
func (s *service) endTurnLocked(ctx context.Context, inst *Instance, cfg settings.TimerSettings, notes *[]*Notification) {
	inst.nextTurn()

	if inst.currentPlayerID == "" {
		s.endLocked(inst, notes, "no players left")
		return
	}

	*notes = append(*notes, &Notification{
		Type:   NoteTurnStarted,
		ChatID: inst.ChatID,
		Player: *inst.currentPlayer(),
	})
	s.scheduler.Arm(ctx, inst.ChatID, timers.KindAsking, cfg.Asking, s)
}
