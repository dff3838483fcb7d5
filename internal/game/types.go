package game

import (
	"time"

	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/repositories/stats"
	"github.com/frostveil/frozenbridges/internal/timers"
)

// NoteType categorises a notification emitted to the chat delivery layer
type NoteType string

const (
	NoteLobbyOpened        NoteType = "lobby_opened"
	NotePlayerJoined       NoteType = "player_joined"
	NotePlayerLeft         NoteType = "player_left"
	NoteGameStarted        NoteType = "game_started"
	NoteTurnStarted        NoteType = "turn_started"
	NoteTurnSkipped        NoteType = "turn_skipped"
	NoteQuestionAsked      NoteType = "question_asked"
	NoteAnswererChosen     NoteType = "answerer_chosen"
	NoteAnswerSubmitted    NoteType = "answer_submitted"
	NoteAnswerAccepted     NoteType = "answer_accepted"
	NoteAnswerRejected     NoteType = "answer_rejected"
	NoteAnswerAutoAccepted NoteType = "answer_auto_accepted"
	NoteChangeRequested    NoteType = "change_requested"
	NoteChangeDecided      NoteType = "change_decided"
	NoteDifficultyRated    NoteType = "difficulty_rated"
	NoteRollResult         NoteType = "roll_result"
	NoteRollTie            NoteType = "roll_tie"
	NoteRevealResult       NoteType = "reveal_result"
	NoteVoteStarted        NoteType = "vote_started"
	NoteVoteUpdated        NoteType = "vote_updated"
	NoteVoteResolved       NoteType = "vote_resolved"
	NoteTimerWarning       NoteType = "timer_warning"
	NotePlayerTimedOut     NoteType = "player_timed_out"
	NoteGameEnded          NoteType = "game_ended"
)

// Notification is the structured payload handed to the Notifier. Players are
// copied by value so the delivery layer never reads live game state.
type Notification struct {
	// Type selects which fields below are meaningful
	Type NoteType

	// ChatID is the room the notification belongs to
	ChatID string

	// Player is the primary subject: the joiner, the asker, the roller, the
	// player whose turn started
	Player models.Player

	// Target is the secondary subject: the answerer, a kick target
	Target models.Player

	Question string
	Answer   string

	// Rating is the difficulty awarded, 1 to 5
	Rating int

	// Roll is a single die value; AutoRoll marks a timeout auto-roll
	Roll     int
	AutoRoll bool

	// Revealed reports the reveal contest outcome
	Revealed bool

	// Accepted reports a question-change decision
	Accepted bool

	// ChangesUsed and ChangesMax describe the question-change budget
	ChangesUsed int
	ChangesMax  int

	// Reason is free-form context for skips, kicks and game endings
	Reason string

	// TimerKind and Remaining describe a timer warning
	TimerKind timers.Kind
	Remaining time.Duration

	// Vote carries the tally snapshot for vote notifications
	Vote *VoteStatus

	// Summary carries the final scoreboard for game_ended
	Summary *Summary
}

// VoteResolution describes how a vote ended
type VoteResolution string

const (
	VoteResolutionPassed     VoteResolution = "passed"
	VoteResolutionImpossible VoteResolution = "impossible"
	VoteResolutionTimedOut   VoteResolution = "timed_out"
)

// VoteStatus is a snapshot of a vote's tally for rendering
type VoteStatus struct {
	Type        models.VoteType
	Starter     models.Player
	Target      models.Player
	YesCount    int
	NoCount     int
	Required    int
	ActiveCount int
	YesVoters   []string
	NoVoters    []string

	// Resolution is empty while the vote is ongoing
	Resolution VoteResolution
}

// Summary is the end-of-game scoreboard
type Summary struct {
	// Entries are sorted by points, highest first
	Entries []SummaryEntry

	// Elapsed is how long the game ran; zero if it never started
	Elapsed time.Duration
}

// SummaryEntry is one scoreboard row
type SummaryEntry struct {
	PlayerID    string
	DisplayName string
	Points      int
	Active      bool
}

// Config holds configuration for the game service
type Config struct {
	// Notifier delivers notifications to the chat platform
	Notifier Notifier

	// StatsRepo records cumulative per-player counters
	StatsRepo stats.Repository

	// SettingsRepo supplies per-chat timer durations
	SettingsRepo settings.Repository

	// AdminChecker answers admin-privilege lookups
	AdminChecker AdminChecker

	// Scheduler runs the per-game countdown tasks
	Scheduler Scheduler

	// Clock is the time source
	Clock Clock

	// Roller supplies timeout auto-rolls
	Roller Roller

	// MaxQuestionChanges bounds change requests per answerer per turn.
	// Defaults to 3.
	MaxQuestionChanges int

	// AutoAcceptRating is the difficulty awarded when the accept/reject
	// window expires. Defaults to 1.
	AutoAcceptRating int
}

// CreateGameInput contains parameters for CreateGame
type CreateGameInput struct {
	ChatID      string
	CreatorID   string
	CreatorName string
}

// CreateGameOutput contains the result of CreateGame
type CreateGameOutput struct {
	GameID string
}

// JoinGameInput contains parameters for JoinGame
type JoinGameInput struct {
	ChatID     string
	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of JoinGame
type JoinGameOutput struct {
	// Reactivated is true when a former player rejoined
	Reactivated bool
}

// LeaveGameInput contains parameters for LeaveGame
type LeaveGameInput struct {
	ChatID   string
	PlayerID string
}

// LeaveGameOutput contains the result of LeaveGame
type LeaveGameOutput struct {
	// GameEnded is true when the departure left too few players
	GameEnded bool
}

// StartGameInput contains parameters for StartGame
type StartGameInput struct {
	ChatID   string
	PlayerID string
}

// StartGameOutput contains the result of StartGame
type StartGameOutput struct {
	FirstPlayerID string
}

// AskQuestionInput contains parameters for AskQuestion
type AskQuestionInput struct {
	ChatID   string
	PlayerID string
	Question string
}

// AskQuestionOutput contains the result of AskQuestion
type AskQuestionOutput struct{}

// ChooseAnswererInput contains parameters for ChooseAnswerer
type ChooseAnswererInput struct {
	ChatID   string
	PlayerID string
	TargetID string
}

// ChooseAnswererOutput contains the result of ChooseAnswerer
type ChooseAnswererOutput struct{}

// SubmitAnswerInput contains parameters for SubmitAnswer
type SubmitAnswerInput struct {
	ChatID   string
	PlayerID string
	Answer   string
}

// SubmitAnswerOutput contains the result of SubmitAnswer
type SubmitAnswerOutput struct{}

// AcceptAnswerInput contains parameters for AcceptAnswer
type AcceptAnswerInput struct {
	ChatID   string
	PlayerID string
}

// AcceptAnswerOutput contains the result of AcceptAnswer
type AcceptAnswerOutput struct{}

// RejectAnswerInput contains parameters for RejectAnswer
type RejectAnswerInput struct {
	ChatID   string
	PlayerID string
}

// RejectAnswerOutput contains the result of RejectAnswer
type RejectAnswerOutput struct{}

// RateDifficultyInput contains parameters for RateDifficulty
type RateDifficultyInput struct {
	ChatID   string
	PlayerID string
	Rating   int
}

// RateDifficultyOutput contains the result of RateDifficulty
type RateDifficultyOutput struct{}

// RollDiceInput contains parameters for RollDice
type RollDiceInput struct {
	ChatID   string
	PlayerID string
	Value    int
}

// RollDiceOutput contains the result of RollDice
type RollDiceOutput struct {
	// Resolved is true when this roll completed the pair
	Resolved bool

	// Outcome is meaningful only when Resolved is true
	Outcome RollOutcome
}

// RequestQuestionChangeInput contains parameters for RequestQuestionChange
type RequestQuestionChangeInput struct {
	ChatID   string
	PlayerID string
}

// RequestQuestionChangeOutput contains the result of RequestQuestionChange
type RequestQuestionChangeOutput struct {
	ChangesUsed int
	ChangesMax  int
}

// RespondQuestionChangeInput contains parameters for RespondQuestionChange
type RespondQuestionChangeInput struct {
	ChatID   string
	PlayerID string
	Accept   bool
}

// RespondQuestionChangeOutput contains the result of RespondQuestionChange
type RespondQuestionChangeOutput struct {
	ChangesUsed int
	ChangesMax  int
}

// GiveUpInput contains parameters for GiveUp
type GiveUpInput struct {
	ChatID   string
	PlayerID string
}

// GiveUpOutput contains the result of GiveUp
type GiveUpOutput struct{}

// StartVoteInput contains parameters for StartVote
type StartVoteInput struct {
	ChatID   string
	PlayerID string
	Type     models.VoteType
	TargetID string
}

// StartVoteOutput contains the result of StartVote
type StartVoteOutput struct {
	// Bypassed is true when the two-player shortcut applied the action
	// without a vote
	Bypassed bool
}

// CastVoteInput contains parameters for CastVote
type CastVoteInput struct {
	ChatID   string
	PlayerID string
	Yes      bool
}

// CastVoteOutput contains the result of CastVote
type CastVoteOutput struct {
	Outcome VoteOutcome
}

// AdminSkipInput contains parameters for AdminSkip
type AdminSkipInput struct {
	ChatID  string
	AdminID string
}

// AdminSkipOutput contains the result of AdminSkip
type AdminSkipOutput struct{}

// AdminKickInput contains parameters for AdminKick
type AdminKickInput struct {
	ChatID   string
	AdminID  string
	TargetID string
}

// AdminKickOutput contains the result of AdminKick
type AdminKickOutput struct {
	GameEnded bool
}

// AdminEndInput contains parameters for AdminEnd
type AdminEndInput struct {
	ChatID  string
	AdminID string
}

// AdminEndOutput contains the result of AdminEnd
type AdminEndOutput struct{}

// GetSummaryInput contains parameters for GetSummary
type GetSummaryInput struct {
	ChatID string
}

// GetSummaryOutput contains the live scoreboard for a running game
type GetSummaryOutput struct {
	Phase           models.Phase
	CurrentPlayerID string
	Summary         *Summary
}

// GetTimerSettingsInput contains parameters for GetTimerSettings
type GetTimerSettingsInput struct {
	ChatID string
}

// GetTimerSettingsOutput contains a chat's timer settings
type GetTimerSettingsOutput struct {
	Settings settings.TimerSettings
}

// UpdateTimerSettingInput contains parameters for UpdateTimerSetting
type UpdateTimerSettingInput struct {
	ChatID   string
	AdminID  string
	Timer    settings.Timer
	Duration time.Duration
}

// UpdateTimerSettingOutput contains the result of UpdateTimerSetting
type UpdateTimerSettingOutput struct{}
