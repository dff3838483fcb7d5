package game

// GameError is a custom error type for engine validation failures.
// Every value is a rejection reported to the caller with no state change.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound           GameError = "game not found"
	ErrGameAlreadyExists      GameError = "game already exists for this chat"
	ErrPlayerNotFound         GameError = "player not found"
	ErrPlayerAlreadyInGame    GameError = "player already in game"
	ErrPlayerInOtherGame      GameError = "player is active in a game in another chat"
	ErrPlayerNotInGame        GameError = "player is not an active player in this game"
	ErrNotEnoughPlayers       GameError = "need at least 2 active players to start"
	ErrInvalidPhase           GameError = "operation not allowed in the current phase"
	ErrNotYourTurn            GameError = "not your turn"
	ErrQuestionAlreadyAsked   GameError = "question already asked this turn"
	ErrEmptyQuestion          GameError = "question cannot be empty"
	ErrNoQuestion             GameError = "no question has been asked yet"
	ErrInvalidTarget          GameError = "invalid target player"
	ErrNotAnswerer            GameError = "you are not the answerer"
	ErrAnswerAlreadySubmitted GameError = "answer already provided"
	ErrEmptyAnswer            GameError = "answer cannot be empty"
	ErrNoAnswer               GameError = "no answer has been submitted yet"
	ErrAnswerAlreadyAccepted  GameError = "answer already accepted"
	ErrAnswerNotAccepted      GameError = "answer has not been accepted yet"
	ErrInvalidRating          GameError = "difficulty rating must be between 1 and 5"
	ErrInvalidRoll            GameError = "roll value must be between 1 and 6"
	ErrNotInvolvedInTurn      GameError = "you are not involved in this turn"
	ErrAlreadyRolled          GameError = "you already rolled"
	ErrChangeLimitReached     GameError = "no question change requests left this turn"
	ErrChangePending          GameError = "a question change request is already pending"
	ErrNoChangeRequested      GameError = "no question change request is pending"
	ErrVoteInProgress         GameError = "a vote is already in progress"
	ErrNoActiveVote           GameError = "there is no active vote"
	ErrAlreadyVoted           GameError = "you have already voted"
	ErrVoteSelfTarget         GameError = "you cannot start this vote against yourself"
	ErrNotAdmin               GameError = "admin privileges required"

	ErrNilConfig       GameError = "config cannot be nil"
	ErrNilNotifier     GameError = "notifier cannot be nil"
	ErrNilScheduler    GameError = "scheduler cannot be nil"
	ErrNilStatsRepo    GameError = "stats repository cannot be nil"
	ErrNilSettingsRepo GameError = "settings repository cannot be nil"
	ErrNilAdminChecker GameError = "admin checker cannot be nil"
	ErrNilClock        GameError = "clock cannot be nil"
	ErrNilRoller       GameError = "dice roller cannot be nil"
)
