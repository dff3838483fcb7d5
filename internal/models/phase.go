package models

// Phase represents the current stage of a game instance
type Phase string

const (
	// PhaseWaiting means the lobby is open and the game has not started
	PhaseWaiting Phase = "WAITING"

	// PhasePlaying means it is the current player's turn to ask a question
	PhasePlaying Phase = "PLAYING"

	// PhaseAsking means a question is being composed
	PhaseAsking Phase = "ASKING"

	// PhaseAnswering means the designated answerer owes an answer, or the
	// asker owes an accept/reject/rating decision
	PhaseAnswering Phase = "ANSWERING"

	// PhaseRolling means both sides owe a dice roll
	PhaseRolling Phase = "ROLLING"

	// PhaseVoting is reserved for votes that block gameplay; votes in this
	// implementation run in the background and leave the phase untouched
	PhaseVoting Phase = "VOTING"

	// PhaseEnded means the game is over and the instance is being discarded
	PhaseEnded Phase = "ENDED"
)

// VoteType identifies what a quorum vote decides
type VoteType string

const (
	// VoteTypeSkip skips the current player's turn and deactivates them
	VoteTypeSkip VoteType = "skip"

	// VoteTypeEnd ends the game
	VoteTypeEnd VoteType = "end"

	// VoteTypeKick removes a target player from the game
	VoteTypeKick VoteType = "kick"
)
