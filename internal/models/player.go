package models

// Player represents a participant in a single game instance.
// Identity is stable for the lifetime of the game: leaving toggles
// IsActive instead of deleting the record, so turn history and points
// survive a rejoin.
type Player struct {
	// ID is the chat platform user ID
	ID string

	// DisplayName is the name shown in notifications
	DisplayName string

	// IsActive reports whether the player currently holds a spot in
	// the turn queue
	IsActive bool

	// AnswerPoints is the per-game score earned from difficulty ratings
	AnswerPoints int
}
