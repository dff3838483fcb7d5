package stats

// Counter names recorded by the engine. One taxonomy end to end: the
// auto-accept timeout path increments the same counters as a manual accept.
const (
	StatGamesPlayed       = "games_played"
	StatQuestionsAsked    = "questions_asked"
	StatAnswersGiven      = "answers_given"
	StatTimesRevealed     = "times_revealed"
	StatTimesExposed      = "times_exposed"
	StatTimesFailedReveal = "times_failed_reveal"
	StatTimesLucky        = "times_lucky"
	StatGiveupsAsker      = "giveups_asker"
	StatGiveupsAnswerer   = "giveups_answerer"
	StatTimeouts          = "timeouts"
)

// IncrementStatInput contains parameters for IncrementStat
type IncrementStatInput struct {
	// PlayerID is the platform user id
	PlayerID string

	// Stat is one of the counter names above
	Stat string

	// Delta is the amount to add; zero means one
	Delta int64
}

// GetStatsInput contains parameters for GetStats
type GetStatsInput struct {
	PlayerID string
}

// GetStatsOutput contains the counters recorded for a player
type GetStatsOutput struct {
	Stats map[string]int64
}
