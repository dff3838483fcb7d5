package stats

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frostveil/frozenbridges/internal/repositories/stats Repository

// Repository persists cumulative per-player counters. The engine only ever
// increments named counters; it never reasons about their values.
type Repository interface {
	// IncrementStat adds to a player's named counter
	IncrementStat(ctx context.Context, input *IncrementStatInput) error

	// GetStats returns all counters recorded for a player
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
