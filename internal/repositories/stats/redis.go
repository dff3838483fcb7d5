package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	statsKeyPrefix = "player_stats:"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// IncrementStat adds to a player's named counter
func (r *redisRepository) IncrementStat(ctx context.Context, input *IncrementStatInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.PlayerID == "" {
		return errors.New("player ID cannot be empty")
	}

	if input.Stat == "" {
		return errors.New("stat name cannot be empty")
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	key := fmt.Sprintf("%s%s", statsKeyPrefix, input.PlayerID)
	if err := r.client.HIncrBy(ctx, key, input.Stat, delta).Err(); err != nil {
		return fmt.Errorf("failed to increment stat %s: %w", input.Stat, err)
	}

	return nil
}

// GetStats returns all counters recorded for a player. A player with no
// recorded stats yields an empty map, not an error.
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", statsKeyPrefix, input.PlayerID)
	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	out := &GetStatsOutput{
		Stats: make(map[string]int64, len(raw)),
	}
	for stat, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt stat %s: %w", stat, err)
		}
		out.Stats[stat] = n
	}

	return out, nil
}
