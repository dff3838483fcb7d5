package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	settingsKeyPrefix = "group_settings:"
)

// ErrOutOfRange is returned when an admin submits a duration outside the
// allowed bounds
var ErrOutOfRange = errors.New("duration out of allowed range")

// ErrUnknownTimer is returned for a timer name the repository does not know
var ErrUnknownTimer = errors.New("unknown timer")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Defaults are returned for chats with no stored settings. Zero value
	// means the stock defaults.
	Defaults TimerSettings
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	defaults TimerSettings
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	defaults := cfg.Defaults
	if defaults == (TimerSettings{}) {
		defaults = DefaultSettings()
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		defaults: defaults,
	}, nil
}

// GetSettings returns the chat's timer settings or the defaults
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", settingsKeyPrefix, input.ChatID)
	raw, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return &GetSettingsOutput{Settings: r.defaults}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var stored TimerSettings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &GetSettingsOutput{Settings: stored}, nil
}

// UpdateSetting changes one timer duration for a chat
func (r *redisRepository) UpdateSetting(ctx context.Context, input *UpdateSettingInput) error {
	if input == nil || input.ChatID == "" {
		return errors.New("input and chat ID cannot be empty")
	}

	if input.Duration < MinDuration || input.Duration > MaxDuration {
		return ErrOutOfRange
	}

	out, err := r.GetSettings(ctx, &GetSettingsInput{ChatID: input.ChatID})
	if err != nil {
		return err
	}
	updated := out.Settings

	switch input.Timer {
	case TimerAsking:
		updated.Asking = input.Duration
	case TimerAnswering:
		updated.Answering = input.Duration
	case TimerDiceRoll:
		updated.DiceRoll = input.Duration
	case TimerAcceptReject:
		updated.AcceptReject = input.Duration
	case TimerVote:
		updated.Vote = input.Duration
	default:
		return ErrUnknownTimer
	}

	encoded, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	key := fmt.Sprintf("%s%s", settingsKeyPrefix, input.ChatID)
	if err := r.client.Set(ctx, key, encoded, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
