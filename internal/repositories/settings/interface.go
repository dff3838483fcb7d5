package settings

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frostveil/frozenbridges/internal/repositories/settings Repository

// Repository persists per-chat timer durations. Settings are the only
// per-chat data that survives a restart; in-progress game state never does.
type Repository interface {
	// GetSettings returns the chat's timer settings, falling back to the
	// configured defaults when the chat has none stored
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSetting changes one timer duration, enforcing the allowed bounds
	UpdateSetting(ctx context.Context, input *UpdateSettingInput) error
}
