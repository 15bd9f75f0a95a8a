package usecase

import (
	"context"

	"mazao/internal/domain/entity"
)

// SettingUsecase defines the interface for persisted configuration use cases
type SettingUsecase interface {
	// ListSettings retrieves all persisted settings.
	ListSettings(ctx context.Context) ([]*entity.Setting, error)

	// GetSetting retrieves one setting by key.
	GetSetting(ctx context.Context, key string) (*entity.Setting, error)

	// UpsertSetting writes a value for a key, creating the row if absent.
	UpsertSetting(ctx context.Context, key, value string) (*entity.Setting, error)
}
