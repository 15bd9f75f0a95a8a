package repository

import (
	"context"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingNotFound is returned when no setting exists for a key.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines key/value configuration storage.
// One row per key; Upsert refreshes updated_at on every write.
type SettingRepository interface {
	// Find retrieves the setting for a key.
	Find(ctx context.Context, key string) (*entity.Setting, error)

	// Upsert updates the value for a key, inserting the row if absent.
	Upsert(ctx context.Context, key, value string) (*entity.Setting, error)

	// FindAll retrieves all settings.
	FindAll(ctx context.Context) ([]*entity.Setting, error)
}
