package postgres

import (
	"context"
	"time"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Find retrieves the setting for a key.
func (repo *settingRepository) Find(ctx context.Context, key string) (*entity.Setting, error) {
	var settingM model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return toSettingDomain(&settingM), nil
}

// Upsert updates the value for a key, inserting the row if absent.
// updated_at is refreshed on every write, so repeating the same value is
// idempotent with respect to row count.
func (repo *settingRepository) Upsert(ctx context.Context, key, value string) (*entity.Setting, error) {
	settingM := &model.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	return repo.Find(ctx, key)
}

// FindAll retrieves all settings.
func (repo *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []*model.SettingModel

	if err := repo.db.WithContext(ctx).
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	settings := make([]*entity.Setting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// toSettingDomain converts a GORM SettingModel to a domain Setting entity.
func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		Key:       data.Key,
		Value:     data.Value,
		UpdatedAt: data.UpdatedAt,
	}
}
