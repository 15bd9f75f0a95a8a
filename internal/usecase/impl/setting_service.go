package impl

import (
	"context"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

type settingService struct {
	settingRepo repository.SettingRepository
}

// NewSettingService creates a new setting service instance
func NewSettingService(settingRepo repository.SettingRepository) usecase.SettingUsecase {
	return &settingService{
		settingRepo: settingRepo,
	}
}

func (s *settingService) ListSettings(ctx context.Context) ([]*entity.Setting, error) {
	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	return settings, nil
}

func (s *settingService) GetSetting(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := s.settingRepo.Find(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, domainerrors.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to get setting")
	}

	return setting, nil
}

func (s *settingService) UpsertSetting(ctx context.Context, key, value string) (*entity.Setting, error) {
	setting, err := s.settingRepo.Upsert(ctx, key, value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert setting")
	}

	return setting, nil
}
