package impl

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_UpsertSetting(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewSettingService(settingRepo)
	ctx := context.Background()

	settingRepo.EXPECT().
		Upsert(ctx, entity.SettingOpenAIKey, "sk-new").
		Return(&entity.Setting{Key: entity.SettingOpenAIKey, Value: "sk-new"}, nil)

	setting, err := service.UpsertSetting(ctx, entity.SettingOpenAIKey, "sk-new")
	require.NoError(t, err)
	assert.Equal(t, "sk-new", setting.Value)
}

func TestSettingService_GetSetting_NotFound(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewSettingService(settingRepo)
	ctx := context.Background()

	settingRepo.EXPECT().
		Find(ctx, "MISSING").
		Return(nil, repository.ErrSettingNotFound)

	setting, err := service.GetSetting(ctx, "MISSING")
	assert.ErrorIs(t, err, domainerrors.ErrSettingNotFound)
	assert.Nil(t, setting)
}

func TestSettingService_ListSettings(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewSettingService(settingRepo)
	ctx := context.Background()

	settingRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Setting{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}, nil)

	settings, err := service.ListSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 2)
}
