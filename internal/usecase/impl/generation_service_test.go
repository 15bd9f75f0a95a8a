package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"mazao/config"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	mockService "mazao/internal/mocks/service"
	"mazao/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// generationServiceFixtures holds all test dependencies for generation service tests.
type generationServiceFixtures struct {
	service     usecase.GenerationUsecase
	settingRepo *mockRepo.MockSettingRepository
	generator   *mockService.MockTextGenerator
	cfg         *config.Config
}

func createTestGenerationService(t *testing.T, envKey string) generationServiceFixtures {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	generator := mockService.NewMockTextGenerator(t)
	cfg := &config.Config{}
	cfg.OpenAI.APIKey = envKey
	logger := slog.New(slog.DiscardHandler)
	service := NewGenerationService(settingRepo, generator, cfg, logger)

	return generationServiceFixtures{
		service:     service,
		settingRepo: settingRepo,
		generator:   generator,
		cfg:         cfg,
	}
}

func TestGenerationService_PersistedKeyTakesPrecedence(t *testing.T) {
	fx := createTestGenerationService(t, "sk-env")
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Find(ctx, entity.SettingOpenAIKey).
		Return(&entity.Setting{Key: entity.SettingOpenAIKey, Value: "sk-persisted"}, nil)

	fx.generator.EXPECT().
		Complete(ctx, "sk-persisted", mock.AnythingOfType("string")).
		Return("# Inventory Tips\n\nKeep stock tidy.", nil)

	draft, err := fx.service.GenerateDraft(ctx, "inventory", "blog")
	require.NoError(t, err)
	assert.Equal(t, "Inventory Tips", draft.Title)
}

func TestGenerationService_FallsBackToEnvKey(t *testing.T) {
	fx := createTestGenerationService(t, "sk-env")
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Find(ctx, entity.SettingOpenAIKey).
		Return(nil, repository.ErrSettingNotFound)

	fx.generator.EXPECT().
		Complete(ctx, "sk-env", mock.AnythingOfType("string")).
		Return("New Feature\n\nWe shipped it.", nil)

	draft, err := fx.service.GenerateDraft(ctx, "release", "announcement")
	require.NoError(t, err)
	assert.Equal(t, "New Feature", draft.Title)
}

func TestGenerationService_NotConfigured(t *testing.T) {
	fx := createTestGenerationService(t, "")
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Find(ctx, entity.SettingOpenAIKey).
		Return(nil, repository.ErrSettingNotFound)

	draft, err := fx.service.GenerateDraft(ctx, "anything", "blog")
	assert.ErrorIs(t, err, domainerrors.ErrAINotConfigured)
	assert.Nil(t, draft)
}

func TestGenerationService_ProviderFailure(t *testing.T) {
	fx := createTestGenerationService(t, "sk-env")
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Find(ctx, entity.SettingOpenAIKey).
		Return(nil, repository.ErrSettingNotFound)

	fx.generator.EXPECT().
		Complete(ctx, "sk-env", mock.AnythingOfType("string")).
		Return("", errors.New("upstream timeout"))

	draft, err := fx.service.GenerateDraft(ctx, "pricing", "blog")
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
	assert.Nil(t, draft)
}

func TestGenerationService_PromptMentionsTopic(t *testing.T) {
	fx := createTestGenerationService(t, "sk-env")
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Find(ctx, entity.SettingOpenAIKey).
		Return(nil, repository.ErrSettingNotFound)

	fx.generator.EXPECT().
		Complete(ctx, "sk-env", mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "harvest season") && strings.Contains(prompt, "blog")
		})).
		Return("# Harvest\n\nBody.", nil)

	_, err := fx.service.GenerateDraft(ctx, "harvest season", "blog")
	require.NoError(t, err)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello", extractTitle("## Hello\n\nBody"))
	assert.Equal(t, "Plain", extractTitle("\n\nPlain\nrest"))
	assert.Equal(t, "", extractTitle("   \n\t\n"))
}

func TestMakeExcerpt(t *testing.T) {
	long := strings.Repeat("word ", 100) // 500 chars
	excerpt := makeExcerpt("# Title\n\n**bold** " + long)

	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.LessOrEqual(t, len([]rune(excerpt)), 203)
	assert.NotContains(t, excerpt, "#")
	assert.NotContains(t, excerpt, "*")
	assert.NotContains(t, excerpt, "`")
}

func TestMakeExcerpt_ShortBody(t *testing.T) {
	excerpt := makeExcerpt("Short note.")
	assert.Equal(t, "Short note....", excerpt)
}
