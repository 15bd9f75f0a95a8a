package impl

import (
	"context"
	"testing"
	"time"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	"mazao/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContentService(t *testing.T) (usecase.ContentUsecase, *mockRepo.MockContentRepository) {
	contentRepo := mockRepo.NewMockContentRepository(t)

	return NewContentService(contentRepo), contentRepo
}

func TestContentService_CreateContent_Defaults(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Content")).
		Return(nil)

	content, err := service.CreateContent(ctx, &usecase.CreateContentInput{
		Title: "Harvest checklist",
		Body:  "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultContentAuthor, content.Author)
	assert.Equal(t, entity.ContentStatusDraft, content.Status)
	assert.Nil(t, content.PublishedAt)
}

func TestContentService_CreateContent_PublishedStampsTime(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Content")).
		Return(nil)

	content, err := service.CreateContent(ctx, &usecase.CreateContentInput{
		Title:  "Launch",
		Body:   "Body",
		Status: "published",
	})
	require.NoError(t, err)
	require.NotNil(t, content.PublishedAt)
}

func TestContentService_UpdateContent_PublishStampsOnce(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	published := entity.ContentStatusPublished

	contentRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(&entity.Content{ID: 4, Status: entity.ContentStatusDraft}, nil)

	contentRepo.EXPECT().
		Update(ctx, int64(4), mock.AnythingOfType("repository.ContentUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, update repository.ContentUpdate) (*entity.Content, error) {
			require.NotNil(t, update.PublishedAt)

			return &entity.Content{ID: 4, Status: published, PublishedAt: update.PublishedAt}, nil
		})

	content, err := service.UpdateContent(ctx, 4, repository.ContentUpdate{Status: &published})
	require.NoError(t, err)
	assert.NotNil(t, content.PublishedAt)
}

func TestContentService_UpdateContent_RepublishKeepsOriginalTime(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	published := entity.ContentStatusPublished
	original := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	contentRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(&entity.Content{ID: 4, Status: published, PublishedAt: &original}, nil)

	contentRepo.EXPECT().
		Update(ctx, int64(4), mock.AnythingOfType("repository.ContentUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, update repository.ContentUpdate) (*entity.Content, error) {
			assert.Nil(t, update.PublishedAt)

			return &entity.Content{ID: 4, Status: published, PublishedAt: &original}, nil
		})

	content, err := service.UpdateContent(ctx, 4, repository.ContentUpdate{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, original, *content.PublishedAt)
}

func TestContentService_GetContent_NotFound(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.EXPECT().
		FindByID(ctx, int64(77)).
		Return(nil, repository.ErrContentNotFound)

	content, err := service.GetContent(ctx, 77)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
	assert.Nil(t, content)
}

func TestContentService_ListPublished(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.EXPECT().
		FindPublished(ctx).
		Return([]*entity.Content{{ID: 1, Status: entity.ContentStatusPublished}}, nil)

	content, err := service.ListPublishedContent(ctx)
	require.NoError(t, err)
	assert.Len(t, content, 1)
}
