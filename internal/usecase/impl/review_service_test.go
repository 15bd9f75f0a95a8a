package impl

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	"mazao/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	return NewReviewService(reviewRepo), reviewRepo
}

func TestReviewService_CreateReview_StartsPending(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)
	ctx := context.Background()

	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			assert.Equal(t, entity.ReviewPending, review.Approved)
			review.ID = 1

			return nil
		})

	review, err := service.CreateReview(ctx, &usecase.CreateReviewInput{
		ClientName: "Jane",
		Business:   "Jane's Agrovet",
		Rating:     5,
		Text:       "Great system",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewPending, review.Approved)
}

func TestReviewService_UpdateReview_Moderation(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)
	ctx := context.Background()

	approved := entity.ReviewApproved
	reviewRepo.EXPECT().
		Update(ctx, int64(2), repository.ReviewUpdate{Approved: &approved}).
		Return(&entity.Review{ID: 2, Approved: approved}, nil)

	review, err := service.UpdateReview(ctx, 2, repository.ReviewUpdate{Approved: &approved})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewApproved, review.Approved)
}

func TestReviewService_GetReview_NotFound(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)
	ctx := context.Background()

	reviewRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(nil, repository.ErrReviewNotFound)

	review, err := service.GetReview(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	assert.Nil(t, review)
}

func TestReviewService_ListApproved(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)
	ctx := context.Background()

	reviewRepo.EXPECT().
		FindApproved(ctx).
		Return([]*entity.Review{{ID: 1, Approved: entity.ReviewApproved}}, nil)

	reviews, err := service.ListApprovedReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)
	ctx := context.Background()

	reviewRepo.EXPECT().
		Delete(ctx, int64(5)).
		Return(repository.ErrReviewNotFound)

	err := service.DeleteReview(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
