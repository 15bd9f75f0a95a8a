package impl

import (
	"context"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo repository.ReviewRepository) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (s *reviewService) ListApprovedReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindApproved(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved reviews")
	}

	return reviews, nil
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

func (s *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	// Moderation always starts at pending regardless of the payload.
	review := &entity.Review{
		ClientName: input.ClientName,
		Business:   input.Business,
		Rating:     input.Rating,
		Text:       input.Text,
		Approved:   entity.ReviewPending,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, update repository.ReviewUpdate) (*entity.Review, error) {
	review, err := s.reviewRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
