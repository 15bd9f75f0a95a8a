package usecase

import (
	"context"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
)

// CreateReviewInput carries the fields of a submitted testimonial.
// Rating is bounded 1..5; moderation always starts at pending.
type CreateReviewInput struct {
	ClientName string `json:"clientName"`
	Business   string `json:"business"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

// ReviewUsecase defines the interface for testimonial moderation use cases
type ReviewUsecase interface {
	// ListReviews retrieves all reviews, newest first.
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// ListApprovedReviews retrieves approved reviews only.
	ListApprovedReviews(ctx context.Context) ([]*entity.Review, error)

	// GetReview retrieves a single review.
	GetReview(ctx context.Context, id int64) (*entity.Review, error)

	// CreateReview records a submitted testimonial in the pending state.
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// UpdateReview applies a partial update, including moderation.
	UpdateReview(ctx context.Context, id int64, update repository.ReviewUpdate) (*entity.Review, error)

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, id int64) error
}
