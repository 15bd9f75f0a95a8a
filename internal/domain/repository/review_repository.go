package repository

import (
	"context"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReviewNotFound is returned when a review record is absent.
var ErrReviewNotFound = errors.New("review not found")

// ReviewUpdate carries the mutable review fields for a partial update.
// Moderation happens through the Approved field.
type ReviewUpdate struct {
	ClientName *string
	Business   *string
	Rating     *int
	Text       *string
	Approved   *entity.ReviewModeration
}

// ReviewRepository defines review-related database operations.
type ReviewRepository interface {
	// FindAll retrieves all reviews, newest first.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindApproved retrieves approved reviews only, newest first.
	FindApproved(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a single review by id.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// Create persists a new review, assigning id and created_at.
	Create(ctx context.Context, review *entity.Review) error

	// Update applies a partial update; ErrReviewNotFound when no row matched.
	Update(ctx context.Context, id int64, update ReviewUpdate) (*entity.Review, error)

	// Delete removes a review; ErrReviewNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
