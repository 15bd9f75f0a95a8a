package repository

import (
	"context"
	"time"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrContentNotFound is returned when a content record is absent.
var ErrContentNotFound = errors.New("content not found")

// ContentUpdate carries the mutable content fields for a partial update.
type ContentUpdate struct {
	Title       *string
	Body        *string
	Excerpt     *string
	Author      *string
	Status      *entity.ContentStatus
	PublishedAt *time.Time
}

// ContentRepository defines content-related database operations.
type ContentRepository interface {
	// FindAll retrieves all content, newest first.
	FindAll(ctx context.Context) ([]*entity.Content, error)

	// FindPublished retrieves published content only, newest first.
	FindPublished(ctx context.Context) ([]*entity.Content, error)

	// FindByID retrieves a single content item by id.
	FindByID(ctx context.Context, id int64) (*entity.Content, error)

	// Create persists a new content item, assigning id and created_at.
	Create(ctx context.Context, content *entity.Content) error

	// Update applies a partial update; ErrContentNotFound when no row matched.
	Update(ctx context.Context, id int64, update ContentUpdate) (*entity.Content, error)

	// Delete removes a content item; ErrContentNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
