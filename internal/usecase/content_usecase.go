package usecase

import (
	"context"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
)

// CreateContentInput carries the fields accepted when authoring an article.
type CreateContentInput struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Status  string `json:"status"`
}

// ContentUsecase defines the interface for content management use cases
type ContentUsecase interface {
	// ListContent retrieves all articles, newest first.
	ListContent(ctx context.Context) ([]*entity.Content, error)

	// ListPublishedContent retrieves published articles only.
	ListPublishedContent(ctx context.Context) ([]*entity.Content, error)

	// GetContent retrieves a single article.
	GetContent(ctx context.Context, id int64) (*entity.Content, error)

	// CreateContent persists a new article. Author defaults to Admin,
	// status to draft; publishing stamps published_at.
	CreateContent(ctx context.Context, input *CreateContentInput) (*entity.Content, error)

	// UpdateContent applies a partial update. A transition to published
	// stamps published_at when not already set.
	UpdateContent(ctx context.Context, id int64, update repository.ContentUpdate) (*entity.Content, error)

	// DeleteContent removes an article.
	DeleteContent(ctx context.Context, id int64) error
}

// GenerationUsecase defines the interface for AI-assisted drafting.
type GenerationUsecase interface {
	// GenerateDraft produces a titled draft for the given topic.
	// contentType selects the prompt shape (blog or announcement).
	GenerateDraft(ctx context.Context, topic, contentType string) (*entity.Draft, error)
}
