package impl

import (
	"context"
	"time"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

type contentService struct {
	contentRepo repository.ContentRepository
	now         func() time.Time
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo repository.ContentRepository) usecase.ContentUsecase {
	return &contentService{
		contentRepo: contentRepo,
		now:         time.Now,
	}
}

func (s *contentService) ListContent(ctx context.Context) ([]*entity.Content, error) {
	content, err := s.contentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content")
	}

	return content, nil
}

func (s *contentService) ListPublishedContent(ctx context.Context) ([]*entity.Content, error) {
	content, err := s.contentRepo.FindPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published content")
	}

	return content, nil
}

func (s *contentService) GetContent(ctx context.Context, id int64) (*entity.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to get content")
	}

	return content, nil
}

func (s *contentService) CreateContent(ctx context.Context, input *usecase.CreateContentInput) (*entity.Content, error) {
	author := input.Author
	if author == "" {
		author = entity.DefaultContentAuthor
	}

	status := entity.ContentStatus(input.Status)
	if status != entity.ContentStatusDraft && status != entity.ContentStatusPublished {
		status = entity.ContentStatusDraft
	}

	content := &entity.Content{
		Title:   input.Title,
		Body:    input.Body,
		Excerpt: input.Excerpt,
		Author:  author,
		Status:  status,
	}

	if status == entity.ContentStatusPublished {
		now := s.now().UTC()
		content.PublishedAt = &now
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, errors.Wrap(err, "failed to create content")
	}

	return content, nil
}

func (s *contentService) UpdateContent(ctx context.Context, id int64, update repository.ContentUpdate) (*entity.Content, error) {
	// Publishing stamps published_at once; later edits keep the original
	// publication time.
	if update.Status != nil && *update.Status == entity.ContentStatusPublished && update.PublishedAt == nil {
		existing, err := s.GetContent(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.PublishedAt == nil {
			now := s.now().UTC()
			update.PublishedAt = &now
		}
	}

	content, err := s.contentRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to update content")
	}

	return content, nil
}

func (s *contentService) DeleteContent(ctx context.Context, id int64) error {
	if err := s.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound
		}

		return errors.Wrap(err, "failed to delete content")
	}

	return nil
}
