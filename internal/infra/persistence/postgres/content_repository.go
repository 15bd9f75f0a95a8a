package postgres

import (
	"context"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// FindAll retrieves all content, newest first.
func (repo *contentRepository) FindAll(ctx context.Context) ([]*entity.Content, error) {
	var contentModels []*model.ContentModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find content")
	}

	return toContentDomainSlice(contentModels), nil
}

// FindPublished retrieves published content only, newest first.
func (repo *contentRepository) FindPublished(ctx context.Context) ([]*entity.Content, error) {
	var contentModels []*model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ContentStatusPublished)).
		Order("created_at DESC").
		Find(&contentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published content")
	}

	return toContentDomainSlice(contentModels), nil
}

// FindByID retrieves a single content item by its unique ID.
func (repo *contentRepository) FindByID(ctx context.Context, id int64) (*entity.Content, error) {
	var contentM model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by ID")
	}

	return toContentDomain(&contentM), nil
}

// Create persists a new content item.
func (repo *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	contentM := fromContentDomain(content)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	content.ID = contentM.ID
	content.CreatedAt = contentM.CreatedAt

	return nil
}

// Update applies a partial update and returns the updated record.
func (repo *contentRepository) Update(ctx context.Context, id int64, update repository.ContentUpdate) (*entity.Content, error) {
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Body != nil {
		fields["body"] = *update.Body
	}
	if update.Excerpt != nil {
		fields["excerpt"] = *update.Excerpt
	}
	if update.Author != nil {
		fields["author"] = *update.Author
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.PublishedAt != nil {
		fields["published_at"] = *update.PublishedAt
	}

	if len(fields) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ContentModel{}).
			Where("id = ?", id).
			Updates(fields)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrContentNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a content item by its ID.
func (repo *contentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete content")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContentDomainSlice(models []*model.ContentModel) []*entity.Content {
	items := make([]*entity.Content, 0, len(models))
	for _, contentM := range models {
		items = append(items, toContentDomain(contentM))
	}

	return items
}

// toContentDomain converts a GORM ContentModel to a domain Content entity.
func toContentDomain(data *model.ContentModel) *entity.Content {
	if data == nil {
		return nil
	}

	return &entity.Content{
		ID:          data.ID,
		Title:       data.Title,
		Body:        data.Body,
		Excerpt:     data.Excerpt,
		Author:      data.Author,
		Status:      entity.ContentStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		PublishedAt: data.PublishedAt,
	}
}

// fromContentDomain converts a domain Content entity to a GORM ContentModel.
func fromContentDomain(data *entity.Content) *model.ContentModel {
	if data == nil {
		return nil
	}

	return &model.ContentModel{
		ID:          data.ID,
		Title:       data.Title,
		Body:        data.Body,
		Excerpt:     data.Excerpt,
		Author:      data.Author,
		Status:      string(data.Status),
		PublishedAt: data.PublishedAt,
	}
}
