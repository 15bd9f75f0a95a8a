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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindAll retrieves all reviews, newest first.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindApproved retrieves approved reviews only, newest first.
func (repo *reviewRepository) FindApproved(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("approved = ?", string(entity.ReviewApproved)).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// Create persists a new review record.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of bounds")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Update applies a partial update and returns the updated record.
func (repo *reviewRepository) Update(ctx context.Context, id int64, update repository.ReviewUpdate) (*entity.Review, error) {
	fields := map[string]any{}
	if update.ClientName != nil {
		fields["client_name"] = *update.ClientName
	}
	if update.Business != nil {
		fields["business"] = *update.Business
	}
	if update.Rating != nil {
		fields["rating"] = *update.Rating
	}
	if update.Text != nil {
		fields["text"] = *update.Text
	}
	if update.Approved != nil {
		fields["approved"] = string(*update.Approved)
	}

	if len(fields) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ReviewModel{}).
			Where("id = ?", id).
			Updates(fields)

		if result.Error != nil {
			if isCheckConstraintViolation(result.Error) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("rating out of bounds")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrReviewNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a review by its ID.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomainSlice(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		ClientName: data.ClientName,
		Business:   data.Business,
		Rating:     data.Rating,
		Text:       data.Text,
		Approved:   entity.ReviewModeration(data.Approved),
		CreatedAt:  data.CreatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		ClientName: data.ClientName,
		Business:   data.Business,
		Rating:     data.Rating,
		Text:       data.Text,
		Approved:   string(data.Approved),
	}
}
