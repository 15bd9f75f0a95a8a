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

// licenseRepository implements the repository.LicenseRepository interface.
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository is the constructor for licenseRepository.
func NewLicenseRepository(db *gorm.DB) repository.LicenseRepository {
	return &licenseRepository{
		db: db,
	}
}

// FindAll retrieves all licenses, newest first.
func (repo *licenseRepository) FindAll(ctx context.Context) ([]*entity.License, error) {
	var licenseModels []*model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&licenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find licenses")
	}

	licenses := make([]*entity.License, 0, len(licenseModels))
	for _, licenseM := range licenseModels {
		licenses = append(licenses, toLicenseDomain(licenseM))
	}

	return licenses, nil
}

// FindByID retrieves a single license by its unique ID.
func (repo *licenseRepository) FindByID(ctx context.Context, id int64) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find license by ID")
	}

	return toLicenseDomain(&licenseM), nil
}

// FindByKey retrieves a single license by its unique key.
func (repo *licenseRepository) FindByKey(ctx context.Context, key string) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find license by key")
	}

	return toLicenseDomain(&licenseM), nil
}

// Create persists a new license record. A duplicate generated key surfaces
// as repository.ErrDuplicateLicenseKey so the issuance loop can regenerate.
func (repo *licenseRepository) Create(ctx context.Context, license *entity.License) error {
	licenseM := fromLicenseDomain(license)

	if err := repo.db.WithContext(ctx).Create(licenseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLicenseKey
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrClientNotFound.WrapMessage("license references unknown client")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create license")
	}

	license.ID = licenseM.ID
	license.CreatedAt = licenseM.CreatedAt

	return nil
}

// Update applies a partial update and returns the updated record.
func (repo *licenseRepository) Update(ctx context.Context, id int64, update repository.LicenseUpdate) (*entity.License, error) {
	fields := map[string]any{}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.Shop != nil {
		fields["shop"] = *update.Shop
	}
	if update.Expiry != nil {
		fields["expiry"] = *update.Expiry
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.ClientID != nil {
		fields["client_id"] = *update.ClientID
	}

	if len(fields) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.LicenseModel{}).
			Where("id = ?", id).
			Updates(fields)

		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return nil, domainerrors.ErrClientNotFound.WrapMessage("license references unknown client")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update license")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrLicenseNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a license by its ID.
func (repo *licenseRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LicenseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete license")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLicenseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLicenseDomain converts a GORM LicenseModel to a domain License entity.
func toLicenseDomain(data *model.LicenseModel) *entity.License {
	if data == nil {
		return nil
	}

	license := &entity.License{
		ID:        data.ID,
		Key:       data.Key,
		Status:    entity.LicenseStatus(data.Status),
		Shop:      data.Shop,
		Expiry:    data.Expiry,
		Created:   data.Created,
		ClientID:  data.ClientID,
		CreatedAt: data.CreatedAt,
	}
	if data.Phone != nil {
		license.Phone = *data.Phone
	}

	return license
}

// fromLicenseDomain converts a domain License entity to a GORM LicenseModel.
func fromLicenseDomain(data *entity.License) *model.LicenseModel {
	if data == nil {
		return nil
	}

	licenseM := &model.LicenseModel{
		ID:       data.ID,
		Key:      data.Key,
		Status:   string(data.Status),
		Shop:     data.Shop,
		Expiry:   data.Expiry,
		Created:  data.Created,
		ClientID: data.ClientID,
	}
	if data.Phone != "" {
		phone := data.Phone
		licenseM.Phone = &phone
	}

	return licenseM
}
