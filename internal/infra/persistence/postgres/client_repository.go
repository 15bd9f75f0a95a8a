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

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindAll retrieves all clients, newest first.
func (repo *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// FindByID retrieves a single client by its unique ID.
func (repo *clientRepository) FindByID(ctx context.Context, id int64) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// Create persists a new client record.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	// Update the entity with generated values
	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.LastActive = clientM.LastActive

	return nil
}

// Update applies a partial update and returns the updated record.
func (repo *clientRepository) Update(ctx context.Context, id int64, update repository.ClientUpdate) (*entity.Client, error) {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.LastActive != nil {
		fields["last_active"] = *update.LastActive
	}

	if len(fields) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ClientModel{}).
			Where("id = ?", id).
			Updates(fields)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrClientNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a client by its ID.
func (repo *clientRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:         data.ID,
		Name:       data.Name,
		Location:   data.Location,
		Phone:      data.Phone,
		Status:     entity.ClientStatus(data.Status),
		LastActive: data.LastActive,
		CreatedAt:  data.CreatedAt,
	}
}

// fromClientDomain converts a domain Client entity to a GORM ClientModel.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:         data.ID,
		Name:       data.Name,
		Location:   data.Location,
		Phone:      data.Phone,
		Status:     string(data.Status),
		LastActive: data.LastActive,
	}
}
