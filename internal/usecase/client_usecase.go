package usecase

import (
	"context"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
)

// CreateClientInput carries the fields accepted when registering a shop.
type CreateClientInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// ClientUsecase defines the interface for client management use cases
type ClientUsecase interface {
	// ListClients retrieves all clients, newest first.
	ListClients(ctx context.Context) ([]*entity.Client, error)

	// GetClient retrieves a single client.
	GetClient(ctx context.Context, id int64) (*entity.Client, error)

	// CreateClient registers a new shop. Status defaults to Active.
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)

	// UpdateClient applies a partial update.
	UpdateClient(ctx context.Context, id int64, update repository.ClientUpdate) (*entity.Client, error)

	// DeleteClient removes a client record.
	DeleteClient(ctx context.Context, id int64) error
}
