// Package impl contains the concrete use case implementations.
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

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service instance
func NewClientService(clientRepo repository.ClientRepository) usecase.ClientUsecase {
	return &clientService{
		clientRepo: clientRepo,
	}
}

func (s *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, id int64) (*entity.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to get client")
	}

	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	status := entity.ClientStatus(input.Status)
	if status != entity.ClientStatusActive && status != entity.ClientStatusInactive {
		status = entity.ClientStatusActive
	}

	client := &entity.Client{
		Name:       input.Name,
		Location:   input.Location,
		Phone:      input.Phone,
		Status:     status,
		LastActive: time.Now().UTC(),
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id int64, update repository.ClientUpdate) (*entity.Client, error) {
	client, err := s.clientRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to update client")
	}

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}
