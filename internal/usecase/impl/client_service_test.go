package impl

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	"mazao/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestClientService(t *testing.T) (usecase.ClientUsecase, *mockRepo.MockClientRepository) {
	clientRepo := mockRepo.NewMockClientRepository(t)

	return NewClientService(clientRepo), clientRepo
}

func TestClientService_CreateClient_DefaultsToActive(t *testing.T) {
	service, clientRepo := createTestClientService(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		RunAndReturn(func(_ context.Context, client *entity.Client) error {
			client.ID = 1

			return nil
		})

	client, err := service.CreateClient(ctx, &usecase.CreateClientInput{
		Name:     "Kamau Agrovet",
		Location: "Nakuru",
		Phone:    "+254700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStatusActive, client.Status)
	assert.False(t, client.LastActive.IsZero())
}

func TestClientService_CreateClient_RejectsUnknownStatus(t *testing.T) {
	service, clientRepo := createTestClientService(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	client, err := service.CreateClient(ctx, &usecase.CreateClientInput{
		Name:   "Kamau Agrovet",
		Status: "Dormant",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStatusActive, client.Status)
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	service, clientRepo := createTestClientService(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		FindByID(ctx, int64(41)).
		Return(nil, repository.ErrClientNotFound)

	client, err := service.GetClient(ctx, 41)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
	assert.Nil(t, client)
}

func TestClientService_UpdateClient(t *testing.T) {
	service, clientRepo := createTestClientService(t)
	ctx := context.Background()

	inactive := entity.ClientStatusInactive
	clientRepo.EXPECT().
		Update(ctx, int64(3), repository.ClientUpdate{Status: &inactive}).
		Return(&entity.Client{ID: 3, Status: inactive}, nil)

	client, err := service.UpdateClient(ctx, 3, repository.ClientUpdate{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStatusInactive, client.Status)
}

func TestClientService_DeleteClient_NotFound(t *testing.T) {
	service, clientRepo := createTestClientService(t)
	ctx := context.Background()

	clientRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(repository.ErrClientNotFound)

	err := service.DeleteClient(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}
