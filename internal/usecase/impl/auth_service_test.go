package impl

import (
	"context"
	"log/slog"
	"testing"

	"mazao/config"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	mockService "mazao/internal/mocks/service"
	"mazao/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.DiscardHandler)
	service := NewAuthService(userRepo, hasher, tokenService, cfg, logger)

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_StoredUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := &entity.User{ID: "u-1", Username: "admin", Password: "$2a$10$hash"}
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "admin").
		Return(stored, nil)
	fx.hasher.EXPECT().
		Check("admin123", "$2a$10$hash").
		Return(true)
	fx.tokenService.EXPECT().
		GenerateToken("u-1", "admin").
		Return("signed-token", nil)

	result, err := fx.service.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "admin", result.User.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := &entity.User{ID: "u-1", Username: "admin", Password: "$2a$10$hash"}
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "admin").
		Return(stored, nil)
	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	result, err := fx.service.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAuthService_Login_ConfiguredFallbackProvisionsAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "admin").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().
		Hash("admin123").
		Return("$2a$10$fresh", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "admin", user.Username)
			assert.Equal(t, "$2a$10$fresh", user.Password)
			user.ID = "u-new"

			return nil
		})
	fx.tokenService.EXPECT().
		GenerateToken("u-new", "admin").
		Return("signed-token", nil)

	result, err := fx.service.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "u-new", result.User.ID)
}

func TestAuthService_Login_ConfiguredFallbackWrongCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "intruder").
		Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.Login(ctx, "intruder", "guess")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAuthService_Me(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "u-1").
		Return(&entity.User{ID: "u-1", Username: "admin"}, nil)

	user, err := fx.service.Me(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "gone").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Me(ctx, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
