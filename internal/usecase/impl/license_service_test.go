package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

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

// licenseServiceFixtures holds all test dependencies for license service tests.
type licenseServiceFixtures struct {
	service     usecase.LicenseUsecase
	licenseRepo *mockRepo.MockLicenseRepository
	txManager   *mockRepo.MockTransactionManager
	qrService   *mockService.MockQRCodeService
}

func createTestLicenseService(t *testing.T) licenseServiceFixtures {
	licenseRepo := mockRepo.NewMockLicenseRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrService := mockService.NewMockQRCodeService(t)
	service := NewLicenseService(licenseRepo, txManager, qrService)

	return licenseServiceFixtures{
		service:     service,
		licenseRepo: licenseRepo,
		txManager:   txManager,
		qrService:   qrService,
	}
}

var keyPattern = regexp.MustCompile(`^AGRO-\d{4}-\d{4}-\d{4}$`)

func TestGenerateKey_Format(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		key := generateKey()
		assert.Regexp(t, keyPattern, key)
		seen[key] = struct{}{}
	}

	// 200 draws from a 9000^3 space colliding would be remarkable.
	assert.Greater(t, len(seen), 190)
}

func TestLicenseService_IssueLicense_Trial(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.service.(*licenseService).now = func() time.Time { return issued }

	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(nil)

	license, err := fx.service.IssueLicense(ctx, &usecase.IssueLicenseInput{Plan: "trial"})
	require.NoError(t, err)
	assert.Regexp(t, keyPattern, license.Key)
	assert.Equal(t, entity.LicenseStatusUnused, license.Status)
	assert.Equal(t, entity.UnassignedShop, license.Shop)
	assert.Equal(t, "2025-03-31", license.Expiry)
	assert.Equal(t, "2025-03-01", license.Created)
}

func TestLicenseService_IssueLicense_Annual(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	issued := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	fx.service.(*licenseService).now = func() time.Time { return issued }

	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(nil)

	license, err := fx.service.IssueLicense(ctx, &usecase.IssueLicenseInput{Plan: "annual", Shop: "Mama Njeri Store"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", license.Expiry)
	assert.Equal(t, "Mama Njeri Store", license.Shop)
}

func TestLicenseService_IssueLicense_Lifetime(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(nil)

	license, err := fx.service.IssueLicense(ctx, &usecase.IssueLicenseInput{Plan: "lifetime"})
	require.NoError(t, err)
	assert.Equal(t, "2099-12-31", license.Expiry)
}

func TestLicenseService_IssueLicense_UnknownPlan(t *testing.T) {
	fx := createTestLicenseService(t)

	license, err := fx.service.IssueLicense(context.Background(), &usecase.IssueLicenseInput{Plan: "monthly"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLicensePlan)
	assert.Nil(t, license)
}

func TestLicenseService_IssueLicense_RetriesOnDuplicateKey(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	// Two collisions, then success; keys must differ between attempts.
	var keys []string
	attempt := 0
	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		RunAndReturn(func(_ context.Context, license *entity.License) error {
			keys = append(keys, license.Key)
			attempt++
			if attempt <= 2 {
				return repository.ErrDuplicateLicenseKey
			}
			license.ID = 7

			return nil
		})

	license, err := fx.service.IssueLicense(ctx, &usecase.IssueLicenseInput{Plan: "trial"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), license.ID)
	assert.Len(t, keys, 3)
	assert.NotEqual(t, keys[0], keys[2])
}

func TestLicenseService_IssueLicense_KeySpaceExhaustion(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(repository.ErrDuplicateLicenseKey).
		Times(5)

	license, err := fx.service.IssueLicense(ctx, &usecase.IssueLicenseInput{Plan: "annual"})
	assert.ErrorIs(t, err, domainerrors.ErrLicenseKeyConflict)
	assert.Nil(t, license)
}

func TestLicenseService_GetLicense_DerivesExpiredStatus(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.service.(*licenseService).now = func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}

	fx.licenseRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.License{ID: 3, Status: entity.LicenseStatusActive, Expiry: "2024-12-31"}, nil)

	license, err := fx.service.GetLicense(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseStatusExpired, license.Status)
}

func TestLicenseService_GetLicense_NotFound(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrLicenseNotFound)

	license, err := fx.service.GetLicense(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrLicenseNotFound)
	assert.Nil(t, license)
}

func TestLicenseService_GetLicenseByKey(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		FindByKey(ctx, "AGRO-1111-2222-3333").
		Return(&entity.License{ID: 1, Key: "AGRO-1111-2222-3333", Status: entity.LicenseStatusUnused, Expiry: "2099-12-31"}, nil)

	license, err := fx.service.GetLicenseByKey(ctx, "AGRO-1111-2222-3333")
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseStatusUnused, license.Status)
}

func TestLicenseService_AssignLicense_TouchesClient(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	clientID := int64(12)
	licenseRepo := mockRepo.NewMockLicenseRepository(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewLicenseRepository().Return(licenseRepo)
	factory.EXPECT().NewClientRepository().Return(clientRepo)

	licenseRepo.EXPECT().
		Update(ctx, int64(5), mock.AnythingOfType("repository.LicenseUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, update repository.LicenseUpdate) (*entity.License, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, entity.LicenseStatusActive, *update.Status)
			require.NotNil(t, update.Shop)
			assert.Equal(t, "Kiosk One", *update.Shop)

			return &entity.License{ID: 5, Status: *update.Status, Shop: *update.Shop, Expiry: "2099-12-31", ClientID: &clientID}, nil
		})

	clientRepo.EXPECT().
		Update(ctx, clientID, mock.AnythingOfType("repository.ClientUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, update repository.ClientUpdate) (*entity.Client, error) {
			require.NotNil(t, update.LastActive)

			return &entity.Client{ID: clientID}, nil
		})

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	license, err := fx.service.AssignLicense(ctx, 5, "Kiosk One", &clientID)
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseStatusActive, license.Status)
	assert.Equal(t, "Kiosk One", license.Shop)
}

func TestLicenseService_AssignLicense_NotFound(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrLicenseNotFound)

	license, err := fx.service.AssignLicense(ctx, 404, "Shop", nil)
	assert.ErrorIs(t, err, domainerrors.ErrLicenseNotFound)
	assert.Nil(t, license)
}

func TestLicenseService_DeleteLicense_NotFound(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		Delete(ctx, int64(8)).
		Return(repository.ErrLicenseNotFound)

	err := fx.service.DeleteLicense(ctx, 8)
	assert.ErrorIs(t, err, domainerrors.ErrLicenseNotFound)
}

func TestLicenseService_LicenseQR(t *testing.T) {
	fx := createTestLicenseService(t)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(&entity.License{ID: 2, Key: "AGRO-4444-5555-6666", Status: entity.LicenseStatusUnused, Expiry: "2099-12-31"}, nil)

	fx.qrService.EXPECT().
		GenerateLicenseQR("AGRO-4444-5555-6666").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.LicenseQR(ctx, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
