package postgres

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseRepository_CreateAndFindByID(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))
	ctx := context.Background()

	license := &entity.License{
		Key:     "AGRO-1111-2222-3333",
		Status:  entity.LicenseStatusUnused,
		Shop:    entity.UnassignedShop,
		Expiry:  "2026-03-01",
		Created: "2025-03-01",
		Phone:   "+254700000001",
	}

	require.NoError(t, repo.Create(ctx, license))
	assert.NotZero(t, license.ID)

	found, err := repo.FindByID(ctx, license.ID)
	require.NoError(t, err)
	assert.Equal(t, "AGRO-1111-2222-3333", found.Key)
	assert.Equal(t, entity.LicenseStatusUnused, found.Status)
	assert.Equal(t, entity.UnassignedShop, found.Shop)
	assert.Equal(t, "2026-03-01", found.Expiry)
	assert.Equal(t, "+254700000001", found.Phone)
}

func TestLicenseRepository_Create_DuplicateKey(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))
	ctx := context.Background()

	first := &entity.License{
		Key: "AGRO-4444-5555-6666", Status: entity.LicenseStatusUnused,
		Shop: entity.UnassignedShop, Expiry: "2026-01-01", Created: "2025-01-01",
	}
	require.NoError(t, repo.Create(ctx, first))

	dup := &entity.License{
		Key: "AGRO-4444-5555-6666", Status: entity.LicenseStatusUnused,
		Shop: entity.UnassignedShop, Expiry: "2026-01-01", Created: "2025-01-01",
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateLicenseKey)
}

func TestLicenseRepository_FindByKey_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))

	_, err := repo.FindByKey(context.Background(), "AGRO-0000-0000-0000")
	assert.ErrorIs(t, err, repository.ErrLicenseNotFound)
}

func TestLicenseRepository_Update(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))
	ctx := context.Background()

	license := &entity.License{
		Key: "AGRO-7777-8888-9999", Status: entity.LicenseStatusUnused,
		Shop: entity.UnassignedShop, Expiry: "2026-01-01", Created: "2025-01-01",
	}
	require.NoError(t, repo.Create(ctx, license))

	status := entity.LicenseStatusActive
	shop := "Kilimo Fresh"
	updated, err := repo.Update(ctx, license.ID, repository.LicenseUpdate{Status: &status, Shop: &shop})
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseStatusActive, updated.Status)
	assert.Equal(t, "Kilimo Fresh", updated.Shop)
	// Untouched fields survive the partial update
	assert.Equal(t, "2026-01-01", updated.Expiry)
}

func TestLicenseRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))

	status := entity.LicenseStatusActive
	_, err := repo.Update(context.Background(), 404, repository.LicenseUpdate{Status: &status})
	assert.ErrorIs(t, err, repository.ErrLicenseNotFound)
}

func TestLicenseRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewLicenseRepository(newTestDB(t))
	ctx := context.Background()

	license := &entity.License{
		Key: "AGRO-1212-3434-5656", Status: entity.LicenseStatusUnused,
		Shop: entity.UnassignedShop, Expiry: "2026-01-01", Created: "2025-01-01",
	}
	require.NoError(t, repo.Create(ctx, license))

	require.NoError(t, repo.Delete(ctx, license.ID))

	_, err := repo.FindByID(ctx, license.ID)
	assert.ErrorIs(t, err, repository.ErrLicenseNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, license.ID), repository.ErrLicenseNotFound)
}
