package postgres

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := NewSettingRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, entity.SettingOpenAIKey, "sk-first")
	require.NoError(t, err)
	assert.Equal(t, "sk-first", first.Value)

	second, err := repo.Upsert(ctx, entity.SettingOpenAIKey, "sk-second")
	require.NoError(t, err)
	assert.Equal(t, "sk-second", second.Value)

	// Repeated writes keep a single row per key
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sk-second", all[0].Value)
}

func TestSettingRepository_Find_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Find(context.Background(), "MISSING_KEY")
	assert.ErrorIs(t, err, repository.ErrSettingNotFound)
}
