package postgres

import (
	"context"
	"testing"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_AppendAssignsTimestamp(t *testing.T) {
	t.Parallel()

	repo := NewAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	event := &entity.PageViewEvent{
		EventType: entity.EventTypePageView,
		Page:      "/pricing",
		Referrer:  "https://google.com",
	}

	require.NoError(t, repo.Append(ctx, event))
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestAnalyticsRepository_QueryFilters(t *testing.T) {
	t.Parallel()

	repo := NewAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	seed := []*entity.PageViewEvent{
		{EventType: entity.EventTypePageView, Page: "/"},
		{EventType: entity.EventTypePageView, Page: "/pricing"},
		{EventType: entity.EventTypeCTAClick, Page: "/pricing", Action: "start-trial"},
	}
	for _, event := range seed {
		require.NoError(t, repo.Append(ctx, event))
	}

	clicks, err := repo.Query(ctx, repository.EventFilter{EventType: entity.EventTypeCTAClick}, 0)
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	assert.Equal(t, "start-trial", clicks[0].Action)

	pricing, err := repo.Query(ctx, repository.EventFilter{Page: "/pricing"}, 0)
	require.NoError(t, err)
	assert.Len(t, pricing, 2)

	capped, err := repo.Query(ctx, repository.EventFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
