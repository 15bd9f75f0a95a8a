package impl

import (
	"context"
	"testing"
	"time"

	"mazao/config"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	mockRepo "mazao/internal/mocks/repository"
	"mazao/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	analyticsRepo *mockRepo.MockAnalyticsRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	service := NewAnalyticsService(analyticsRepo, cfg)

	return analyticsServiceFixtures{
		service:       service,
		analyticsRepo: analyticsRepo,
	}
}

func TestAnalyticsService_TrackEvent(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analyticsRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PageViewEvent")).
		RunAndReturn(func(_ context.Context, event *entity.PageViewEvent) error {
			event.ID = 1
			event.CreatedAt = time.Now()

			return nil
		})

	event, err := fx.service.TrackEvent(ctx, &usecase.TrackEventInput{
		EventType: entity.EventTypePageView,
		Page:      "/pricing",
		Referrer:  "https://google.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestAnalyticsService_QueryEvents_DefaultAndCappedLimit(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	// Zero limit falls back to the configured default.
	fx.analyticsRepo.EXPECT().
		Query(ctx, repository.EventFilter{}, 500).
		Return([]*entity.PageViewEvent{}, nil).
		Once()

	_, err := fx.service.QueryEvents(ctx, usecase.EventQuery{})
	require.NoError(t, err)

	// Oversized limits are capped at the configured maximum.
	fx.analyticsRepo.EXPECT().
		Query(ctx, repository.EventFilter{EventType: entity.EventTypePageView}, 5000).
		Return([]*entity.PageViewEvent{}, nil).
		Once()

	_, err = fx.service.QueryEvents(ctx, usecase.EventQuery{EventType: entity.EventTypePageView, Limit: 999999})
	require.NoError(t, err)
}

func TestSummarize_ConversionRate(t *testing.T) {
	events := make([]*entity.PageViewEvent, 0, 13)
	for i := 0; i < 10; i++ {
		events = append(events, &entity.PageViewEvent{EventType: entity.EventTypePageView, Page: "/"})
	}
	for i := 0; i < 3; i++ {
		events = append(events, &entity.PageViewEvent{EventType: entity.EventTypeCTAClick, Page: "/", Action: "signup"})
	}

	summary := summarize(events)
	assert.Equal(t, 10, summary.PageViews)
	assert.Equal(t, 3, summary.CTAClicks)
	assert.InDelta(t, 30.0, summary.ConversionRate, 0.0001)
}

func TestSummarize_NoViewsNoDivideByZero(t *testing.T) {
	summary := summarize([]*entity.PageViewEvent{
		{EventType: entity.EventTypeCTAClick, Action: "signup"},
	})
	assert.Equal(t, 0, summary.PageViews)
	assert.Equal(t, 1, summary.CTAClicks)
	assert.Zero(t, summary.ConversionRate)
}

func TestSummarize_UniqueReferrersSkipEmpty(t *testing.T) {
	summary := summarize([]*entity.PageViewEvent{
		{EventType: entity.EventTypePageView, Referrer: "https://google.com"},
		{EventType: entity.EventTypePageView, Referrer: "https://google.com"},
		{EventType: entity.EventTypePageView, Referrer: "https://bing.com"},
		{EventType: entity.EventTypePageView},
	})
	assert.Equal(t, 2, summary.UniqueReferrers)
}

func TestSummarize_TopActionsDescCappedAtEight(t *testing.T) {
	var events []*entity.PageViewEvent
	actions := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, action := range actions {
		for j := 0; j <= i; j++ {
			events = append(events, &entity.PageViewEvent{EventType: entity.EventTypeCTAClick, Action: action})
		}
	}

	summary := summarize(events)
	require.Len(t, summary.TopActions, 8)
	assert.Equal(t, "j", summary.TopActions[0].Action)
	assert.Equal(t, 10, summary.TopActions[0].Count)
	for i := 1; i < len(summary.TopActions); i++ {
		assert.GreaterOrEqual(t, summary.TopActions[i-1].Count, summary.TopActions[i].Count)
	}
}

func TestSummarize_HourlyTrendAscendingLabels(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2025, 4, 10, hour, 30, 0, 0, time.UTC)
	}
	summary := summarize([]*entity.PageViewEvent{
		{EventType: entity.EventTypePageView, CreatedAt: at(15)},
		{EventType: entity.EventTypePageView, CreatedAt: at(9)},
		{EventType: entity.EventTypePageView, CreatedAt: at(9)},
		{EventType: entity.EventTypePageView, CreatedAt: at(0)},
	})

	require.Len(t, summary.HourlyTrend, 3)
	assert.Equal(t, entity.HourlyBucket{Hour: "00:00", Count: 1}, summary.HourlyTrend[0])
	assert.Equal(t, entity.HourlyBucket{Hour: "09:00", Count: 2}, summary.HourlyTrend[1])
	assert.Equal(t, entity.HourlyBucket{Hour: "15:00", Count: 1}, summary.HourlyTrend[2])
}

func TestAnalyticsService_Summarize_UsesFilter(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analyticsRepo.EXPECT().
		Query(ctx, repository.EventFilter{Page: "/pricing"}, 500).
		Return([]*entity.PageViewEvent{
			{EventType: entity.EventTypePageView, Page: "/pricing"},
		}, nil)

	summary, err := fx.service.Summarize(ctx, usecase.EventQuery{Page: "/pricing"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PageViews)
}
