package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"mazao/internal/delivery/api/validator"
	"mazao/internal/domain/entity"
	mockusecase "mazao/internal/mocks/usecase"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsHandlerFixtures struct {
	handler     *AnalyticsHandler
	analyticsUC *mockusecase.MockAnalyticsUsecase
	echo        *echo.Echo
}

func createTestAnalyticsHandler(t *testing.T) analyticsHandlerFixtures {
	t.Helper()

	analyticsUC := mockusecase.NewMockAnalyticsUsecase(t)
	h := NewAnalyticsHandler(AnalyticsHandlerParams{
		AnalyticsUC: analyticsUC,
		Logger:      slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	e.Validator = validator.New()

	return analyticsHandlerFixtures{handler: h, analyticsUC: analyticsUC, echo: e}
}

func TestAnalyticsHandler_TrackEvent(t *testing.T) {
	t.Parallel()

	fx := createTestAnalyticsHandler(t)

	fx.analyticsUC.EXPECT().
		TrackEvent(mock.Anything, mock.MatchedBy(func(input *usecase.TrackEventInput) bool {
			return input.EventType == entity.EventTypePageView && input.Page == "/pricing"
		})).
		Return(&entity.PageViewEvent{ID: 1, EventType: entity.EventTypePageView, Page: "/pricing"}, nil).
		Once()

	body := `{"eventType":"page_view","page":"/pricing"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/analytics/track", body)

	require.NoError(t, fx.handler.TrackEvent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAnalyticsHandler_TrackEvent_MissingPage(t *testing.T) {
	t.Parallel()

	fx := createTestAnalyticsHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/analytics/track", `{"eventType":"page_view"}`)

	require.NoError(t, fx.handler.TrackEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandler_ListEvents_Filtered(t *testing.T) {
	t.Parallel()

	fx := createTestAnalyticsHandler(t)

	fx.analyticsUC.EXPECT().
		QueryEvents(mock.Anything, usecase.EventQuery{EventType: "cta_click", Limit: 50}).
		Return([]*entity.PageViewEvent{{ID: 2, EventType: entity.EventTypeCTAClick, Page: "/"}}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/analytics?eventType=cta_click&limit=50", "")

	require.NoError(t, fx.handler.ListEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cta_click")
}

func TestAnalyticsHandler_ListEvents_InvalidLimit(t *testing.T) {
	t.Parallel()

	fx := createTestAnalyticsHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/analytics?limit=abc", "")

	require.NoError(t, fx.handler.ListEvents(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_QUERY")
}

func TestAnalyticsHandler_Summary(t *testing.T) {
	t.Parallel()

	fx := createTestAnalyticsHandler(t)

	fx.analyticsUC.EXPECT().
		Summarize(mock.Anything, usecase.EventQuery{}).
		Return(&entity.AnalyticsSummary{
			PageViews:      10,
			CTAClicks:      3,
			ConversionRate: 30,
			TopActions:     []entity.ActionCount{},
			HourlyTrend:    []entity.HourlyBucket{},
		}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/analytics/summary", "")

	require.NoError(t, fx.handler.Summary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"conversionRate":30`)
}
