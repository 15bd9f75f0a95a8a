package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mazao/internal/delivery/api/response"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler holds dependencies for interaction-tracking handlers
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// TrackEventRequest represents one interaction reported by the public site
type TrackEventRequest struct {
	EventType string `json:"eventType" validate:"required"`
	Page      string `json:"page" validate:"required"`
	Action    string `json:"action"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
}

// TrackEvent handles appending one interaction row
func (h *AnalyticsHandler) TrackEvent(c echo.Context) error {
	var req TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Event type and page are required")
	}

	input := &usecase.TrackEventInput{
		EventType: req.EventType,
		Page:      req.Page,
		Action:    req.Action,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
	}

	event, err := h.analyticsUC.TrackEvent(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// ListEvents handles retrieving recorded events, newest first
func (h *AnalyticsHandler) ListEvents(c echo.Context) error {
	query, err := bindEventQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid limit parameter")
	}

	events, err := h.analyticsUC.QueryEvents(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// Summary handles aggregating events for the admin dashboard
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	query, err := bindEventQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid limit parameter")
	}

	summary, err := h.analyticsUC.Summarize(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// bindEventQuery reads the optional filter parameters shared by the
// analytics read endpoints.
func bindEventQuery(c echo.Context) (usecase.EventQuery, error) {
	query := usecase.EventQuery{
		EventType: c.QueryParam("eventType"),
		Page:      c.QueryParam("page"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return usecase.EventQuery{}, errors.New("invalid limit")
		}
		query.Limit = limit
	}

	return query, nil
}
