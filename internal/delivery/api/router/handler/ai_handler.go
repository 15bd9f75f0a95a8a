package handler

import (
	"log/slog"
	"net/http"

	"mazao/internal/delivery/api/response"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AIHandlerParams holds dependencies for AIHandler, injected by Fx.
type AIHandlerParams struct {
	fx.In

	GenerationUC usecase.GenerationUsecase
	Logger       *slog.Logger
}

// AIHandler holds dependencies for AI-assisted drafting handlers
type AIHandler struct {
	generationUC usecase.GenerationUsecase
	logger       *slog.Logger
}

// NewAIHandler is the constructor for AIHandler
func NewAIHandler(params AIHandlerParams) *AIHandler {
	return &AIHandler{
		generationUC: params.GenerationUC,
		logger:       params.Logger,
	}
}

// GenerateContentRequest represents the request body for drafting an article
type GenerateContentRequest struct {
	Topic string `json:"topic" validate:"required"`
	Type  string `json:"type" validate:"omitempty,oneof=blog announcement"`
}

// GenerateContent handles producing a titled draft for a topic
func (h *AIHandler) GenerateContent(c echo.Context) error {
	var req GenerateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Topic is required")
	}

	draft, err := h.generationUC.GenerateDraft(c.Request().Context(), req.Topic, req.Type)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}
