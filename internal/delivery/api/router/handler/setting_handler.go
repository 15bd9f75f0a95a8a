package handler

import (
	"log/slog"
	"net/http"

	"mazao/internal/delivery/api/response"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingHandlerParams holds dependencies for SettingHandler, injected by Fx.
type SettingHandlerParams struct {
	fx.In

	SettingUC usecase.SettingUsecase
	Logger    *slog.Logger
}

// SettingHandler holds dependencies for persisted-configuration handlers
type SettingHandler struct {
	settingUC usecase.SettingUsecase
	logger    *slog.Logger
}

// NewSettingHandler is the constructor for SettingHandler
func NewSettingHandler(params SettingHandlerParams) *SettingHandler {
	return &SettingHandler{
		settingUC: params.SettingUC,
		logger:    params.Logger,
	}
}

// UpsertSettingRequest represents the request body for writing a setting
type UpsertSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// ListSettings handles retrieving all persisted settings
func (h *SettingHandler) ListSettings(c echo.Context) error {
	settings, err := h.settingUC.ListSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// GetSetting handles retrieving one setting by key
func (h *SettingHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "Setting key is required")
	}

	setting, err := h.settingUC.GetSetting(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// UpsertSetting handles writing a value for a key
func (h *SettingHandler) UpsertSetting(c echo.Context) error {
	var req UpsertSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Key and value are required")
	}

	setting, err := h.settingUC.UpsertSetting(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}
