package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mazao/internal/delivery/api/response"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler holds dependencies for client-record handlers
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// CreateClientRequest represents the request body for registering a shop
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateClientRequest represents the request body for a partial client update
type UpdateClientRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ListClients handles retrieving all client records
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clients)
}

// GetClient handles retrieving a single client record
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	client, err := h.clientUC.GetClient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}

// CreateClient handles registering a new shop
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateClientInput{
		Name:     req.Name,
		Location: req.Location,
		Phone:    req.Phone,
		Status:   req.Status,
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, client)
}

// UpdateClient handles a partial client update
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	var req UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := repository.ClientUpdate{
		Name:     req.Name,
		Location: req.Location,
		Phone:    req.Phone,
	}
	if req.Status != nil {
		status := entity.ClientStatus(*req.Status)
		update.Status = &status
	}

	client, err := h.clientUC.UpdateClient(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}

// DeleteClient handles removing a client record
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid client ID")
	}

	if err := h.clientUC.DeleteClient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseIDParam parses the numeric :id path parameter.
func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
