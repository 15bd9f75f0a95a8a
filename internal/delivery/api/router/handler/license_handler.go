package handler

import (
	"log/slog"
	"net/http"

	"mazao/internal/delivery/api/response"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LicenseHandlerParams holds dependencies for LicenseHandler, injected by Fx.
type LicenseHandlerParams struct {
	fx.In

	LicenseUC usecase.LicenseUsecase
	Logger    *slog.Logger
}

// LicenseHandler holds dependencies for license management handlers
type LicenseHandler struct {
	licenseUC usecase.LicenseUsecase
	logger    *slog.Logger
}

// NewLicenseHandler is the constructor for LicenseHandler
func NewLicenseHandler(params LicenseHandlerParams) *LicenseHandler {
	return &LicenseHandler{
		licenseUC: params.LicenseUC,
		logger:    params.Logger,
	}
}

// IssueLicenseRequest represents the request body for issuing a license.
// The key, status and dates are server-assigned.
type IssueLicenseRequest struct {
	Plan     string `json:"plan" validate:"required,oneof=annual lifetime trial"`
	Shop     string `json:"shop"`
	Phone    string `json:"phone"`
	ClientID *int64 `json:"clientId"`
}

// UpdateLicenseRequest represents the request body for a partial license update
type UpdateLicenseRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=Unused Active Used Expired"`
	Shop     *string `json:"shop"`
	Expiry   *string `json:"expiry" validate:"omitempty,datetime=2006-01-02"`
	Phone    *string `json:"phone"`
	ClientID *int64  `json:"clientId"`
}

// AssignLicenseRequest represents the request body for handing a license to a shop
type AssignLicenseRequest struct {
	Shop     string `json:"shop" validate:"required"`
	ClientID *int64 `json:"clientId"`
}

// ListLicenses handles retrieving all licenses
func (h *LicenseHandler) ListLicenses(c echo.Context) error {
	licenses, err := h.licenseUC.ListLicenses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, licenses)
}

// GetLicense handles retrieving a single license
func (h *LicenseHandler) GetLicense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid license ID")
	}

	license, err := h.licenseUC.GetLicense(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// GetLicenseByKey handles the activation lookup used by the POS app
func (h *LicenseHandler) GetLicenseByKey(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "License key is required")
	}

	license, err := h.licenseUC.GetLicenseByKey(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// IssueLicense handles generating and persisting a new license
func (h *LicenseHandler) IssueLicense(c echo.Context) error {
	var req IssueLicenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid license input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.IssueLicenseInput{
		Plan:     req.Plan,
		Shop:     req.Shop,
		Phone:    req.Phone,
		ClientID: req.ClientID,
	}

	license, err := h.licenseUC.IssueLicense(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, license)
}

// UpdateLicense handles a partial license update
func (h *LicenseHandler) UpdateLicense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid license ID")
	}

	var req UpdateLicenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid license input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := repository.LicenseUpdate{
		Shop:     req.Shop,
		Expiry:   req.Expiry,
		Phone:    req.Phone,
		ClientID: req.ClientID,
	}
	if req.Status != nil {
		status := entity.LicenseStatus(*req.Status)
		update.Status = &status
	}

	license, err := h.licenseUC.UpdateLicense(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// AssignLicense handles handing a license to a shop
func (h *LicenseHandler) AssignLicense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid license ID")
	}

	var req AssignLicenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	license, err := h.licenseUC.AssignLicense(c.Request().Context(), id, req.Shop, req.ClientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, license)
}

// DeleteLicense handles removing a license record
func (h *LicenseHandler) DeleteLicense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid license ID")
	}

	if err := h.licenseUC.DeleteLicense(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LicenseQR renders the license key as a PNG QR code for activation by scan
func (h *LicenseHandler) LicenseQR(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid license ID")
	}

	png, err := h.licenseUC.LicenseQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
