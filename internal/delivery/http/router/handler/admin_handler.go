package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for allow-list handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListAdmins handles retrieving every allow-list entry
func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUC.ListAdmins(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admins, "Admins retrieved successfully")
}

// CheckAdmin handles looking up an allow-list entry by email
func (h *AdminHandler) CheckAdmin(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "MISSING_EMAIL", "email query parameter is required")
	}

	admin, err := h.adminUC.CheckAdmin(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin, "Admin found")
}

// AddAdmin handles creating a new allow-list entry
func (h *AdminHandler) AddAdmin(c echo.Context) error {
	var input usecase.CreateAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}

	admin, err := h.adminUC.AddAdmin(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, admin, "Admin added successfully")
}

// LookupUserByEmail handles resolving an identity-provider account by email
func (h *AdminHandler) LookupUserByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "MISSING_EMAIL", "email query parameter is required")
	}

	user, err := h.adminUC.LookupUser(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User found")
}

// RemoveAdmin handles deleting an allow-list entry
func (h *AdminHandler) RemoveAdmin(c echo.Context) error {
	if err := h.adminUC.RemoveAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
