package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SheepHandlerParams holds dependencies for SheepHandler, injected by Fx.
type SheepHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// SheepHandler holds dependencies for catalog-related handlers
type SheepHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewSheepHandler is the constructor for SheepHandler
func NewSheepHandler(params SheepHandlerParams) *SheepHandler {
	return &SheepHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListSheep handles retrieving the full catalog
func (h *SheepHandler) ListSheep(c echo.Context) error {
	sheep, err := h.catalogUC.ListSheep(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sheep, "Sheep retrieved successfully")
}

// GetSheep handles retrieving a single listing
func (h *SheepHandler) GetSheep(c echo.Context) error {
	sheep, err := h.catalogUC.GetSheep(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sheep, "Sheep retrieved successfully")
}

// CreateSheep handles creating a new listing
func (h *SheepHandler) CreateSheep(c echo.Context) error {
	var input usecase.CreateSheepInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sheep input")
	}

	sheep, err := h.catalogUC.CreateSheep(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sheep, "Sheep created successfully")
}

// UpdateSheep handles a partial listing update
func (h *SheepHandler) UpdateSheep(c echo.Context) error {
	var input usecase.UpdateSheepInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sheep input")
	}

	sheep, err := h.catalogUC.UpdateSheep(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sheep, "Sheep updated successfully")
}

// DeleteSheep handles removing a listing
func (h *SheepHandler) DeleteSheep(c echo.Context) error {
	if err := h.catalogUC.DeleteSheep(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
