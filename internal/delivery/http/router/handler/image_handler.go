package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler holds dependencies for image-related handlers
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// UploadImage handles pushing a base64 payload to the image host
func (h *ImageHandler) UploadImage(c echo.Context) error {
	var input usecase.UploadImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	image, err := h.imageUC.Upload(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":           image.ID,
		"imageUrl":     image.ImageURL,
		"thumbnailUrl": image.ThumbnailURL,
	}, "Image uploaded successfully")
}

// GetImage handles retrieving stored image metadata
func (h *ImageHandler) GetImage(c echo.Context) error {
	image, err := h.imageUC.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, image, "Image retrieved successfully")
}
