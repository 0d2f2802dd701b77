package impl

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"
)

// allowedMimeTypes is the closed set of picture formats accepted for upload.
//
//nolint:gochecknoglobals
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"image/bmp":  {},
}

type imageService struct {
	imageRepo repository.ImageRepository
	host      service.ImageHostService
}

// NewImageService creates a new image service instance
func NewImageService(imageRepo repository.ImageRepository, host service.ImageHostService) usecase.ImageUsecase {
	return &imageService{
		imageRepo: imageRepo,
		host:      host,
	}
}

// Upload validates the payload, pushes it to the image host and persists the
// returned metadata. All validation happens before the upstream call.
func (s *imageService) Upload(ctx context.Context, input *usecase.UploadImageInput) (*entity.Image, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mimeType := strings.ToLower(strings.TrimSpace(input.MimeType))
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("unsupported image type: %s", input.MimeType))
	}

	payload := stripDataURLPrefix(input.ImageData)
	if payload == "" {
		return nil, domainerrors.NewValidationError("image data is required")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return nil, domainerrors.NewValidationError("image data must be valid base64")
	}

	hosted, err := s.host.Upload(ctx, payload, input.OriginalFileName)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "Image upload failed")
	}

	image := &entity.Image{
		ImageURL:         hosted.URL,
		ThumbnailURL:     hosted.ThumbnailURL,
		DeleteURL:        hosted.DeleteURL,
		OriginalFileName: input.OriginalFileName,
		MimeType:         mimeType,
		FileSize:         hosted.Size,
		CreatedAt:        time.Now(),
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	return image, nil
}

// GetImage retrieves stored image metadata
func (s *imageService) GetImage(ctx context.Context, id string) (*entity.Image, error) {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, fmt.Errorf("failed to find image by ID: %w", err)
	}

	return image, nil
}

// stripDataURLPrefix removes a "data:<mime>;base64," prefix when present.
func stripDataURLPrefix(data string) string {
	trimmed := strings.TrimSpace(data)
	if !strings.HasPrefix(trimmed, "data:") {
		return trimmed
	}

	if idx := strings.Index(trimmed, "base64,"); idx >= 0 {
		return trimmed[idx+len("base64,"):]
	}

	return trimmed
}
