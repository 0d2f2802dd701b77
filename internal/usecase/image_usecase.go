package usecase

import (
	"context"

	"souk/internal/domain/entity"
)

// UploadImageInput carries a base64 payload destined for the image host.
type UploadImageInput struct {
	ImageData        string `json:"imageData" validate:"required"`
	MimeType         string `json:"mimeType" validate:"required"`
	OriginalFileName string `json:"originalFileName"`
}

//nolint:gochecknoglobals
var imageMessages = map[string]string{
	"ImageData": "image data is required",
	"MimeType":  "mime type is required",
}

// Validate checks the input and reports the first violated rule.
func (i *UploadImageInput) Validate() error {
	return validateStruct(i, imageMessages)
}

// ImageUsecase defines the interface for image hosting use cases.
type ImageUsecase interface {
	// Upload validates the payload, pushes it to the image host and persists
	// the returned metadata. The MIME type is checked before any upstream call.
	Upload(ctx context.Context, input *UploadImageInput) (*entity.Image, error)

	// GetImage retrieves stored image metadata.
	GetImage(ctx context.Context, id string) (*entity.Image, error)
}
