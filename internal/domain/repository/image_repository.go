package repository

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when an image record is not found.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines the interface for image metadata persistence.
type ImageRepository interface {
	// Create persists a new image record and fills in backend-assigned fields.
	Create(ctx context.Context, image *entity.Image) error

	// FindByID retrieves an image record by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Image, error)

	// FindByIDs retrieves image records for the given ids in one round trip.
	// Missing ids are silently omitted from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Image, error)
}
