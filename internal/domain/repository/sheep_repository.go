// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSheepNotFound is returned when a listing is not found.
var ErrSheepNotFound = errors.New("sheep not found")

// SheepRepository defines the interface for catalog persistence.
type SheepRepository interface {
	// GetAll retrieves all listings, newest first.
	GetAll(ctx context.Context) ([]*entity.Sheep, error)

	// FindByID retrieves a listing by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Sheep, error)

	// Create persists a new listing and fills in backend-assigned fields.
	Create(ctx context.Context, sheep *entity.Sheep) error

	// Update persists the full state of an existing listing.
	Update(ctx context.Context, sheep *entity.Sheep) error

	// Delete removes a listing. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
