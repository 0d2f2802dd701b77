package repository

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for allow-list persistence.
var (
	// ErrAdminNotFound is returned when an allow-list entry is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateAdmin is returned when the email is already on the allow-list.
	ErrDuplicateAdmin = errors.New("admin already exists")
)

// AdminRepository defines the interface for the administrator allow-list.
type AdminRepository interface {
	// GetAll retrieves every allow-list entry.
	GetAll(ctx context.Context) ([]*entity.Admin, error)

	// FindByEmail retrieves an entry by its email, matched case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new entry. The email must not already be listed.
	Create(ctx context.Context, admin *entity.Admin) error

	// Delete removes an entry by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
