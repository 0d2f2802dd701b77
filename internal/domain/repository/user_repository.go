package repository

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrUserNotFound is returned when a profile is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a profile already exists for the uid.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user profile persistence.
type UserRepository interface {
	// FindByUID retrieves a profile by identity-provider uid.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create persists a new profile. The uid must not already exist.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateUserType changes the stored user type for an existing profile.
	UpdateUserType(ctx context.Context, uid string, userType entity.UserType) error
}
