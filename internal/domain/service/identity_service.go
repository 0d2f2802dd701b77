// Package service defines the interfaces for external capabilities the domain depends on.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrIdentityNotFound is returned when the identity provider has no such account.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityUser is the subset of an identity-provider account the domain cares about.
type IdentityUser struct {
	UID   string
	Email string
}

// IdentityService resolves identity-provider accounts.
type IdentityService interface {
	// GetUser resolves an account by uid.
	GetUser(ctx context.Context, uid string) (*IdentityUser, error)

	// GetUserByEmail resolves an account by email address.
	GetUserByEmail(ctx context.Context, email string) (*IdentityUser, error)
}
