package usecase

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/service"
)

// CreateAdminInput carries a new allow-list entry.
type CreateAdminInput struct {
	Email  string `json:"email" validate:"required,email"`
	UserID string `json:"userId"`
	Role   string `json:"role" validate:"omitempty,oneof=primary secondary"`
}

//nolint:gochecknoglobals
var adminMessages = map[string]string{
	"Email": "a valid email is required",
	"Role":  "role must be primary or secondary",
}

// Validate checks the input and reports the first violated rule.
func (i *CreateAdminInput) Validate() error {
	return validateStruct(i, adminMessages)
}

// AdminUsecase defines the interface for allow-list management use cases.
type AdminUsecase interface {
	// ListAdmins retrieves every allow-list entry.
	ListAdmins(ctx context.Context) ([]*entity.Admin, error)

	// CheckAdmin looks up an entry by email.
	CheckAdmin(ctx context.Context, email string) (*entity.Admin, error)

	// AddAdmin validates and persists a new entry. The role defaults to secondary.
	AddAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Admin, error)

	// RemoveAdmin deletes an entry by id. Absent ids succeed.
	RemoveAdmin(ctx context.Context, id string) error

	// LookupUser resolves an identity-provider account by email, for admins
	// checking whether an address belongs to a registered account.
	LookupUser(ctx context.Context, email string) (*service.IdentityUser, error)
}

// Authorizer decides whether a caller may perform admin-gated operations.
type Authorizer interface {
	// IsAdmin reports whether the uid resolves to the super admin or a listed admin.
	IsAdmin(ctx context.Context, uid string) (bool, error)

	// IsSuperAdmin reports whether the uid resolves to the configured super admin.
	IsSuperAdmin(ctx context.Context, uid string) (bool, error)
}
