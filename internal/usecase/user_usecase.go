package usecase

import (
	"context"

	"souk/internal/domain/entity"
)

// CreateUserProfileInput carries a new user profile.
type CreateUserProfileInput struct {
	UID         string  `json:"uid" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    string  `json:"photoUrl"`
	UserType    string  `json:"userType" validate:"omitempty,oneof=buyer seller admin guest"`
}

//nolint:gochecknoglobals
var userMessages = map[string]string{
	"UID":      "uid is required",
	"Email":    "email must be a valid address",
	"UserType": "userType must be one of buyer, seller, admin or guest",
}

// Validate checks the input and reports the first violated rule.
func (i *CreateUserProfileInput) Validate() error {
	return validateStruct(i, userMessages)
}

// UpdateUserTypeInput carries a profile type change. Guest accounts cannot be
// assigned after creation.
type UpdateUserTypeInput struct {
	UserType string `json:"userType" validate:"required,oneof=buyer seller admin"`
}

// Validate checks the input and reports the first violated rule.
func (i *UpdateUserTypeInput) Validate() error {
	return validateStruct(i, map[string]string{
		"UserType": "userType must be one of buyer, seller or admin",
	})
}

// UserUsecase defines the interface for profile management use cases.
type UserUsecase interface {
	// GetProfile retrieves a profile by uid.
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// CreateProfile validates and persists a new profile. Accounts whose email
	// is on the admin allow-list are escalated to the admin user type.
	CreateProfile(ctx context.Context, input *CreateUserProfileInput) (*entity.UserProfile, error)

	// UpdateUserType changes the stored user type and returns the updated profile.
	UpdateUserType(ctx context.Context, uid string, input *UpdateUserTypeInput) (*entity.UserProfile, error)
}
