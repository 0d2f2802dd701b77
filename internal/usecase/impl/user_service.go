package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"
)

type userService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

// NewUserService creates a new profile service instance
func NewUserService(userRepo repository.UserRepository, adminRepo repository.AdminRepository) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

// GetProfile retrieves a profile by uid
func (s *userService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by uid: %w", err)
	}

	return profile, nil
}

// CreateProfile validates and persists a new profile. Accounts whose email is
// on the admin allow-list come out with the admin user type regardless of the
// requested one.
func (s *userService) CreateProfile(ctx context.Context, input *usecase.CreateUserProfileInput) (*entity.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userType := entity.UserTypeBuyer
	if input.UserType != "" {
		userType = entity.UserType(input.UserType)
	}

	if input.Email != nil {
		listed, err := s.isAllowListed(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if listed {
			userType = entity.UserTypeAdmin
		}
	}

	profile := &entity.UserProfile{
		UID:         input.UID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
		UserType:    userType,
		CreatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	return profile, nil
}

// UpdateUserType changes the stored user type and returns the updated profile
func (s *userService) UpdateUserType(ctx context.Context, uid string, input *usecase.UpdateUserTypeInput) (*entity.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUserType(ctx, uid, entity.UserType(input.UserType)); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to update user type: %w", err)
	}

	profile, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by uid: %w", err)
	}

	return profile, nil
}

func (s *userService) isAllowListed(ctx context.Context, email string) (bool, error) {
	_, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check admin allow-list: %w", err)
	}

	return true, nil
}
