package impl

import (
	"context"
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

type adminService struct {
	adminRepo repository.AdminRepository
	identity  service.IdentityService
}

// NewAdminService creates a new allow-list service instance
func NewAdminService(adminRepo repository.AdminRepository, identity service.IdentityService) usecase.AdminUsecase {
	return &adminService{
		adminRepo: adminRepo,
		identity:  identity,
	}
}

// ListAdmins retrieves every allow-list entry
func (s *adminService) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return admins, nil
}

// CheckAdmin looks up an entry by email
func (s *adminService) CheckAdmin(ctx context.Context, email string) (*entity.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}

	return admin, nil
}

// AddAdmin validates and persists a new entry. The role defaults to secondary.
func (s *adminService) AddAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Admin, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := entity.AdminRoleSecondary
	if input.Role != "" {
		role = entity.AdminRole(input.Role)
	}

	admin := &entity.Admin{
		UserID:  input.UserID,
		Email:   normalizeEmail(input.Email),
		Role:    role,
		AddedAt: time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdmin) {
			return nil, domainerrors.ErrAdminAlreadyExists
		}

		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// RemoveAdmin deletes an entry by id. Absent ids succeed.
func (s *adminService) RemoveAdmin(ctx context.Context, id string) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	return nil
}

// LookupUser resolves an identity-provider account by email
func (s *adminService) LookupUser(ctx context.Context, email string) (*service.IdentityUser, error) {
	user, err := s.identity.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
