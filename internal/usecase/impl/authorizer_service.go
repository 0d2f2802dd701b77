package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"souk/config"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"
)

type authorizerService struct {
	identity        service.IdentityService
	adminRepo       repository.AdminRepository
	superAdminEmail string
}

// NewAuthorizer creates the admin authorization service. Callers are
// identified by an identity-provider uid which is resolved to an email and
// checked against the super admin and the allow-list.
func NewAuthorizer(cfg *config.Config, identity service.IdentityService, adminRepo repository.AdminRepository) usecase.Authorizer {
	return &authorizerService{
		identity:        identity,
		adminRepo:       adminRepo,
		superAdminEmail: cfg.SuperAdmin.Email,
	}
}

// IsAdmin reports whether the uid resolves to the super admin or a listed admin
func (s *authorizerService) IsAdmin(ctx context.Context, uid string) (bool, error) {
	email, err := s.resolveEmail(ctx, uid)
	if err != nil {
		return false, err
	}
	if email == "" {
		return false, nil
	}

	if s.superAdminEmail != "" && strings.EqualFold(email, s.superAdminEmail) {
		return true, nil
	}

	if _, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email)); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check admin allow-list: %w", err)
	}

	return true, nil
}

// IsSuperAdmin reports whether the uid resolves to the configured super admin
func (s *authorizerService) IsSuperAdmin(ctx context.Context, uid string) (bool, error) {
	email, err := s.resolveEmail(ctx, uid)
	if err != nil {
		return false, err
	}
	if email == "" {
		return false, nil
	}

	return s.superAdminEmail != "" && strings.EqualFold(email, s.superAdminEmail), nil
}

// resolveEmail maps an identity-provider uid to its account email. Unknown
// accounts yield an empty email rather than an error.
func (s *authorizerService) resolveEmail(ctx context.Context, uid string) (string, error) {
	user, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("failed to resolve identity: %w", err)
	}

	return user.Email, nil
}
