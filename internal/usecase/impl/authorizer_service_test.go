package impl

import (
	"context"
	"testing"

	"souk/config"
	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	mockRepo "souk/internal/mocks/repository"
	mockService "souk/internal/mocks/service"
	"souk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authorizerFixtures holds all test dependencies for authorizer tests.
type authorizerFixtures struct {
	service   usecase.Authorizer
	identity  *mockService.MockIdentityService
	adminRepo *mockRepo.MockAdminRepository
}

func createTestAuthorizer(t *testing.T, superAdminEmail string) authorizerFixtures {
	cfg := &config.Config{}
	cfg.SuperAdmin.Email = superAdminEmail

	identity := mockService.NewMockIdentityService(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	service := NewAuthorizer(cfg, identity, adminRepo)

	return authorizerFixtures{
		service:   service,
		identity:  identity,
		adminRepo: adminRepo,
	}
}

func TestAuthorizer_IsAdmin_SuperAdminEmail(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-boss").
		Return(&service.IdentityUser{UID: "uid-boss", Email: "Boss@Example.COM"}, nil)

	// Case differences must not matter, no allow-list lookup needed.
	ok, err := fx.service.IsAdmin(ctx, "uid-boss")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizer_IsAdmin_ListedAdmin(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-1").
		Return(&service.IdentityUser{UID: "uid-1", Email: "listed@example.com"}, nil)

	fx.adminRepo.EXPECT().
		FindByEmail(ctx, "listed@example.com").
		Return(&entity.Admin{ID: "admin-1", Email: "listed@example.com"}, nil)

	ok, err := fx.service.IsAdmin(ctx, "uid-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizer_IsAdmin_NotListed(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-2").
		Return(&service.IdentityUser{UID: "uid-2", Email: "buyer@example.com"}, nil)

	fx.adminRepo.EXPECT().
		FindByEmail(ctx, "buyer@example.com").
		Return(nil, repository.ErrAdminNotFound)

	ok, err := fx.service.IsAdmin(ctx, "uid-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizer_IsAdmin_UnknownIdentity(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-ghost").
		Return(nil, service.ErrIdentityNotFound)

	// Unknown accounts are denied without error.
	ok, err := fx.service.IsAdmin(ctx, "uid-ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizer_IsAdmin_IdentityFailure(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-1").
		Return(nil, errors.New("provider unreachable"))

	ok, err := fx.service.IsAdmin(ctx, "uid-1")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to resolve identity")
}

func TestAuthorizer_IsSuperAdmin_Match(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-boss").
		Return(&service.IdentityUser{UID: "uid-boss", Email: "boss@example.com"}, nil)

	ok, err := fx.service.IsSuperAdmin(ctx, "uid-boss")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizer_IsSuperAdmin_ListedAdminIsNotSuper(t *testing.T) {
	fx := createTestAuthorizer(t, "boss@example.com")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-1").
		Return(&service.IdentityUser{UID: "uid-1", Email: "listed@example.com"}, nil)

	ok, err := fx.service.IsSuperAdmin(ctx, "uid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizer_IsSuperAdmin_NoSuperAdminConfigured(t *testing.T) {
	fx := createTestAuthorizer(t, "")

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUser(ctx, "uid-1").
		Return(&service.IdentityUser{UID: "uid-1", Email: "anyone@example.com"}, nil)

	ok, err := fx.service.IsSuperAdmin(ctx, "uid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
