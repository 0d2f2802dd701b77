package impl

import (
	"context"
	"testing"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	mockRepo "souk/internal/mocks/repository"
	mockService "souk/internal/mocks/service"
	"souk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for allow-list service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	adminRepo *mockRepo.MockAdminRepository
	identity  *mockService.MockIdentityService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	identity := mockService.NewMockIdentityService(t)
	service := NewAdminService(adminRepo, identity)

	return adminServiceFixtures{
		service:   service,
		adminRepo: adminRepo,
		identity:  identity,
	}
}

func TestAdminService_ListAdmins_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admins := []*entity.Admin{
		{ID: "admin-1", Email: "first@example.com", Role: entity.AdminRoleSecondary},
		{ID: "admin-2", Email: "second@example.com", Role: entity.AdminRoleSecondary},
	}

	fx.adminRepo.EXPECT().
		GetAll(ctx).
		Return(admins, nil)

	result, err := fx.service.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAdminService_CheckAdmin_NormalizesEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.Admin{ID: "admin-1", Email: "listed@example.com"}

	fx.adminRepo.EXPECT().
		FindByEmail(ctx, "listed@example.com").
		Return(admin, nil)

	result, err := fx.service.CheckAdmin(ctx, "  Listed@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", result.ID)
}

func TestAdminService_CheckAdmin_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.adminRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	result, err := fx.service.CheckAdmin(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrAdminNotFound, err)
}

func TestAdminService_AddAdmin_DefaultsToSecondary(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{Email: "New@Example.com"}

	fx.adminRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Admin")).
		Run(func(_ context.Context, admin *entity.Admin) {
			admin.ID = "admin-new"
		}).
		Return(nil)

	admin, err := fx.service.AddAdmin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "admin-new", admin.ID)
	assert.Equal(t, "new@example.com", admin.Email)
	assert.Equal(t, entity.AdminRoleSecondary, admin.Role)
	assert.False(t, admin.AddedAt.IsZero())
}

func TestAdminService_AddAdmin_ExplicitRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{Email: "boss@example.com", Role: "primary"}

	fx.adminRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Admin")).
		Return(nil)

	admin, err := fx.service.AddAdmin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminRolePrimary, admin.Role)
}

func TestAdminService_AddAdmin_Duplicate(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{Email: "listed@example.com"}

	fx.adminRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Admin")).
		Return(repository.ErrDuplicateAdmin)

	admin, err := fx.service.AddAdmin(ctx, input)
	require.Error(t, err)
	assert.Nil(t, admin)
	assert.Equal(t, domainerrors.ErrAdminAlreadyExists, err)
}

func TestAdminService_AddAdmin_InvalidEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{Email: "not-an-email"}

	admin, err := fx.service.AddAdmin(ctx, input)
	require.Error(t, err)
	assert.Nil(t, admin)
	assert.Equal(t, "a valid email is required", err.Error())
}

func TestAdminService_AddAdmin_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateAdminInput{Email: "new@example.com", Role: "owner"}

	admin, err := fx.service.AddAdmin(ctx, input)
	require.Error(t, err)
	assert.Nil(t, admin)
	assert.Equal(t, "role must be primary or secondary", err.Error())
}

func TestAdminService_LookupUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUserByEmail(ctx, "known@example.com").
		Return(&service.IdentityUser{UID: "uid-1", Email: "known@example.com"}, nil)

	user, err := fx.service.LookupUser(ctx, "  Known@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "known@example.com", user.Email)
}

func TestAdminService_LookupUser_UnknownAccount(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUserByEmail(ctx, "nobody@example.com").
		Return(nil, service.ErrIdentityNotFound)

	user, err := fx.service.LookupUser(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestAdminService_LookupUser_IdentityFailure(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		GetUserByEmail(ctx, "known@example.com").
		Return(nil, errors.New("provider unreachable"))

	user, err := fx.service.LookupUser(ctx, "known@example.com")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to find user by email")
}

func TestAdminService_RemoveAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.adminRepo.EXPECT().
		Delete(ctx, "admin-1").
		Return(nil)

	err := fx.service.RemoveAdmin(ctx, "admin-1")
	require.NoError(t, err)
}

func TestAdminService_RemoveAdmin_RepoError(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.adminRepo.EXPECT().
		Delete(ctx, "admin-1").
		Return(errors.New("connection refused"))

	err := fx.service.RemoveAdmin(ctx, "admin-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete admin")
}
