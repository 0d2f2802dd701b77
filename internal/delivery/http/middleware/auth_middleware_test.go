package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "souk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	authorizer *mockUsecase.MockAuthorizer
	middleware *AuthMiddleware
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	t.Helper()

	authorizer := mockUsecase.NewMockAuthorizer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		authorizer: authorizer,
		middleware: NewAuthMiddleware(authorizer, logger),
	}
}

func invokeGuard(t *testing.T, guard echo.MiddlewareFunc, uid string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if uid != "" {
		req.Header.Set(HeaderUserID, uid)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := guard(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, nextCalled
}

func TestRequireAdmin_MissingIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireAdmin, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"NOT_AUTHORIZED"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRequireAdmin_CheckFailure(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.authorizer.EXPECT().IsAdmin(mock.Anything, "uid-1").
		Return(false, errors.New("identity lookup failed"))

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireAdmin, "uid-1")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"NOT_AUTHORIZED"`)
}

func TestRequireAdmin_NotListed(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.authorizer.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireAdmin, "uid-1")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"NOT_AUTHORIZED"`)
}

func TestRequireAdmin_Allowed(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.authorizer.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(true, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "uid-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := fx.middleware.RequireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.Get("userID"))
}

func TestRequireSuperAdmin_MissingIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireSuperAdmin, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"AUTH_REQUIRED"`)
}

func TestRequireSuperAdmin_NotSuperAdmin(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.authorizer.EXPECT().IsSuperAdmin(mock.Anything, "uid-2").Return(false, nil)

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireSuperAdmin, "uid-2")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SUPER_ADMIN_ONLY"`)
}

func TestRequireSuperAdmin_Allowed(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.authorizer.EXPECT().IsSuperAdmin(mock.Anything, "uid-2").Return(true, nil)

	rec, nextCalled := invokeGuard(t, fx.middleware.RequireSuperAdmin, "uid-2")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}
