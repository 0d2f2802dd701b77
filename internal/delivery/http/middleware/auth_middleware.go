package middleware

import (
	"log/slog"

	"souk/internal/delivery/http/response"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderUserID is the HTTP header carrying the caller's identity-provider uid.
const HeaderUserID = "X-User-Id"

// AuthMiddleware gates admin-only routes on the caller's uid header.
type AuthMiddleware struct {
	authorizer usecase.Authorizer
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authorizer usecase.Authorizer, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer, logger: logger}
}

// RequireAdmin allows the super admin and allow-listed admins through.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := c.Request().Header.Get(HeaderUserID)
		if uid == "" {
			return response.HandleAppError(c, domainerrors.ErrNotAuthorized)
		}

		ok, err := m.authorizer.IsAdmin(c.Request().Context(), uid)
		if err != nil {
			m.logger.Error("admin authorization check failed",
				slog.String("uid", uid),
				slog.String("error", err.Error()),
			)

			return response.HandleAppError(c, domainerrors.ErrNotAuthorized)
		}
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrNotAuthorized)
		}

		c.Set("userID", uid)

		return next(c)
	}
}

// RequireSuperAdmin allows only the configured super admin through.
// It must answer 401 when the caller sends no identity at all.
func (m *AuthMiddleware) RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := c.Request().Header.Get(HeaderUserID)
		if uid == "" {
			return response.HandleAppError(c, domainerrors.ErrAuthRequired)
		}

		ok, err := m.authorizer.IsSuperAdmin(c.Request().Context(), uid)
		if err != nil {
			m.logger.Error("super admin authorization check failed",
				slog.String("uid", uid),
				slog.String("error", err.Error()),
			)

			return response.HandleAppError(c, domainerrors.ErrSuperAdminOnly)
		}
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrSuperAdminOnly)
		}

		c.Set("userID", uid)

		return next(c)
	}
}
