package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"garage-hub/app/domain"
	"garage-hub/app/port"
)

// AuthMiddleware resolves the session credential to an identity via the
// authentication collaborator and injects it into the request context.
type AuthMiddleware struct {
	authGateway port.AuthGateway
	timeout     time.Duration
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware. The timeout bounds the
// whoami call so a hung authentication collaborator cannot stall requests.
func NewAuthMiddleware(authGateway port.AuthGateway, timeout time.Duration, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authGateway: authGateway,
		timeout:     timeout,
		logger:      logger,
	}
}

func (m *AuthMiddleware) currentIdentity(ctx context.Context, credential string) (*domain.UserIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.authGateway.CurrentIdentity(ctx, credential)
}

// RequireAuth middleware that requires authentication
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			credential := m.extractCredential(c)
			if credential == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := m.currentIdentity(ctx, credential)
			if err != nil {
				m.logger.Debug("identity resolution failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.SetRequest(c.Request().WithContext(domain.WithIdentity(ctx, identity)))
			c.Set("user_id", identity.ID.String())
			c.Set("session_id", identity.SessionID)

			return next(c)
		}
	}
}

// OptionalAuth middleware that provides optional authentication
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			credential := m.extractCredential(c)
			if credential == "" {
				return next(c)
			}

			identity, err := m.currentIdentity(ctx, credential)
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(domain.WithIdentity(ctx, identity)))
			c.Set("user_id", identity.ID.String())
			c.Set("session_id", identity.SessionID)

			return next(c)
		}
	}
}

// extractCredential extracts the session credential from the request.
// For browser requests the entire Cookie header is returned; API clients use
// Authorization or X-Session-Token.
func (m *AuthMiddleware) extractCredential(c echo.Context) string {
	if cookieHeader := c.Request().Header.Get("Cookie"); cookieHeader != "" && strings.Contains(cookieHeader, "ory_kratos_session") {
		return cookieHeader
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
