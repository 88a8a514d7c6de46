package middleware

import (
	"log/slog"
	"strings"

	"coffeeshop/config"
	"coffeeshop/internal/delivery/api/response"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "

	// KeyIdentity is the echo.Context key of the verified *service.IdentityToken.
	KeyIdentity = "identity"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config   *config.Config
	Verifier service.TokenVerifier `optional:"true"`
	Logger   *slog.Logger
}

// AuthMiddleware requires a Firebase ID token on the routes it guards.
type AuthMiddleware struct {
	enabled  bool
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	enabled := params.Config.Auth != nil && params.Config.Auth.Enabled
	if enabled && params.Verifier == nil {
		params.Logger.Warn("Auth is enabled but Firebase is not configured, guarded routes are open")
		enabled = false
	}

	return &AuthMiddleware{
		enabled:  enabled,
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Enabled reports whether guarded routes actually require a token.
func (m *AuthMiddleware) Enabled() bool {
	return m.enabled
}

// Authenticate verifies the bearer token and stores the identity on the context.
// It passes every request through when auth is disabled.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, bearerPrefix)
		if idToken == authHeader || idToken == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Rejected ID token", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyIdentity, identity)

		return next(c)
	}
}

// GetIdentity returns the identity verified by Authenticate, if any.
func GetIdentity(c echo.Context) (*service.IdentityToken, bool) {
	identity, ok := c.Get(KeyIdentity).(*service.IdentityToken)

	return identity, ok
}
