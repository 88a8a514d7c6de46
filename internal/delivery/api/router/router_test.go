package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"coffeeshop/config"
	"coffeeshop/internal/delivery/api/middleware"
	"coffeeshop/internal/delivery/api/router/handler"
	mockSvc "coffeeshop/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func routeSet(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	return routes
}

func newTestRouter(t *testing.T, authEnabled bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{Enabled: authEnabled}}

	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		Config:   cfg,
		Verifier: mockSvc.NewMockTokenVerifier(t),
		Logger:   logger,
	})

	e := echo.New()
	NewRouter(RouterParams{
		CoffeeHandler:           handler.NewCoffeeHandler(handler.CoffeeHandlerParams{Logger: logger}),
		UserHandler:             handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		IdentityDeletionHandler: handler.NewIdentityDeletionHandler(handler.IdentityDeletionHandlerParams{}),
		AuthMiddleware:          auth,
	}).RegisterRoutes(e)

	return e
}

func TestRegisterRoutes(t *testing.T) {
	routes := routeSet(newTestRouter(t, false))

	for _, route := range []string{
		"GET /",
		"GET /health",
		"GET /coffees",
		"GET /coffees/:id",
		"GET /coffees/:id/qr",
		"POST /coffees",
		"PUT /coffees/:id",
		"DELETE /coffees/:id",
		"GET /users",
		"POST /users",
		"PATCH /users",
		"DELETE /users/:id",
	} {
		assert.True(t, routes[route], route)
	}
}

func TestRegisterRoutes_IdentityDeletionsNeedAuth(t *testing.T) {
	assert.False(t, routeSet(newTestRouter(t, false))[http.MethodGet+" /identity-deletions"])
	assert.True(t, routeSet(newTestRouter(t, true))[http.MethodGet+" /identity-deletions"])
}
