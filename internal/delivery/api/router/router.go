// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coffeeshop/internal/delivery/api/middleware"
	"coffeeshop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CoffeeHandler           *handler.CoffeeHandler
	UserHandler             *handler.UserHandler
	IdentityDeletionHandler *handler.IdentityDeletionHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	coffeeHandler           *handler.CoffeeHandler
	userHandler             *handler.UserHandler
	identityDeletionHandler *handler.IdentityDeletionHandler
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		coffeeHandler:           params.CoffeeHandler,
		userHandler:             params.UserHandler,
		identityDeletionHandler: params.IdentityDeletionHandler,
		authMiddleware:          params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; writes go through the auth middleware, which is a pass-through unless enabled.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Greeting)
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate

	coffeesGroup := e.Group("/coffees")
	{
		coffeesGroup.GET("", r.coffeeHandler.ListCoffees)
		coffeesGroup.GET("/:id", r.coffeeHandler.GetCoffee)
		coffeesGroup.GET("/:id/qr", r.coffeeHandler.GetCoffeeQR)
		coffeesGroup.POST("", r.coffeeHandler.CreateCoffee, authenticate)
		coffeesGroup.PUT("/:id", r.coffeeHandler.UpdateCoffee, authenticate)
		coffeesGroup.DELETE("/:id", r.coffeeHandler.DeleteCoffee, authenticate)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser, authenticate)
		usersGroup.PATCH("", r.userHandler.UpdateLastSignIn, authenticate)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, authenticate)
	}

	// Operator view of identity account deletions still owed upstream.
	// It exposes uids and provider errors, so it only exists behind real auth.
	if !r.authMiddleware.Enabled() {
		return
	}

	deletionsGroup := e.Group("/identity-deletions")
	deletionsGroup.Use(authenticate)
	{
		deletionsGroup.GET("", r.identityDeletionHandler.ListIdentityDeletions)
	}
}
