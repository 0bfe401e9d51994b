// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/api/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PATCH("/profile", r.profileHandler.UpdateProfile)
	}
}
