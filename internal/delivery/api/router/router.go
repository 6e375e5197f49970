// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"projectdesk/internal/delivery/api/middleware"
	"projectdesk/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProjectHandler *handler.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	projectHandler *handler.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		projectHandler: params.ProjectHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	projectsGroup := e.Group("/projects")
	projectsGroup.Use(r.authMiddleware.Authenticate)
	{
		projectsGroup.POST("", r.projectHandler.Create)
		projectsGroup.GET("", r.projectHandler.List)
		projectsGroup.GET("/:id", r.projectHandler.Get)
		projectsGroup.PATCH("/:id", r.projectHandler.Update)
		projectsGroup.DELETE("/:id", r.projectHandler.Delete)
	}
}
