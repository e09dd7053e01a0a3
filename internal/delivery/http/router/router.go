// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"thoughts/internal/delivery/http/middleware"
	"thoughts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ThoughtHandler *handler.ThoughtHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	thoughtHandler *handler.ThoughtHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		thoughtHandler: params.ThoughtHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.userHandler.HealthCheck)

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
	}

	// Thought routes. Static paths must be registered on the same group as
	// the :id routes; Echo prefers static segments over parameters.
	thoughtGroup := e.Group("/thoughts")
	{
		thoughtGroup.GET("", r.thoughtHandler.List)
		thoughtGroup.GET("/popular", r.thoughtHandler.Popular)
		thoughtGroup.GET("/recent", r.thoughtHandler.Recent)
		thoughtGroup.GET("/user/:userId", r.thoughtHandler.ByUser, r.authMiddleware.Authenticate)
		thoughtGroup.GET("/:id", r.thoughtHandler.GetByID)
		thoughtGroup.POST("", r.thoughtHandler.Create, r.authMiddleware.Authenticate)
		thoughtGroup.PATCH("/:id", r.thoughtHandler.Edit, r.authMiddleware.Authenticate)
		thoughtGroup.PATCH("/:id/like", r.thoughtHandler.Like)
		thoughtGroup.DELETE("/:id", r.thoughtHandler.Delete, r.authMiddleware.Authenticate)
	}

	// The index is registered last so it can report every route above.
	e.GET("/", r.userHandler.EndpointIndex(e))
}
