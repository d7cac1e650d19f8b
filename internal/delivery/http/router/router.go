// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BlogHandler         *handler.BlogHandler
	UserHandler         *handler.UserHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	blogHandler         *handler.BlogHandler
	userHandler         *handler.UserHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		blogHandler:         params.BlogHandler,
		userHandler:         params.UserHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	blogGroup := e.Group("/blog")
	{
		blogGroup.POST("", r.blogHandler.Create)
		blogGroup.GET("", r.blogHandler.List)
		blogGroup.GET("/:id", r.blogHandler.Get)
		blogGroup.PUT("/:id", r.blogHandler.Update)
		blogGroup.DELETE("/:id", r.blogHandler.Delete)
	}

	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("/:id", r.userHandler.Get)
	}
}
