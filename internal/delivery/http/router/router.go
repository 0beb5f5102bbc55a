// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wander/internal/delivery/http/middleware"
	"wander/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler   *handler.IdentityHandler
	OnboardingHandler *handler.OnboardingHandler
	DirectoryHandler  *handler.DirectoryHandler
	TripHandler       *handler.TripHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler   *handler.IdentityHandler
	onboardingHandler *handler.OnboardingHandler
	directoryHandler  *handler.DirectoryHandler
	tripHandler       *handler.TripHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:   params.IdentityHandler,
		onboardingHandler: params.OnboardingHandler,
		directoryHandler:  params.DirectoryHandler,
		tripHandler:       params.TripHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public merchant directory, browsable without signing in
	merchantGroup := e.Group("/merchants")
	{
		merchantGroup.GET("", r.directoryHandler.ListMerchants)
		merchantGroup.POST("/:id/vote", r.directoryHandler.Vote)
	}

	// Identity routes that require authentication
	identityGroup := e.Group("/identity")
	identityGroup.Use(r.authMiddleware.Authenticate)
	{
		identityGroup.GET("/resolution", r.identityHandler.Resolve)
	}

	// Onboarding routes that require authentication
	onboardingGroup := e.Group("/onboarding")
	onboardingGroup.Use(r.authMiddleware.Authenticate)
	{
		onboardingGroup.POST("/kind", r.onboardingHandler.SelectKind)
		onboardingGroup.POST("/details", r.onboardingHandler.SubmitDetails)
		onboardingGroup.GET("/session", r.onboardingHandler.Session)
	}

	// Trip routes that require authentication
	tripGroup := e.Group("/trips")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.POST("", r.tripHandler.PlanTrip)
		tripGroup.GET("", r.tripHandler.ListTrips)
		tripGroup.POST("/match", r.tripHandler.FindCompanion)
	}
}
