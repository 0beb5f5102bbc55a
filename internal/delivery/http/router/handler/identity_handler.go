// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/delivery/http/response"
	"wander/internal/domain/entity"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler holds dependencies for identity-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

// resolutionResponse is the wire form of a profile resolution.
type resolutionResponse struct {
	Kind               string          `json:"kind"`
	ProfileExists      bool            `json:"profile_exists"`
	OnboardingComplete bool            `json:"onboarding_complete"`
	MissingFields      []string        `json:"missing_fields,omitempty"`
	Profile            *entity.Profile `json:"profile,omitempty"`
}

// Resolve handles the request to resolve the caller's profile partition.
func (h *IdentityHandler) Resolve(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	resolution, err := h.uc.Resolve(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	body := &resolutionResponse{
		Kind:               string(resolution.Kind),
		ProfileExists:      resolution.ProfileExists,
		OnboardingComplete: resolution.OnboardingComplete,
		Profile:            resolution.Profile,
	}
	if resolution.Profile != nil && !resolution.OnboardingComplete {
		body.MissingFields = resolution.Profile.MissingFields()
	}

	return response.Success(c, http.StatusOK, body, "Resolution retrieved successfully")
}

// currentPrincipal extracts the authenticated principal placed on the echo
// context by the auth middleware.
func currentPrincipal(c echo.Context) *entity.Principal {
	principal, ok := c.Get(string(deliverycontext.KeyPrincipal)).(*entity.Principal)
	if !ok {
		return nil
	}

	return principal
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
