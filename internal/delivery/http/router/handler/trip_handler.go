package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TripHandler holds dependencies for trip-planning handlers.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlanTrip handles the request to store a trip plan and generate an itinerary.
func (h *TripHandler) PlanTrip(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	var input *usecase.PlanTripInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip plan input")
	}

	output, err := h.uc.PlanTrip(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Trip planned successfully")
}

// FindCompanion handles the request to match the plan against other travelers.
func (h *TripHandler) FindCompanion(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	var input *usecase.PlanTripInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip plan input")
	}

	match, err := h.uc.FindCompanion(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, match, "Companion search completed")
}

// ListTrips handles the request for the caller's stored trip plans.
func (h *TripHandler) ListTrips(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	trips, err := h.uc.ListTrips(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trips, "Trips retrieved successfully")
}
