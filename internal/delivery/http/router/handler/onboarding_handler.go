package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/domain/entity"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OnboardingHandler holds dependencies for onboarding-related handlers.
type OnboardingHandler struct {
	uc     usecase.OnboardingUsecase
	logger *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(uc usecase.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		uc:     uc,
		logger: logger,
	}
}

// selectKindRequest is the payload for the kind-selection step.
type selectKindRequest struct {
	Kind string `json:"kind"`
}

// sessionResponse is the wire form of an onboarding session.
type sessionResponse struct {
	Kind  string `json:"kind"`
	State string `json:"state"`
}

// SelectKind handles the account-kind selection request.
func (h *OnboardingHandler) SelectKind(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	var input *selectKindRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid kind selection input")
	}

	kind, ok := entity.KindFromString(input.Kind)
	if !ok || kind == entity.KindNone {
		return response.BadRequest(c, "INVALID_KIND", "Kind must be 'user' or 'merchant'")
	}

	session, err := h.uc.SelectKind(c.Request().Context(), principal, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	body := &sessionResponse{
		Kind:  string(session.Kind()),
		State: string(session.State()),
	}

	return response.Success(c, http.StatusOK, body, "Kind selected successfully")
}

// SubmitDetails handles the detail submission that creates the profile.
func (h *OnboardingHandler) SubmitDetails(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	var input *usecase.SubmitDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding details input")
	}

	output, err := h.uc.Submit(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// A lost duplicate race is still success, but only a genuine write is 201.
	statusCode := http.StatusOK
	message := "Profile already exists"
	if output.Created {
		statusCode = http.StatusCreated
		message = "Profile created successfully"
	}

	return response.Success(c, statusCode, output, message)
}

// Session handles the request for the principal's current onboarding session.
func (h *OnboardingHandler) Session(c echo.Context) error {
	principal := currentPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated principal")
	}

	session := h.uc.Session(principal)
	if session == nil {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No onboarding session in progress")
	}

	body := &sessionResponse{
		Kind:  string(session.Kind()),
		State: string(session.State()),
	}

	return response.Success(c, http.StatusOK, body, "Session retrieved successfully")
}
