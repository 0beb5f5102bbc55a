package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/domain/entity"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for merchant-directory handlers.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// voteRequest is the payload for a listing vote.
type voteRequest struct {
	Vote string `json:"vote"`
}

// ListMerchants handles the public merchant directory request.
func (h *DirectoryHandler) ListMerchants(c echo.Context) error {
	listings, err := h.uc.ListMerchants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Merchants retrieved successfully")
}

// Vote handles an up or down vote on a merchant listing.
func (h *DirectoryHandler) Vote(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	var input *voteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}

	listing, err := h.uc.Vote(c.Request().Context(), listingID, entity.Vote(input.Vote))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Vote recorded successfully")
}
