// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a merchant listing does not exist.
var ErrListingNotFound = errors.New("merchant listing not found")

// ListingRepository defines the standard operations for the merchant
// directory persistence.
type ListingRepository interface {
	// List retrieves all merchant listings, newest first.
	List(ctx context.Context) ([]*entity.MerchantListing, error)

	// FindByID retrieves a single listing by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MerchantListing, error)

	// Create persists a new listing for a freshly onboarded merchant.
	Create(ctx context.Context, listing *entity.MerchantListing) error

	// AddVote increments the like or dislike counter of a listing.
	AddVote(ctx context.Context, id uuid.UUID, vote entity.Vote) error
}
