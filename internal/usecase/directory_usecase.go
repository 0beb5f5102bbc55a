// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wander/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase exposes the public merchant directory: browsing listings
// and voting on them.
type DirectoryUsecase interface {
	// ListMerchants returns all merchant listings, newest first.
	ListMerchants(ctx context.Context) ([]*entity.MerchantListing, error)

	// Vote records a like or dislike on a listing and returns the updated
	// counters.
	Vote(ctx context.Context, listingID uuid.UUID, vote entity.Vote) (*entity.MerchantListing, error)
}
