package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a directory visitor's reaction to a merchant listing.
type Vote string

const (
	// VoteUp increments the listing's like counter.
	VoteUp Vote = "up"
	// VoteDown increments the listing's dislike counter.
	VoteDown Vote = "down"
)

// IsValid checks if the Vote is a recognized value.
func (v Vote) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// MerchantListing is the directory projection of a merchant profile: the
// public fields browsers see, plus vote counters. It is created when a
// merchant completes onboarding and updated only through voting.
type MerchantListing struct {
	ID                  uuid.UUID // Listing identifier, independent of the principal ID.
	PrincipalID         string    // The merchant principal that owns this listing.
	BusinessName        string
	BusinessCategory    string
	BusinessAddress     string
	BusinessDescription string
	BusinessWebsite     string
	BusinessLogoURL     string
	Likes               int
	Dislikes            int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ListingFromProfile builds the directory listing for a freshly created
// merchant profile.
func ListingFromProfile(profile *Profile) *MerchantListing {
	if profile == nil || profile.Kind != KindMerchant || profile.Merchant == nil {
		return nil
	}

	return &MerchantListing{
		PrincipalID:         profile.PrincipalID,
		BusinessName:        profile.Merchant.BusinessName,
		BusinessCategory:    profile.Merchant.BusinessCategory,
		BusinessAddress:     profile.Merchant.BusinessAddress,
		BusinessDescription: profile.Merchant.BusinessDescription,
		BusinessWebsite:     profile.Merchant.BusinessWebsite,
		BusinessLogoURL:     profile.Merchant.BusinessLogoURL,
	}
}
