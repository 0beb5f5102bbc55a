// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// OnboardingUsecase drives a principal without a profile through kind
// selection and detail collection to the single profile-creation write.
type OnboardingUsecase interface {
	// SelectKind fixes the account kind for the principal's onboarding
	// session. The kind is immutable once selected; re-selecting the same
	// kind is a no-op.
	SelectKind(ctx context.Context, principal *entity.Principal, kind entity.Kind) (*entity.OnboardingSession, error)

	// Submit validates the kind-specific details and performs at most one
	// profile-creation write. A duplicate submit that loses the race is
	// reported as success; validation failures leave the store untouched.
	Submit(ctx context.Context, principal *entity.Principal, input *SubmitDetailsInput) (*SubmitOutput, error)

	// Session returns the principal's current onboarding session, or nil if
	// none was started.
	Session(principal *entity.Principal) *entity.OnboardingSession
}

// --- Input DTOs ---

// UserDetailsInput carries the traveler fields collected during onboarding.
// Age arrives as a string from form-like clients and is parsed explicitly: a
// non-numeric or negative value is a validation failure, never a silent zero.
type UserDetailsInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Age      string `json:"age" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Disabled bool   `json:"disabled"`
}

// MerchantDetailsInput carries the merchant fields collected during
// onboarding. Website and logo are optional and do not affect completeness.
type MerchantDetailsInput struct {
	OwnerName           string `json:"owner_name" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	BusinessName        string `json:"business_name" validate:"required"`
	BusinessAddress     string `json:"business_address" validate:"required"`
	BusinessDescription string `json:"business_description" validate:"required"`
	BusinessCategory    string `json:"business_category" validate:"required"`
	BusinessWebsite     string `json:"business_website,omitempty" validate:"omitempty,url"`
	BusinessLogoURL     string `json:"business_logo_url,omitempty" validate:"omitempty,url"`
}

// SubmitDetailsInput is the payload for Submit. Exactly one of the two detail
// structs must be set, matching the session's selected kind.
type SubmitDetailsInput struct {
	User     *UserDetailsInput     `json:"user,omitempty"`
	Merchant *MerchantDetailsInput `json:"merchant,omitempty"`
}

// SubmitOutput reports the canonical profile after a successful submit.
// Created distinguishes a genuinely new write from a concurrent submission
// that found the profile already present.
type SubmitOutput struct {
	Profile *entity.Profile `json:"profile"`
	Created bool            `json:"created"`
}
