// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Profile is the durable account record for a principal. Exactly one of the
// kind-specific detail structs is set, matching Kind. The profile is written
// once during onboarding and is read-only afterwards from this core's
// perspective.
type Profile struct {
	PrincipalID string           // Primary key: the provider-assigned principal ID.
	Kind        Kind             // Account category. Immutable once the profile is created.
	Email       string           // Email captured from the principal at creation time.
	User        *UserDetails     // Traveler fields. Nil unless Kind is KindUser.
	Merchant    *MerchantDetails // Merchant fields. Nil unless Kind is KindMerchant.
	CreatedAt   time.Time        // Timestamp of the one allowed profile-creation write.
}

// UserDetails holds the fields collected for a traveler account.
type UserDetails struct {
	Name     string // The traveler's real or display name.
	Phone    string // Contact phone number.
	Age      uint   // Age in years. Validated as a non-negative integer during onboarding.
	Gender   string // Free-text gender as entered during onboarding.
	Disabled bool   // Accessibility flag used by the accessible-place features.
}

// MerchantDetails holds the fields collected for a merchant account.
type MerchantDetails struct {
	OwnerName           string // The business owner's name.
	Phone               string // Contact phone number.
	BusinessName        string // The registered business name.
	BusinessAddress     string // The physical business address.
	BusinessDescription string // A short description shown in the directory.
	BusinessCategory    string // Directory category, e.g. "restaurant".
	BusinessWebsite     string // Optional website URL. Does not affect completeness.
	BusinessLogoURL     string // Optional logo reference. Does not affect completeness.
}

// MissingFields returns the names of required fields that are absent for the
// profile's kind. Optional fields (website, logo) are never reported.
// A nil detail struct reports every required field of that kind.
func (p *Profile) MissingFields() []string {
	switch p.Kind {
	case KindUser:
		return p.missingUserFields()
	case KindMerchant:
		return p.missingMerchantFields()
	default:
		return []string{"kind"}
	}
}

// Complete reports whether every required field for the profile's kind is
// present. This is the single definition of "onboarded" in the system.
func (p *Profile) Complete() bool {
	return len(p.MissingFields()) == 0
}

func (p *Profile) missingUserFields() []string {
	if p.User == nil {
		return []string{"name", "phone", "age", "gender"}
	}

	var missing []string
	if p.User.Name == "" {
		missing = append(missing, "name")
	}
	if p.User.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.User.Gender == "" {
		missing = append(missing, "gender")
	}

	return missing
}

func (p *Profile) missingMerchantFields() []string {
	if p.Merchant == nil {
		return []string{
			"owner_name", "phone", "business_name",
			"business_address", "business_description", "business_category",
		}
	}

	var missing []string
	if p.Merchant.OwnerName == "" {
		missing = append(missing, "owner_name")
	}
	if p.Merchant.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.Merchant.BusinessName == "" {
		missing = append(missing, "business_name")
	}
	if p.Merchant.BusinessAddress == "" {
		missing = append(missing, "business_address")
	}
	if p.Merchant.BusinessDescription == "" {
		missing = append(missing, "business_description")
	}
	if p.Merchant.BusinessCategory == "" {
		missing = append(missing, "business_category")
	}

	return missing
}
