// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Principal is the authenticated identity for the current session, as issued
// by the external identity provider. It carries no profile data of its own:
// whether this person is a traveler or a merchant is decided by the profile
// partitions, not by the token.
type Principal struct {
	ID          string // Opaque, stable identifier assigned by the identity provider (e.g. the Firebase uid).
	DisplayName string // Optional display name supplied by the provider (e.g. from Google Sign-In).
	Email       string // Optional email supplied by the provider.
}

// Valid reports whether the principal can be used for profile resolution.
// A principal without a provider-assigned ID is never acceptable.
func (p *Principal) Valid() bool {
	return p != nil && p.ID != ""
}
