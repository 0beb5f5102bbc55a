// Package entity contains the core business objects of the project.
package entity

// Kind represents the mutually exclusive account category of a profile.
// A principal holds at most one profile, and its kind never changes once the
// profile is created.
type Kind string

const (
	// KindNone indicates that no profile exists for the principal yet.
	KindNone Kind = ""
	// KindUser indicates a regular traveler account.
	KindUser Kind = "user"
	// KindMerchant indicates a merchant account.
	KindMerchant Kind = "merchant"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a selectable account category.
// KindNone is a resolution outcome, not a selectable kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindMerchant:
		return true
	default:
		return false
	}
}

// KindFromString converts a raw string to a Kind, reporting whether it names
// a selectable account category.
func KindFromString(s string) (Kind, bool) {
	kind := Kind(s)

	return kind, kind.IsValid()
}
