package entity

// Resolution is the transient outcome of resolving a principal against the
// profile partitions. It is computed fresh on every request and never cached
// across requests, so it cannot go stale past a single session lifetime.
type Resolution struct {
	Principal          *Principal // The principal that was resolved.
	ProfileExists      bool       // Whether a profile was found in exactly one partition.
	Kind               Kind       // Account kind of the profile, or KindNone when no profile exists.
	OnboardingComplete bool       // Whether every required field for the kind is present.
	Profile            *Profile   // The resolved profile, nil when none exists.
}

// NewEmptyResolution builds the resolution for a principal without a profile:
// kind None, onboarding incomplete.
func NewEmptyResolution(principal *Principal) *Resolution {
	return &Resolution{
		Principal:          principal,
		ProfileExists:      false,
		Kind:               KindNone,
		OnboardingComplete: false,
	}
}

// NewResolution builds the resolution for a principal whose profile was found
// in exactly one partition.
func NewResolution(principal *Principal, profile *Profile) *Resolution {
	return &Resolution{
		Principal:          principal,
		ProfileExists:      true,
		Kind:               profile.Kind,
		OnboardingComplete: profile.Complete(),
		Profile:            profile,
	}
}
