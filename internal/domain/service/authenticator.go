// Package service defines domain-facing interfaces for external collaborators
// the core consumes but does not implement.
package service

import (
	"context"

	"wander/internal/domain/entity"
)

// Authenticator is the external identity provider, consumed as an opaque
// collaborator. The core never authenticates by itself: it only turns a
// provider-issued credential into a Principal.
type Authenticator interface {
	// VerifyIDToken validates a provider-issued ID token and returns the
	// principal it identifies.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error)
}

// PrincipalSource is the single source of truth for the session's current
// principal. Delivery code feeds it from verified requests; interested
// components subscribe instead of keeping their own auth flags.
type PrincipalSource interface {
	// Current returns the most recently observed principal, or nil when
	// nobody is signed in.
	Current() *entity.Principal

	// Observe records a principal change (login, token refresh with a new
	// identity, or logout when nil) and notifies subscribers if the
	// identity actually changed.
	Observe(principal *entity.Principal)

	// OnPrincipalChange registers a callback fired on every identity change.
	// The returned function cancels the subscription.
	OnPrincipalChange(fn func(*entity.Principal)) (cancel func())
}
