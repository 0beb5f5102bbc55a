// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// IdentityUsecase answers, for an authenticated principal, whether a profile
// exists, of which kind, and whether onboarding is complete. It is the single
// place that decision is made; delivery code only relays the outcome.
type IdentityUsecase interface {
	// Resolve queries both profile partitions for the principal and
	// classifies the result. A hit in both partitions is a fatal data
	// integrity error, never a silent preference. A store failure is
	// surfaced distinctly from "no profile exists".
	Resolve(ctx context.Context, principal *entity.Principal) (*entity.Resolution, error)
}
