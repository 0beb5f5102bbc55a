// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wander/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// exists in the queried partition. Callers must never confuse it with a
// transport failure: any other error from Find means "could not determine
// whether the profile exists".
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the store the resolution core reads and onboarding
// writes. Profiles live in two partitions, one per account kind; an
// implementation may realize them as two tables, two collections, or two
// namespaces, as long as lookups by principal id are well-defined per
// partition.
type ProfileRepository interface {
	// Find retrieves the profile for a principal from the partition of the
	// given kind. Returns ErrProfileNotFound when the partition has no record.
	Find(ctx context.Context, kind entity.Kind, principalID string) (*entity.Profile, error)

	// CreateIfAbsent persists the profile into the partition matching its
	// kind, unless that partition already holds a record for the principal.
	// It reports whether the write happened and returns the record that is
	// now canonical (the new one, or the pre-existing one that won the race).
	// This contract is what makes onboarding idempotent under duplicate
	// submits.
	CreateIfAbsent(ctx context.Context, profile *entity.Profile) (created bool, record *entity.Profile, err error)
}
