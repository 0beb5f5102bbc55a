// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wander/internal/domain/entity"
)

// TripRepository defines the standard operations for trip plan persistence.
type TripRepository interface {
	// Create persists a new trip plan.
	Create(ctx context.Context, plan *entity.TripPlan) error

	// ListByPrincipal retrieves the trip plans submitted by a principal,
	// newest first.
	ListByPrincipal(ctx context.Context, principalID string) ([]*entity.TripPlan, error)
}
