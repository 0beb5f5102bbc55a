package service

import (
	"context"
	"time"

	"wander/internal/domain/entity"
)

// ProfileEventTypeCreated marks the one allowed profile-creation write.
const ProfileEventTypeCreated = "profile.created"

// ProfileEvent describes a change to the profile partitions that downstream
// systems (analytics, directory refresh) may react to.
type ProfileEvent struct {
	Type        string      `json:"type"`
	PrincipalID string      `json:"principal_id"`
	Kind        entity.Kind `json:"kind"`
	RequestID   string      `json:"request_id,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// ProfileEventPublisher publishes profile lifecycle events. Publishing is
// best-effort from the coordinator's point of view: a failed publish never
// rolls back the profile write.
type ProfileEventPublisher interface {
	// PublishProfileEvent publishes a single profile lifecycle event.
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any underlying client resources.
	Close() error
}
