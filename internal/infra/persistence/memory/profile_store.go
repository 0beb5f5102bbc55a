// Package memory provides an in-memory profile store for development and
// tests. It honors the same create-if-absent contract as the durable
// backends, so race behavior is faithful.
package memory

import (
	"context"
	"sync"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"
)

type partitionKey struct {
	kind        entity.Kind
	principalID string
}

// ProfileStore is a thread-safe in-memory ProfileRepository.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[partitionKey]*entity.Profile
}

// NewProfileStore is the constructor for ProfileStore.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[partitionKey]*entity.Profile),
	}
}

// Find retrieves the profile for a principal from the partition of the given kind.
func (s *ProfileStore) Find(_ context.Context, kind entity.Kind, principalID string) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[partitionKey{kind: kind, principalID: principalID}]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return profile, nil
}

// CreateIfAbsent persists the profile unless its partition already holds a
// record for the principal. The check and the write share one critical
// section, so exactly one of any set of concurrent callers creates.
func (s *ProfileStore) CreateIfAbsent(_ context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := partitionKey{kind: profile.Kind, principalID: profile.PrincipalID}
	if existing, ok := s.profiles[key]; ok {
		return false, existing, nil
	}
	s.profiles[key] = profile

	return true, profile, nil
}
