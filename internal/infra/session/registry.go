// Package session tracks the current principal and fans out identity changes
// to subscribers.
package session

import (
	"log/slog"
	"sync"

	"wander/internal/domain/entity"
	"wander/internal/domain/service"
)

// Registry implements service.PrincipalSource. Observers are notified only
// when the identity actually changes, so a token refresh for the same user is
// silent.
type Registry struct {
	mu        sync.Mutex
	current   *entity.Principal
	observers map[int]func(*entity.Principal)
	nextID    int
	logger    *slog.Logger
}

// NewRegistry is the constructor for Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		observers: make(map[int]func(*entity.Principal)),
		logger:    logger,
	}
}

// Current returns the most recently observed principal, or nil.
func (r *Registry) Current() *entity.Principal {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Observe records a principal change and notifies subscribers when the
// identity differs from the previous one.
func (r *Registry) Observe(principal *entity.Principal) {
	r.mu.Lock()

	if samePrincipal(r.current, principal) {
		r.mu.Unlock()

		return
	}

	r.current = principal
	callbacks := make([]func(*entity.Principal), 0, len(r.observers))
	for _, fn := range r.observers {
		callbacks = append(callbacks, fn)
	}
	r.mu.Unlock()

	if principal != nil {
		r.logger.Debug("Principal changed", slog.String("principalID", principal.ID))
	} else {
		r.logger.Debug("Principal cleared")
	}

	// Callbacks run outside the lock so a subscriber may call back into the
	// registry without deadlocking.
	for _, fn := range callbacks {
		fn(principal)
	}
}

// OnPrincipalChange registers a callback fired on every identity change.
func (r *Registry) OnPrincipalChange(fn func(*entity.Principal)) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.observers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

func samePrincipal(a, b *entity.Principal) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.ID == b.ID
}

var _ service.PrincipalSource = (*Registry)(nil)
