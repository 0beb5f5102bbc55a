package entity

import (
	"errors"
	"sync"
)

// OnboardingState names a stage of the onboarding state machine.
type OnboardingState string

const (
	// OnboardingStateAwaitingKind is the initial state: the principal is
	// authenticated but has not chosen an account kind yet.
	OnboardingStateAwaitingKind OnboardingState = "awaiting_kind_selection"
	// OnboardingStateCollecting means a kind is chosen and kind-specific
	// fields are being gathered.
	OnboardingStateCollecting OnboardingState = "collecting_details"
	// OnboardingStateSubmitting means a profile-creation write is in flight.
	OnboardingStateSubmitting OnboardingState = "submitting"
	// OnboardingStateComplete is terminal: the profile exists and is
	// resolvable.
	OnboardingStateComplete OnboardingState = "complete"
)

// State-machine violations. These indicate a caller driving the session out
// of order, not a validation problem with the submitted fields.
var (
	// ErrKindAlreadySelected is returned when a session's kind would change
	// after selection. The chosen kind is immutable for the session lifetime.
	ErrKindAlreadySelected = errors.New("account kind already selected for this session")
	// ErrKindNotSelected is returned when details are submitted before a
	// kind was chosen.
	ErrKindNotSelected = errors.New("account kind not selected yet")
	// ErrOnboardingComplete is returned for transitions attempted after the
	// session reached its terminal state.
	ErrOnboardingComplete = errors.New("onboarding already complete")
)

// OnboardingSession tracks one principal's progress from "authenticated, no
// profile" to "profile complete". All transition methods are safe for
// concurrent use; duplicate submits race on the profile store, not on the
// session.
type OnboardingSession struct {
	mu        sync.Mutex
	principal *Principal
	kind      Kind
	state     OnboardingState
}

// NewOnboardingSession creates a session in the initial state for the given
// principal.
func NewOnboardingSession(principal *Principal) *OnboardingSession {
	return &OnboardingSession{
		principal: principal,
		kind:      KindNone,
		state:     OnboardingStateAwaitingKind,
	}
}

// Principal returns the principal this session belongs to.
func (s *OnboardingSession) Principal() *Principal {
	return s.principal
}

// Kind returns the selected account kind, or KindNone before selection.
func (s *OnboardingSession) Kind() Kind {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kind
}

// State returns the current state of the session.
func (s *OnboardingSession) State() OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// SelectKind moves the session from AwaitingKindSelection to
// CollectingDetails, fixing the account kind. Re-selecting the same kind is a
// no-op; selecting a different kind is rejected.
func (s *OnboardingSession) SelectKind(kind Kind) error {
	if !kind.IsValid() {
		return errors.New("invalid account kind: " + kind.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case OnboardingStateAwaitingKind:
		s.kind = kind
		s.state = OnboardingStateCollecting

		return nil
	case OnboardingStateComplete:
		return ErrOnboardingComplete
	default:
		if s.kind != kind {
			return ErrKindAlreadySelected
		}

		return nil
	}
}

// BeginSubmit moves the session into Submitting. Concurrent submits are
// allowed to enter Submitting together; the profile store's create-if-absent
// contract decides which write wins.
func (s *OnboardingSession) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case OnboardingStateAwaitingKind:
		return ErrKindNotSelected
	case OnboardingStateComplete:
		return ErrOnboardingComplete
	default:
		s.state = OnboardingStateSubmitting

		return nil
	}
}

// FailSubmit returns the session to CollectingDetails after a failed write so
// the caller can correct and resubmit. No partial state is retained.
func (s *OnboardingSession) FailSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == OnboardingStateSubmitting {
		s.state = OnboardingStateCollecting
	}
}

// CompleteSubmit moves the session to its terminal state.
func (s *OnboardingSession) CompleteSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = OnboardingStateComplete
}
