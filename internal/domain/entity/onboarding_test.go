package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *OnboardingSession {
	return NewOnboardingSession(&Principal{ID: "uid-1"})
}

func TestOnboardingSession_InitialState(t *testing.T) {
	session := newTestSession()

	assert.Equal(t, OnboardingStateAwaitingKind, session.State())
	assert.Equal(t, KindNone, session.Kind())
}

func TestOnboardingSession_SelectKind(t *testing.T) {
	session := newTestSession()

	require.NoError(t, session.SelectKind(KindUser))
	assert.Equal(t, OnboardingStateCollecting, session.State())
	assert.Equal(t, KindUser, session.Kind())

	// Re-selecting the same kind is a no-op.
	assert.NoError(t, session.SelectKind(KindUser))

	// The kind is immutable for the session lifetime.
	assert.ErrorIs(t, session.SelectKind(KindMerchant), ErrKindAlreadySelected)
	assert.Equal(t, KindUser, session.Kind())
}

func TestOnboardingSession_SelectKind_Invalid(t *testing.T) {
	session := newTestSession()

	assert.Error(t, session.SelectKind(KindNone))
	assert.Error(t, session.SelectKind(Kind("admin")))
	assert.Equal(t, OnboardingStateAwaitingKind, session.State())
}

func TestOnboardingSession_SubmitBeforeKind(t *testing.T) {
	session := newTestSession()

	assert.ErrorIs(t, session.BeginSubmit(), ErrKindNotSelected)
}

func TestOnboardingSession_SubmitLifecycle(t *testing.T) {
	session := newTestSession()
	require.NoError(t, session.SelectKind(KindMerchant))

	require.NoError(t, session.BeginSubmit())
	assert.Equal(t, OnboardingStateSubmitting, session.State())

	// A failed write returns to collecting so the caller can retry.
	session.FailSubmit()
	assert.Equal(t, OnboardingStateCollecting, session.State())

	require.NoError(t, session.BeginSubmit())
	session.CompleteSubmit()
	assert.Equal(t, OnboardingStateComplete, session.State())

	// Complete is terminal.
	assert.ErrorIs(t, session.BeginSubmit(), ErrOnboardingComplete)
	assert.ErrorIs(t, session.SelectKind(KindUser), ErrOnboardingComplete)
}
