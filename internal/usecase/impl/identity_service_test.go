package impl

import (
	"context"
	"testing"
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userProfileFixture(principalID string) *entity.Profile {
	return &entity.Profile{
		PrincipalID: principalID,
		Kind:        entity.KindUser,
		Email:       "traveler@example.com",
		User: &entity.UserDetails{
			Name:   "Test Traveler",
			Phone:  "0912345678",
			Age:    30,
			Gender: "female",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func merchantProfileFixture(principalID string) *entity.Profile {
	return &entity.Profile{
		PrincipalID: principalID,
		Kind:        entity.KindMerchant,
		Email:       "owner@example.com",
		Merchant: &entity.MerchantDetails{
			OwnerName:           "Test Owner",
			Phone:               "0287654321",
			BusinessName:        "Night Market Stand",
			BusinessAddress:     "Taipei",
			BusinessDescription: "Street food",
			BusinessCategory:    "restaurant",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestIdentityService_Resolve_NoProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), testPrincipal())

	require.NoError(t, err)
	assert.False(t, resolution.ProfileExists)
	assert.Equal(t, entity.KindNone, resolution.Kind)
	assert.False(t, resolution.OnboardingComplete)
	assert.Nil(t, resolution.Profile)
}

func TestIdentityService_Resolve_UserProfile(t *testing.T) {
	principal := testPrincipal()
	repo := newFakeProfileRepo()
	repo.put(userProfileFixture(principal.ID))
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), principal)

	require.NoError(t, err)
	assert.True(t, resolution.ProfileExists)
	assert.Equal(t, entity.KindUser, resolution.Kind)
	assert.True(t, resolution.OnboardingComplete)
	require.NotNil(t, resolution.Profile)
	assert.Equal(t, principal.ID, resolution.Profile.PrincipalID)
}

func TestIdentityService_Resolve_MerchantProfile(t *testing.T) {
	principal := testPrincipal()
	repo := newFakeProfileRepo()
	repo.put(merchantProfileFixture(principal.ID))
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), principal)

	require.NoError(t, err)
	assert.True(t, resolution.ProfileExists)
	assert.Equal(t, entity.KindMerchant, resolution.Kind)
	assert.True(t, resolution.OnboardingComplete)
}

func TestIdentityService_Resolve_IncompleteProfile(t *testing.T) {
	principal := testPrincipal()
	profile := merchantProfileFixture(principal.ID)
	profile.Merchant.BusinessAddress = ""
	repo := newFakeProfileRepo()
	repo.put(profile)
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), principal)

	require.NoError(t, err)
	assert.True(t, resolution.ProfileExists)
	assert.False(t, resolution.OnboardingComplete)
}

func TestIdentityService_Resolve_BothPartitions(t *testing.T) {
	principal := testPrincipal()
	repo := newFakeProfileRepo()
	repo.put(userProfileFixture(principal.ID))
	repo.put(merchantProfileFixture(principal.ID))
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), principal)

	require.Error(t, err)
	assert.Nil(t, resolution)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateProfileConflict)
}

func TestIdentityService_Resolve_StoreUnavailable(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.findErr = errors.New("connection refused")
	svc := NewIdentityService(repo, newDiscardLogger())

	resolution, err := svc.Resolve(context.Background(), testPrincipal())

	require.Error(t, err)
	assert.Nil(t, resolution)
	assert.ErrorIs(t, err, domainerrors.ErrProfileStoreUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestIdentityService_Resolve_InvalidPrincipal(t *testing.T) {
	svc := NewIdentityService(newFakeProfileRepo(), newDiscardLogger())

	_, err := svc.Resolve(context.Background(), &entity.Principal{})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
