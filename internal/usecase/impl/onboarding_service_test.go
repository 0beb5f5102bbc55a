package impl

import (
	"context"
	"sync"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onboardingFixtures struct {
	service     usecase.OnboardingUsecase
	profileRepo *fakeProfileRepo
	listingRepo *fakeListingRepo
	publisher   *recordingPublisher
}

func createTestOnboardingService() onboardingFixtures {
	profileRepo := newFakeProfileRepo()
	listingRepo := newFakeListingRepo()
	publisher := &recordingPublisher{}
	logger := newDiscardLogger()
	txManager := &stubTxManager{factory: &stubRepoFactory{
		listingRepo: listingRepo,
		tripRepo:    newFakeTripRepo(),
	}}
	identity := NewIdentityService(profileRepo, logger)

	service := NewOnboardingService(identity, profileRepo, txManager, publisher, logger)

	return onboardingFixtures{
		service:     service,
		profileRepo: profileRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

func validUserInput() *usecase.SubmitDetailsInput {
	return &usecase.SubmitDetailsInput{
		User: &usecase.UserDetailsInput{
			Name:   "Test Traveler",
			Phone:  "0912345678",
			Age:    "30",
			Gender: "female",
		},
	}
}

func validMerchantInput() *usecase.SubmitDetailsInput {
	return &usecase.SubmitDetailsInput{
		Merchant: &usecase.MerchantDetailsInput{
			OwnerName:           "Test Owner",
			Phone:               "0287654321",
			BusinessName:        "Night Market Stand",
			BusinessAddress:     "Taipei",
			BusinessDescription: "Street food",
			BusinessCategory:    "restaurant",
		},
	}
}

func TestOnboardingService_SelectKind(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	session, err := fx.service.SelectKind(ctx, principal, entity.KindUser)

	require.NoError(t, err)
	assert.Equal(t, entity.KindUser, session.Kind())
	assert.Equal(t, entity.OnboardingStateCollecting, session.State())
}

func TestOnboardingService_SelectKind_SameKindIsNoop(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindMerchant)
	require.NoError(t, err)

	session, err := fx.service.SelectKind(ctx, principal, entity.KindMerchant)

	require.NoError(t, err)
	assert.Equal(t, entity.KindMerchant, session.Kind())
}

func TestOnboardingService_SelectKind_Immutable(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	_, err = fx.service.SelectKind(ctx, principal, entity.KindMerchant)

	assert.ErrorIs(t, err, domainerrors.ErrKindImmutable)
}

func TestOnboardingService_SelectKind_ProfileAlreadyExists(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()
	fx.profileRepo.put(userProfileFixture(principal.ID))

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)

	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestOnboardingService_Submit_WithoutKind(t *testing.T) {
	fx := createTestOnboardingService()

	_, err := fx.service.Submit(context.Background(), testPrincipal(), validUserInput())

	assert.ErrorIs(t, err, domainerrors.ErrKindNotSelected)
	assert.Zero(t, fx.profileRepo.creates())
}

func TestOnboardingService_Submit_User(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	output, err := fx.service.Submit(ctx, principal, validUserInput())

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entity.KindUser, output.Profile.Kind)
	assert.Equal(t, uint(30), output.Profile.User.Age)
	assert.True(t, output.Profile.Complete())

	// The session is gone; a fresh resolution now reports the profile.
	assert.Nil(t, fx.service.Session(principal))

	events := fx.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "profile.created", events[0].Type)
	assert.Equal(t, principal.ID, events[0].PrincipalID)
}

func TestOnboardingService_Submit_Merchant_CreatesListing(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindMerchant)
	require.NoError(t, err)

	output, err := fx.service.Submit(ctx, principal, validMerchantInput())

	require.NoError(t, err)
	assert.True(t, output.Created)

	listings, err := fx.listingRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Night Market Stand", listings[0].BusinessName)
	assert.Equal(t, principal.ID, listings[0].PrincipalID)
}

func TestOnboardingService_Submit_NonNumericAge(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	input := validUserInput()
	input.User.Age = "thirty"

	_, err = fx.service.Submit(ctx, principal, input)

	require.Error(t, err)
	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "age")
	assert.Zero(t, fx.profileRepo.creates())
	assert.Empty(t, fx.publisher.published())
}

func TestOnboardingService_Submit_MissingMerchantFields(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindMerchant)
	require.NoError(t, err)

	input := validMerchantInput()
	input.Merchant.BusinessAddress = ""
	input.Merchant.Phone = ""

	_, err = fx.service.Submit(ctx, principal, input)

	require.Error(t, err)
	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "business_address")
	assert.Contains(t, fieldErr.Fields(), "phone")
	assert.Zero(t, fx.profileRepo.creates())
}

func TestOnboardingService_Submit_WrongDetailKind(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindMerchant)
	require.NoError(t, err)

	_, err = fx.service.Submit(ctx, principal, validUserInput())

	require.Error(t, err)
	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "merchant")
	assert.Zero(t, fx.profileRepo.creates())
}

func TestOnboardingService_Submit_DuplicateIsSuccess(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	// A parallel submit already won the create race.
	existing := userProfileFixture(principal.ID)
	fx.profileRepo.put(existing)

	output, err := fx.service.Submit(ctx, principal, validUserInput())

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Same(t, existing, output.Profile)
	assert.Empty(t, fx.publisher.published())
}

func TestOnboardingService_Submit_OppositePartitionOccupied(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	// Another device finished merchant onboarding in the meantime.
	fx.profileRepo.put(merchantProfileFixture(principal.ID))

	_, err = fx.service.Submit(ctx, principal, validUserInput())

	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
	assert.Zero(t, fx.profileRepo.creates())
}

func TestOnboardingService_Submit_StoreFailureAllowsRetry(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	fx.profileRepo.createErr = assert.AnError
	_, err = fx.service.Submit(ctx, principal, validUserInput())
	assert.ErrorIs(t, err, domainerrors.ErrProfileStoreUnavailable)

	session := fx.service.Session(principal)
	require.NotNil(t, session)
	assert.Equal(t, entity.OnboardingStateCollecting, session.State())

	// The retry succeeds once the store recovers.
	fx.profileRepo.createErr = nil
	output, err := fx.service.Submit(ctx, principal, validUserInput())
	require.NoError(t, err)
	assert.True(t, output.Created)
}

func TestOnboardingService_Submit_ConcurrentSingleWrite(t *testing.T) {
	fx := createTestOnboardingService()
	ctx := context.Background()
	principal := testPrincipal()

	_, err := fx.service.SelectKind(ctx, principal, entity.KindUser)
	require.NoError(t, err)

	const submitters = 8
	outputs := make([]*usecase.SubmitOutput, submitters)

	var wg sync.WaitGroup
	for i := range submitters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, submitErr := fx.service.Submit(ctx, principal, validUserInput())
			if submitErr == nil {
				outputs[i] = out
			}
		}()
	}
	wg.Wait()

	createdCount := 0
	for _, out := range outputs {
		require.NotNil(t, out)
		assert.Equal(t, principal.ID, out.Profile.PrincipalID)
		if out.Created {
			createdCount++
		}
	}
	assert.Equal(t, 1, createdCount)
	assert.Len(t, fx.publisher.published(), 1)
}
