package impl

import (
	"context"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDirectoryService() (usecase.DirectoryUsecase, *fakeListingRepo) {
	listingRepo := newFakeListingRepo()
	txManager := &stubTxManager{factory: &stubRepoFactory{
		listingRepo: listingRepo,
		tripRepo:    newFakeTripRepo(),
	}}

	return NewDirectoryService(txManager, newDiscardLogger()), listingRepo
}

func listingFixture() *entity.MerchantListing {
	return &entity.MerchantListing{
		ID:               uuid.New(),
		PrincipalID:      "merchant-uid",
		BusinessName:     "Night Market Stand",
		BusinessCategory: "restaurant",
	}
}

func TestDirectoryService_ListMerchants(t *testing.T) {
	svc, listingRepo := createTestDirectoryService()
	require.NoError(t, listingRepo.Create(context.Background(), listingFixture()))

	listings, err := svc.ListMerchants(context.Background())

	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestDirectoryService_Vote(t *testing.T) {
	svc, listingRepo := createTestDirectoryService()
	listing := listingFixture()
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	updated, err := svc.Vote(context.Background(), listing.ID, entity.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)

	updated, err = svc.Vote(context.Background(), listing.ID, entity.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 1, updated.Dislikes)
}

func TestDirectoryService_Vote_InvalidOption(t *testing.T) {
	svc, _ := createTestDirectoryService()

	_, err := svc.Vote(context.Background(), uuid.New(), entity.Vote("meh"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidVote)
}

func TestDirectoryService_Vote_UnknownListing(t *testing.T) {
	svc, _ := createTestDirectoryService()

	_, err := svc.Vote(context.Background(), uuid.New(), entity.VoteUp)

	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}
