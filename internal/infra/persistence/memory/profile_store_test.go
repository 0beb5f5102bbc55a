package memory

import (
	"context"
	"sync"
	"testing"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(principalID string) *entity.Profile {
	return &entity.Profile{
		PrincipalID: principalID,
		Kind:        entity.KindUser,
		User: &entity.UserDetails{
			Name:   "Test Traveler",
			Phone:  "0912345678",
			Age:    30,
			Gender: "female",
		},
	}
}

func TestProfileStore_FindNotFound(t *testing.T) {
	store := NewProfileStore()

	_, err := store.Find(context.Background(), entity.KindUser, "missing")

	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileStore_CreateIfAbsent(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()
	profile := testProfile("uid-1")

	created, record, err := store.CreateIfAbsent(ctx, profile)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Same(t, profile, record)

	// A second create is absorbed and returns the original record.
	duplicate := testProfile("uid-1")
	created, record, err = store.CreateIfAbsent(ctx, duplicate)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, profile, record)

	found, err := store.Find(ctx, entity.KindUser, "uid-1")
	require.NoError(t, err)
	assert.Same(t, profile, found)
}

func TestProfileStore_PartitionsAreSeparate(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()

	_, _, err := store.CreateIfAbsent(ctx, testProfile("uid-1"))
	require.NoError(t, err)

	_, err = store.Find(ctx, entity.KindMerchant, "uid-1")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileStore_ConcurrentCreateSingleWinner(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()

	const writers = 16
	results := make([]bool, writers)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, _, err := store.CreateIfAbsent(ctx, testProfile("uid-race"))
			assert.NoError(t, err)
			results[i] = created
		}()
	}
	wg.Wait()

	createdCount := 0
	for _, created := range results {
		if created {
			createdCount++
		}
	}
	assert.Equal(t, 1, createdCount)
}
