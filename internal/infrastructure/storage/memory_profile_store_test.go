package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"matchbot/internal/domain/entity"
)

func testProfile(userID int64) *entity.Profile {
	return &entity.Profile{
		UserID:       userID,
		Gender:       entity.GenderFemale,
		Age:          30,
		Hobby:        "Reading",
		Location:     entity.Location{Latitude: 1.0, Longitude: 2.0},
		PhotoRef:     "media-1",
		Description:  "Hi there",
		RegisteredAt: time.Now().UTC(),
	}
}

func TestMemoryProfileStore_InsertAndGet(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	exists, err := store.Exists(ctx, 1)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.Insert(ctx, testProfile(1)))

	exists, err = store.Exists(ctx, 1)
	require.NoError(t, err)
	require.True(t, exists)

	profile, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Hi there", profile.Description)
}

func TestMemoryProfileStore_InsertConflict(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testProfile(1)))

	duplicate := testProfile(1)
	duplicate.Description = "Other"
	err := store.Insert(ctx, duplicate)
	require.ErrorIs(t, err, entity.ErrProfileExists)

	// Конфликт не перезаписывает существующую анкету
	profile, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Hi there", profile.Description)
}

func TestMemoryProfileStore_ConcurrentInsertSameUser(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Insert(ctx, testProfile(1))
		}(i)
	}
	wg.Wait()

	var conflicts int
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, entity.ErrProfileExists)
			conflicts++
		}
	}
	require.Equal(t, attempts-1, conflicts)
}

func TestMemoryProfileStore_UpdateDescription(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	err := store.UpdateDescription(ctx, 1, "New")
	require.ErrorIs(t, err, entity.ErrProfileNotFound)

	require.NoError(t, store.Insert(ctx, testProfile(1)))
	require.NoError(t, store.UpdateDescription(ctx, 1, "New"))

	profile, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "New", profile.Description)
}

func TestMemoryProfileStore_GetNotFound(t *testing.T) {
	store := NewMemoryProfileStore()

	_, err := store.Get(context.Background(), 404)
	require.ErrorIs(t, err, entity.ErrProfileNotFound)
}

func TestMemoryProfileStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testProfile(1)))

	profile, err := store.Get(ctx, 1)
	require.NoError(t, err)
	profile.Description = "Mutated"

	stored, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Hi there", stored.Description)
}
