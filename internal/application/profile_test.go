package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"matchbot/internal/domain/entity"
	"matchbot/internal/infrastructure/storage"
)

func TestProfileService_ViewUnregistered(t *testing.T) {
	store := storage.NewMemoryProfileStore()
	service := NewProfileService(NewAccessGuard(store, time.Second), store, time.Second)

	prompt, err := service.View(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, msgNotRegistered, prompt.Text)
}

func TestProfileService_View(t *testing.T) {
	store := storage.NewMemoryProfileStore()
	service := NewProfileService(NewAccessGuard(store, time.Second), store, time.Second)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, &entity.Profile{
		UserID:      1,
		Gender:      entity.GenderFemale,
		Age:         30,
		Hobby:       "Reading",
		Location:    entity.Location{Latitude: 1.0, Longitude: 2.0},
		Description: "Hi there",
	}))

	prompt, err := service.View(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, prompt.Text, "Female")
	require.Contains(t, prompt.Text, "30")
	require.Contains(t, prompt.Text, "Reading")
	require.Contains(t, prompt.Text, "Hi there")
}
