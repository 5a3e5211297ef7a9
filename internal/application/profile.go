package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
)

// ProfileService показ сохранённой анкеты.
type ProfileService struct {
	guard        *AccessGuard
	profiles     port.ProfileStore
	storeTimeout time.Duration
}

// NewProfileService создаёт сервис просмотра анкеты.
func NewProfileService(guard *AccessGuard, profiles port.ProfileStore, storeTimeout time.Duration) *ProfileService {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}
	return &ProfileService{guard: guard, profiles: profiles, storeTimeout: storeTimeout}
}

// View возвращает анкету пользователя в текстовом виде.
func (s *ProfileService) View(ctx context.Context, userID int64) (entity.Prompt, error) {
	if err := s.guard.Authorize(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotRegistered) {
			return entity.NewPrompt(msgNotRegistered), nil
		}
		return entity.Prompt{}, err
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	profile, err := s.profiles.Get(sctx, userID)
	switch {
	case errors.Is(err, entity.ErrProfileNotFound):
		return entity.NewPrompt(msgProfileEmpty), nil
	case err != nil:
		return entity.Prompt{}, fmt.Errorf("get profile: %w", entity.ErrStoreUnavailable)
	}

	return entity.NewPrompt(formatProfile(profile)), nil
}

func formatProfile(p *entity.Profile) string {
	return fmt.Sprintf(
		"Your profile:\nGender: %s\nAge: %d\nHobby: %s\nLocation: %.4f, %.4f\nDescription: %s",
		p.Gender, p.Age, p.Hobby, p.Location.Latitude, p.Location.Longitude, p.Description,
	)
}
