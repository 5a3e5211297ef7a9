package app

import (
	"context"
	"fmt"
	"time"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
)

// AccessGuard проверка доступа к операциям, требующим завершённой регистрации.
type AccessGuard struct {
	profiles     port.ProfileStore
	storeTimeout time.Duration
}

// NewAccessGuard создаёт проверку регистрации поверх хранилища анкет.
func NewAccessGuard(profiles port.ProfileStore, storeTimeout time.Duration) *AccessGuard {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}
	return &AccessGuard{profiles: profiles, storeTimeout: storeTimeout}
}

// Authorize пропускает только зарегистрированных пользователей.
// Каждый вызов идёт в хранилище: регистрация могла завершиться
// между двумя обращениями, кешировать ответ нельзя.
func (g *AccessGuard) Authorize(ctx context.Context, userID int64) error {
	sctx, cancel := context.WithTimeout(ctx, g.storeTimeout)
	defer cancel()

	exists, err := g.profiles.Exists(sctx, userID)
	if err != nil {
		return fmt.Errorf("check registration: %w", entity.ErrStoreUnavailable)
	}
	if !exists {
		return entity.ErrNotRegistered
	}
	return nil
}
