package storage

import (
	"context"
	"sync"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
)

// MemoryProfileStore in-memory хранилище анкет.
// Используется в тестах и при запуске без базы данных.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[int64]*entity.Profile
}

// NewMemoryProfileStore создаёт новое in-memory хранилище.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		profiles: make(map[int64]*entity.Profile),
	}
}

// Exists проверяет наличие анкеты пользователя.
func (s *MemoryProfileStore) Exists(ctx context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.profiles[userID]
	return ok, nil
}

// Insert сохраняет новую анкету. Проверка и запись выполняются
// под одной блокировкой, поэтому гонка двух вставок даёт одну строку.
func (s *MemoryProfileStore) Insert(ctx context.Context, profile *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.UserID]; ok {
		return entity.ErrProfileExists
	}

	stored := *profile
	s.profiles[profile.UserID] = &stored
	return nil
}

// UpdateDescription обновляет описание существующей анкеты.
func (s *MemoryProfileStore) UpdateDescription(ctx context.Context, userID int64, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return entity.ErrProfileNotFound
	}
	profile.Description = description
	return nil
}

// Get возвращает копию анкеты пользователя.
func (s *MemoryProfileStore) Get(ctx context.Context, userID int64) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, entity.ErrProfileNotFound
	}

	copied := *profile
	return &copied, nil
}

// Проверка реализации интерфейса
var _ port.ProfileStore = (*MemoryProfileStore)(nil)
