package port

import (
	"context"

	"matchbot/internal/domain/entity"
)

// ProfileStore интерфейс хранилища анкет
type ProfileStore interface {
	// Exists проверяет, есть ли анкета для пользователя
	Exists(ctx context.Context, userID int64) (bool, error)

	// Insert атомарно сохраняет новую анкету.
	// Возвращает entity.ErrProfileExists, если анкета уже есть —
	// проверка и запись не разделяются, гонка двух вставок даёт одну строку.
	Insert(ctx context.Context, profile *entity.Profile) error

	// UpdateDescription обновляет описание существующей анкеты.
	// Возвращает entity.ErrProfileNotFound, если анкеты нет.
	UpdateDescription(ctx context.Context, userID int64, description string) error

	// Get возвращает анкету пользователя или entity.ErrProfileNotFound
	Get(ctx context.Context, userID int64) (*entity.Profile, error)
}
