package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"matchbot/internal/domain/port"
)

// LocalStore сохраняет фотографии профиля в каталог на диске.
type LocalStore struct {
	dir string
}

// NewLocalStore создаёт хранилище фотографий в указанном каталоге.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// SavePhoto записывает фото под новым именем и возвращает путь к файлу.
func (s *LocalStore) SavePhoto(ctx context.Context, userID int64, data []byte) (string, error) {
	name := fmt.Sprintf("%d_%s.jpg", userID, uuid.NewString())
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}

// Проверка реализации интерфейса
var _ port.MediaStore = (*LocalStore)(nil)
