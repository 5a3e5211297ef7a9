package port

import "context"

// MediaStore интерфейс хранилища фотографий профиля
type MediaStore interface {
	// SavePhoto сохраняет фото и возвращает ссылку на него
	SavePhoto(ctx context.Context, userID int64, data []byte) (string, error)
}
