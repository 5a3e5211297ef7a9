package entity

import "errors"

// Ошибки ядра. Ни одна из них не фатальна для процесса:
// адаптер переводит их в сообщение пользователю.
var (
	// ErrNotRegistered операция доступна только после регистрации
	ErrNotRegistered = errors.New("user is not registered")

	// ErrProfileExists анкета для этого пользователя уже есть в хранилище
	ErrProfileExists = errors.New("profile already exists")

	// ErrProfileNotFound анкета не найдена в хранилище
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStoreUnavailable хранилище недоступно, операцию можно повторить
	ErrStoreUnavailable = errors.New("profile store is unavailable")
)
