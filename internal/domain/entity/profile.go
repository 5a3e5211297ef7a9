package entity

import "time"

// Варианты пола для клавиатуры быстрых ответов
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Location географическая точка пользователя
type Location struct {
	Latitude  float64
	Longitude float64
}

// Profile анкета пользователя после завершённой регистрации.
// Хранится в `users`; после создания меняется только Description.
type Profile struct {
	UserID       int64     // Telegram User ID, уникален в хранилище
	Gender       string    // Пол, как ввёл пользователь
	Age          int       // Возраст, строго больше нуля
	Hobby        string    // Хобби
	Location     Location  // Координаты
	PhotoRef     string    // Ссылка на сохранённое фото профиля
	Description  string    // Описание профиля
	RegisteredAt time.Time // Момент регистрации, выставляется при вставке
}
