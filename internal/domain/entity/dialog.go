package entity

// Step шаг диалога регистрации
type Step int

const (
	StepGender Step = iota // Выбор пола
	StepAge                // Ввод возраста
	StepHobby              // Ввод хобби
	StepLocation           // Отправка геолокации
	StepPhoto              // Загрузка фото профиля
	StepDescription        // Описание профиля (финальный шаг анкеты)
	StepMatching           // Диалог подбора пары
	StepEditDescription    // Редактирование описания профиля
)

// String возвращает имя шага для логов.
func (s Step) String() string {
	switch s {
	case StepGender:
		return "gender"
	case StepAge:
		return "age"
	case StepHobby:
		return "hobby"
	case StepLocation:
		return "location"
	case StepPhoto:
		return "photo"
	case StepDescription:
		return "description"
	case StepMatching:
		return "matching"
	case StepEditDescription:
		return "edit_description"
	default:
		return "unknown"
	}
}

// Draft частично заполненная анкета текущего диалога.
// Поле заполняется только обработчиком своего шага.
type Draft struct {
	Gender      string
	Age         int
	Hobby       string
	Location    *Location
	PhotoRef    string
	Description string
}

// DialogState состояние диалога одного пользователя.
// Живёт только пока регистрация не завершена, в памяти движка.
type DialogState struct {
	UserID int64
	Step   Step
	Draft  Draft
}

// NewDialogState создаёт состояние нового диалога с первого шага
func NewDialogState(userID int64) *DialogState {
	return &DialogState{
		UserID: userID,
		Step:   StepGender,
	}
}
