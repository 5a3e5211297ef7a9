package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
	"matchbot/internal/metrics"
)

// defaultStoreTimeout ограничивает каждый вызов хранилища,
// чтобы диалог не завис на недоступной базе.
const defaultStoreTimeout = 5 * time.Second

// DialogEngine ведёт диалог регистрации: хранит шаг и черновик анкеты
// каждого пользователя, проверяет ответы и записывает готовую анкету.
type DialogEngine struct {
	profiles     port.ProfileStore
	media        port.MediaStore
	matching     *MatchingSession
	guard        *AccessGuard
	storeTimeout time.Duration

	mu     sync.Mutex
	states map[int64]*entity.DialogState
}

// NewDialogEngine создаёт движок диалога регистрации.
func NewDialogEngine(profiles port.ProfileStore, media port.MediaStore, matching *MatchingSession, guard *AccessGuard, storeTimeout time.Duration) *DialogEngine {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}
	return &DialogEngine{
		profiles:     profiles,
		media:        media,
		matching:     matching,
		guard:        guard,
		storeTimeout: storeTimeout,
		states:       make(map[int64]*entity.DialogState),
	}
}

// Start начинает регистрацию. Уже зарегистрированный пользователь
// получает уведомление, его состояние не меняется.
func (e *DialogEngine) Start(ctx context.Context, userID int64) (entity.Prompt, error) {
	sctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	exists, err := e.profiles.Exists(sctx, userID)
	cancel()
	if err != nil {
		metrics.StoreErrors.Inc()
		return entity.Prompt{}, fmt.Errorf("check registration: %w", entity.ErrStoreUnavailable)
	}
	if exists {
		return entity.NewPrompt(msgAlreadyRegistered), nil
	}

	e.mu.Lock()
	e.states[userID] = entity.NewDialogState(userID)
	e.mu.Unlock()

	return entity.NewPromptWithReplies(msgGender, entity.GenderMale, entity.GenderFemale), nil
}

// HandleText обрабатывает текстовый ответ на текущем шаге диалога.
// Невалидный ввод возвращает повтор того же шага, состояние не меняется.
func (e *DialogEngine) HandleText(ctx context.Context, userID int64, text string) (entity.Prompt, error) {
	e.mu.Lock()
	state, ok := e.states[userID]
	if !ok {
		e.mu.Unlock()
		return entity.NewPrompt(msgUseStart), nil
	}

	switch state.Step {
	case entity.StepGender:
		state.Draft.Gender = text
		state.Step = entity.StepAge
		e.mu.Unlock()
		return entity.NewPrompt(msgAskAge), nil

	case entity.StepAge:
		age, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || age <= 0 {
			e.mu.Unlock()
			return entity.NewPrompt(msgInvalidAge), nil
		}
		state.Draft.Age = age
		state.Step = entity.StepHobby
		e.mu.Unlock()
		return entity.NewPrompt(msgAskHobby), nil

	case entity.StepHobby:
		state.Draft.Hobby = text
		state.Step = entity.StepLocation
		e.mu.Unlock()
		return entity.NewPrompt(msgAskLocation), nil

	case entity.StepLocation:
		// На этом шаге ждём геолокацию, а не текст
		e.mu.Unlock()
		return entity.NewPrompt(msgInvalidLocation), nil

	case entity.StepPhoto:
		e.mu.Unlock()
		return entity.NewPrompt(msgAwaitingPhoto), nil

	case entity.StepDescription:
		state.Draft.Description = text
		e.mu.Unlock()
		return e.commit(ctx, userID, text)

	case entity.StepMatching:
		e.mu.Unlock()
		return e.handleMatching(ctx, userID, text)

	case entity.StepEditDescription:
		e.mu.Unlock()
		return e.commitDescription(ctx, userID, text)

	default:
		e.mu.Unlock()
		return entity.NewPrompt(msgUseStart), nil
	}
}

// HandleLocation обрабатывает присланную геолокацию.
func (e *DialogEngine) HandleLocation(ctx context.Context, userID int64, latitude, longitude float64) (entity.Prompt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[userID]
	if !ok {
		return entity.NewPrompt(msgUseStart), nil
	}
	if state.Step != entity.StepLocation {
		return e.repromptLocked(state), nil
	}

	state.Draft.Location = &entity.Location{Latitude: latitude, Longitude: longitude}
	state.Step = entity.StepPhoto
	return entity.NewPrompt(msgAskPhoto), nil
}

// HandlePhoto сохраняет фото профиля через хранилище медиа и двигает диалог дальше.
// При ошибке сохранения шаг не меняется, пользователь может прислать фото снова.
func (e *DialogEngine) HandlePhoto(ctx context.Context, userID int64, data []byte) (entity.Prompt, error) {
	e.mu.Lock()
	state, ok := e.states[userID]
	if !ok {
		e.mu.Unlock()
		return entity.NewPrompt(msgUseStart), nil
	}
	if state.Step != entity.StepPhoto {
		prompt := e.repromptLocked(state)
		e.mu.Unlock()
		return prompt, nil
	}
	e.mu.Unlock()

	ref, err := e.media.SavePhoto(ctx, userID, data)
	if err != nil {
		return entity.Prompt{}, fmt.Errorf("save photo: %w", err)
	}

	e.mu.Lock()
	state.Draft.PhotoRef = ref
	state.Step = entity.StepDescription
	e.mu.Unlock()

	return entity.NewPrompt(msgAskDescription), nil
}

// Cancel прерывает диалог и убирает состояние пользователя.
// Повторная отмена безвредна и возвращает тот же ответ.
func (e *DialogEngine) Cancel(ctx context.Context, userID int64) entity.Prompt {
	e.mu.Lock()
	delete(e.states, userID)
	e.mu.Unlock()
	e.matching.End(userID)

	return entity.NewPrompt(msgCancelled)
}

// BeginMatching входит в подбор пары и сразу предлагает кандидата.
// Доступно только зарегистрированным пользователям.
func (e *DialogEngine) BeginMatching(ctx context.Context, userID int64) (entity.Prompt, error) {
	if err := e.guard.Authorize(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotRegistered) {
			return entity.NewPrompt(msgNotRegistered), nil
		}
		return entity.Prompt{}, err
	}

	e.mu.Lock()
	e.states[userID] = &entity.DialogState{UserID: userID, Step: entity.StepMatching}
	e.mu.Unlock()
	e.matching.Begin(userID)

	return e.matching.PresentCandidate(ctx, userID)
}

// BeginEditDescription входит в режим редактирования описания.
// Доступно только зарегистрированным пользователям.
func (e *DialogEngine) BeginEditDescription(ctx context.Context, userID int64) (entity.Prompt, error) {
	if err := e.guard.Authorize(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotRegistered) {
			return entity.NewPrompt(msgNotRegistered), nil
		}
		return entity.Prompt{}, err
	}

	e.mu.Lock()
	e.states[userID] = &entity.DialogState{UserID: userID, Step: entity.StepEditDescription}
	e.mu.Unlock()

	return entity.NewPrompt(msgAskNewDescription), nil
}

// CurrentStep возвращает текущий шаг диалога пользователя.
func (e *DialogEngine) CurrentStep(userID int64) (entity.Step, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[userID]
	if !ok {
		return 0, false
	}
	return state.Step, true
}

// commit собирает анкету из черновика и атомарно записывает её.
// Уникальность обеспечивает Insert хранилища: при гонке двух завершений
// вторая вставка получает конфликт, а не дубликат строки.
func (e *DialogEngine) commit(ctx context.Context, userID int64, description string) (entity.Prompt, error) {
	e.mu.Lock()
	state, ok := e.states[userID]
	if !ok {
		e.mu.Unlock()
		return entity.NewPrompt(msgUseStart), nil
	}
	draft := state.Draft
	e.mu.Unlock()

	location := entity.Location{}
	if draft.Location != nil {
		location = *draft.Location
	}
	profile := &entity.Profile{
		UserID:       userID,
		Gender:       draft.Gender,
		Age:          draft.Age,
		Hobby:        draft.Hobby,
		Location:     location,
		PhotoRef:     draft.PhotoRef,
		Description:  description,
		RegisteredAt: time.Now().UTC(),
	}

	sctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	err := e.profiles.Insert(sctx, profile)
	cancel()
	switch {
	case errors.Is(err, entity.ErrProfileExists):
		// Анкета уже есть: либо вторая регистрация, либо проигранная гонка
		// двух одновременных завершений. Победителя не трогаем.
		metrics.RegistrationConflicts.Inc()
		e.mu.Lock()
		if current, ok := e.states[userID]; ok && current.Step == entity.StepDescription {
			delete(e.states, userID)
		}
		e.mu.Unlock()
		return entity.NewPrompt(msgAlreadyRegistered), nil
	case err != nil:
		// Черновик не трогаем: повторная отправка описания повторит запись
		metrics.StoreErrors.Inc()
		return entity.Prompt{}, fmt.Errorf("insert profile: %w", entity.ErrStoreUnavailable)
	}

	metrics.RegistrationsCompleted.Inc()

	e.mu.Lock()
	state.Draft = entity.Draft{}
	state.Step = entity.StepMatching
	e.states[userID] = state
	e.mu.Unlock()
	e.matching.Begin(userID)

	return entity.NewPromptWithReplies(msgProfileSaved+"\n"+msgStartMatching, answerYes, answerNo), nil
}

// handleMatching передаёт ответ в сессию подбора пары.
func (e *DialogEngine) handleMatching(ctx context.Context, userID int64, text string) (entity.Prompt, error) {
	if e.matching.Awaiting(userID) {
		return e.matching.RecordDecision(ctx, userID, text)
	}

	switch text {
	case answerYes:
		return e.matching.PresentCandidate(ctx, userID)
	case answerNo:
		e.drop(userID)
		e.matching.End(userID)
		return entity.NewPrompt(msgMatchingDone), nil
	default:
		return entity.NewPromptWithReplies(msgStartMatching, answerYes, answerNo), nil
	}
}

// commitDescription записывает новое описание анкеты.
func (e *DialogEngine) commitDescription(ctx context.Context, userID int64, text string) (entity.Prompt, error) {
	sctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	err := e.profiles.UpdateDescription(sctx, userID, text)
	cancel()
	switch {
	case errors.Is(err, entity.ErrProfileNotFound):
		e.drop(userID)
		return entity.NewPrompt(msgNotRegistered), nil
	case err != nil:
		metrics.StoreErrors.Inc()
		return entity.Prompt{}, fmt.Errorf("update description: %w", entity.ErrStoreUnavailable)
	}

	e.drop(userID)
	return entity.NewPrompt(msgDescriptionSaved), nil
}

// repromptLocked повторяет ожидание текущего шага. Вызывать под e.mu.
func (e *DialogEngine) repromptLocked(state *entity.DialogState) entity.Prompt {
	switch state.Step {
	case entity.StepGender:
		return entity.NewPromptWithReplies(msgGender, entity.GenderMale, entity.GenderFemale)
	case entity.StepAge:
		return entity.NewPrompt(msgAskAge)
	case entity.StepHobby:
		return entity.NewPrompt(msgAskHobby)
	case entity.StepLocation:
		return entity.NewPrompt(msgAskLocation)
	case entity.StepPhoto:
		return entity.NewPrompt(msgAwaitingPhoto)
	case entity.StepDescription:
		return entity.NewPrompt(msgAskDescription)
	case entity.StepEditDescription:
		return entity.NewPrompt(msgAskNewDescription)
	default:
		return entity.NewPromptWithReplies(msgStartMatching, answerYes, answerNo)
	}
}

func (e *DialogEngine) drop(userID int64) {
	e.mu.Lock()
	delete(e.states, userID)
	e.mu.Unlock()
}
