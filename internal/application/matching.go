package app

import (
	"context"
	"strings"
	"sync"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
	"matchbot/internal/metrics"
)

// Фазы сессии подбора пары
type matchPhase int

const (
	phaseOffering matchPhase = iota // Предлагаем кандидата
	phaseAwaiting                   // Ждём решения Like/Dislike
)

// MatchingSession сессия подбора пары после регистрации.
// Решения по кандидатам живут только внутри сессии и не сохраняются.
type MatchingSession struct {
	source port.CandidateSource

	mu     sync.Mutex
	phases map[int64]matchPhase
}

// NewMatchingSession создаёт сессию подбора с внешним источником кандидатов.
func NewMatchingSession(source port.CandidateSource) *MatchingSession {
	return &MatchingSession{
		source: source,
		phases: make(map[int64]matchPhase),
	}
}

// Begin переводит пользователя в начало подбора.
func (s *MatchingSession) Begin(userID int64) {
	s.mu.Lock()
	s.phases[userID] = phaseOffering
	s.mu.Unlock()
}

// Awaiting сообщает, ждёт ли сессия решения по кандидату.
func (s *MatchingSession) Awaiting(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases[userID] == phaseAwaiting
}

// PresentCandidate показывает следующего кандидата и ждёт решения.
// Ошибка источника не прерывает подбор: показывается стандартный текст.
func (s *MatchingSession) PresentCandidate(ctx context.Context, userID int64) (entity.Prompt, error) {
	text := msgMatchFound
	if s.source != nil {
		if candidate, err := s.source.Next(ctx, userID); err == nil && candidate != nil && candidate.Headline != "" {
			text = candidate.Headline
		}
	}

	s.mu.Lock()
	s.phases[userID] = phaseAwaiting
	s.mu.Unlock()

	return entity.NewPromptWithReplies(text, entity.DecisionLike, entity.DecisionDislike), nil
}

// RecordDecision фиксирует решение по кандидату. Нераспознанный ответ
// оставляет сессию в ожидании решения и повторяет вопрос.
func (s *MatchingSession) RecordDecision(ctx context.Context, userID int64, choice string) (entity.Prompt, error) {
	var ack string
	switch choice {
	case entity.DecisionLike:
		ack = msgLiked
	case entity.DecisionDislike:
		ack = msgDisliked
	default:
		return entity.NewPromptWithReplies(msgInvalidDecision, entity.DecisionLike, entity.DecisionDislike), nil
	}

	metrics.MatchDecisions.WithLabelValues(strings.ToLower(choice)).Inc()

	s.mu.Lock()
	s.phases[userID] = phaseOffering
	s.mu.Unlock()

	return entity.NewPromptWithReplies(ack+"\n"+msgMatchAgain, answerYes, answerNo), nil
}

// End завершает сессию пользователя.
func (s *MatchingSession) End(userID int64) {
	s.mu.Lock()
	delete(s.phases, userID)
	s.mu.Unlock()
}
