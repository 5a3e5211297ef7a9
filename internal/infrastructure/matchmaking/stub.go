package matchmaking

import (
	"context"

	"matchbot/internal/domain/entity"
	"matchbot/internal/domain/port"
)

// StubCandidateSource заглушка подбора: всегда находит кандидата.
// Настоящий алгоритм подбора живёт вне этого сервиса.
type StubCandidateSource struct{}

// NewStubCandidateSource создаёт заглушку источника кандидатов.
func NewStubCandidateSource() *StubCandidateSource {
	return &StubCandidateSource{}
}

// Next возвращает одного и того же кандидата для любого пользователя.
func (s *StubCandidateSource) Next(ctx context.Context, userID int64) (*entity.Candidate, error) {
	return &entity.Candidate{
		Headline: "I have found a potential match for you. Are you interested?",
	}, nil
}

// Проверка реализации интерфейса
var _ port.CandidateSource = (*StubCandidateSource)(nil)
