package port

import (
	"context"

	"matchbot/internal/domain/entity"
)

// CandidateSource интерфейс подбора кандидатов.
// Алгоритм подбора внешний, ядро только показывает результат.
type CandidateSource interface {
	// Next возвращает следующего кандидата для пользователя
	Next(ctx context.Context, userID int64) (*entity.Candidate, error)
}
