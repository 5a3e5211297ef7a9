package entity

// Решения по предложенному кандидату
const (
	DecisionLike    = "Like"
	DecisionDislike = "Dislike"
)

// Candidate потенциальная пара, предложенная во время подбора.
// Выбор кандидата делает внешний источник, движок его только показывает.
type Candidate struct {
	Headline string
}
