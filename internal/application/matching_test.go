package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"matchbot/internal/domain/entity"
)

type stubCandidates struct {
	headline string
	err      error
}

func (s *stubCandidates) Next(ctx context.Context, userID int64) (*entity.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Candidate{Headline: s.headline}, nil
}

func TestMatchingSession_PresentCandidate(t *testing.T) {
	session := NewMatchingSession(&stubCandidates{headline: "Someone nearby shares your hobbies."})
	session.Begin(1)

	prompt, err := session.PresentCandidate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Someone nearby shares your hobbies.", prompt.Text)
	require.Equal(t, []string{entity.DecisionLike, entity.DecisionDislike}, prompt.QuickReplies)
	require.True(t, session.Awaiting(1))
}

func TestMatchingSession_PresentCandidateSourceFailure(t *testing.T) {
	session := NewMatchingSession(&stubCandidates{err: errors.New("source is down")})
	session.Begin(1)

	// Подбор не прерывается: показывается стандартный текст
	prompt, err := session.PresentCandidate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, msgMatchFound, prompt.Text)
	require.True(t, session.Awaiting(1))
}

func TestMatchingSession_InvalidDecision(t *testing.T) {
	session := NewMatchingSession(nil)
	session.Begin(1)
	ctx := context.Background()

	_, err := session.PresentCandidate(ctx, 1)
	require.NoError(t, err)

	prompt, err := session.RecordDecision(ctx, 1, "Maybe")
	require.NoError(t, err)
	require.Equal(t, msgInvalidDecision, prompt.Text)
	require.Equal(t, []string{entity.DecisionLike, entity.DecisionDislike}, prompt.QuickReplies)

	// Сессия всё ещё ждёт решения
	require.True(t, session.Awaiting(1))
}

func TestMatchingSession_DecisionLoopsBack(t *testing.T) {
	session := NewMatchingSession(nil)
	ctx := context.Background()

	for _, choice := range []string{entity.DecisionLike, entity.DecisionDislike} {
		session.Begin(1)
		_, err := session.PresentCandidate(ctx, 1)
		require.NoError(t, err)

		prompt, err := session.RecordDecision(ctx, 1, choice)
		require.NoError(t, err)
		require.Contains(t, prompt.Text, msgMatchAgain)
		require.Equal(t, []string{answerYes, answerNo}, prompt.QuickReplies)

		// После решения сессия возвращается к предложению кандидата
		require.False(t, session.Awaiting(1))
	}
}

func TestMatchingSession_End(t *testing.T) {
	session := NewMatchingSession(nil)
	session.Begin(1)

	_, err := session.PresentCandidate(context.Background(), 1)
	require.NoError(t, err)

	session.End(1)
	require.False(t, session.Awaiting(1))
}
