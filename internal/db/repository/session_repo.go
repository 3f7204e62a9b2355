package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
)

type sessionStore interface {
	ListRecentCompletedSessions(ctx context.Context, arg queries.ListRecentCompletedSessionsParams) ([]queries.QuizSession, error)
}

// SessionRepository reads completed quiz sessions.
type SessionRepository struct {
	store sessionStore
}

func NewSessionRepository(store sessionStore) *SessionRepository {
	return &SessionRepository{store: store}
}

// RecentCompleted returns up to limit completed sessions for the player,
// newest first, with their answer logs decoded.
func (r *SessionRepository) RecentCompleted(ctx context.Context, player string, limit int) ([]adaptive.Session, error) {
	rows, err := r.store.ListRecentCompletedSessions(ctx, queries.ListRecentCompletedSessionsParams{
		PlayerName: player,
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]adaptive.Session, 0, len(rows))
	for _, row := range rows {
		var answers []adaptive.SessionAnswer
		if len(row.Answers) > 0 {
			if err := json.Unmarshal(row.Answers, &answers); err != nil {
				return nil, fmt.Errorf("decode answers for session %x: %w", row.ID.Bytes, err)
			}
		}
		s := adaptive.Session{
			PlayerID: row.PlayerName,
			Answers:  answers,
		}
		if row.CompletedAt.Valid {
			s.CompletedAt = row.CompletedAt.Time
		}
		out = append(out, s)
	}
	return out, nil
}
