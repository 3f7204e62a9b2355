package repository

import (
	"context"

	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]queries.Question, error)
	UpsertQuestion(ctx context.Context, arg queries.UpsertQuestionParams) error
}

// QuestionRepository wraps the kb_questions queries.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// All returns every bank row; callers filter inactive entries themselves.
func (r *QuestionRepository) All(ctx context.Context) ([]queries.Question, error) {
	return r.store.ListQuestions(ctx)
}

// Upsert stores a bank entry, replacing any row with the same id.
func (r *QuestionRepository) Upsert(ctx context.Context, params queries.UpsertQuestionParams) error {
	return r.store.UpsertQuestion(ctx, params)
}
