package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]queries.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]queries.Question), args.Error(1)
}

func (m *mockQuestionStore) UpsertQuestion(ctx context.Context, arg queries.UpsertQuestionParams) error {
	return m.Called(ctx, arg).Error(0)
}

func TestQuestionRepository_All(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	expect := []queries.Question{
		{ID: "dec-01", Skill: "Decimal Operations", Difficulty: 2, IsActive: true},
		{ID: "frac-01", Skill: "Fractions & Mixed Numbers", Difficulty: 4, IsActive: false},
	}
	store.On("ListQuestions", mock.Anything).Return(expect, nil)

	got, err := repo.All(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_Upsert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := queries.UpsertQuestionParams{
		ID:         "word-07",
		Skill:      "Word Problems & Patterns",
		SubSkill:   pgtype.Text{String: "patterns", Valid: true},
		Difficulty: 3,
		Text:       "What comes next: 2, 4, 8, ...?",
		Options:    []byte(`["10","12","16","18"]`),
		IsActive:   true,
	}
	store.On("UpsertQuestion", mock.Anything, params).Return(errors.New("boom"))

	err := repo.Upsert(context.Background(), params)
	assert.EqualError(t, err, "boom")
	store.AssertExpectations(t)
}
