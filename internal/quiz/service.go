// Package quiz assembles adaptive quizzes for players from stored bank,
// mastery and session data.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/metrics"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
)

var ErrMissingPlayer = errors.New("player is required")

// BankLoader is implemented by question.Bank.
type BankLoader interface {
	Load(ctx context.Context) ([]question.Question, error)
}

// MasteryLoader is implemented by repository.MasteryRepository.
type MasteryLoader interface {
	ForPlayer(ctx context.Context, player string) ([]adaptive.SkillMastery, error)
}

// SessionLoader is implemented by repository.SessionRepository.
type SessionLoader interface {
	RecentCompleted(ctx context.Context, player string, limit int) ([]adaptive.Session, error)
}

// Quiz is one assembled quiz, ordered by non-decreasing difficulty.
type Quiz struct {
	ID        uuid.UUID
	Player    string
	Questions []question.Question
	Requested int
	Short     bool
	Buckets   adaptive.Bucketing
	CreatedAt time.Time
}

// Dashboard is the player's focus summary plus skills flagged for review.
type Dashboard struct {
	Player      string
	Focus       []adaptive.FocusArea
	NeedsReview []string
}

// Service wires the loaders to the selection engine.
type Service struct {
	bank     BankLoader
	mastery  MasteryLoader
	sessions SessionLoader
	engine   *adaptive.Engine
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	now      func() time.Time
}

// ServiceOptions carries optional collaborators.
type ServiceOptions struct {
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func NewService(bank BankLoader, mastery MasteryLoader, sessions SessionLoader, engine *adaptive.Engine, opts ServiceOptions, logger zerolog.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		bank:     bank,
		mastery:  mastery,
		sessions: sessions,
		engine:   engine,
		metrics:  opts.Metrics,
		logger:   logger.With().Str("component", "quiz_service").Logger(),
		now:      opts.Now,
	}
}

// BuildQuiz loads the bank, the player's mastery and their recent completed
// sessions, then runs the engine. A bank too small for a full quiz yields a
// short quiz, not an error.
func (s *Service) BuildQuiz(ctx context.Context, player string) (Quiz, error) {
	if player == "" {
		return Quiz{}, ErrMissingPlayer
	}
	start := s.now()
	cfg := s.engine.Config()

	bank, err := s.bank.Load(ctx)
	if err != nil {
		return Quiz{}, err
	}
	mastery, err := s.mastery.ForPlayer(ctx, player)
	if err != nil {
		return Quiz{}, fmt.Errorf("load mastery: %w", err)
	}
	sessions, err := s.sessions.RecentCompleted(ctx, player, cfg.RecentSessions)
	if err != nil {
		return Quiz{}, fmt.Errorf("load sessions: %w", err)
	}

	sel, err := s.engine.Select(player, question.Candidates(bank), mastery, sessions)
	if err != nil {
		return Quiz{}, fmt.Errorf("select questions: %w", err)
	}

	idx := question.Index(bank)
	questions := make([]question.Question, 0, len(sel.Questions))
	for _, c := range sel.Questions {
		questions = append(questions, idx[c.ID])
	}

	quiz := Quiz{
		ID:        uuid.New(),
		Player:    player,
		Questions: questions,
		Requested: cfg.QuizSize,
		Short:     sel.Short(cfg.QuizSize),
		Buckets:   sel.Buckets,
		CreatedAt: s.now(),
	}

	s.metrics.ObserveQuiz(s.now().Sub(start), quiz.Short)
	evt := s.logger.Info()
	if quiz.Short {
		evt = s.logger.Warn()
	}
	evt.Str("player", player).
		Str("quiz_id", quiz.ID.String()).
		Int("questions", len(questions)).
		Int("bank", len(bank)).
		Int("backfilled", sel.Backfilled).
		Strs("weak", sel.Buckets.Skills(adaptive.CategoryWeak)).
		Bool("short", quiz.Short).
		Msg("quiz assembled")

	return quiz, nil
}

// Dashboard returns the focus summary for the player.
func (s *Service) Dashboard(ctx context.Context, player string) (Dashboard, error) {
	if player == "" {
		return Dashboard{}, ErrMissingPlayer
	}
	mastery, err := s.mastery.ForPlayer(ctx, player)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load mastery: %w", err)
	}
	focus, err := s.engine.FocusSummary(mastery)
	if err != nil {
		return Dashboard{}, err
	}

	var review []string
	for _, m := range mastery {
		if m.NeedsReview {
			review = append(review, m.Skill)
		}
	}
	return Dashboard{Player: player, Focus: focus, NeedsReview: review}, nil
}
