package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/metrics"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
)

type stubBank struct {
	bank []question.Question
	err  error
}

func (s stubBank) Load(context.Context) ([]question.Question, error) {
	return s.bank, s.err
}

type stubMastery struct {
	records []adaptive.SkillMastery
	err     error
}

func (s stubMastery) ForPlayer(context.Context, string) ([]adaptive.SkillMastery, error) {
	return s.records, s.err
}

type stubSessions struct {
	sessions  []adaptive.Session
	err       error
	lastLimit int
}

func (s *stubSessions) RecentCompleted(_ context.Context, _ string, limit int) ([]adaptive.Session, error) {
	s.lastLimit = limit
	return s.sessions, s.err
}

func buildBank(perSkill int) []question.Question {
	prefixes := map[string]string{
		adaptive.SkillDecimals:     "dec",
		adaptive.SkillFractions:    "frac",
		adaptive.SkillWordProblems: "word",
	}
	var bank []question.Question
	for _, skill := range adaptive.TrackedSkills {
		for i := 0; i < perSkill; i++ {
			bank = append(bank, question.Question{
				ID:           fmt.Sprintf("%s-%02d", prefixes[skill], i),
				Skill:        skill,
				SubSkill:     fmt.Sprintf("sub-%d", i%3),
				Difficulty:   i%5 + 1,
				Text:         fmt.Sprintf("%s question %d", skill, i),
				Options:      []string{"a", "b", "c", "d"},
				CorrectIndex: i % 4,
				Active:       true,
			})
		}
	}
	return bank
}

func seededEngine(t *testing.T) *adaptive.Engine {
	t.Helper()
	e, err := adaptive.NewEngine(adaptive.DefaultConfig(), adaptive.EngineOptions{
		NewRand: func() adaptive.Random { return adaptive.NewSeededRandom(7) },
	})
	require.NoError(t, err)
	return e
}

func newTestService(t *testing.T, bank BankLoader, mastery MasteryLoader, sessions SessionLoader) (*Service, *metrics.Metrics) {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := NewService(bank, mastery, sessions, seededEngine(t), ServiceOptions{Metrics: m}, zerolog.New(io.Discard))
	return svc, m
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildQuiz(t *testing.T) {
	sessions := &stubSessions{}
	mastery := stubMastery{records: []adaptive.SkillMastery{
		{PlayerID: "Krishna", Skill: adaptive.SkillDecimals, CurrentScore: 35},
		{PlayerID: "Krishna", Skill: adaptive.SkillFractions, CurrentScore: 65},
		{PlayerID: "Krishna", Skill: adaptive.SkillWordProblems, CurrentScore: 50, RecentAccuracy: floatPtr(90)},
	}}
	svc, m := newTestService(t, stubBank{bank: buildBank(10)}, mastery, sessions)

	quiz, err := svc.BuildQuiz(context.Background(), "Krishna")
	require.NoError(t, err)

	assert.Equal(t, "Krishna", quiz.Player)
	assert.Equal(t, 15, quiz.Requested)
	assert.False(t, quiz.Short)
	require.Len(t, quiz.Questions, 15)
	assert.Equal(t, 2, sessions.lastLimit)
	assert.Equal(t, []string{adaptive.SkillDecimals}, quiz.Buckets.Skills(adaptive.CategoryWeak))

	seen := map[string]bool{}
	perSkill := map[string]int{}
	for i, q := range quiz.Questions {
		assert.False(t, seen[q.ID], "duplicate %s", q.ID)
		seen[q.ID] = true
		perSkill[q.Skill]++
		assert.NotEmpty(t, q.Text, "full question is returned")
		if i > 0 {
			assert.LessOrEqual(t, quiz.Questions[i-1].Difficulty, q.Difficulty)
		}
	}
	assert.Equal(t, 6, perSkill[adaptive.SkillDecimals])
	assert.Equal(t, 6, perSkill[adaptive.SkillFractions])
	assert.Equal(t, 3, perSkill[adaptive.SkillWordProblems])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuizzesBuilt))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ShortQuizzes))
}

func TestBuildQuizSkipsRecentQuestions(t *testing.T) {
	bank := buildBank(10)
	var answers []adaptive.SessionAnswer
	for _, q := range bank[10:15] { // fractions land in the strong bucket (3 slots)
		answers = append(answers, adaptive.SessionAnswer{QuestionID: q.ID, Skill: q.Skill})
	}
	sessions := &stubSessions{sessions: []adaptive.Session{
		{PlayerID: "Krishna", Answers: answers, CompletedAt: time.Now().Add(-time.Hour)},
	}}
	svc, _ := newTestService(t, stubBank{bank: bank}, stubMastery{}, sessions)

	quiz, err := svc.BuildQuiz(context.Background(), "Krishna")
	require.NoError(t, err)
	for _, q := range quiz.Questions {
		for _, a := range answers {
			assert.NotEqual(t, a.QuestionID, q.ID)
		}
	}
}

func TestBuildQuizShortBank(t *testing.T) {
	svc, m := newTestService(t, stubBank{bank: buildBank(2)}, stubMastery{}, &stubSessions{})

	quiz, err := svc.BuildQuiz(context.Background(), "Krishna")
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 6)
	assert.True(t, quiz.Short)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShortQuizzes))
}

func TestBuildQuizErrors(t *testing.T) {
	bad := buildBank(3)
	bad[0].Difficulty = 9

	tests := map[string]struct {
		bank     BankLoader
		mastery  MasteryLoader
		sessions SessionLoader
		player   string
		want     error
		contains string
	}{
		"missing player": {
			bank: stubBank{}, mastery: stubMastery{}, sessions: &stubSessions{},
			want: ErrMissingPlayer,
		},
		"bank error": {
			bank: stubBank{err: errors.New("redis and postgres down")}, mastery: stubMastery{}, sessions: &stubSessions{},
			player: "Krishna", contains: "redis and postgres down",
		},
		"mastery error": {
			bank: stubBank{bank: buildBank(3)}, mastery: stubMastery{err: errors.New("boom")}, sessions: &stubSessions{},
			player: "Krishna", contains: "load mastery",
		},
		"sessions error": {
			bank: stubBank{bank: buildBank(3)}, mastery: stubMastery{}, sessions: &stubSessions{err: errors.New("boom")},
			player: "Krishna", contains: "load sessions",
		},
		"malformed bank": {
			bank: stubBank{bank: bad}, mastery: stubMastery{}, sessions: &stubSessions{},
			player: "Krishna", want: adaptive.ErrInvalidQuestion,
		},
		"malformed mastery": {
			bank:     stubBank{bank: buildBank(3)},
			mastery:  stubMastery{records: []adaptive.SkillMastery{{Skill: adaptive.SkillDecimals, CurrentScore: 140}}},
			sessions: &stubSessions{},
			player:   "Krishna", want: adaptive.ErrInvalidMastery,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t, tt.bank, tt.mastery, tt.sessions)
			_, err := svc.BuildQuiz(context.Background(), tt.player)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	mastery := stubMastery{records: []adaptive.SkillMastery{
		{PlayerID: "Krishna", Skill: adaptive.SkillDecimals, CurrentScore: 45, NeedsReview: true},
		{PlayerID: "Krishna", Skill: adaptive.SkillFractions, CurrentScore: 72.6},
		{PlayerID: "Krishna", Skill: adaptive.SkillWordProblems, CurrentScore: 88},
	}}
	svc, _ := newTestService(t, stubBank{}, mastery, &stubSessions{})

	dash, err := svc.Dashboard(context.Background(), "Krishna")
	require.NoError(t, err)
	assert.Equal(t, []string{adaptive.SkillDecimals}, dash.NeedsReview)
	require.Len(t, dash.Focus, 3)
	assert.Equal(t, adaptive.FocusArea{Skill: "Decimal", Label: adaptive.LabelWorkingOn, Score: 45, Priority: adaptive.PriorityHigh}, dash.Focus[0])
	assert.Equal(t, adaptive.FocusArea{Skill: "Fractions", Label: adaptive.LabelBuilding, Score: 73, Priority: adaptive.PriorityMedium}, dash.Focus[1])
	assert.Equal(t, adaptive.FocusArea{Skill: "Word", Label: adaptive.LabelMaintaining, Score: 88, Priority: adaptive.PriorityLow}, dash.Focus[2])

	_, err = svc.Dashboard(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingPlayer)
}
