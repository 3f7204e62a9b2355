package adaptive

import (
	"fmt"
	"sort"
)

// EngineOptions configures how an Engine draws randomness.
type EngineOptions struct {
	// NewRand returns the source for a single selection run. Defaults to
	// NewRandom. Tests substitute a fixed or seeded source.
	NewRand func() Random
}

// Engine assembles adaptive quizzes. It is safe for concurrent use: each call
// owns its coverage map, exposure set and random source.
type Engine struct {
	cfg     Config
	newRand func() Random
}

// NewEngine validates cfg and returns an Engine.
func NewEngine(cfg Config, opts EngineOptions) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.NewRand == nil {
		opts.NewRand = NewRandom
	}
	return &Engine{cfg: cfg, newRand: opts.NewRand}, nil
}

// Config returns the engine's policy constants.
func (e *Engine) Config() Config {
	return e.cfg
}

// Selection is the outcome of one selection run.
type Selection struct {
	Questions  []Question
	Buckets    Bucketing
	Picked     map[Category]int // questions chosen by scoring, per bucket
	Backfilled int              // questions added by random back-fill
}

// Short reports whether fewer questions than the quiz size were available.
func (s Selection) Short(size int) bool {
	return len(s.Questions) < size
}

// SelectQuestions returns min(QuizSize, active questions) distinct questions
// ordered by non-decreasing difficulty.
func (e *Engine) SelectQuestions(playerID string, bank []Question, mastery []SkillMastery, sessions []Session) ([]Question, error) {
	sel, err := e.Select(playerID, bank, mastery, sessions)
	if err != nil {
		return nil, err
	}
	return sel.Questions, nil
}

// Select runs the full pipeline: categorize, build the exposure set, select
// weak then medium then strong with a shared coverage map, back-fill, and
// order by difficulty.
func (e *Engine) Select(playerID string, bank []Question, mastery []SkillMastery, sessions []Session) (Selection, error) {
	if err := ValidateBank(bank); err != nil {
		return Selection{}, err
	}
	if err := ValidateMastery(mastery); err != nil {
		return Selection{}, err
	}

	rng := e.newRand()
	if rng == nil {
		return Selection{}, fmt.Errorf("%w: random source is nil", ErrInvalidConfig)
	}
	buckets := CategorizeSkills(forPlayer(mastery, playerID), e.cfg)
	recent := recentQuestionIDs(sessions, playerID, e.cfg.RecentSessions)
	coverage := make(CoverageMap)

	sel := Selection{
		Buckets: buckets,
		Picked:  make(map[Category]int, 3),
	}

	// Order matters: each category sees the coverage left by the previous one.
	var selected []Question
	for _, cat := range []Category{CategoryWeak, CategoryMedium, CategoryStrong} {
		picked := selectForCategory(bank, buckets.Skills(cat), e.cfg.Allocation(cat), recent, coverage, e.cfg.Scoring, rng)
		sel.Picked[cat] = len(picked)
		selected = append(selected, picked...)
	}

	selected, sel.Backfilled = backfill(selected, bank, e.cfg.QuizSize, rng)
	if len(selected) > e.cfg.QuizSize {
		selected = selected[:e.cfg.QuizSize]
	}

	sel.Questions = orderByDifficulty(selected, rng)
	return sel, nil
}

// FocusSummary validates mastery and returns the dashboard focus areas.
func (e *Engine) FocusSummary(mastery []SkillMastery) ([]FocusArea, error) {
	if err := ValidateMastery(mastery); err != nil {
		return nil, err
	}
	return DailyFocusSummary(mastery, e.cfg), nil
}

// SelectAdaptiveQuestions runs a default-configured engine once.
func SelectAdaptiveQuestions(playerID string, bank []Question, mastery []SkillMastery, sessions []Session) ([]Question, error) {
	e, err := NewEngine(DefaultConfig(), EngineOptions{})
	if err != nil {
		return nil, fmt.Errorf("default engine: %w", err)
	}
	return e.SelectQuestions(playerID, bank, mastery, sessions)
}

// forPlayer drops records that explicitly belong to another player.
func forPlayer(mastery []SkillMastery, playerID string) []SkillMastery {
	out := make([]SkillMastery, 0, len(mastery))
	for _, m := range mastery {
		if m.PlayerID != "" && playerID != "" && m.PlayerID != playerID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// recentQuestionIDs collects question ids from the window most recent
// completed sessions of the player. Callers pass completed sessions only.
// They are ordered newest first by CompletedAt when every session carries
// one; otherwise caller order is kept.
func recentQuestionIDs(sessions []Session, playerID string, window int) RecentSet {
	completed := make([]Session, 0, len(sessions))
	dated := true
	for _, s := range sessions {
		if s.PlayerID != "" && playerID != "" && s.PlayerID != playerID {
			continue
		}
		if s.CompletedAt.IsZero() {
			dated = false
		}
		completed = append(completed, s)
	}
	if dated {
		sort.SliceStable(completed, func(i, j int) bool {
			return completed[i].CompletedAt.After(completed[j].CompletedAt)
		})
	}
	if len(completed) > window {
		completed = completed[:window]
	}

	recent := make(RecentSet)
	for _, s := range completed {
		for _, a := range s.Answers {
			if a.QuestionID != "" {
				recent[a.QuestionID] = struct{}{}
			}
		}
	}
	return recent
}
