package adaptive

import "fmt"

// Allocation is the question budget and preferred difficulties of one bucket.
type Allocation struct {
	Count        int
	Difficulties []int
}

// ScoringConfig holds the question priority constants.
type ScoringConfig struct {
	BaseScore            float64 // default: 100
	DifficultyMatchBonus float64 // default: 30
	DistancePenalty      float64 // default: 15 per step outside the target range
	RecencyPenalty       float64 // default: 200
	NewSubSkillBonus     float64 // default: 20
	RepeatSubSkillCost   float64 // default: 10 per prior selection
	JitterMax            float64 // default: 10, jitter drawn from [0, JitterMax)
}

// Config holds the engine's policy constants.
type Config struct {
	TrackedSkills   []string
	QuizSize        int
	WeakThreshold   float64 // score < WeakThreshold is weak
	StrongThreshold float64 // score >= StrongThreshold is strong
	DefaultScore    float64 // used when a tracked skill has no mastery record
	RecentSessions  int     // completed sessions considered for recency exclusion

	Weak   Allocation
	Medium Allocation
	Strong Allocation

	Scoring ScoringConfig
}

// DefaultScoringConfig returns production scoring constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		BaseScore:            100,
		DifficultyMatchBonus: 30,
		DistancePenalty:      15,
		RecencyPenalty:       200,
		NewSubSkillBonus:     20,
		RepeatSubSkillCost:   10,
		JitterMax:            10,
	}
}

// DefaultConfig returns the 40/40/20 policy over a 15-question quiz.
func DefaultConfig() Config {
	return Config{
		TrackedSkills:   append([]string(nil), TrackedSkills...),
		QuizSize:        15,
		WeakThreshold:   60,
		StrongThreshold: 80,
		DefaultScore:    50,
		RecentSessions:  2,
		Weak:            Allocation{Count: 6, Difficulties: []int{1, 2}},
		Medium:          Allocation{Count: 6, Difficulties: []int{2, 3}},
		Strong:          Allocation{Count: 3, Difficulties: []int{3, 4, 5}},
		Scoring:         DefaultScoringConfig(),
	}
}

// Allocation returns the allocation for a bucket.
func (c Config) Allocation(cat Category) Allocation {
	switch cat {
	case CategoryWeak:
		return c.Weak
	case CategoryMedium:
		return c.Medium
	default:
		return c.Strong
	}
}

// Validate checks the config is usable by the engine. The rebalancing rules
// are only defined for exactly three tracked skills.
func (c Config) Validate() error {
	if len(c.TrackedSkills) != trackedSkillCount {
		return fmt.Errorf("%w: got %d", ErrTrackedSkillCount, len(c.TrackedSkills))
	}
	if c.QuizSize <= 0 {
		return fmt.Errorf("%w: quiz size must be positive", ErrInvalidConfig)
	}
	if c.WeakThreshold > c.StrongThreshold {
		return fmt.Errorf("%w: weak threshold above strong threshold", ErrInvalidConfig)
	}
	if c.RecentSessions < 0 {
		return fmt.Errorf("%w: negative recent session window", ErrInvalidConfig)
	}
	for _, cat := range []Category{CategoryWeak, CategoryMedium, CategoryStrong} {
		a := c.Allocation(cat)
		if a.Count < 0 {
			return fmt.Errorf("%w: negative %s allocation", ErrInvalidConfig, cat)
		}
		if len(a.Difficulties) == 0 {
			return fmt.Errorf("%w: %s allocation has no target difficulties", ErrInvalidConfig, cat)
		}
		for _, d := range a.Difficulties {
			if d < MinDifficulty || d > MaxDifficulty {
				return fmt.Errorf("%w: %s target difficulty %d out of range", ErrInvalidConfig, cat, d)
			}
		}
	}
	return nil
}
