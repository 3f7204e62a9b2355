package adaptive

import (
	"errors"
	"fmt"
	"math"
)

// Difficulty bounds for bank questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

var (
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrInvalidMastery    = errors.New("invalid mastery record")
	ErrInvalidConfig     = errors.New("invalid engine config")
	ErrTrackedSkillCount = errors.New("rebalancing rules require exactly 3 tracked skills")
)

// ValidateQuestion rejects a question the scorer cannot evaluate.
func ValidateQuestion(q Question) error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidQuestion)
	}
	if q.Skill == "" {
		return fmt.Errorf("%w: question %s has no skill", ErrInvalidQuestion, q.ID)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: question %s difficulty %d outside %d-%d",
			ErrInvalidQuestion, q.ID, q.Difficulty, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// ValidateBank validates every question and rejects repeated ids.
func ValidateBank(bank []Question) error {
	seen := make(map[string]struct{}, len(bank))
	for _, q := range bank {
		if err := ValidateQuestion(q); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateQuestion, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// ValidateMastery rejects records with an empty skill or scores outside 0-100.
// Non-finite scores are rejected too.
func ValidateMastery(records []SkillMastery) error {
	for _, m := range records {
		if m.Skill == "" {
			return fmt.Errorf("%w: missing skill", ErrInvalidMastery)
		}
		if !validPercent(m.CurrentScore) {
			return fmt.Errorf("%w: %s current score %.2f outside 0-100", ErrInvalidMastery, m.Skill, m.CurrentScore)
		}
		if m.RecentAccuracy != nil && !validPercent(*m.RecentAccuracy) {
			return fmt.Errorf("%w: %s recent accuracy %.2f outside 0-100", ErrInvalidMastery, m.Skill, *m.RecentAccuracy)
		}
	}
	return nil
}

// validPercent reports whether v is a finite value in 0-100.
func validPercent(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v <= 100
}
