// Package adaptive builds personalized quizzes from a question bank, a learner's
// per-skill mastery and their most recent completed sessions.
//
// Every call is a pure computation over the snapshot it receives: no I/O, no
// state kept between calls. The only non-determinism comes from the Random
// source the Engine is constructed with.
package adaptive

import "time"

// Tracked skills.
const (
	SkillDecimals     = "Decimal Operations"
	SkillFractions    = "Fractions & Mixed Numbers"
	SkillWordProblems = "Word Problems & Patterns"
)

// TrackedSkills is the fixed skill set every learner is categorized over.
var TrackedSkills = []string{SkillDecimals, SkillFractions, SkillWordProblems}

// Question is the engine's view of a bank entry.
type Question struct {
	ID         string `json:"id"`
	Skill      string `json:"skill"`
	SubSkill   string `json:"sub_skill"`
	Difficulty int    `json:"difficulty"`
	Active     bool   `json:"is_active"`
}

// SkillMastery is one (player, skill) mastery snapshot.
type SkillMastery struct {
	PlayerID       string   `json:"player_name"`
	Skill          string   `json:"skill"`
	CurrentScore   float64  `json:"current_score"`
	RecentAccuracy *float64 `json:"recent_accuracy,omitempty"`
	NeedsReview    bool     `json:"needs_review"`
}

// Score returns the value used for bucketing: the better of recent accuracy
// and current score.
func (m SkillMastery) Score() float64 {
	recent := 0.0
	if m.RecentAccuracy != nil {
		recent = *m.RecentAccuracy
	}
	return max(recent, m.CurrentScore)
}

// SessionAnswer is a single answered question inside a completed session.
type SessionAnswer struct {
	QuestionID string    `json:"questionId"`
	Skill      string    `json:"skill"`
	SubSkill   string    `json:"subSkill,omitempty"`
	Correct    bool      `json:"isCorrect"`
	Timestamp  time.Time `json:"timestamp"`
}

// Session is a completed quiz session.
type Session struct {
	PlayerID    string          `json:"player_name"`
	Answers     []SessionAnswer `json:"answers"`
	CompletedAt time.Time       `json:"completed_at"`
}

// SkillScore pairs a skill with the score it was bucketed by.
type SkillScore struct {
	Skill string
	Score float64
}

// Bucketing partitions the tracked skills into weak, medium and strong.
type Bucketing struct {
	Weak   []SkillScore
	Medium []SkillScore
	Strong []SkillScore
}

// Category identifies one of the three buckets.
type Category string

const (
	CategoryWeak   Category = "weak"
	CategoryMedium Category = "medium"
	CategoryStrong Category = "strong"
)

// Skills returns the skill names in the given bucket.
func (b Bucketing) Skills(c Category) []string {
	var list []SkillScore
	switch c {
	case CategoryWeak:
		list = b.Weak
	case CategoryMedium:
		list = b.Medium
	case CategoryStrong:
		list = b.Strong
	}
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Skill)
	}
	return names
}

// Focus priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Focus labels shown on the dashboard.
const (
	LabelWorkingOn   = "Working on"
	LabelBuilding    = "Building"
	LabelMaintaining = "Maintaining"
)

// FocusArea is a display-oriented summary of one tracked skill.
type FocusArea struct {
	Skill    string `json:"skill"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	Priority string `json:"priority"`
}
