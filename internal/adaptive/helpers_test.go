package adaptive

import (
	"fmt"
	"time"
)

// fixedRand returns a constant jitter and never reorders.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64              { return r.v }
func (fixedRand) Shuffle(_ int, _ func(i, j int)) {}

func fixedSource(v float64) func() Random {
	return func() Random { return fixedRand{v: v} }
}

var skillPrefixes = map[string]string{
	SkillDecimals:     "dec",
	SkillFractions:    "frac",
	SkillWordProblems: "word",
}

// makeBank builds perSkill active questions for every tracked skill with
// difficulties cycling 1..5 and three sub-skills per skill.
func makeBank(perSkill int) []Question {
	var bank []Question
	for _, skill := range TrackedSkills {
		for i := 0; i < perSkill; i++ {
			bank = append(bank, Question{
				ID:         fmt.Sprintf("%s-%02d", skillPrefixes[skill], i),
				Skill:      skill,
				SubSkill:   fmt.Sprintf("sub-%d", i%3),
				Difficulty: i%5 + 1,
				Active:     true,
			})
		}
	}
	return bank
}

func mastery(skill string, current float64) SkillMastery {
	return SkillMastery{PlayerID: "Krishna", Skill: skill, CurrentScore: current}
}

func floatPtr(v float64) *float64 { return &v }

func completedSession(at time.Time, ids ...string) Session {
	s := Session{PlayerID: "Krishna", CompletedAt: at}
	for _, id := range ids {
		s.Answers = append(s.Answers, SessionAnswer{QuestionID: id, Timestamp: at})
	}
	return s
}

func ids(qs []Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}
