package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
)

// profileFile is a learner snapshot: mastery records plus recent sessions.
type profileFile struct {
	Player   string         `yaml:"player"`
	Mastery  []masteryEntry `yaml:"mastery"`
	Sessions []sessionEntry `yaml:"sessions"`
}

type masteryEntry struct {
	Skill          string   `yaml:"skill"`
	CurrentScore   float64  `yaml:"current_score"`
	RecentAccuracy *float64 `yaml:"recent_accuracy"`
	NeedsReview    bool     `yaml:"needs_review"`
}

type sessionEntry struct {
	CompletedAt time.Time `yaml:"completed_at"`
	Questions   []string  `yaml:"questions"`
}

func loadProfile(path string) (profileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profileFile{}, err
	}
	var p profileFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return profileFile{}, fmt.Errorf("%s: decode profile: %w", path, err)
	}
	return p, nil
}

func (p profileFile) mastery() []adaptive.SkillMastery {
	out := make([]adaptive.SkillMastery, 0, len(p.Mastery))
	for _, m := range p.Mastery {
		out = append(out, adaptive.SkillMastery{
			PlayerID:       p.Player,
			Skill:          m.Skill,
			CurrentScore:   m.CurrentScore,
			RecentAccuracy: m.RecentAccuracy,
			NeedsReview:    m.NeedsReview,
		})
	}
	return out
}

func (p profileFile) sessions() []adaptive.Session {
	out := make([]adaptive.Session, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		answers := make([]adaptive.SessionAnswer, 0, len(s.Questions))
		for _, id := range s.Questions {
			answers = append(answers, adaptive.SessionAnswer{QuestionID: id})
		}
		out = append(out, adaptive.Session{PlayerID: p.Player, Answers: answers, CompletedAt: s.CompletedAt})
	}
	return out
}
