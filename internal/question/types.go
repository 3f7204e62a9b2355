package question

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
)

// Question is a full bank entry. CorrectIndex is server-side only.
type Question struct {
	ID           string   `json:"id" yaml:"id"`
	Skill        string   `json:"skill" yaml:"skill"`
	SubSkill     string   `json:"sub_skill,omitempty" yaml:"sub_skill"`
	Difficulty   int      `json:"difficulty" yaml:"difficulty"`
	Text         string   `json:"text" yaml:"text"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
	Explanation  string   `json:"explanation,omitempty" yaml:"explanation"`
	Active       bool     `json:"is_active" yaml:"-"`
}

// Candidate returns the fields the selection engine works with.
func (q Question) Candidate() adaptive.Question {
	return adaptive.Question{
		ID:         q.ID,
		Skill:      q.Skill,
		SubSkill:   q.SubSkill,
		Difficulty: q.Difficulty,
		Active:     q.Active,
	}
}

// Candidates maps a bank to engine candidates, preserving order.
func Candidates(bank []Question) []adaptive.Question {
	out := make([]adaptive.Question, 0, len(bank))
	for _, q := range bank {
		out = append(out, q.Candidate())
	}
	return out
}

// Index keys a bank by question id.
func Index(bank []Question) map[string]Question {
	idx := make(map[string]Question, len(bank))
	for _, q := range bank {
		idx[q.ID] = q
	}
	return idx
}

// FromRow converts a kb_questions row.
func FromRow(row queries.Question) (Question, error) {
	var options []string
	if len(row.Options) > 0 {
		if err := json.Unmarshal(row.Options, &options); err != nil {
			return Question{}, fmt.Errorf("decode options for %s: %w", row.ID, err)
		}
	}
	return Question{
		ID:           row.ID,
		Skill:        row.Skill,
		SubSkill:     row.SubSkill.String,
		Difficulty:   int(row.Difficulty),
		Text:         row.Text,
		Options:      options,
		CorrectIndex: int(row.CorrectIndex),
		Explanation:  row.Explanation.String,
		Active:       row.IsActive,
	}, nil
}

// UpsertParams converts q into the kb_questions write shape.
func (q Question) UpsertParams() (queries.UpsertQuestionParams, error) {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return queries.UpsertQuestionParams{}, err
	}
	return queries.UpsertQuestionParams{
		ID:           q.ID,
		Skill:        q.Skill,
		SubSkill:     pgtype.Text{String: q.SubSkill, Valid: q.SubSkill != ""},
		Difficulty:   int16(q.Difficulty),
		Text:         q.Text,
		Options:      raw,
		CorrectIndex: int32(q.CorrectIndex),
		Explanation:  pgtype.Text{String: q.Explanation, Valid: q.Explanation != ""},
		IsActive:     q.Active,
	}, nil
}
