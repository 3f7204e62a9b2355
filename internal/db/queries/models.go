package queries

import "github.com/jackc/pgx/v5/pgtype"

// Question is a kb_questions row.
type Question struct {
	ID           string
	Skill        string
	SubSkill     pgtype.Text
	Difficulty   int16
	Text         string
	Options      []byte // jsonb array of strings
	CorrectIndex int32
	Explanation  pgtype.Text
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
}

// SkillMastery is a kb_skill_mastery row.
type SkillMastery struct {
	PlayerName     string
	Skill          string
	CurrentScore   float64
	RecentAccuracy pgtype.Float8
	NeedsReview    bool
	LastAssessedAt pgtype.Timestamptz
}

// QuizSession is a kb_quiz_sessions row.
type QuizSession struct {
	ID             pgtype.UUID
	PlayerName     string
	TotalQuestions int32
	CorrectAnswers int32
	Status         string
	Answers        []byte // jsonb array of answer records
	StartedAt      pgtype.Timestamptz
	CompletedAt    pgtype.Timestamptz
}

// UpsertQuestionParams carries the writable kb_questions columns.
type UpsertQuestionParams struct {
	ID           string
	Skill        string
	SubSkill     pgtype.Text
	Difficulty   int16
	Text         string
	Options      []byte
	CorrectIndex int32
	Explanation  pgtype.Text
	IsActive     bool
}

// ListRecentCompletedSessionsParams selects a player's latest completed sessions.
type ListRecentCompletedSessionsParams struct {
	PlayerName string
	Limit      int32
}
