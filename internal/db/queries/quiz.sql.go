package queries

import "context"

const listQuestions = `
SELECT id, skill, sub_skill, difficulty, text, options, correct_index, explanation, is_active, created_at
FROM kb_questions
ORDER BY id
`

// ListQuestions returns the whole bank, inactive rows included.
func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Skill,
			&i.SubSkill,
			&i.Difficulty,
			&i.Text,
			&i.Options,
			&i.CorrectIndex,
			&i.Explanation,
			&i.IsActive,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertQuestion = `
INSERT INTO kb_questions (id, skill, sub_skill, difficulty, text, options, correct_index, explanation, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
    skill = EXCLUDED.skill,
    sub_skill = EXCLUDED.sub_skill,
    difficulty = EXCLUDED.difficulty,
    text = EXCLUDED.text,
    options = EXCLUDED.options,
    correct_index = EXCLUDED.correct_index,
    explanation = EXCLUDED.explanation,
    is_active = EXCLUDED.is_active
`

// UpsertQuestion inserts a bank entry or replaces the existing one.
func (q *Queries) UpsertQuestion(ctx context.Context, arg UpsertQuestionParams) error {
	_, err := q.db.Exec(ctx, upsertQuestion,
		arg.ID,
		arg.Skill,
		arg.SubSkill,
		arg.Difficulty,
		arg.Text,
		arg.Options,
		arg.CorrectIndex,
		arg.Explanation,
		arg.IsActive,
	)
	return err
}

const listSkillMastery = `
SELECT player_name, skill, current_score, recent_accuracy, needs_review, last_assessed_at
FROM kb_skill_mastery
WHERE player_name = $1
ORDER BY skill
`

// ListSkillMastery returns every mastery row of a player.
func (q *Queries) ListSkillMastery(ctx context.Context, playerName string) ([]SkillMastery, error) {
	rows, err := q.db.Query(ctx, listSkillMastery, playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SkillMastery
	for rows.Next() {
		var i SkillMastery
		if err := rows.Scan(
			&i.PlayerName,
			&i.Skill,
			&i.CurrentScore,
			&i.RecentAccuracy,
			&i.NeedsReview,
			&i.LastAssessedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecentCompletedSessions = `
SELECT id, player_name, total_questions, correct_answers, status, answers, started_at, completed_at
FROM kb_quiz_sessions
WHERE player_name = $1
  AND status = 'completed'
  AND completed_at IS NOT NULL
ORDER BY completed_at DESC
LIMIT $2
`

// ListRecentCompletedSessions returns a player's latest completed sessions, newest first.
func (q *Queries) ListRecentCompletedSessions(ctx context.Context, arg ListRecentCompletedSessionsParams) ([]QuizSession, error) {
	rows, err := q.db.Query(ctx, listRecentCompletedSessions, arg.PlayerName, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []QuizSession
	for rows.Next() {
		var i QuizSession
		if err := rows.Scan(
			&i.ID,
			&i.PlayerName,
			&i.TotalQuestions,
			&i.CorrectAnswers,
			&i.Status,
			&i.Answers,
			&i.StartedAt,
			&i.CompletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
