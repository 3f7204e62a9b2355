package repository

import (
	"context"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
)

type masteryStore interface {
	ListSkillMastery(ctx context.Context, playerName string) ([]queries.SkillMastery, error)
}

// MasteryRepository loads per-skill mastery snapshots.
type MasteryRepository struct {
	store masteryStore
}

func NewMasteryRepository(store masteryStore) *MasteryRepository {
	return &MasteryRepository{store: store}
}

// ForPlayer returns the player's mastery records in engine form.
func (r *MasteryRepository) ForPlayer(ctx context.Context, player string) ([]adaptive.SkillMastery, error) {
	rows, err := r.store.ListSkillMastery(ctx, player)
	if err != nil {
		return nil, err
	}
	out := make([]adaptive.SkillMastery, 0, len(rows))
	for _, row := range rows {
		m := adaptive.SkillMastery{
			PlayerID:     row.PlayerName,
			Skill:        row.Skill,
			CurrentScore: row.CurrentScore,
			NeedsReview:  row.NeedsReview,
		}
		if row.RecentAccuracy.Valid {
			v := row.RecentAccuracy.Float64
			m.RecentAccuracy = &v
		}
		out = append(out, m)
	}
	return out, nil
}
