package adaptive

import "sort"

type scoredQuestion struct {
	question Question
	score    float64
}

// selectForCategory picks up to alloc.Count active questions whose skill is
// in skills, highest score first, and records each pick in coverage before
// returning so later categories see it. Short candidate lists are returned
// as-is.
func selectForCategory(
	bank []Question,
	skills []string,
	alloc Allocation,
	recent RecentSet,
	coverage CoverageMap,
	cfg ScoringConfig,
	rng Random,
) []Question {
	if alloc.Count <= 0 || len(skills) == 0 {
		return nil
	}

	inCategory := make(map[string]bool, len(skills))
	for _, s := range skills {
		inCategory[s] = true
	}

	var scored []scoredQuestion
	for _, q := range bank {
		if !q.Active || !inCategory[q.Skill] {
			continue
		}
		scored = append(scored, scoredQuestion{
			question: q,
			score:    ScoreQuestion(q, alloc.Difficulties, recent, coverage, cfg, rng),
		})
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := min(alloc.Count, len(scored))
	selected := make([]Question, 0, n)
	for _, s := range scored[:n] {
		selected = append(selected, s.question)
	}
	for _, q := range selected {
		coverage.Add(q)
	}
	return selected
}
