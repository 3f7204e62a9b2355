package adaptive

import "sort"

// orderByDifficulty returns qs grouped into ascending difficulty tiers with
// each tier shuffled, so the quiz ramps up while staying unpredictable.
func orderByDifficulty(qs []Question, rng Random) []Question {
	tiers := make(map[int][]Question)
	for _, q := range qs {
		tiers[q.Difficulty] = append(tiers[q.Difficulty], q)
	}

	levels := make([]int, 0, len(tiers))
	for d := range tiers {
		levels = append(levels, d)
	}
	sort.Ints(levels)

	ordered := make([]Question, 0, len(qs))
	for _, d := range levels {
		tier := tiers[d]
		rng.Shuffle(len(tier), func(i, j int) { tier[i], tier[j] = tier[j], tier[i] })
		ordered = append(ordered, tier...)
	}
	return ordered
}

// backfill appends randomly ordered active questions not yet selected until
// size is reached or the bank runs out. No scoring is involved.
func backfill(selected []Question, bank []Question, size int, rng Random) ([]Question, int) {
	if len(selected) >= size {
		return selected, 0
	}

	taken := make(map[string]struct{}, len(selected))
	for _, q := range selected {
		taken[q.ID] = struct{}{}
	}

	var remaining []Question
	for _, q := range bank {
		if !q.Active {
			continue
		}
		if _, ok := taken[q.ID]; ok {
			continue
		}
		remaining = append(remaining, q)
	}
	rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })

	added := 0
	for _, q := range remaining {
		if len(selected) >= size {
			break
		}
		selected = append(selected, q)
		added++
	}
	return selected, added
}
