package adaptive

// RecentSet holds question ids seen in the learner's recent sessions.
type RecentSet map[string]struct{}

// Has reports whether id was seen recently.
func (r RecentSet) Has(id string) bool {
	_, ok := r[id]
	return ok
}

type coverageKey struct {
	skill    string
	subSkill string
}

// CoverageMap counts already-selected questions per (skill, sub-skill) pair.
// It is owned by a single selection run and threaded through the category
// selections in order.
type CoverageMap map[coverageKey]int

// Count returns how many selected questions share q's skill and sub-skill.
func (c CoverageMap) Count(q Question) int {
	return c[coverageKey{skill: q.Skill, subSkill: q.SubSkill}]
}

// Add records q as selected.
func (c CoverageMap) Add(q Question) {
	c[coverageKey{skill: q.Skill, subSkill: q.SubSkill}]++
}

// ScoreQuestion returns the selection priority of q; higher is better.
// It has no side effects beyond drawing one jitter value from rng, which
// must not be nil.
func ScoreQuestion(q Question, targets []int, recent RecentSet, coverage CoverageMap, cfg ScoringConfig, rng Random) float64 {
	score := cfg.BaseScore

	if d := difficultyDistance(q.Difficulty, targets); d == 0 {
		score += cfg.DifficultyMatchBonus
	} else {
		score -= float64(d) * cfg.DistancePenalty
	}

	// Near-exclusion: still selectable when nothing else is left.
	if recent.Has(q.ID) {
		score -= cfg.RecencyPenalty
	}

	if n := coverage.Count(q); n == 0 {
		score += cfg.NewSubSkillBonus
	} else {
		score -= float64(n) * cfg.RepeatSubSkillCost
	}

	return score + rng.Float64()*cfg.JitterMax
}

// difficultyDistance is 0 when difficulty is in targets, otherwise the gap to
// the nearest bound of the target range.
func difficultyDistance(difficulty int, targets []int) int {
	if len(targets) == 0 {
		return 0
	}
	lo, hi := targets[0], targets[0]
	for _, t := range targets {
		if t == difficulty {
			return 0
		}
		lo = min(lo, t)
		hi = max(hi, t)
	}
	switch {
	case difficulty < lo:
		return lo - difficulty
	case difficulty > hi:
		return difficulty - hi
	default:
		// Inside a gapped target set such as {1, 3}.
		return min(difficulty-lo, hi-difficulty)
	}
}
