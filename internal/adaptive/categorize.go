package adaptive

// trackedSkillCount is the only skill count the rebalancing rules are defined
// for. Supporting more skills needs new rules, not a generalization of these.
const trackedSkillCount = 3

// CategorizeSkills buckets every tracked skill by mastery score and then
// applies rebalanceRules in order. With exactly three tracked skills every
// bucket ends non-empty; with any other count a bucket may stay empty.
func CategorizeSkills(records []SkillMastery, cfg Config) Bucketing {
	var b Bucketing
	for _, skill := range cfg.TrackedSkills {
		score := cfg.DefaultScore
		if m, ok := findMastery(records, skill); ok {
			score = m.Score()
		}

		entry := SkillScore{Skill: skill, Score: score}
		switch {
		case score < cfg.WeakThreshold:
			b.Weak = append(b.Weak, entry)
		case score < cfg.StrongThreshold:
			b.Medium = append(b.Medium, entry)
		default:
			b.Strong = append(b.Strong, entry)
		}
	}

	for _, rule := range rebalanceRules {
		if rule.applies(&b) {
			rule.apply(&b)
		}
	}
	return b
}

// findMastery returns the first record for skill.
func findMastery(records []SkillMastery, skill string) (SkillMastery, bool) {
	for _, m := range records {
		if m.Skill == skill {
			return m, true
		}
	}
	return SkillMastery{}, false
}

// rebalanceRule moves skills between buckets when its precondition holds.
type rebalanceRule struct {
	name    string
	applies func(b *Bucketing) bool
	apply   func(b *Bucketing)
}

// rebalanceRules run top to bottom, each seeing the result of the previous.
// The first three are mutually exclusive degenerate distributions; the last
// three borrow one skill into a bucket that is still empty.
var rebalanceRules = []rebalanceRule{
	{
		name: "all-strong",
		applies: func(b *Bucketing) bool {
			return len(b.Weak) == 0 && len(b.Medium) == 0 && len(b.Strong) > 0
		},
		apply: func(b *Bucketing) {
			b.Medium = append(b.Medium, takeLowest(&b.Strong))
		},
	},
	{
		name: "all-weak",
		applies: func(b *Bucketing) bool {
			return len(b.Weak) == trackedSkillCount
		},
		apply: func(b *Bucketing) {
			b.Medium = append(b.Medium, takeHighest(&b.Weak))
		},
	},
	{
		name: "all-medium",
		applies: func(b *Bucketing) bool {
			return len(b.Medium) == trackedSkillCount
		},
		apply: func(b *Bucketing) {
			b.Weak = append(b.Weak, takeLowest(&b.Medium))
			b.Strong = append(b.Strong, takeHighest(&b.Medium))
		},
	},
	{
		name: "fill-weak",
		applies: func(b *Bucketing) bool {
			return len(b.Weak) == 0 && (len(b.Medium) > 1 || len(b.Strong) > 1)
		},
		apply: func(b *Bucketing) {
			if len(b.Medium) > 1 {
				b.Weak = append(b.Weak, takeLowest(&b.Medium))
				return
			}
			b.Weak = append(b.Weak, takeLowest(&b.Strong))
		},
	},
	{
		name: "fill-strong",
		applies: func(b *Bucketing) bool {
			return len(b.Strong) == 0 && (len(b.Medium) > 1 || len(b.Weak) > 1)
		},
		apply: func(b *Bucketing) {
			if len(b.Medium) > 1 {
				b.Strong = append(b.Strong, takeHighest(&b.Medium))
				return
			}
			b.Strong = append(b.Strong, takeHighest(&b.Weak))
		},
	},
	{
		name: "fill-medium",
		applies: func(b *Bucketing) bool {
			return len(b.Medium) == 0 && (len(b.Weak) > 1 || len(b.Strong) > 1)
		},
		apply: func(b *Bucketing) {
			if len(b.Weak) > 1 {
				b.Medium = append(b.Medium, takeHighest(&b.Weak))
				return
			}
			b.Medium = append(b.Medium, takeLowest(&b.Strong))
		},
	},
}

// takeLowest removes and returns the lowest-scoring entry. Ties go to the
// earliest entry so results are deterministic.
func takeLowest(list *[]SkillScore) SkillScore {
	idx := 0
	for i, s := range *list {
		if s.Score < (*list)[idx].Score {
			idx = i
		}
	}
	return removeAt(list, idx)
}

// takeHighest removes and returns the highest-scoring entry, earliest on ties.
func takeHighest(list *[]SkillScore) SkillScore {
	idx := 0
	for i, s := range *list {
		if s.Score > (*list)[idx].Score {
			idx = i
		}
	}
	return removeAt(list, idx)
}

func removeAt(list *[]SkillScore, idx int) SkillScore {
	s := (*list)[idx]
	*list = append((*list)[:idx:idx], (*list)[idx+1:]...)
	return s
}
