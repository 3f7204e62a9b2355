package adaptive

import (
	"math"
	"strings"
)

// DailyFocusSummary labels every tracked skill by its bucket: weak skills are
// "Working on" (high priority), medium "Building", strong "Maintaining".
func DailyFocusSummary(mastery []SkillMastery, cfg Config) []FocusArea {
	b := CategorizeSkills(mastery, cfg)

	areas := make([]FocusArea, 0, len(b.Weak)+len(b.Medium)+len(b.Strong))
	areas = appendFocus(areas, b.Weak, LabelWorkingOn, PriorityHigh)
	areas = appendFocus(areas, b.Medium, LabelBuilding, PriorityMedium)
	areas = appendFocus(areas, b.Strong, LabelMaintaining, PriorityLow)
	return areas
}

func appendFocus(areas []FocusArea, skills []SkillScore, label, priority string) []FocusArea {
	for _, s := range skills {
		areas = append(areas, FocusArea{
			Skill:    shortSkillName(s.Skill),
			Label:    label,
			Score:    int(math.Round(s.Score)),
			Priority: priority,
		})
	}
	return areas
}

// shortSkillName keeps the first word: "Decimal", "Fractions", "Word".
func shortSkillName(skill string) string {
	if i := strings.IndexByte(skill, ' '); i > 0 {
		return skill[:i]
	}
	return skill
}
