package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectForCategory_PrefersTargetDifficulty(t *testing.T) {
	bank := makeBank(10)
	coverage := make(CoverageMap)

	got := selectForCategory(bank, []string{SkillDecimals}, Allocation{Count: 4, Difficulties: []int{1, 2}},
		nil, coverage, DefaultScoringConfig(), fixedRand{})

	require.Len(t, got, 4)
	for _, q := range got {
		assert.Equal(t, SkillDecimals, q.Skill)
		assert.Contains(t, []int{1, 2}, q.Difficulty)
	}
}

func TestSelectForCategory_UpdatesCoverage(t *testing.T) {
	bank := makeBank(10)
	coverage := make(CoverageMap)

	got := selectForCategory(bank, []string{SkillFractions}, Allocation{Count: 6, Difficulties: []int{2, 3}},
		nil, coverage, DefaultScoringConfig(), fixedRand{})

	total := 0
	for _, n := range coverage {
		total += n
	}
	assert.Equal(t, len(got), total)
	for _, q := range got {
		assert.Positive(t, coverage.Count(q))
	}
}

func TestSelectForCategory_ReturnsAllWhenShort(t *testing.T) {
	bank := []Question{
		{ID: "a", Skill: SkillWordProblems, SubSkill: "x", Difficulty: 3, Active: true},
		{ID: "b", Skill: SkillWordProblems, SubSkill: "y", Difficulty: 4, Active: true},
		{ID: "c", Skill: SkillWordProblems, SubSkill: "y", Difficulty: 4, Active: false},
		{ID: "d", Skill: SkillDecimals, SubSkill: "y", Difficulty: 4, Active: true},
	}

	got := selectForCategory(bank, []string{SkillWordProblems}, Allocation{Count: 3, Difficulties: []int{3, 4, 5}},
		nil, make(CoverageMap), DefaultScoringConfig(), fixedRand{})

	assert.ElementsMatch(t, []string{"a", "b"}, ids(got))
}

func TestSelectForCategory_SkipsRecentWhenAlternativesExist(t *testing.T) {
	bank := makeBank(10)
	recent := RecentSet{"dec-00": {}, "dec-01": {}}

	got := selectForCategory(bank, []string{SkillDecimals}, Allocation{Count: 6, Difficulties: []int{1, 2}},
		recent, make(CoverageMap), DefaultScoringConfig(), NewSeededRandom(3))

	assert.NotContains(t, ids(got), "dec-00")
	assert.NotContains(t, ids(got), "dec-01")
}

func TestSelectForCategory_EmptyInputs(t *testing.T) {
	bank := makeBank(3)
	assert.Nil(t, selectForCategory(bank, nil, Allocation{Count: 3, Difficulties: []int{1}}, nil, make(CoverageMap), DefaultScoringConfig(), fixedRand{}))
	assert.Nil(t, selectForCategory(bank, []string{SkillDecimals}, Allocation{Count: 0, Difficulties: []int{1}}, nil, make(CoverageMap), DefaultScoringConfig(), fixedRand{}))
	assert.Nil(t, selectForCategory(bank, []string{"Geometry"}, Allocation{Count: 3, Difficulties: []int{1}}, nil, make(CoverageMap), DefaultScoringConfig(), fixedRand{}))
}
