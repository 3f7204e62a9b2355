package question

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
)

const sampleBank = `
questions:
  - id: dec-01
    skill: Decimal Operations
    sub_skill: adding decimals
    difficulty: 1
    text: "0.4 + 0.35 = ?"
    options: ["0.75", "0.39", "0.7"]
    correct_index: 0
  - id: frac-02
    skill: Fractions & Mixed Numbers
    difficulty: 3
    text: "Convert 7/4 to a mixed number"
    options: ["1 3/4", "1 1/4"]
    correct_index: 0
    is_active: false
`

func TestLoadYAML(t *testing.T) {
	bank, err := LoadYAML(strings.NewReader(sampleBank))
	require.NoError(t, err)
	require.Len(t, bank, 2)

	assert.Equal(t, "adding decimals", bank[0].SubSkill)
	assert.True(t, bank[0].Active)
	assert.Equal(t, []string{"0.75", "0.39", "0.7"}, bank[0].Options)
	assert.False(t, bank[1].Active)
}

func TestLoadYAMLEmpty(t *testing.T) {
	bank, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, bank)
}

func TestLoadYAMLRejects(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want error
	}{
		"bad difficulty": {
			doc:  "questions:\n  - {id: a, skill: Decimal Operations, difficulty: 7}\n",
			want: adaptive.ErrInvalidQuestion,
		},
		"duplicate id": {
			doc:  "questions:\n  - {id: a, skill: Decimal Operations, difficulty: 1}\n  - {id: a, skill: Decimal Operations, difficulty: 2}\n",
			want: adaptive.ErrDuplicateQuestion,
		},
		"correct index out of range": {
			doc:  "questions:\n  - {id: a, skill: Decimal Operations, difficulty: 1, options: [x, y], correct_index: 2}\n",
			want: adaptive.ErrInvalidQuestion,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("questions:\n  - {id: a, skill: Decimal Operations, difficulty: 1, answer: x}\n"))
	assert.ErrorContains(t, err, "decode bank")
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBank), 0o600))

	bank, err := LoadYAMLFile(path)
	require.NoError(t, err)
	assert.Len(t, bank, 2)

	_, err = LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
