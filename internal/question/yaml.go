package question

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
)

// bankFile is the on-disk layout of a YAML question bank.
type bankFile struct {
	Questions []yamlQuestion `yaml:"questions"`
}

// yamlQuestion defaults is_active to true when the key is absent.
type yamlQuestion struct {
	Question `yaml:",inline"`
	Active   *bool `yaml:"is_active"`
}

// LoadYAML parses a bank document and validates it the way the engine would.
func LoadYAML(r io.Reader) ([]Question, error) {
	var doc bankFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	bank := make([]Question, 0, len(doc.Questions))
	for _, yq := range doc.Questions {
		q := yq.Question
		q.Active = yq.Active == nil || *yq.Active
		if len(q.Options) > 0 && (q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options)) {
			return nil, fmt.Errorf("%w: question %s correct_index %d out of range",
				adaptive.ErrInvalidQuestion, q.ID, q.CorrectIndex)
		}
		bank = append(bank, q)
	}

	if err := adaptive.ValidateBank(Candidates(bank)); err != nil {
		return nil, err
	}
	return bank, nil
}

// LoadYAMLFile reads a bank from path.
func LoadYAMLFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bank, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}
