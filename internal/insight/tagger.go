package insight

import (
	"fmt"
	"log/slog"
	"os"

	"appraiser/internal/estimate"
	"appraiser/internal/house"

	"gopkg.in/yaml.v3"
)

// Tagger evaluates a rule set against estimates.
// It is read-only after construction and safe for concurrent use.
type Tagger struct {
	rules []Rule
}

// Parse builds a Tagger from a YAML rule list:
//
//   - when: "price > 500000.0"
//     label: premium
//
// Every rule is compiled; the first invalid one fails the whole set.
// An empty document gives a Tagger without rules.
func Parse(content []byte) (*Tagger, error) {
	rules := make([]Rule, 0)
	if err := yaml.Unmarshal(content, &rules); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	env, err := NewEstimateEnv()
	if err != nil {
		return nil, err
	}

	for i := range rules {
		if err := rules[i].Init(env); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return &Tagger{rules: rules}, nil
}

// LoadFromFile reads and parses the rule file at path.
func LoadFromFile(path string) (*Tagger, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Parse(content)
}

// Len returns the number of rules.
func (t *Tagger) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Labels returns, in rule order, the labels of every rule matching the house
// and estimate. Rules failing at runtime are logged and skipped.
// A nil Tagger returns no labels.
func (t *Tagger) Labels(f house.Features, p estimate.Prediction) []string {
	labels := make([]string, 0)
	if t == nil {
		return labels
	}

	activation := NewActivation(f, p)
	for i := range t.rules {
		matched, err := t.rules[i].Eval(activation)
		if err != nil {
			slog.Error("rule eval", "error", err, "rule", t.rules[i].When)
			continue
		}
		if matched {
			labels = append(labels, t.rules[i].Label)
		}
	}

	return labels
}
