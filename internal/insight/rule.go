// Package insight attaches human readable labels to estimates using rules
// written in CEL.
package insight

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Rule maps a condition to a label.
type Rule struct {
	// When: CEL expression that must evaluate to a bool.
	When string `yaml:"when"`
	// Label: text reported when the condition holds.
	Label string `yaml:"label"`

	program cel.Program
}

// Init compiles When against env. Syntax and type errors are returned, so is
// an expression whose result is not a bool.
func (r *Rule) Init(env *cel.Env) error {
	ast, iss := env.Parse(r.When)
	if iss.Err() != nil {
		return iss.Err()
	}

	checked, iss := env.Check(ast)
	if iss.Err() != nil {
		return iss.Err()
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("rule %q: result must be bool, got %s", r.When, checked.OutputType())
	}

	var err error
	r.program, err = env.Program(checked)
	if err != nil {
		return err
	}

	return nil
}

// Eval reports whether the rule matches activation.
// A runtime error (for example a missing variable) is returned with false.
func (r *Rule) Eval(activation Activation) (bool, error) {
	if r.program == nil {
		return false, fmt.Errorf("rule %q: not initialized", r.When)
	}

	result, _, err := r.program.Eval(map[string]any(activation))
	if err != nil {
		return false, err
	}

	matched, ok := result.Value().(bool)
	return ok && matched, nil
}
