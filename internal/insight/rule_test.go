package insight

import (
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Init_Success(t *testing.T) {
	env, err := NewEstimateEnv()
	require.NoError(t, err)

	rule := &Rule{When: "price > 100000.0"}
	err = rule.Init(env)
	assert.NoError(t, err)
	assert.NotNil(t, rule.program, "program should be compiled and assigned")
}

func TestRule_Init_ParseError(t *testing.T) {
	env, err := NewEstimateEnv()
	require.NoError(t, err)

	rule := &Rule{When: "price > "}
	assert.Error(t, rule.Init(env), "expected parse error for invalid expression")
}

func TestRule_Init_CheckError(t *testing.T) {
	env, err := NewEstimateEnv()
	require.NoError(t, err)

	rule := &Rule{When: "price > 'cheap'"}
	assert.Error(t, rule.Init(env), "expected check error for type mismatch")

	rule = &Rule{When: "unknownField == 1"}
	assert.Error(t, rule.Init(env), "expected check error for undeclared variable")
}

func TestRule_Init_NonBoolResult(t *testing.T) {
	env, err := NewEstimateEnv()
	require.NoError(t, err)

	rule := &Rule{When: "price * 2.0"}
	assert.Error(t, rule.Init(env))
}

func TestRule_Eval(t *testing.T) {
	env, err := NewEstimateEnv()
	require.NoError(t, err)

	rule := &Rule{When: "bedrooms >= 3 && location == 'urban'", Label: "family city home"}
	require.NoError(t, rule.Init(env))

	matched, err := rule.Eval(Activation{"bedrooms": int64(4), "location": "urban"})
	assert.NoError(t, err)
	assert.True(t, matched)

	matched, err = rule.Eval(Activation{"bedrooms": int64(2), "location": "urban"})
	assert.NoError(t, err)
	assert.False(t, matched)
}

func TestRule_Eval_MissingVariable(t *testing.T) {
	env, err := cel.NewEnv(cel.Variable("age", cel.IntType))
	require.NoError(t, err)

	rule := &Rule{When: "age > 30"}
	require.NoError(t, rule.Init(env))

	matched, err := rule.Eval(Activation{})
	assert.Error(t, err)
	assert.False(t, matched)
}

func TestRule_Eval_NotInitialized(t *testing.T) {
	rule := &Rule{When: "true"}
	_, err := rule.Eval(Activation{})
	assert.Error(t, err)
}
