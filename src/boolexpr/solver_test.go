package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNot(t *testing.T) {
	tests := map[string]bool{
		"0": true,
		"1": false,
	}
	runSolverTests(t, "~a", tests)
}

func TestAnd(t *testing.T) {
	tests := map[string]bool{
		"00": false,
		"01": false,
		"10": false,
		"11": true,
	}
	runSolverTests(t, "a*b", tests)
}

func TestOr(t *testing.T) {
	tests := map[string]bool{
		"00": false,
		"01": true,
		"10": true,
		"11": true,
	}
	runSolverTests(t, "a+b", tests)
}

func TestRecursiveExpressions(t *testing.T) {
	// a*(b+~c)
	tests := map[string]bool{
		"000": false,
		"001": false,
		"100": true,
		"101": false,
		"110": true,
		"111": true,
	}
	runSolverTests(t, "a*(b+~c)", tests)

	// ~a*b groups as ~(a*b)
	tests = map[string]bool{
		"00": true,
		"01": true,
		"10": true,
		"11": false,
	}
	runSolverTests(t, "~a*b", tests)
}

// runSolverTests evaluates expression once per entry of tests. Keys list the
// values of the expression's variables in ascending name order.
func runSolverTests(t *testing.T, expression string, tests map[string]bool) {
	t.Helper()

	expr, err := boolexpr.New(expression)
	require.NoError(t, err)

	for values, expected := range tests {
		t.Run(expression+"/"+values, func(t *testing.T) {
			assignment := expr.Assignment()
			require.Len(t, assignment, len(values))
			for i := range assignment {
				assignment[i].Value = values[i] - '0'
			}

			result, err := expr.Evaluate(assignment)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestEvaluate_ReadsCurrentValues(t *testing.T) {
	assignment := boolexpr.NewAssignment([]byte("ab"))

	result, err := boolexpr.Evaluate("ab*", assignment)
	require.NoError(t, err)
	assert.False(t, result)

	assignment[0].Value = 1
	assignment[1].Value = 1
	result, err = boolexpr.Evaluate("ab*", assignment)
	require.NoError(t, err)
	assert.True(t, result)

	// evaluation never writes to the assignment
	assert.Equal(t, []boolexpr.Variable{{Name: 'a', Value: 1}, {Name: 'b', Value: 1}}, assignment)
}

func TestEvaluate_Errors(t *testing.T) {
	assignment := boolexpr.NewAssignment([]byte("ab"))

	tests := map[string]boolexpr.EvalError{
		"ab**": {Reason: boolexpr.ReasonMissingOperand, Token: '*'},
		"~":    {Reason: boolexpr.ReasonMissingOperand, Token: '~'},
		"a+":   {Reason: boolexpr.ReasonMissingOperand, Token: '+'},
		"":     {Reason: boolexpr.ReasonEmptyResult},
		"ab":   {Reason: boolexpr.ReasonResidualValues},
		"ab&":  {Reason: boolexpr.ReasonUnknownOperator, Token: '&'},
		"a(":   {Reason: boolexpr.ReasonUnknownOperator, Token: '('},
		"ac*":  {Reason: boolexpr.ReasonUnknownVariable, Token: 'c'},
	}

	for postfix, expected := range tests {
		t.Run(postfix, func(t *testing.T) {
			_, err := boolexpr.Evaluate(postfix, assignment)

			var evalErr *boolexpr.EvalError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, expected, *evalErr)
		})
	}
}

func TestEvaluate_DoubleAndFromParser(t *testing.T) {
	expr, err := boolexpr.New("a**b")
	require.NoError(t, err)
	assert.Equal(t, "ab**", expr.Postfix)

	_, err = expr.Evaluate(expr.Assignment())
	var evalErr *boolexpr.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Contains(t, err.Error(), "wrong operand")
}

func TestVariable(t *testing.T) {
	a := boolexpr.NewVariable('a')
	one := boolexpr.Variable{Name: 'a', Value: 1}

	assert.Equal(t, byte('0'), a.Char())
	assert.Equal(t, byte('1'), one.Char())
	assert.Equal(t, "a=1", one.String())
}
