package boolexpr

import (
	"fmt"
)

const (
	NOT    = '~'
	AND    = '*'
	OR     = '+'
	LPAREN = '('
	RPAREN = ')'
)

// Expression is a parsed Boolean expression: the original infix text, its
// postfix form and the distinct variables it references in ascending order.
type Expression struct {
	Infix     string
	Postfix   string
	Variables []byte
}

// New parses the given infix expression.
// Example usage:
//
//	expr, err := boolexpr.New("a*(b+~c)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(expr.Postfix) // Output: abc~+*
func New(expression string, opts ...Option) (*Expression, error) {
	postfix, variables, err := ToPostfix(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return &Expression{
		Infix:     expression,
		Postfix:   postfix,
		Variables: variables,
	}, nil
}

// Assignment returns a fresh assignment with every variable of the expression
// set to 0.
func (e *Expression) Assignment() []Variable {
	return NewAssignment(e.Variables)
}

// Evaluate evaluates the expression against the given assignment.
func (e *Expression) Evaluate(assignment []Variable) (bool, error) {
	return Evaluate(e.Postfix, assignment)
}

func IsVariable(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func IsOperator(c byte) bool {
	switch c {
	case NOT, AND, OR, LPAREN, RPAREN:
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

type options struct {
	skipWhitespace bool
}

// Option configures ToPostfix.
type Option func(*options)

// SkipWhitespace makes the parser ignore blanks, tabs and line breaks instead
// of rejecting them. Positions used by the adjacency rule are counted over the
// remaining characters, so "a b" is still rejected.
func SkipWhitespace(skip bool) Option {
	return func(o *options) {
		o.skipWhitespace = skip
	}
}
