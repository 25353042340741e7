package boolexpr

import (
	"fmt"
)

// ParseError is returned when the input is not a well formed Boolean
// expression ("incorrect expression").
type ParseError struct {
	Reason   string
	Position int // 1-based position in the input, 0 when not tied to a character
}

const (
	ReasonAdjacentVariables = "adjacent variables"
	ReasonUnbalanced        = "unbalanced parenthesis"
	ReasonNoOperators       = "no operators"
	ReasonUnknownCharacter  = "unknown character"
)

// NewParseError creates a new ParseError with the given reason and position.
func NewParseError(reason string, position int) error {
	return &ParseError{Reason: reason, Position: position}
}

func (e ParseError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("incorrect expression: %s at position %d", e.Reason, e.Position)
	}
	return fmt.Sprintf("incorrect expression: %s", e.Reason)
}

// EvalError is returned when a postfix stream cannot be evaluated ("wrong
// operand").
type EvalError struct {
	Reason string
	Token  byte // offending token, 0 when the stream ended badly
}

const (
	ReasonMissingOperand  = "missing operand"
	ReasonUnknownOperator = "unknown operator"
	ReasonUnknownVariable = "unknown variable"
	ReasonEmptyResult     = "empty result"
	ReasonResidualValues  = "residual values"
)

// NewEvalError creates a new EvalError with the given reason and token.
func NewEvalError(reason string, token byte) error {
	return &EvalError{Reason: reason, Token: token}
}

func (e EvalError) Error() string {
	if e.Token != 0 {
		return fmt.Sprintf("wrong operand: %s '%c'", e.Reason, e.Token)
	}
	return fmt.Sprintf("wrong operand: %s", e.Reason)
}
