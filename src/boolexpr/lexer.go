package boolexpr

import (
	"slices"

	"github.com/samber/lo"
)

// ToPostfix converts an infix expression into postfix order and returns the
// distinct variables in ascending order.
//
// Operators are stacked and only released on ')' or at the end of the input,
// so they all share one precedence level and group to the right: "a*b+c"
// becomes "abc+*" and "~a*b" becomes "ab*~". Use parentheses to group
// differently.
func ToPostfix(expression string, opts ...Option) (string, []byte, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]byte, 0, len(expression))
	var stack []byte
	seen := make(map[byte]struct{})

	operations := 0
	lastVariable := -1
	pos := 0
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if o.skipWhitespace && isWhitespace(c) {
			continue
		}
		pos++

		if IsVariable(c) {
			// between any two variables there must be at least one operator
			if lastVariable+1 == pos {
				return "", nil, NewParseError(ReasonAdjacentVariables, pos)
			}
			seen[c] = struct{}{}
			out = append(out, c)
			lastVariable = pos
			continue
		}

		if !IsOperator(c) {
			return "", nil, NewParseError(ReasonUnknownCharacter, pos)
		}
		operations++

		if c != RPAREN {
			stack = append(stack, c)
			continue
		}

		// release everything down to the matching '('
		for len(stack) > 0 && stack[len(stack)-1] != LPAREN {
			out = append(out, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return "", nil, NewParseError(ReasonUnbalanced, pos)
		}
		stack = stack[:len(stack)-1]
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top == LPAREN {
			return "", nil, NewParseError(ReasonUnbalanced, 0)
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}

	if operations == 0 {
		return "", nil, NewParseError(ReasonNoOperators, 0)
	}

	variables := lo.Keys(seen)
	slices.Sort(variables)

	return string(out), variables, nil
}
