package boolexpr

// Evaluate runs the postfix stream against one assignment. Values are kept
// as 0/1: '*' multiplies and '+' adds, saturating at 1. The assignment is only
// read, so callers may change its values between calls.
func Evaluate(postfix string, assignment []Variable) (bool, error) {
	var values []uint8

	pop := func(token byte) (uint8, error) {
		if len(values) == 0 {
			return 0, NewEvalError(ReasonMissingOperand, token)
		}
		v := values[len(values)-1]
		values = values[:len(values)-1]
		return v, nil
	}

	for i := 0; i < len(postfix); i++ {
		token := postfix[i]

		if IsVariable(token) {
			v, ok := lookup(assignment, token)
			if !ok {
				return false, NewEvalError(ReasonUnknownVariable, token)
			}
			values = append(values, bit(v.Value))
			continue
		}

		switch token {
		case NOT:
			operand, err := pop(token)
			if err != nil {
				return false, err
			}
			values = append(values, 1-operand)
		case AND, OR:
			right, err := pop(token)
			if err != nil {
				return false, err
			}
			left, err := pop(token)
			if err != nil {
				return false, err
			}
			values = append(values, apply(token, left, right))
		default:
			return false, NewEvalError(ReasonUnknownOperator, token)
		}
	}

	if len(values) == 0 {
		return false, NewEvalError(ReasonEmptyResult, 0)
	}
	if len(values) > 1 {
		return false, NewEvalError(ReasonResidualValues, 0)
	}
	return values[0] == 1, nil
}

func apply(operator byte, left, right uint8) uint8 {
	if operator == AND {
		return left * right
	}
	if left == 1 && right == 1 {
		return 1
	}
	return left + right
}

func bit(value uint8) uint8 {
	if value != 0 {
		return 1
	}
	return 0
}
