// Package verify cross-checks truth tables and primitive cubes against a
// binary decision diagram built independently from the postfix stream.
package verify

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/truthtable"
)

var ErrNoVariables = errors.New("cannot verify a function without variables")

// MismatchError is returned when a row or a cube disagrees with the function.
type MismatchError struct {
	Row    truthtable.Row
	Reason string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("row %s %s", e.Row, e.Reason)
}

// Result describes a successful verification.
type Result struct {
	// Satcount is the number of assignments for which the function is 1.
	Satcount *big.Int
}

// Table checks that every row of table carries the output of the postfix
// function at the row's assignment.
func Table(postfix string, table truthtable.Table) (Result, error) {
	return check(postfix, table.Variables, func(c *checker) error {
		ones := 0
		for _, row := range table.Rows {
			if row.Literals() != len(table.Variables) {
				return &MismatchError{Row: row, Reason: "is not a full assignment"}
			}
			if row.Output() == truthtable.One {
				ones++
			}
			if err := c.implies(row); err != nil {
				return err
			}
		}
		if int64(ones) != c.satcount().Int64() {
			return fmt.Errorf("table has %d true rows, function has %s", ones, c.satcount())
		}
		return nil
	})
}

// PrimeImplicants checks that every cube agrees with the function on all the
// assignments it covers, and that the cubes of each output value together
// cover exactly the assignments with that output.
func PrimeImplicants(postfix string, primes truthtable.Table) (Result, error) {
	return check(postfix, primes.Variables, func(c *checker) error {
		var ones, zeros []truthtable.Row
		for _, row := range primes.Rows {
			if err := c.implies(row); err != nil {
				return err
			}
			if row.Output() == truthtable.One {
				ones = append(ones, row)
			} else {
				zeros = append(zeros, row)
			}
		}
		if !c.union(ones, truthtable.One) {
			return errors.New("cubes with output 1 do not cover the function")
		}
		if !c.union(zeros, truthtable.Zero) {
			return errors.New("cubes with output 0 do not cover the negated function")
		}
		return nil
	})
}

// checker exposes the diagram operations shared by Table and PrimeImplicants.
type checker struct {
	implies  func(row truthtable.Row) error
	union    func(rows []truthtable.Row, output byte) bool
	satcount func() *big.Int
}

func check(postfix string, variables []byte, run func(*checker) error) (Result, error) {
	if len(variables) == 0 {
		return Result{}, ErrNoVariables
	}

	bdd, err := rudd.New(len(variables))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create BDD: %w", err)
	}

	index := make(map[byte]int, len(variables))
	for i, name := range variables {
		index[name] = i
	}

	// compile the postfix stream
	var stack []rudd.Node
	pop := func(token byte) (rudd.Node, error) {
		if len(stack) == 0 {
			return nil, boolexpr.NewEvalError(boolexpr.ReasonMissingOperand, token)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}
	for i := 0; i < len(postfix); i++ {
		token := postfix[i]
		if boolexpr.IsVariable(token) {
			level, ok := index[token]
			if !ok {
				return Result{}, boolexpr.NewEvalError(boolexpr.ReasonUnknownVariable, token)
			}
			stack = append(stack, bdd.Ithvar(level))
			continue
		}
		switch token {
		case boolexpr.NOT:
			operand, err := pop(token)
			if err != nil {
				return Result{}, err
			}
			stack = append(stack, bdd.Not(operand))
		case boolexpr.AND, boolexpr.OR:
			right, err := pop(token)
			if err != nil {
				return Result{}, err
			}
			left, err := pop(token)
			if err != nil {
				return Result{}, err
			}
			if token == boolexpr.AND {
				stack = append(stack, bdd.And(left, right))
			} else {
				stack = append(stack, bdd.Or(left, right))
			}
		default:
			return Result{}, boolexpr.NewEvalError(boolexpr.ReasonUnknownOperator, token)
		}
	}
	if len(stack) != 1 {
		return Result{}, boolexpr.NewEvalError(boolexpr.ReasonResidualValues, 0)
	}
	f := stack[0]
	notF := bdd.Not(f)

	cube := func(row truthtable.Row) rudd.Node {
		literals := []rudd.Node{bdd.True()}
		for k, c := range row.Inputs() {
			switch c {
			case truthtable.One:
				literals = append(literals, bdd.Ithvar(k))
			case truthtable.Zero:
				literals = append(literals, bdd.NIthvar(k))
			}
		}
		return bdd.And(literals...)
	}

	c := &checker{
		implies: func(row truthtable.Row) error {
			if len(row.Inputs()) != len(variables) {
				return &MismatchError{Row: row, Reason: "has the wrong width"}
			}
			target := f
			if row.Output() != truthtable.One {
				target = notF
			}
			if !bdd.Equal(bdd.Imp(cube(row), target), bdd.True()) {
				return &MismatchError{Row: row, Reason: "disagrees with the function"}
			}
			return nil
		},
		union: func(rows []truthtable.Row, output byte) bool {
			covered := bdd.False()
			for _, row := range rows {
				covered = bdd.Or(covered, cube(row))
			}
			if output == truthtable.One {
				return bdd.Equal(covered, f)
			}
			return bdd.Equal(covered, notF)
		},
		satcount: func() *big.Int {
			return bdd.Satcount(f)
		},
	}

	if err := run(c); err != nil {
		return Result{}, err
	}

	result := Result{Satcount: bdd.Satcount(f)}
	slog.Debug("verified against BDD",
		"postfix", postfix,
		"variables", string(variables),
		"satcount", result.Satcount.String(),
	)
	return result, nil
}
