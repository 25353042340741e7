package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/enumtree"
	"github.com/eriklarko/primecubes/src/truthtable"
	"github.com/eriklarko/primecubes/src/verify"
)

type Analyzer struct {
	parseOptions []boolexpr.Option
	verify       bool
	logger       *slog.Logger
}

type Option func(*Analyzer)

// WithParseOptions forwards options to the expression parser.
func WithParseOptions(opts ...boolexpr.Option) Option {
	return func(a *Analyzer) {
		a.parseOptions = append(a.parseOptions, opts...)
	}
}

// WithVerification cross-checks the table and the cubes against a BDD.
func WithVerification(enabled bool) Option {
	return func(a *Analyzer) {
		a.verify = enabled
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer.
// Usage:
//
//	a := analyzer.New(analyzer.WithVerification(true))
//	report, err := a.Analyze("a+b")
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Parse converts the infix expression to postfix and extracts its variables.
// Errors wrap a *boolexpr.ParseError.
func (a *Analyzer) Parse(expression string) (*boolexpr.Expression, error) {
	expr, err := boolexpr.New(expression, a.parseOptions...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("parsed expression",
		"expression", expression,
		"postfix", expr.Postfix,
		"variables", string(expr.Variables),
	)
	return expr, nil
}

// BuildTruthTable enumerates every assignment of variables and returns the
// enumeration tree together with its truth table. Errors wrap a
// *boolexpr.EvalError.
func (a *Analyzer) BuildTruthTable(postfix string, variables []byte) (*enumtree.Tree, truthtable.Table, error) {
	tree, err := enumtree.Build(postfix, variables)
	if err != nil {
		return nil, truthtable.Table{}, fmt.Errorf("failed to build truth table for '%s': %w", postfix, err)
	}
	return tree, tree.Table(), nil
}

// ReduceToPrimeImplicants returns the primitive cubes of table.
func (a *Analyzer) ReduceToPrimeImplicants(table truthtable.Table) truthtable.Table {
	return truthtable.Reduce(table)
}

// Analyze runs the whole pipeline on expression.
func (a *Analyzer) Analyze(expression string) (*Report, error) {
	expr, err := a.Parse(expression)
	if err != nil {
		return nil, err
	}

	tree, table, err := a.BuildTruthTable(expr.Postfix, expr.Variables)
	if err != nil {
		return nil, err
	}

	primes := a.ReduceToPrimeImplicants(table)

	report := &Report{
		Expression:      expr,
		Tree:            tree,
		Table:           table,
		PrimeImplicants: primes,
	}
	report.Summary = summarize(table, primes)

	if a.verify {
		if err := a.runVerification(report); err != nil {
			return nil, err
		}
	}

	a.logger.Info("analyzed expression",
		"expression", expression,
		"rows", report.Summary.Rows,
		"prime_implicants", len(primes.Rows),
	)
	return report, nil
}

func (a *Analyzer) runVerification(report *Report) error {
	postfix := report.Expression.Postfix

	if _, err := verify.Table(postfix, report.Table); err != nil {
		return fmt.Errorf("truth table failed verification: %w", err)
	}
	result, err := verify.PrimeImplicants(postfix, report.PrimeImplicants)
	if err != nil {
		return fmt.Errorf("prime implicants failed verification: %w", err)
	}

	satcount := result.Satcount.Int64()
	report.Summary.Satcount = &satcount
	return nil
}
