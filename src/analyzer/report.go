package analyzer

import (
	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/enumtree"
	"github.com/eriklarko/primecubes/src/truthtable"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Report struct {
	Expression      *boolexpr.Expression
	Tree            *enumtree.Tree
	Table           truthtable.Table
	PrimeImplicants truthtable.Table

	Summary Summary
}

type Summary struct {
	Rows     int `yaml:"rows"`
	TrueRows int `yaml:"true-rows"`

	// number of cubes per output value
	TrueCubes  int `yaml:"true-cubes"`
	FalseCubes int `yaml:"false-cubes"`

	// literal = variable cell that is not a don't care
	MeanLiterals float64 `yaml:"mean-literals"`
	MaxLiterals  int     `yaml:"max-literals"`

	// only set when the BDD verification ran
	Satcount *int64 `yaml:"satcount,omitempty"`
}

func summarize(table, primes truthtable.Table) Summary {
	summary := Summary{Rows: table.Len()}
	summary.TrueRows = lo.CountBy(table.Rows, func(r truthtable.Row) bool {
		return r.Output() == truthtable.One
	})

	trueCubes, falseCubes := lo.FilterReject(primes.Rows, func(r truthtable.Row, _ int) bool {
		return r.Output() == truthtable.One
	})
	summary.TrueCubes = len(trueCubes)
	summary.FalseCubes = len(falseCubes)

	literals := lo.Map(primes.Rows, func(r truthtable.Row, _ int) float64 {
		return float64(r.Literals())
	})
	if mean, err := stats.Mean(literals); err == nil {
		summary.MeanLiterals = mean
	}
	if maximum, err := stats.Max(literals); err == nil {
		summary.MaxLiterals = int(maximum)
	}

	return summary
}

// MarshalYAML renders rows as strings of cells, e.g. "x1->1".
func (r *Report) MarshalYAML() (interface{}, error) {
	return struct {
		Expression      string   `yaml:"expression"`
		Postfix         string   `yaml:"postfix"`
		Variables       string   `yaml:"variables"`
		Table           []string `yaml:"truth-table"`
		PrimeImplicants []string `yaml:"prime-implicants"`
		Summary         Summary  `yaml:"summary"`
	}{
		Expression:      r.Expression.Infix,
		Postfix:         r.Expression.Postfix,
		Variables:       string(r.Expression.Variables),
		Table:           r.Table.Strings(),
		PrimeImplicants: r.PrimeImplicants.Strings(),
		Summary:         r.Summary,
	}, nil
}
