package truthtable

import (
	"strings"
)

// Cell values. DontCare only appears in reduced tables.
const (
	Zero     byte = '0'
	One      byte = '1'
	DontCare byte = 'x'
)

// Row holds one cell per variable followed by the output cell.
type Row []byte

// FromBool returns One for true and Zero for false.
func FromBool(v bool) byte {
	if v {
		return One
	}
	return Zero
}

// Output returns the trailing output cell, or 0 for an empty row.
func (r Row) Output() byte {
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

// Inputs returns the variable cells.
func (r Row) Inputs() []byte {
	if len(r) == 0 {
		return nil
	}
	return r[:len(r)-1]
}

// Literals returns the number of variable cells that are not DontCare.
func (r Row) Literals() int {
	n := 0
	for _, c := range r.Inputs() {
		if c != DontCare {
			n++
		}
	}
	return n
}

// Covers reports whether r, read as a cube, contains every assignment of
// other. Outputs are ignored.
func (r Row) Covers(other Row) bool {
	in, otherIn := r.Inputs(), other.Inputs()
	if len(in) != len(otherIn) {
		return false
	}
	for k := range in {
		if in[k] != DontCare && in[k] != otherIn[k] {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	return string(r.Inputs()) + "->" + string(r.Output())
}

func (r Row) clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Table is an ordered list of rows over a fixed, ordered variable list.
type Table struct {
	Variables []byte
	Rows      []Row
}

func (t Table) Len() int {
	return len(t.Rows)
}

// Width returns the number of variable cells per row.
func (t Table) Width() int {
	if len(t.Rows) > 0 {
		return len(t.Rows[0]) - 1
	}
	return len(t.Variables)
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	c := Table{
		Variables: append([]byte(nil), t.Variables...),
		Rows:      make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		c.Rows[i] = r.clone()
	}
	return c
}

// Strings returns every row in Row.String form.
func (t Table) Strings() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.String()
	}
	return out
}

func (t Table) String() string {
	return strings.Join(t.Strings(), "\n")
}
