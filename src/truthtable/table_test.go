package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow(t *testing.T) {
	r := Row("1x01")

	assert.Equal(t, One, r.Output())
	assert.Equal(t, []byte("1x0"), r.Inputs())
	assert.Equal(t, 2, r.Literals())
	assert.Equal(t, "1x0->1", r.String())
}

func TestRow_Empty(t *testing.T) {
	var r Row

	assert.Equal(t, byte(0), r.Output())
	assert.Empty(t, r.Inputs())
	assert.Equal(t, 0, r.Literals())
}

func TestRow_Covers(t *testing.T) {
	testCases := map[string]struct {
		cube, row string
		expected  bool
	}{
		"same row":          {"101", "101", true},
		"don't care covers": {"x01", "101", true},
		"output ignored":    {"x00", "101", true},
		"mismatch":          {"x11", "101", false},
		"wider row":         {"x1", "101", false},
		"concrete vs x":     {"101", "x01", false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Row(tc.cube).Covers(Row(tc.row)))
		})
	}
}

func TestTable(t *testing.T) {
	table := tableOf("ab", "000", "011")

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Width())
	assert.Equal(t, 3, tableOf("abc").Width())
	assert.Equal(t, "00->0\n01->1", table.String())
	assert.Equal(t, Zero, FromBool(false))
	assert.Equal(t, One, FromBool(true))
}

func TestTable_Clone(t *testing.T) {
	table := tableOf("ab", "000")
	clone := table.Clone()

	clone.Rows[0][0] = One
	clone.Variables[0] = 'z'

	assert.Equal(t, "00->0", table.Rows[0].String())
	assert.Equal(t, []byte("ab"), table.Variables)
}
