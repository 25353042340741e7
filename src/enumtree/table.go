package enumtree

import (
	"github.com/eriklarko/primecubes/src/truthtable"
)

// Table flattens the tree into a truth table, one row per leaf in left to
// right order. An empty tree yields an empty table.
func (t *Tree) Table() truthtable.Table {
	table := truthtable.Table{}
	if t == nil || t.Root == nil {
		return table
	}

	table.Variables = append([]byte(nil), t.Variables...)
	table.Rows = make([]truthtable.Row, 0, t.leaves)
	t.Walk(func(n *Node, path []byte) {
		if !n.IsLeaf() {
			return
		}
		row := make(truthtable.Row, 0, len(path)+1)
		row = append(row, path...)
		row = append(row, n.Name)
		table.Rows = append(table.Rows, row)
	})
	return table
}
