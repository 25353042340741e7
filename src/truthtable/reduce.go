package truthtable

import (
	"container/heap"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// merge is a pair of rows, i < j, that can be merged by widening position pos.
type merge struct {
	i, j, pos int
}

// mergeQueue pops the pending merge with the smallest (i, j).
type mergeQueue []merge

func (q mergeQueue) Len() int { return len(q) }
func (q mergeQueue) Less(a, b int) bool {
	if q[a].i != q[b].i {
		return q[a].i < q[b].i
	}
	return q[a].j < q[b].j
}
func (q mergeQueue) Swap(a, b int) { q[a], q[b] = q[b], q[a] }
func (q *mergeQueue) Push(x any) { *q = append(*q, x.(merge)) }
func (q *mergeQueue) Pop() any {
	old := *q
	m := old[len(old)-1]
	*q = old[:len(old)-1]
	return m
}

// Reduce merges rows with equal outputs that differ in exactly one variable
// cell, replacing that cell with DontCare, until no merge is possible. The
// rows that were never consumed by a merge are returned: the primitive cubes
// of the table.
//
// Merges happen in the order of a scan that restarts from the first row after
// every merge: the next merge is always the untried mergeable pair with the
// smallest (i, j), and the merged row is appended to the table. A row whose
// variable cells are identical to a later row with the same output is dropped
// without producing a new row. Rows that are empty or whose width differs from
// the first row are skipped.
func Reduce(table Table) Table {
	reduced := table.Clone()
	rows := lo.Filter(reduced.Rows, func(r Row, _ int) bool {
		return len(r) > 0
	})
	if len(rows) > 0 {
		width := len(rows[0])
		rows = lo.Filter(rows, func(r Row, _ int) bool {
			return len(r) == width
		})
	}
	if skipped := len(reduced.Rows) - len(rows); skipped > 0 {
		slog.Warn("skipped malformed rows", "skipped", skipped)
	}
	width := 0
	if len(rows) > 0 {
		width = len(rows[0]) - 1
	}

	consumed := mapset.NewThreadUnsafeSet[int]()
	queue := &mergeQueue{}

	// pair looks at rows i < j once, either queueing their merge or dropping
	// i as a duplicate of j
	pair := func(i, j int) {
		if rows[i].Output() != rows[j].Output() {
			return
		}
		score, pos := compare(rows[i], rows[j])
		switch score {
		case width:
			consumed.Add(i)
		case width - 1:
			heap.Push(queue, merge{i: i, j: j, pos: pos})
		}
	}

	for j := range rows {
		for i := 0; i < j; i++ {
			pair(i, j)
		}
	}

	merges := 0
	for queue.Len() > 0 {
		m := heap.Pop(queue).(merge)
		consumed.Add(m.i)
		consumed.Add(m.j)
		rows = append(rows, widen(rows[m.i], m.pos))
		merges++

		k := len(rows) - 1
		for i := 0; i < k; i++ {
			pair(i, k)
		}
	}

	reduced.Rows = lo.Filter(rows, func(_ Row, idx int) bool {
		return !consumed.Contains(idx)
	})

	slog.Debug("reduced truth table",
		"rows", table.Len(),
		"merges", merges,
		"prime_implicants", len(reduced.Rows),
	)
	return reduced
}

// compare scores how close two rows are. Each variable cell adds one when
// both cells are equal. A DontCare on either side subtracts one, so a DontCare
// facing a concrete value costs one and two DontCare cells still add one. The
// last position where the cells differ is returned as the merge position.
func compare(a, b Row) (score, pos int) {
	for k := 0; k < len(a)-1; k++ {
		if a[k] == DontCare || b[k] == DontCare {
			score--
		}
		if a[k] == DontCare && b[k] == DontCare {
			score++
		}
		if a[k] == b[k] {
			score++
		} else {
			pos = k
		}
	}
	return score, pos
}

func widen(r Row, pos int) Row {
	w := r.clone()
	w[pos] = DontCare
	return w
}
