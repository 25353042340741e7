// Package enumtree enumerates every assignment of an ordered variable list
// through a complete binary tree. Along any root-to-leaf path the variable at
// level L is 0 when the path goes left and 1 when it goes right, and each leaf
// holds the function's output for that assignment.
package enumtree

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/truthtable"
)

type Node struct {
	Level int
	// Name is the variable decided at this node, or the output cell ('0' or
	// '1') for leaves.
	Name  byte
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n holds an output.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

type Tree struct {
	Root      *Node
	Variables []byte
	// MaxLevel is the level of the leaves, which equals the number of
	// variables.
	MaxLevel int

	leaves int
}

// Build creates the enumeration tree for the postfix function over the given
// variables and evaluates it at every leaf. Any evaluation error aborts the
// whole build.
func Build(postfix string, variables []byte) (*Tree, error) {
	t := &Tree{
		Variables: append([]byte(nil), variables...),
	}
	assignment := boolexpr.NewAssignment(t.Variables)

	var err error
	if len(variables) == 0 {
		t.Root, err = t.newLeaf(postfix, assignment, 0)
	} else {
		t.Root = newNode(t.Variables, 0)
		err = t.compute(t.Root, postfix, assignment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compute enumeration tree: %w", err)
	}

	slog.Debug("built enumeration tree",
		"postfix", postfix,
		"variables", string(t.Variables),
		"leaves", t.leaves,
	)
	return t, nil
}

func newNode(variables []byte, level int) *Node {
	if level == len(variables) {
		return nil
	}
	return &Node{
		Level: level,
		Name:  variables[level],
		Left:  newNode(variables, level+1),
		Right: newNode(variables, level+1),
	}
}

// compute walks the tree setting the variable of each level from the branch
// taken, and hangs a leaf under every node of the last level.
func (t *Tree) compute(n *Node, postfix string, assignment []boolexpr.Variable) error {
	var err error

	assignment[n.Level].Value = 0
	if n.Left == nil {
		if n.Left, err = t.newLeaf(postfix, assignment, n.Level+1); err != nil {
			return err
		}
	} else if err = t.compute(n.Left, postfix, assignment); err != nil {
		return err
	}

	assignment[n.Level].Value = 1
	if n.Right == nil {
		if n.Right, err = t.newLeaf(postfix, assignment, n.Level+1); err != nil {
			return err
		}
	} else if err = t.compute(n.Right, postfix, assignment); err != nil {
		return err
	}

	assignment[n.Level].Value = 0
	return nil
}

func (t *Tree) newLeaf(postfix string, assignment []boolexpr.Variable, level int) (*Node, error) {
	result, err := boolexpr.Evaluate(postfix, assignment)
	if err != nil {
		return nil, err
	}
	t.leaves++
	if level > t.MaxLevel {
		t.MaxLevel = level
	}
	return &Node{
		Level: level,
		Name:  truthtable.FromBool(result),
	}, nil
}

// Leaves returns the number of leaves, 2^len(Variables).
func (t *Tree) Leaves() int {
	return t.leaves
}

// Walk visits every node depth first, left before right. path holds the
// branch cells ('0' for left, '1' for right) from the root to n and is only
// valid during the call.
func (t *Tree) Walk(visit func(n *Node, path []byte)) {
	if t == nil || t.Root == nil {
		return
	}
	path := make([]byte, 0, t.MaxLevel)
	walk(t.Root, path, visit)
}

func walk(n *Node, path []byte, visit func(*Node, []byte)) {
	visit(n, path)
	if n.Left != nil {
		walk(n.Left, append(path, truthtable.Zero), visit)
	}
	if n.Right != nil {
		walk(n.Right, append(path, truthtable.One), visit)
	}
}
