// ABOUTME: Binary tree nodes with deep copy, traversal, level-order insert and highlighting
// ABOUTME: Every mutating function works on a copy so prior snapshots stay intact

package tree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
)

// MaxNodes is the default node limit for both tree visualizers.
const MaxNodes = 15

// Node is a binary tree node. Each node exclusively owns its children.
// Highlighted is a transient render flag and carries no structural meaning.
type Node struct {
	Value       int
	Left        *Node
	Right       *Node
	Highlighted bool
}

// Clone returns a deep copy of n (nil for nil).
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Value:       n.Value,
		Left:        Clone(n.Left),
		Right:       Clone(n.Right),
		Highlighted: n.Highlighted,
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}

// Height returns the number of levels; 0 for an empty tree.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

// Equal reports whether a and b have the same shape and values.
// Highlight flags are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Contains reports whether any node holds v (full scan, no ordering assumed).
func Contains(n *Node, v int) bool {
	if n == nil {
		return false
	}
	return n.Value == v || Contains(n.Left, v) || Contains(n.Right, v)
}

// InsertLevelOrder places v in the first empty child slot found by a
// breadth-first scan. The input tree is not modified.
func InsertLevelOrder(root *Node, v, limit int) (*Node, error) {
	if n := Count(root); n >= limit {
		return root, errors.Wrapf(ds.ErrCapacityExceeded, "insert %d: %d/%d nodes", v, n, limit)
	}
	if root == nil {
		return &Node{Value: v}, nil
	}
	out := Clone(root)
	queue := []*Node{out}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.Left == nil {
			n.Left = &Node{Value: v}
			return out, nil
		}
		if n.Right == nil {
			n.Right = &Node{Value: v}
			return out, nil
		}
		queue = append(queue, n.Left, n.Right)
	}
	// Unreachable: a finite tree always has an empty slot.
	return out, errors.AssertionFailedf("no empty slot in tree of %d nodes", Count(out))
}

// Highlight returns a copy of n where exactly the nodes holding v are
// flagged.
func Highlight(n *Node, v int) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Value:       n.Value,
		Left:        Highlight(n.Left, v),
		Right:       Highlight(n.Right, v),
		Highlighted: n.Value == v,
	}
}

// HighlightSlot returns a copy of n with Highlighted set only on the node
// at slot (see Visit).
func HighlightSlot(n *Node, slot int) *Node {
	return highlightSlot(n, 0, slot)
}

func highlightSlot(n *Node, at, slot int) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Value:       n.Value,
		Left:        highlightSlot(n.Left, 2*at+1, slot),
		Right:       highlightSlot(n.Right, 2*at+2, slot),
		Highlighted: at == slot,
	}
}

// ClearHighlights returns a copy of n with every flag reset.
func ClearHighlights(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Value: n.Value,
		Left:  ClearHighlights(n.Left),
		Right: ClearHighlights(n.Right),
	}
}

// String renders the tree in a compact parenthesised form, e.g.
// "50(30(20,40),70)". Empty children in a half-filled node print as "-".
func (n *Node) String() string {
	if n == nil {
		return "-"
	}
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	fmt.Fprintf(b, "%d", n.Value)
	if n.Left == nil && n.Right == nil {
		return
	}
	b.WriteByte('(')
	if n.Left != nil {
		writeNode(b, n.Left)
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(',')
	if n.Right != nil {
		writeNode(b, n.Right)
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(')')
}
