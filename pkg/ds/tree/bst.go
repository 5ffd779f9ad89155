// ABOUTME: Binary search tree insert, search with path, and three-case delete
// ABOUTME: Left subtree strictly less, right strictly greater; duplicates are rejected

package tree

import (
	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
)

// DefaultSeed is the tree both visualizers start from.
var DefaultSeed = []int{50, 30, 70, 20, 40, 60, 80}

// FromValues builds a BST by inserting vals in order. Duplicates are
// skipped; the node limit is not applied.
func FromValues(vals ...int) *Node {
	var root *Node
	for _, v := range vals {
		root = insertBST(root, v)
	}
	return root
}

// Insert adds v to a copy of the BST rooted at root.
func Insert(root *Node, v, limit int) (*Node, error) {
	if n := Count(root); n >= limit {
		return root, errors.Wrapf(ds.ErrCapacityExceeded, "insert %d: %d/%d nodes", v, n, limit)
	}
	if found, _ := Trace(root, v); found {
		return root, errors.Wrapf(ds.ErrDuplicateValue, "insert %d", v)
	}
	return insertBST(Clone(root), v), nil
}

func insertBST(n *Node, v int) *Node {
	if n == nil {
		return &Node{Value: v}
	}
	switch {
	case v < n.Value:
		n.Left = insertBST(n.Left, v)
	case v > n.Value:
		n.Right = insertBST(n.Right, v)
	}
	return n
}

// Search descends by comparison and returns whether v was found together
// with the values of every visited node, in visiting order. When found,
// the last element of the path is v.
func Search(root *Node, v int) (bool, []int) {
	found, visits := Trace(root, v)
	path := make([]int, len(visits))
	for i, vis := range visits {
		path[i] = vis.Value
	}
	return found, path
}

// Trace is Search reporting the slot of every visited node as well.
func Trace(root *Node, v int) (bool, []Visit) {
	var path []Visit
	for n, slot := root, 0; n != nil; {
		path = append(path, Visit{n.Value, slot})
		switch {
		case v == n.Value:
			return true, path
		case v < n.Value:
			n, slot = n.Left, 2*slot+1
		default:
			n, slot = n.Right, 2*slot+2
		}
	}
	return false, path
}

// Remove deletes v from a copy of the BST rooted at root. A node with two
// children takes the value of its in-order successor, which is then
// removed from the right subtree.
func Remove(root *Node, v int) (*Node, error) {
	if root == nil {
		return root, errors.Wrapf(ds.ErrEmpty, "remove %d", v)
	}
	if found, _ := Trace(root, v); !found {
		return root, errors.Wrapf(ds.ErrNotFound, "remove %d", v)
	}
	return removeBST(Clone(root), v), nil
}

func removeBST(n *Node, v int) *Node {
	if n == nil {
		return nil
	}
	switch {
	case v < n.Value:
		n.Left = removeBST(n.Left, v)
		return n
	case v > n.Value:
		n.Right = removeBST(n.Right, v)
		return n
	}
	switch {
	case n.Left == nil:
		return n.Right
	case n.Right == nil:
		return n.Left
	}
	succ := n.Right
	for succ.Left != nil {
		succ = succ.Left
	}
	n.Value = succ.Value
	n.Right = removeBST(n.Right, succ.Value)
	return n
}

// Min returns the smallest value in the tree.
func Min(root *Node) (int, bool) {
	if root == nil {
		return 0, false
	}
	n := root
	for n.Left != nil {
		n = n.Left
	}
	return n.Value, true
}

// Valid reports whether root satisfies the strict BST ordering.
func Valid(root *Node) bool {
	return validRange(root, nil, nil)
}

// validRange checks *lo < value < *hi for every node; nil means unbounded.
func validRange(n *Node, lo, hi *int) bool {
	if n == nil {
		return true
	}
	if (lo != nil && n.Value <= *lo) || (hi != nil && n.Value >= *hi) {
		return false
	}
	return validRange(n.Left, lo, &n.Value) && validRange(n.Right, &n.Value, hi)
}
