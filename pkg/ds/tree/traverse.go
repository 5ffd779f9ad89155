// ABOUTME: Depth-first and breadth-first traversal orders over binary trees
// ABOUTME: Order parses from user text; Walk returns visited nodes with their heap-style slots

package tree

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
)

// Order selects a traversal.
type Order int

const (
	// Inorder visits left, self, right.
	Inorder Order = iota
	// Preorder visits self, left, right.
	Preorder
	// Postorder visits left, right, self.
	Postorder
	// LevelOrder visits breadth-first, left to right.
	LevelOrder
)

// Orders lists every traversal in cycling order.
var Orders = []Order{Inorder, Preorder, Postorder, LevelOrder}

// String returns the lowercase name of the order.
func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	default:
		return "unknown"
	}
}

// Next returns the order after o, wrapping around.
func (o Order) Next() Order {
	return Orders[(int(o)+1)%len(Orders)]
}

// ParseOrder accepts the names produced by String plus a few spellings
// ("in-order", "level", "bfs").
func ParseOrder(s string) (Order, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	switch norm {
	case "inorder", "in":
		return Inorder, nil
	case "preorder", "pre":
		return Preorder, nil
	case "postorder", "post":
		return Postorder, nil
	case "levelorder", "level", "bfs":
		return LevelOrder, nil
	}
	return Inorder, errors.Wrapf(ds.ErrInvalidInput, "unknown traversal order %q", s)
}

// Visit is one node reached by a walk. Slot numbers nodes heap-style
// (root 0, children of slot i at 2i+1 and 2i+2), so it names a single
// node even when values repeat.
type Visit struct {
	Value int
	Slot  int
}

// Traverse returns node values in the requested order.
func Traverse(root *Node, o Order) []int {
	visits := Walk(root, o)
	out := make([]int, len(visits))
	for i, v := range visits {
		out[i] = v.Value
	}
	return out
}

// Walk returns every node in the requested order with its slot.
func Walk(root *Node, o Order) []Visit {
	out := make([]Visit, 0, Count(root))
	switch o {
	case Preorder:
		preorder(root, 0, &out)
	case Postorder:
		postorder(root, 0, &out)
	case LevelOrder:
		levelorder(root, &out)
	default:
		inorder(root, 0, &out)
	}
	return out
}

func inorder(n *Node, slot int, out *[]Visit) {
	if n == nil {
		return
	}
	inorder(n.Left, 2*slot+1, out)
	*out = append(*out, Visit{n.Value, slot})
	inorder(n.Right, 2*slot+2, out)
}

func preorder(n *Node, slot int, out *[]Visit) {
	if n == nil {
		return
	}
	*out = append(*out, Visit{n.Value, slot})
	preorder(n.Left, 2*slot+1, out)
	preorder(n.Right, 2*slot+2, out)
}

func postorder(n *Node, slot int, out *[]Visit) {
	if n == nil {
		return
	}
	postorder(n.Left, 2*slot+1, out)
	postorder(n.Right, 2*slot+2, out)
	*out = append(*out, Visit{n.Value, slot})
}

func levelorder(root *Node, out *[]Visit) {
	if root == nil {
		return
	}
	type item struct {
		n    *Node
		slot int
	}
	queue := []item{{root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		*out = append(*out, Visit{it.n.Value, it.slot})
		if it.n.Left != nil {
			queue = append(queue, item{it.n.Left, 2*it.slot + 1})
		}
		if it.n.Right != nil {
			queue = append(queue, item{it.n.Right, 2*it.slot + 2})
		}
	}
}
