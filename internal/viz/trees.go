// ABOUTME: Controller for the binary tree (level-order insert) and the BST (ordered insert, delete, search)
// ABOUTME: Search and traversals run as highlight animations that light one node slot per frame

package viz

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
)

type treeCtrl struct {
	machine[*tree.Node]
	bst       bool
	limit     int
	delays    Delays
	order     tree.Order
	traversal []int
}

func newTree(kind Kind, opts Options) *treeCtrl {
	var root *tree.Node
	if kind == KindBST {
		root = tree.FromValues(opts.Seeds.Tree...)
	} else {
		for _, v := range opts.Seeds.Tree {
			root, _ = tree.InsertLevelOrder(root, v, opts.Limits.Tree)
		}
	}
	return &treeCtrl{
		machine: newMachine(kind, root, tree.Clone, formatTree, opts),
		bst:     kind == KindBST,
		limit:   opts.Limits.Tree,
		delays:  opts.Delays,
	}
}

func formatTree(n *tree.Node) string {
	if n == nil {
		return "(empty)"
	}
	return n.String()
}

func (c *treeCtrl) Title() string {
	if c.bst {
		return "Binary Search Tree"
	}
	return "Binary Tree"
}

func (c *treeCtrl) Verbs() []Verb {
	if c.bst {
		return []Verb{VerbAdd, VerbRemove, VerbClear, VerbSearch, VerbTraverse}
	}
	return []Verb{VerbAdd, VerbClear, VerbTraverse}
}

func (c *treeCtrl) Do(a Action) Result {
	switch {
	case a.Verb == VerbAdd:
		return c.add(a)
	case a.Verb == VerbClear:
		return c.clear()
	case a.Verb == VerbRemove && c.bst:
		return c.remove(a)
	case a.Verb == VerbSearch && c.bst:
		return c.search(a)
	case a.Verb == VerbTraverse:
		return c.traverse(a.Order)
	}
	return c.invalid(fmt.Sprintf("%s does not support %s", c.Title(), a.Verb))
}

func (c *treeCtrl) add(a Action) Result {
	if !a.HasValue {
		return c.invalid("Please enter a value")
	}
	cur := c.current()
	var (
		next *tree.Node
		err  error
	)
	if c.bst {
		next, err = tree.Insert(cur, a.Value, c.limit)
	} else {
		next, err = tree.InsertLevelOrder(cur, a.Value, c.limit)
	}
	switch {
	case errors.Is(err, ds.ErrCapacityExceeded):
		return c.fail(err, fmt.Sprintf("Maximum tree size reached (%d nodes)", c.limit))
	case errors.Is(err, ds.ErrDuplicateValue):
		return c.fail(err, fmt.Sprintf("Value %d already exists in the tree", a.Value))
	case err != nil:
		return c.fail(err, err.Error())
	}
	text := fmt.Sprintf("Added node with value %d", a.Value)
	c.record(next, text)
	return c.ok(text)
}

func (c *treeCtrl) remove(a Action) Result {
	if !a.HasValue {
		return c.invalid("Please enter a value to delete")
	}
	next, err := tree.Remove(c.current(), a.Value)
	switch {
	case errors.Is(err, ds.ErrEmpty):
		return c.fail(err, "Tree is empty")
	case errors.Is(err, ds.ErrNotFound):
		return c.fail(err, fmt.Sprintf("Value %d not found in tree", a.Value))
	case err != nil:
		return c.fail(err, err.Error())
	}
	text := fmt.Sprintf("Deleted node with value %d", a.Value)
	c.record(next, text)
	return c.ok(text)
}

func (c *treeCtrl) clear() Result {
	c.traversal = nil
	c.record(nil, "Tree cleared")
	return c.ok("Tree cleared")
}

func (c *treeCtrl) search(a Action) Result {
	if !a.HasValue {
		return c.invalid("Please enter a value to search")
	}
	found, path := tree.Trace(c.current(), a.Value)

	frames := make([]Frame, 0, len(path)+1)
	for _, v := range path {
		frames = append(frames, Frame{Mark: v.Slot, Lit: true, Caption: fmt.Sprintf("Comparing %d with %d", a.Value, v.Value)})
	}
	final := Notice{Kind: c.kind, Level: LevelSuccess, Text: fmt.Sprintf("Found value %d", a.Value)}
	var err error
	if !found {
		err = errors.Wrapf(ds.ErrNotFound, "search %d", a.Value)
		final = Notice{Kind: c.kind, Level: LevelError, Text: fmt.Sprintf("Value %d not found in tree", a.Value), Code: ds.Code(err)}
	}
	frames = append(frames, Frame{Notice: &final})

	res := c.animate(Notice{Level: LevelInfo, Text: fmt.Sprintf("Searching for %d", a.Value)}, frames, c.delays.TreeSearch)
	res.Err = err
	return res
}

func (c *treeCtrl) traverse(o tree.Order) Result {
	cur := c.current()
	if cur == nil {
		return c.fail(errors.Wrap(ds.ErrEmpty, "traverse"), "Tree is empty")
	}
	c.order = o
	visits := tree.Walk(cur, o)
	c.traversal = make([]int, len(visits))

	name := strings.ToUpper(o.String()[:1]) + o.String()[1:]
	frames := make([]Frame, 0, len(visits)+1)
	for i, v := range visits {
		c.traversal[i] = v.Value
		frames = append(frames, Frame{Mark: v.Slot, Lit: true, Caption: fmt.Sprintf("%s step %d: visiting %d", name, i+1, v.Value)})
	}
	done := Notice{Kind: c.kind, Level: LevelInfo, Text: fmt.Sprintf("%s traversal: %s", name, joinInts(c.traversal))}
	frames = append(frames, Frame{Notice: &done})

	return c.animate(Notice{Level: LevelSuccess, Text: name + " traversal started"}, frames, c.delays.Traversal)
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func (c *treeCtrl) Snapshot() Snapshot {
	root := c.current()
	if slot, ok := c.lit(); ok {
		root = tree.HighlightSlot(root, slot)
	}
	return Snapshot{
		Kind:      c.kind,
		Root:      root,
		Max:       c.limit,
		Highlight: -1,
		Caption:   c.frameCaption(),
		Order:     c.order,
		Traversal: c.traversal,
		Animating: c.Animating(),
	}
}
