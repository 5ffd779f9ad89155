// ABOUTME: Tree layout: each node gets the column of its in-order rank, one row per level
// ABOUTME: Connector rows join parents to children with box-drawing characters

package render

import (
	"strconv"
	"strings"

	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

type placed struct {
	node   *tree.Node
	center int
}

// layout assigns every node a center column and groups nodes by depth.
// Within a level nodes come out left to right.
func layout(root *tree.Node, w int) ([][]placed, map[*tree.Node]int) {
	var levels [][]placed
	centers := make(map[*tree.Node]int)
	rank := 0
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		c := rank*w + w/2
		rank++
		centers[n] = c
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], placed{node: n, center: c})
		walk(n.Right, depth+1)
	}
	walk(root, 0)
	return levels, centers
}

func nodeWidth(root *tree.Node) int {
	w := 2
	for _, v := range tree.Traverse(root, tree.Inorder) {
		w = max(w, len(strconv.Itoa(v)))
	}
	return w + 2
}

// Tree draws the tree top-down, followed by its size and the last
// traversal when one ran.
func Tree(s viz.Snapshot, st theme.Styles) string {
	footer := capacity(tree.Count(s.Root), s.Max, "nodes", st)
	if len(s.Traversal) > 0 {
		parts := make([]string, len(s.Traversal))
		for i, v := range s.Traversal {
			parts[i] = strconv.Itoa(v)
		}
		footer += "\n" + st.Subtle.Render(s.Order.String()+": "+strings.Join(parts, " "))
	}
	if s.Root == nil {
		return st.Muted.Render("(empty tree)") + "\n" + footer
	}

	w := nodeWidth(s.Root)
	levels, centers := layout(s.Root, w)
	total := tree.Count(s.Root) * w

	lines := make([]string, 0, 2*len(levels)+1)
	for d, level := range levels {
		lines = append(lines, nodeRow(level, st))
		if d < len(levels)-1 {
			if row := connectorRow(level, centers, total); row != "" {
				lines = append(lines, row)
			}
		}
	}
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

func nodeRow(level []placed, st theme.Styles) string {
	var b strings.Builder
	cur := 0
	for _, p := range level {
		label := strconv.Itoa(p.node.Value)
		start := max(p.center-len(label)/2, cur)
		b.WriteString(strings.Repeat(" ", start-cur))
		if p.node.Highlighted {
			b.WriteString(st.Lit.Render(label))
		} else {
			b.WriteString(st.Cell.Render(label))
		}
		cur = start + len(label)
	}
	return b.String()
}

func connectorRow(level []placed, centers map[*tree.Node]int, total int) string {
	grid := []rune(strings.Repeat(" ", total))
	for _, p := range level {
		l, r := p.node.Left, p.node.Right
		if l == nil && r == nil {
			continue
		}
		if l != nil {
			lc := centers[l]
			grid[lc] = '┌'
			for x := lc + 1; x < p.center; x++ {
				grid[x] = '─'
			}
		}
		if r != nil {
			rc := centers[r]
			grid[rc] = '┐'
			for x := p.center + 1; x < rc; x++ {
				grid[x] = '─'
			}
		}
		switch {
		case l != nil && r != nil:
			grid[p.center] = '┴'
		case l != nil:
			grid[p.center] = '┘'
		default:
			grid[p.center] = '└'
		}
	}
	return strings.TrimRight(string(grid), " ")
}
