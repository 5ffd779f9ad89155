// ABOUTME: Text renderers for every structure snapshot, shared by the TUI and script runs
// ABOUTME: Highlighted cells use the theme's lit style; widths go through pkg/tui/width

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
	"github.com/mauromedda/dsviz/pkg/tui/width"
)

// Snapshot renders s as a multi-line block.
func Snapshot(s viz.Snapshot, st theme.Styles) string {
	switch s.Kind {
	case viz.KindArray:
		return Array(s, st)
	case viz.KindLinkedList:
		return LinkedList(s, st)
	case viz.KindStack:
		return Stack(s, st)
	case viz.KindQueue:
		return Queue(s, st)
	case viz.KindBinaryTree, viz.KindBST:
		return Tree(s, st)
	}
	return ""
}

// cellWidth is the inner width shared by every cell of a sequence.
func cellWidth(vals []int) int {
	w := 3
	for _, v := range vals {
		w = max(w, len(strconv.Itoa(v))+2)
	}
	return w
}

func cell(v int, lit bool, w int, st theme.Styles) string {
	label := width.Center(strconv.Itoa(v), w)
	if lit {
		return st.Lit.Render(label)
	}
	return st.Cell.Render(label)
}

func capacity(n, limit int, unit string, st theme.Styles) string {
	return st.Muted.Render(fmt.Sprintf("%d/%d %s", n, limit, unit))
}

// Array draws boxed cells with their indices underneath.
func Array(s viz.Snapshot, st theme.Styles) string {
	if len(s.Values) == 0 {
		return st.Muted.Render("(empty array)") + "\n" + capacity(0, s.Max, "elements", st)
	}
	w := cellWidth(s.Values)
	bar := strings.Repeat("─", w)

	var top, mid, bot, idx strings.Builder
	for i, v := range s.Values {
		if i == 0 {
			top.WriteString("┌")
			mid.WriteString("│")
			bot.WriteString("└")
			idx.WriteString(" ")
		}
		top.WriteString(bar)
		bot.WriteString(bar)
		mid.WriteString(cell(v, i == s.Highlight, w, st))
		idx.WriteString(st.Muted.Render(width.Center(strconv.Itoa(i), w)))
		if i == len(s.Values)-1 {
			top.WriteString("┐")
			mid.WriteString("│")
			bot.WriteString("┘")
		} else {
			top.WriteString("┬")
			mid.WriteString("│")
			bot.WriteString("┴")
			idx.WriteString(" ")
		}
	}
	return strings.Join([]string{
		top.String(), mid.String(), bot.String(), idx.String(),
		capacity(len(s.Values), s.Max, "elements", st),
	}, "\n")
}

// LinkedList draws HEAD -> nodes -> NULL.
func LinkedList(s viz.Snapshot, st theme.Styles) string {
	arrow := st.Pointer.Render(" → ")
	var b strings.Builder
	b.WriteString(st.Accent.Render("HEAD"))
	for i, v := range s.Values {
		b.WriteString(arrow)
		label := "[" + strconv.Itoa(v) + "]"
		if i == s.Highlight {
			b.WriteString(st.Lit.Render(label))
		} else {
			b.WriteString(st.Cell.Render(label))
		}
	}
	b.WriteString(arrow)
	b.WriteString(st.Muted.Render("NULL"))
	b.WriteString("\n")
	b.WriteString(capacity(len(s.Values), s.Max, "nodes", st))
	return b.String()
}

// Stack draws the stack top first with a TOP marker.
func Stack(s viz.Snapshot, st theme.Styles) string {
	w := cellWidth(s.Values) + 2
	bar := strings.Repeat("─", w)
	marker := "TOP → "
	pad := strings.Repeat(" ", len([]rune(marker)))

	lines := []string{pad + "┌" + bar + "┐"}
	if len(s.Values) == 0 {
		lines = append(lines, pad+"│"+st.Muted.Render(width.Center("empty", w))+"│")
	}
	for i := len(s.Values) - 1; i >= 0; i-- {
		prefix := pad
		if i == len(s.Values)-1 {
			prefix = st.Accent.Render(marker)
		}
		lines = append(lines, prefix+"│"+cell(s.Values[i], i == s.Highlight, w, st)+"│")
		if i > 0 {
			lines = append(lines, pad+"├"+bar+"┤")
		}
	}
	lines = append(lines, pad+"└"+bar+"┘", capacity(len(s.Values), s.Max, "items", st))
	return strings.Join(lines, "\n")
}

// Queue draws cells left to right with FRONT and REAR markers.
func Queue(s viz.Snapshot, st theme.Styles) string {
	if len(s.Values) == 0 {
		return st.Muted.Render("FRONT → (empty) ← REAR") + "\n" + capacity(0, s.Max, "items", st)
	}
	w := cellWidth(s.Values)
	cells := make([]string, len(s.Values))
	for i, v := range s.Values {
		cells[i] = "│" + cell(v, i == s.Highlight, w, st) + "│"
	}
	row := st.Accent.Render("FRONT → ") + strings.Join(cells, " ") + st.Accent.Render(" ← REAR")
	return row + "\n" + capacity(len(s.Values), s.Max, "items", st)
}
