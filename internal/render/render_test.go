// ABOUTME: Tests for the structure renderers
// ABOUTME: Uses unstyled output so layouts can be compared character by character

package render

import (
	"strings"
	"testing"

	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

var plain theme.Styles

func TestArray(t *testing.T) {
	t.Parallel()

	out := Array(viz.Snapshot{Kind: viz.KindArray, Values: []int{5, 10, 15}, Max: 12, Highlight: -1}, plain)
	lines := strings.Split(out, "\n")
	want := []string{
		"┌────┬────┬────┐",
		"│ 5  │ 10 │ 15 │",
		"└────┴────┴────┘",
		"  0    1    2  ",
		"3/12 elements",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestArray_Empty(t *testing.T) {
	t.Parallel()

	out := Array(viz.Snapshot{Kind: viz.KindArray, Max: 12, Highlight: -1}, plain)
	if !strings.Contains(out, "(empty array)") || !strings.Contains(out, "0/12") {
		t.Errorf("out = %q", out)
	}
}

func TestLinkedList(t *testing.T) {
	t.Parallel()

	out := LinkedList(viz.Snapshot{Values: []int{10, 20}, Max: 8, Highlight: 1}, plain)
	first, _, _ := strings.Cut(out, "\n")
	if first != "HEAD → [10] → [20] → NULL" {
		t.Errorf("row = %q", first)
	}
	if !strings.HasSuffix(out, "2/8 nodes") {
		t.Errorf("out = %q", out)
	}
}

func TestStack_TopFirst(t *testing.T) {
	t.Parallel()

	out := Stack(viz.Snapshot{Values: []int{1, 2, 3}, Max: 7, Highlight: -1}, plain)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "TOP → ") || !strings.Contains(lines[1], "3") {
		t.Errorf("top line = %q", lines[1])
	}
	if !strings.Contains(lines[len(lines)-2], "└") {
		t.Errorf("bottom border missing: %q", lines[len(lines)-2])
	}
	if !strings.Contains(lines[len(lines)-3], "1") {
		t.Errorf("bottom item = %q", lines[len(lines)-3])
	}
}

func TestStack_Empty(t *testing.T) {
	t.Parallel()

	out := Stack(viz.Snapshot{Max: 7, Highlight: -1}, plain)
	if !strings.Contains(out, "empty") || strings.Contains(out, "TOP") {
		t.Errorf("out = %q", out)
	}
}

func TestQueue(t *testing.T) {
	t.Parallel()

	out := Queue(viz.Snapshot{Values: []int{4, 8}, Max: 10, Highlight: -1}, plain)
	first, _, _ := strings.Cut(out, "\n")
	if first != "FRONT → │ 4 │ │ 8 │ ← REAR" {
		t.Errorf("row = %q", first)
	}
}

func TestTree_Layout(t *testing.T) {
	t.Parallel()

	root := tree.FromValues(tree.DefaultSeed...)
	out := Tree(viz.Snapshot{Kind: viz.KindBST, Root: root, Max: 15}, plain)
	lines := strings.Split(out, "\n")

	want := []string{
		"             50",
		"      ┌───────┴───────┐",
		"     30              70",
		"  ┌───┴───┐       ┌───┴───┐",
		" 20      40      60      80",
		"7/15 nodes",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTree_OneSidedConnectors(t *testing.T) {
	t.Parallel()

	root := tree.FromValues(10, 5, 3)
	out := Tree(viz.Snapshot{Root: root, Max: 15}, plain)
	if !strings.Contains(out, "┘") || strings.Contains(out, "┐") {
		t.Errorf("left-leaning tree:\n%s", out)
	}
}

func TestTree_EmptyAndTraversal(t *testing.T) {
	t.Parallel()

	out := Tree(viz.Snapshot{Max: 15, Order: tree.Preorder, Traversal: []int{1, 2}}, plain)
	if !strings.Contains(out, "(empty tree)") {
		t.Errorf("out = %q", out)
	}
	if !strings.Contains(out, "preorder: 1 2") {
		t.Errorf("traversal line missing: %q", out)
	}
}

func TestSnapshot_Dispatch(t *testing.T) {
	t.Parallel()

	for _, k := range viz.Kinds {
		if out := Snapshot(viz.Snapshot{Kind: k, Max: 5, Highlight: -1}, plain); out == "" {
			t.Errorf("Snapshot(%s) rendered nothing", k)
		}
	}
}
