// ABOUTME: Tests for tree algorithms: BST insert/search/remove, level-order insert, traversals
// ABOUTME: Includes ordering and permutation properties over generated insert sequences

package tree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBSTInsertThenInorder(t *testing.T) {
	t.Parallel()

	root := &Node{Value: 50}
	root, err := Insert(root, 30, MaxNodes)
	require.NoError(t, err)
	root, err = Insert(root, 70, MaxNodes)
	require.NoError(t, err)

	assert.Equal(t, []int{30, 50, 70}, Traverse(root, Inorder))
}

func TestBSTInsertDuplicate(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)
	got, err := Insert(root, 40, MaxNodes)
	assert.True(t, errors.Is(err, ds.ErrDuplicateValue))
	assert.Same(t, root, got)
	assert.Equal(t, 7, Count(got))
}

func TestBSTInsertCapacity(t *testing.T) {
	t.Parallel()

	root := FromValues(8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15)
	require.Equal(t, MaxNodes, Count(root))

	_, err := Insert(root, 16, MaxNodes)
	assert.True(t, errors.Is(err, ds.ErrCapacityExceeded))
	assert.Equal(t, MaxNodes, Count(root))
}

func TestBSTInsertLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)
	before := Clone(root)
	_, err := Insert(root, 65, MaxNodes)
	require.NoError(t, err)
	assert.True(t, Equal(before, root))
}

func TestBSTRemoveTwoChildren(t *testing.T) {
	t.Parallel()

	root := FromValues(50, 30, 70, 20, 40)
	got, err := Remove(root, 30)
	require.NoError(t, err)

	require.NotNil(t, got.Left)
	assert.Equal(t, 40, got.Left.Value, "successor copied up")
	assert.Equal(t, 4, Count(got))
	assert.True(t, Valid(got))
	assert.Equal(t, []int{20, 40, 50, 70}, Traverse(got, Inorder))

	// The original snapshot still has 30.
	assert.Equal(t, 30, root.Left.Value)
	assert.Equal(t, 5, Count(root))
}

func TestBSTRemoveCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove int
		want   []int
	}{
		{"leaf", 20, []int{30, 40, 50, 60, 70, 80}},
		{"root with two children", 50, []int{20, 30, 40, 60, 70, 80}},
		{"inner", 70, []int{20, 30, 40, 50, 60, 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Remove(FromValues(DefaultSeed...), tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Traverse(got, Inorder))
			assert.True(t, Valid(got))
		})
	}
}

func TestBSTRemoveOneChild(t *testing.T) {
	t.Parallel()

	root := FromValues(50, 30, 20)
	got, err := Remove(root, 30)
	require.NoError(t, err)
	require.NotNil(t, got.Left)
	assert.Equal(t, 20, got.Left.Value)
	assert.Nil(t, got.Right)
}

func TestBSTRemoveErrors(t *testing.T) {
	t.Parallel()

	_, err := Remove(nil, 1)
	assert.True(t, errors.Is(err, ds.ErrEmpty))

	root := FromValues(DefaultSeed...)
	got, err := Remove(root, 99)
	assert.True(t, errors.Is(err, ds.ErrNotFound))
	assert.Same(t, root, got)
}

func TestBSTSearchPath(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)

	found, path := Search(root, 60)
	assert.True(t, found)
	assert.Equal(t, []int{50, 70, 60}, path)

	found, path = Search(root, 65)
	assert.False(t, found)
	assert.Equal(t, []int{50, 70, 60}, path)

	found, path = Search(nil, 1)
	assert.False(t, found)
	assert.Empty(t, path)
}

func TestBSTProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		var root *Node
		for range rng.IntN(MaxNodes) + 1 {
			v := rng.IntN(100)
			next, err := Insert(root, v, MaxNodes)
			if err != nil {
				require.True(t, errors.Is(err, ds.ErrDuplicateValue))
				continue
			}
			root = next

			found, path := Search(root, v)
			require.True(t, found)
			require.Equal(t, v, path[len(path)-1])
		}

		in := Traverse(root, Inorder)
		assert.True(t, slices.IsSorted(in), "inorder not sorted: %v", in)
		assert.True(t, Valid(root))

		if len(in) > 0 {
			victim := in[rng.IntN(len(in))]
			after, err := Remove(root, victim)
			require.NoError(t, err)
			assert.True(t, Valid(after))
			assert.Equal(t, len(in)-1, Count(after))
			assert.False(t, Contains(after, victim))
		}
	}
}

func TestTraversalsArePermutations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		var root *Node
		var err error
		for range rng.IntN(MaxNodes) {
			root, err = InsertLevelOrder(root, rng.IntN(20), MaxNodes)
			require.NoError(t, err)
		}

		want := Traverse(root, Inorder)
		slices.Sort(want)
		for _, o := range Orders {
			got := Traverse(root, o)
			assert.Len(t, got, Count(root), "order %s", o)
			slices.Sort(got)
			assert.Equal(t, want, got, "order %s", o)
		}
	}
}

func TestTraverseOrders(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, Traverse(root, Inorder))
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, Traverse(root, Preorder))
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, Traverse(root, Postorder))
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, Traverse(root, LevelOrder))
	assert.Empty(t, Traverse(nil, Preorder))
}

func TestInsertLevelOrder(t *testing.T) {
	t.Parallel()

	var root *Node
	var err error
	for _, v := range []int{1, 2, 3, 4, 5} {
		root, err = InsertLevelOrder(root, v, MaxNodes)
		require.NoError(t, err)
	}
	assert.Equal(t, "1(2(4,5),3)", root.String())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Traverse(root, LevelOrder))
	assert.Equal(t, 3, Height(root))
}

func TestInsertLevelOrderAllowsDuplicatesAndCapacity(t *testing.T) {
	t.Parallel()

	var root *Node
	var err error
	for range MaxNodes {
		root, err = InsertLevelOrder(root, 7, MaxNodes)
		require.NoError(t, err)
	}
	assert.Equal(t, MaxNodes, Count(root))

	got, err := InsertLevelOrder(root, 7, MaxNodes)
	assert.True(t, errors.Is(err, ds.ErrCapacityExceeded))
	assert.Same(t, root, got)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Order
	}{
		{"inorder", Inorder},
		{"Pre-Order", Preorder},
		{" post ", Postorder},
		{"bfs", LevelOrder},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseOrder("sideways")
	assert.True(t, errors.Is(err, ds.ErrInvalidInput))
	assert.Equal(t, Preorder, Inorder.Next())
	assert.Equal(t, Inorder, LevelOrder.Next())
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)
	lit := Highlight(root, 40)
	assert.True(t, lit.Left.Right.Highlighted)
	assert.False(t, lit.Highlighted)
	assert.False(t, root.Left.Right.Highlighted, "original untouched")
	assert.True(t, Equal(root, lit))

	cleared := ClearHighlights(lit)
	assert.False(t, cleared.Left.Right.Highlighted)
}

func TestMinAndValid(t *testing.T) {
	t.Parallel()

	m, ok := Min(FromValues(DefaultSeed...))
	assert.True(t, ok)
	assert.Equal(t, 20, m)

	_, ok = Min(nil)
	assert.False(t, ok)

	bad := &Node{Value: 10, Left: &Node{Value: 5, Right: &Node{Value: 12}}}
	assert.False(t, Valid(bad))
	assert.True(t, Valid(nil))
}

func TestBSTTraceSlots(t *testing.T) {
	t.Parallel()

	root := FromValues(DefaultSeed...)
	found, path := Trace(root, 60)
	assert.True(t, found)
	assert.Equal(t, []Visit{{50, 0}, {70, 2}, {60, 5}}, path)

	found, path = Trace(root, 25)
	assert.False(t, found)
	assert.Equal(t, []Visit{{50, 0}, {30, 1}, {20, 3}}, path)
}

func TestWalkSlotsNameEachNode(t *testing.T) {
	t.Parallel()

	var root *Node
	for range 3 {
		var err error
		root, err = InsertLevelOrder(root, 5, MaxNodes)
		require.NoError(t, err)
	}

	for _, o := range Orders {
		visits := Walk(root, o)
		require.Len(t, visits, 3, "order %s", o)
		slots := make([]int, len(visits))
		for i, v := range visits {
			assert.Equal(t, 5, v.Value)
			slots[i] = v.Slot
		}
		slices.Sort(slots)
		assert.Equal(t, []int{0, 1, 2}, slots, "order %s", o)
	}
	assert.Equal(t, []Visit{{5, 0}, {5, 1}, {5, 2}}, Walk(root, Preorder))
	assert.Equal(t, []Visit{{5, 1}, {5, 2}, {5, 0}}, Walk(root, Postorder))
}

func TestHighlightSlotLightsOneNode(t *testing.T) {
	t.Parallel()

	root := &Node{Value: 5, Left: &Node{Value: 5}, Right: &Node{Value: 5}}
	lit := HighlightSlot(root, 2)

	assert.False(t, lit.Highlighted)
	assert.False(t, lit.Left.Highlighted)
	assert.True(t, lit.Right.Highlighted)
	assert.False(t, root.Right.Highlighted, "input must stay untouched")

	none := HighlightSlot(root, 9)
	assert.False(t, none.Highlighted || none.Left.Highlighted || none.Right.Highlighted)
}

func TestBSTInsertDuplicateFollowsSearchPath(t *testing.T) {
	t.Parallel()

	// 60 sits left of 50, off the path an insert of 60 descends.
	root := &Node{Value: 50, Left: &Node{Value: 60}}
	next, err := Insert(root, 60, MaxNodes)
	require.NoError(t, err)
	require.NotNil(t, next.Right)
	assert.Equal(t, 60, next.Right.Value)

	_, err = Insert(next, 50, MaxNodes)
	assert.True(t, errors.Is(err, ds.ErrDuplicateValue))
}
