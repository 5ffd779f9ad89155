// ABOUTME: Tests for the bounded sequence, stack and queue operations
// ABOUTME: Covers capacity and empty failures, search probes, and append/remove round trips

package seq

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendThenRemoveLast(t *testing.T) {
	t.Parallel()

	s := New(ArrayMax)
	s, err := Append(s, 5)
	require.NoError(t, err)
	s, err = Append(s, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10}, s.Values)

	s, removed, err := RemoveLast(s)
	require.NoError(t, err)
	assert.Equal(t, 10, removed)
	assert.Equal(t, []int{5}, s.Values)
}

func TestAppendDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	orig := New(ArrayMax, 1, 2, 3)
	next, err := Append(orig, 4)
	require.NoError(t, err)
	next.Values[0] = 99

	assert.Equal(t, []int{1, 2, 3}, orig.Values)
}

func TestAppendAtCapacity(t *testing.T) {
	t.Parallel()

	full := New(ArrayMax, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	require.True(t, full.Full())

	got, err := Append(full, 13)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ds.ErrCapacityExceeded))
	assert.Equal(t, "capacity_exceeded", ds.Code(err))
	assert.True(t, got.Equal(full), "failed append must not change the sequence")
	assert.Len(t, full.Values, ArrayMax)
}

func TestRemoveFromEmpty(t *testing.T) {
	t.Parallel()

	empty := New(ListMax)
	_, _, err := RemoveLast(empty)
	assert.True(t, errors.Is(err, ds.ErrEmpty))

	_, _, err = RemoveFirst(empty)
	assert.True(t, errors.Is(err, ds.ErrEmpty))
}

func TestRemoveLastRestoresAppend(t *testing.T) {
	t.Parallel()

	bases := [][]int{{}, {1}, {3, 1, 4}, {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}}
	for _, base := range bases {
		s := New(ArrayMax, base...)
		for _, v := range []int{-7, 0, 42} {
			appended, err := Append(s, v)
			require.NoError(t, err)
			restored, removed, err := RemoveLast(appended)
			require.NoError(t, err)
			assert.Equal(t, v, removed)
			assert.True(t, restored.Equal(s), "base %v value %d", base, v)
		}
	}
}

func TestNewTruncatesToLimit(t *testing.T) {
	t.Parallel()

	s := New(3, 1, 2, 3, 4, 5)
	assert.Equal(t, []int{1, 2, 3}, s.Values)
	assert.Equal(t, 3, s.Max)
}

func TestLinearSearchFound(t *testing.T) {
	t.Parallel()

	s := New(ListMax, 10, 20, 30)
	idx, probes, err := Find(s, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []Probe{
		{Index: 0, Value: 10},
		{Index: 1, Value: 20, Match: true},
	}, probes)
}

func TestLinearSearchNotFound(t *testing.T) {
	t.Parallel()

	s := New(ArrayMax, 5, 10, 15)
	idx, probes, err := Find(s, 99)
	assert.Equal(t, -1, idx)
	assert.Len(t, probes, 3)
	assert.True(t, errors.Is(err, ds.ErrNotFound))
}

func TestLinearSearchEmpty(t *testing.T) {
	t.Parallel()

	_, probes, err := Find(New(ArrayMax), 1)
	assert.Empty(t, probes)
	assert.True(t, errors.Is(err, ds.ErrEmpty))
}

func TestLinearSearchIsLazyAndRestartable(t *testing.T) {
	t.Parallel()

	s := New(ArrayMax, 1, 2, 3, 4)
	scan := LinearSearch(s, 4)

	var first []int
	for p := range scan {
		first = append(first, p.Index)
		if p.Index == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, first)

	// A new range over the same scan starts again from index 0.
	var second []int
	for p := range scan {
		second = append(second, p.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, second)
}

func TestLinearSearchStopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	probes := slices.Collect(LinearSearch(New(ArrayMax, 7, 3, 7), 7))
	require.Len(t, probes, 1)
	assert.True(t, probes[0].Match)
}

func TestStackOperations(t *testing.T) {
	t.Parallel()

	s := New(StackMax)
	var err error
	for _, v := range []int{1, 2, 3} {
		s, err = Push(s, v)
		require.NoError(t, err)
	}
	top, err := Peek(s)
	require.NoError(t, err)
	assert.Equal(t, 3, top)

	s, popped, err := Pop(s)
	require.NoError(t, err)
	assert.Equal(t, 3, popped)
	assert.Equal(t, []int{1, 2}, s.Values)

	_, err = Peek(New(StackMax))
	assert.True(t, errors.Is(err, ds.ErrEmpty))
}

func TestStackOverflow(t *testing.T) {
	t.Parallel()

	s := New(StackMax, 1, 2, 3, 4, 5, 6, 7)
	_, err := Push(s, 8)
	assert.True(t, errors.Is(err, ds.ErrCapacityExceeded))
}

func TestQueueOperations(t *testing.T) {
	t.Parallel()

	q := New(QueueMax)
	var err error
	for _, v := range []int{4, 5, 6} {
		q, err = Enqueue(q, v)
		require.NoError(t, err)
	}
	front, err := Front(q)
	require.NoError(t, err)
	assert.Equal(t, 4, front)
	rear, err := Rear(q)
	require.NoError(t, err)
	assert.Equal(t, 6, rear)

	q, got, err := Dequeue(q)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Equal(t, []int{5, 6}, q.Values)

	_, err = Front(Clear(q))
	assert.True(t, errors.Is(err, ds.ErrEmpty))
}
