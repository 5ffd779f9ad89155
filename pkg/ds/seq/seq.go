// ABOUTME: Bounded integer sequence backing the array, linked list, stack and queue
// ABOUTME: Value semantics: every mutation returns a fresh Seq and never aliases its input

package seq

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
)

// Default capacities per structure.
const (
	ArrayMax = 12
	ListMax  = 8
	StackMax = 7
	QueueMax = 10
)

// Seq is an ordered sequence of integers bounded by Max.
type Seq struct {
	Values []int
	Max    int
}

// New returns a Seq holding a copy of vals. Values beyond limit are dropped.
func New(limit int, vals ...int) Seq {
	if len(vals) > limit {
		vals = vals[:limit]
	}
	out := make([]int, len(vals))
	copy(out, vals)
	return Seq{Values: out, Max: limit}
}

// Len returns the number of elements.
func (s Seq) Len() int { return len(s.Values) }

// Full reports whether the sequence is at capacity.
func (s Seq) Full() bool { return len(s.Values) >= s.Max }

// Empty reports whether the sequence holds no elements.
func (s Seq) Empty() bool { return len(s.Values) == 0 }

// Clone returns a deep copy of s.
func (s Seq) Clone() Seq {
	return Seq{Values: slices.Clone(s.Values), Max: s.Max}
}

// Equal reports whether s and o hold the same values in the same order.
func (s Seq) Equal(o Seq) bool {
	return slices.Equal(s.Values, o.Values)
}

// Append returns s with v added at the end.
func Append(s Seq, v int) (Seq, error) {
	if s.Full() {
		return s, errors.Wrapf(ds.ErrCapacityExceeded, "append %d: %d/%d elements", v, s.Len(), s.Max)
	}
	out := make([]int, len(s.Values), len(s.Values)+1)
	copy(out, s.Values)
	return Seq{Values: append(out, v), Max: s.Max}, nil
}

// RemoveLast returns s without its last element and reports the removed value.
func RemoveLast(s Seq) (Seq, int, error) {
	if s.Empty() {
		return s, 0, errors.Wrap(ds.ErrEmpty, "remove last")
	}
	n := len(s.Values) - 1
	return Seq{Values: slices.Clone(s.Values[:n]), Max: s.Max}, s.Values[n], nil
}

// RemoveFirst returns s without its first element and reports the removed value.
func RemoveFirst(s Seq) (Seq, int, error) {
	if s.Empty() {
		return s, 0, errors.Wrap(ds.ErrEmpty, "remove first")
	}
	return Seq{Values: slices.Clone(s.Values[1:]), Max: s.Max}, s.Values[0], nil
}

// Clear returns an empty sequence with the same capacity.
func Clear(s Seq) Seq {
	return Seq{Values: []int{}, Max: s.Max}
}

// Probe is one step of a linear scan.
type Probe struct {
	Index int
	Value int
	Match bool
}

// LinearSearch yields one probe per element in order, stopping after the
// first match. A scan that yields no matching probe means the value is
// absent. Each call starts a fresh scan from index 0.
func LinearSearch(s Seq, v int) iter.Seq[Probe] {
	vals := slices.Clone(s.Values)
	return func(yield func(Probe) bool) {
		for i, x := range vals {
			p := Probe{Index: i, Value: x, Match: x == v}
			if !yield(p) || p.Match {
				return
			}
		}
	}
}

// Find drains LinearSearch and returns the matching index together with
// every probe taken.
func Find(s Seq, v int) (int, []Probe, error) {
	if s.Empty() {
		return -1, nil, errors.Wrapf(ds.ErrEmpty, "search %d", v)
	}
	probes := slices.Collect(LinearSearch(s, v))
	last := probes[len(probes)-1]
	if !last.Match {
		return -1, probes, errors.Wrapf(ds.ErrNotFound, "search %d", v)
	}
	return last.Index, probes, nil
}
