// ABOUTME: Generic linear snapshot history with a cursor; record truncates redo states
// ABOUTME: Snapshots are deep-copied through an optional clone func so callers never alias them

package history

// History is a branch-free timeline of snapshots. It always holds at
// least one snapshot and its cursor stays within [0, Len()-1].
type History[S any] struct {
	states []S
	cursor int
	limit  int
	clone  func(S) S
}

// Option configures a History.
type Option[S any] func(*History[S])

// WithClone installs the deep-copy function applied when a snapshot is
// stored and when one is handed back.
func WithClone[S any](clone func(S) S) Option[S] {
	return func(h *History[S]) {
		h.clone = clone
	}
}

// WithLimit caps the number of retained snapshots; the oldest are evicted
// first. Zero or negative means unlimited.
func WithLimit[S any](n int) Option[S] {
	return func(h *History[S]) {
		h.limit = n
	}
}

// New creates a History whose only snapshot is initial.
func New[S any](initial S, opts ...Option[S]) *History[S] {
	h := &History[S]{}
	for _, opt := range opts {
		opt(h)
	}
	h.states = []S{h.copy(initial)}
	return h
}

func (h *History[S]) copy(s S) S {
	if h.clone == nil {
		return s
	}
	return h.clone(s)
}

// Record drops every snapshot after the cursor, appends s and moves the
// cursor onto it.
func (h *History[S]) Record(s S) {
	h.states = append(h.states[:h.cursor+1], h.copy(s))
	h.cursor = len(h.states) - 1

	if h.limit > 0 && len(h.states) > h.limit {
		excess := len(h.states) - h.limit
		// Evict oldest; copy so the dropped prefix can be collected.
		kept := make([]S, h.limit)
		copy(kept, h.states[excess:])
		h.states = kept
		h.cursor -= excess
	}
}

// StepForward advances the cursor and returns the snapshot it lands on.
// At the last snapshot it returns the current one and false.
func (h *History[S]) StepForward() (S, bool) {
	if !h.CanStepForward() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// StepBackward retreats the cursor and returns the snapshot it lands on.
// At the first snapshot it returns the current one and false.
func (h *History[S]) StepBackward() (S, bool) {
	if !h.CanStepBackward() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Current returns the snapshot under the cursor.
func (h *History[S]) Current() S {
	return h.copy(h.states[h.cursor])
}

// At returns the snapshot at index i.
func (h *History[S]) At(i int) (S, bool) {
	if i < 0 || i >= len(h.states) {
		var zero S
		return zero, false
	}
	return h.copy(h.states[i]), true
}

// Cursor returns the index of the current snapshot.
func (h *History[S]) Cursor() int {
	return h.cursor
}

// Len returns the number of recorded snapshots.
func (h *History[S]) Len() int {
	return len(h.states)
}

// CanStepForward reports whether a later snapshot exists.
func (h *History[S]) CanStepForward() bool {
	return h.cursor < len(h.states)-1
}

// CanStepBackward reports whether an earlier snapshot exists.
func (h *History[S]) CanStepBackward() bool {
	return h.cursor > 0
}

// AtEnd reports whether the cursor sits on the last snapshot.
func (h *History[S]) AtEnd() bool {
	return !h.CanStepForward()
}

// Reset discards the whole timeline and starts over from initial.
func (h *History[S]) Reset(initial S) {
	h.states = []S{h.copy(initial)}
	h.cursor = 0
}
