// ABOUTME: Stack and queue views over Seq
// ABOUTME: Push/Pop work at the end; Enqueue appends, Dequeue takes from the front

package seq

import (
	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
)

// Push adds v on top of the stack.
func Push(s Seq, v int) (Seq, error) { return Append(s, v) }

// Pop removes the top of the stack.
func Pop(s Seq) (Seq, int, error) { return RemoveLast(s) }

// Peek returns the top of the stack without removing it.
func Peek(s Seq) (int, error) {
	if s.Empty() {
		return 0, errors.Wrap(ds.ErrEmpty, "peek")
	}
	return s.Values[len(s.Values)-1], nil
}

// Enqueue adds v at the rear of the queue.
func Enqueue(s Seq, v int) (Seq, error) { return Append(s, v) }

// Dequeue removes the front of the queue.
func Dequeue(s Seq) (Seq, int, error) { return RemoveFirst(s) }

// Front returns the element at the head of the queue.
func Front(s Seq) (int, error) {
	if s.Empty() {
		return 0, errors.Wrap(ds.ErrEmpty, "front")
	}
	return s.Values[0], nil
}

// Rear returns the most recently enqueued element.
func Rear(s Seq) (int, error) {
	if s.Empty() {
		return 0, errors.Wrap(ds.ErrEmpty, "rear")
	}
	return s.Values[len(s.Values)-1], nil
}
