// ABOUTME: Typed event bus delivering events to subscribers in subscription order
// ABOUTME: Keeps a bounded backlog of recent events for late readers such as a message log

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscriber[T any] struct {
	id int
	fn Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu      sync.RWMutex
	subs    []subscriber[T]
	nextID  int
	backlog []T
	keep    int
}

// New creates a bus that remembers the last keep events (0 keeps none).
func New[T any](keep int) *Bus[T] {
	return &Bus[T]{keep: keep}
}

// Subscribe registers a handler and returns an unsubscribe function.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish records event in the backlog and hands it to every handler,
// oldest subscription first. Handlers run on the caller's goroutine.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	if b.keep > 0 {
		b.backlog = append(b.backlog, event)
		if over := len(b.backlog) - b.keep; over > 0 {
			b.backlog = append(b.backlog[:0:0], b.backlog[over:]...)
		}
	}
	// Snapshot handlers to avoid holding lock during callbacks
	snapshot := make([]Handler[T], len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.fn
	}
	b.mu.Unlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Recent returns up to n of the most recent events, oldest first.
func (b *Bus[T]) Recent(n int) []T {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n > len(b.backlog) {
		n = len(b.backlog)
	}
	out := make([]T, n)
	copy(out, b.backlog[len(b.backlog)-n:])
	return out
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
