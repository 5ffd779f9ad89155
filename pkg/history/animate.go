// ABOUTME: Finite frame sequences for highlight animations with stale-frame rejection
// ABOUTME: Starting a new animation invalidates the previous one's token

package history

import (
	"slices"
	"time"
)

// Animator plays one finite list of frames at a time. Frames are pulled
// by the caller's timer, one per delay, with the token returned by Start.
// Not safe for concurrent use.
type Animator[F any] struct {
	gen    Token
	frames []F
	pos    int
	delay  time.Duration
}

// Start replaces any running animation and returns the token its frames
// must be requested with.
func (a *Animator[F]) Start(frames []F, delay time.Duration) Token {
	a.gen++
	a.frames = slices.Clone(frames)
	a.pos = 0
	a.delay = delay
	return a.gen
}

// Next returns the next frame if t is current and frames remain.
func (a *Animator[F]) Next(t Token) (F, bool) {
	if t != a.gen || a.pos >= len(a.frames) {
		var zero F
		return zero, false
	}
	f := a.frames[a.pos]
	a.pos++
	return f, true
}

// Cancel drops the running animation; outstanding tokens become stale.
func (a *Animator[F]) Cancel() {
	a.gen++
	a.frames = nil
	a.pos = 0
}

// Active reports whether frames remain to be shown.
func (a *Animator[F]) Active() bool {
	return a.pos < len(a.frames)
}

// Valid reports whether t belongs to the current animation.
func (a *Animator[F]) Valid(t Token) bool {
	return t == a.gen
}

// Remaining returns the number of frames not yet shown.
func (a *Animator[F]) Remaining() int {
	return len(a.frames) - a.pos
}

// Delay returns the pause to wait before pulling the next frame.
func (a *Animator[F]) Delay() time.Duration {
	return a.delay
}
