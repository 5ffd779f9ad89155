// ABOUTME: Play/pause state machine guarded by a generation counter
// ABOUTME: Scheduled ticks carry a Token; ticks from an older generation are dropped

package history

import (
	"context"
	"time"
)

// DefaultInterval is the delay between auto-advanced snapshots.
const DefaultInterval = 800 * time.Millisecond

// Token identifies one scheduling generation. A deferred step holding a
// token that no longer matches is stale and must be ignored.
type Token uint64

// Playback tracks whether auto-advance is running. It is not safe for
// concurrent use; callers drive it from a single event loop.
type Playback struct {
	gen      Token
	playing  bool
	interval time.Duration
}

// NewPlayback returns a paused Playback stepping every interval.
// A non-positive interval selects DefaultInterval.
func NewPlayback(interval time.Duration) *Playback {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Playback{interval: interval}
}

// Play starts auto-advance and returns the token every tick of this run
// must carry. It returns false when already playing.
func (p *Playback) Play() (Token, bool) {
	if p.playing {
		return p.gen, false
	}
	p.gen++
	p.playing = true
	return p.gen, true
}

// Pause stops auto-advance. Any tick already scheduled becomes stale.
func (p *Playback) Pause() {
	p.playing = false
	p.gen++
}

// Invalidate is called when the timeline changes under a running
// playback (a new record, a clear, a reset). It stops playback the same
// way Pause does.
func (p *Playback) Invalidate() {
	p.Pause()
}

// Valid reports whether a tick carrying t may still step.
func (p *Playback) Valid(t Token) bool {
	return p.playing && t == p.gen
}

// Playing reports whether auto-advance is running.
func (p *Playback) Playing() bool {
	return p.playing
}

// Interval returns the delay between steps.
func (p *Playback) Interval() time.Duration {
	return p.interval
}

// Stepper is anything Play can advance one snapshot at a time.
type Stepper interface {
	StepForward() bool
	CanStepForward() bool
}

// Play steps s forward every interval until it cannot advance or ctx is
// done. after, when non-nil, runs once per successful step. It returns
// ctx.Err() when cancelled before the end.
func Play(ctx context.Context, s Stepper, interval time.Duration, after func()) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for s.CanStepForward() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if !s.StepForward() {
			return nil
		}
		if after != nil {
			after()
		}
	}
	return nil
}
