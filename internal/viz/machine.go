// ABOUTME: Shared controller core: snapshot history, playback generation and frame animator
// ABOUTME: Generic over the structure state; concrete controllers embed it

package viz

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/eventbus"
	"github.com/mauromedda/dsviz/internal/log"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/history"
)

// entry is one history snapshot: the state plus how it was reached.
type entry[S any] struct {
	state   S
	caption string
}

type machine[S any] struct {
	kind     Kind
	hist     *history.History[entry[S]]
	playback *history.Playback
	anim     history.Animator[Frame]
	frame    *Frame
	bus      *eventbus.Bus[Notice]
	format   func(S) string
}

func newMachine[S any](kind Kind, initial S, clone func(S) S, format func(S) string, opts Options) machine[S] {
	return machine[S]{
		kind: kind,
		hist: history.New(
			entry[S]{state: initial, caption: "Initial state"},
			history.WithClone(func(e entry[S]) entry[S] {
				return entry[S]{state: clone(e.state), caption: e.caption}
			}),
			history.WithLimit[entry[S]](opts.HistoryLimit),
		),
		playback: history.NewPlayback(opts.Delays.Playback),
		bus:      opts.Bus,
		format:   format,
	}
}

func (m *machine[S]) Kind() Kind { return m.kind }

func (m *machine[S]) current() S {
	return m.hist.Current().state
}

func (m *machine[S]) caption() string {
	return m.hist.Current().caption
}

// record appends a new state. Any running playback or animation belongs
// to the old timeline and is cancelled first.
func (m *machine[S]) record(s S, caption string) {
	m.interrupt()
	m.playback.Invalidate()
	m.hist.Record(entry[S]{state: s, caption: caption})
}

// interrupt drops an in-flight highlight animation.
func (m *machine[S]) interrupt() {
	m.anim.Cancel()
	m.frame = nil
}

func (m *machine[S]) publish(n Notice) Notice {
	n.Kind = m.kind
	log.Debug("viz %s: [%s] %s", m.kind, n.Level, n.Text)
	m.bus.Publish(n)
	return n
}

func (m *machine[S]) ok(text string) Result {
	return Result{Notice: m.publish(Notice{Level: LevelSuccess, Text: text})}
}

func (m *machine[S]) info(text string) Result {
	return Result{Notice: m.publish(Notice{Level: LevelInfo, Text: text})}
}

func (m *machine[S]) fail(err error, text string) Result {
	return Result{
		Notice: m.publish(Notice{Level: LevelError, Text: text, Code: ds.Code(err)}),
		Err:    err,
	}
}

// invalid reports an unusable action or operand.
func (m *machine[S]) invalid(text string) Result {
	return m.fail(errors.Wrap(ds.ErrInvalidInput, text), text)
}

// animate starts frames and wraps them into a result carrying n. A
// running playback is paused so the two never interleave.
func (m *machine[S]) animate(n Notice, frames []Frame, delay time.Duration) Result {
	m.playback.Pause()
	m.frame = nil
	tok := m.anim.Start(frames, delay)
	return Result{
		Notice:    m.publish(n),
		Animation: tok,
		Animated:  true,
		Delay:     delay,
	}
}

func (m *machine[S]) StepForward() bool {
	m.interrupt()
	_, ok := m.hist.StepForward()
	return ok
}

func (m *machine[S]) StepBackward() bool {
	m.interrupt()
	_, ok := m.hist.StepBackward()
	return ok
}

func (m *machine[S]) CanStepForward() bool  { return m.hist.CanStepForward() }
func (m *machine[S]) CanStepBackward() bool { return m.hist.CanStepBackward() }

func (m *machine[S]) Position() Position {
	return Position{
		Cursor:      m.hist.Cursor(),
		Len:         m.hist.Len(),
		CanForward:  m.hist.CanStepForward(),
		CanBackward: m.hist.CanStepBackward(),
	}
}

func (m *machine[S]) Timeline() []Step {
	steps := make([]Step, 0, m.hist.Len())
	for i := range m.hist.Len() {
		e, _ := m.hist.At(i)
		steps = append(steps, Step{Index: i, Caption: e.caption, State: m.format(e.state)})
	}
	return steps
}

// Play starts auto-advance from the cursor. At the end of the timeline it
// reports so and does nothing.
func (m *machine[S]) Play() (history.Token, bool) {
	if !m.hist.CanStepForward() {
		m.info("End of history reached")
		return 0, false
	}
	m.interrupt()
	return m.playback.Play()
}

func (m *machine[S]) Pause() { m.playback.Pause() }

// Tick performs one scheduled playback step. It returns whether another
// tick should be scheduled with the same token.
func (m *machine[S]) Tick(t history.Token) bool {
	if !m.playback.Valid(t) {
		return false
	}
	if _, ok := m.hist.StepForward(); !ok || !m.hist.CanStepForward() {
		m.playback.Pause()
		return false
	}
	return true
}

func (m *machine[S]) Playing() bool           { return m.playback.Playing() }
func (m *machine[S]) Interval() time.Duration { return m.playback.Interval() }

// NextFrame shows the next animation frame. It returns false once the
// animation is over or t is stale.
func (m *machine[S]) NextFrame(t history.Token) (Frame, bool) {
	f, ok := m.anim.Next(t)
	if !ok {
		if m.anim.Valid(t) {
			m.frame = nil
		}
		return Frame{}, false
	}
	m.frame = &f
	if f.Notice != nil {
		m.publish(*f.Notice)
	}
	if !m.anim.Active() && !f.Lit {
		m.frame = nil
	}
	return f, true
}

func (m *machine[S]) Animating() bool {
	return m.anim.Active() || m.frame != nil
}

func (m *machine[S]) FrameDelay() time.Duration { return m.anim.Delay() }

// lit returns the mark of the frame on screen, if any.
func (m *machine[S]) lit() (int, bool) {
	if m.frame == nil || !m.frame.Lit {
		return 0, false
	}
	return m.frame.Mark, true
}

func (m *machine[S]) frameCaption() string {
	if m.frame != nil && m.frame.Caption != "" {
		return m.frame.Caption
	}
	return m.caption()
}
