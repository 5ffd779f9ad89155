// ABOUTME: Headless script mode with text, JSON, and stream-JSON formatters
// ABOUTME: Applies command lines to a controller and reports every outcome

package print

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/commands"
	"github.com/mauromedda/dsviz/internal/log"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

// Config configures a script run.
type Config struct {
	Structure    viz.Kind
	OutputFormat string // "text" (default), "json", "stream-json"
	Timeline     bool   // append the history table (text only)
	Strict       bool   // stop at the first failing line
	Play         bool   // replay the history at the playback interval (text only)
}

// Deps provides dependencies for print mode.
type Deps struct {
	Options viz.Options
	Out     io.Writer // os.Stdout when nil
}

// Run applies lines to a fresh controller and writes the report in the
// configured format.
func Run(ctx context.Context, cfg Config, deps Deps, lines []string) error {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}

	ctrl, err := viz.New(cfg.Structure, deps.Options)
	if err != nil {
		return err
	}

	tty := isTerminal(out)
	var styles theme.Styles
	if tty {
		styles = theme.CurrentStyles()
	}

	f, err := newFormatter(cfg, out, styles, terminalWidth(out))
	if err != nil {
		return err
	}

	f.start(ctrl)
	report, applyErr := Apply(ctrl, lines, cfg.Strict, f.entry)
	if applyErr != nil {
		log.Warn("script stopped: %v", applyErr)
	}

	replayed := false
	if cfg.Play && cfg.OutputFormat == "text" && applyErr == nil {
		if err := Replay(ctx, ctrl, ctrl.Interval(), out, styles, tty); err != nil {
			return err
		}
		replayed = true
		report = summarize(ctrl, report)
	}

	if err := f.end(report, ctrl.Snapshot(), replayed); err != nil {
		return err
	}
	return applyErr
}

// Apply runs every line against ctrl. Animations are drained at once:
// frame captions are collected and the last frame notice becomes the
// entry text. emit, when non-nil, sees each entry as it is produced.
// With strict set, the first failure stops the run and is returned.
func Apply(ctrl viz.Controller, lines []string, strict bool, emit func(Entry)) (*Report, error) {
	reg := commands.NewRegistry()
	r := &Report{Structure: ctrl.Kind(), Title: ctrl.Title()}

	for i, line := range lines {
		e, err := applyLine(reg, ctrl, line)
		e.Line, e.Input = i+1, line
		r.Entries = append(r.Entries, e)
		if emit != nil {
			emit(e)
		}
		if e.Level != viz.LevelError {
			continue
		}
		r.Failures++
		if strict {
			return summarize(ctrl, r), errors.Wrapf(err, "line %d %q", e.Line, line)
		}
	}
	return summarize(ctrl, r), nil
}

func applyLine(reg *commands.Registry, ctrl viz.Controller, line string) (Entry, error) {
	p, err := reg.Parse(ctrl.Kind(), ctrl.Verbs(), line)
	if err != nil {
		text := err.Error()
		if hint := ds.Hint(err); hint != "" {
			text += " (" + hint + ")"
		}
		return Entry{Level: viz.LevelError, Text: text, Code: ds.Code(err)}, err
	}

	switch p.Command.Control {
	case commands.ControlBack:
		if !ctrl.StepBackward() {
			return Entry{Level: viz.LevelInfo, Text: "Already at the first step"}, nil
		}
		return stepEntry("Stepped back", ctrl), nil
	case commands.ControlForward:
		if !ctrl.StepForward() {
			return Entry{Level: viz.LevelInfo, Text: "End of history reached"}, nil
		}
		return stepEntry("Stepped forward", ctrl), nil
	case commands.ControlPlay:
		if !ctrl.CanStepForward() {
			return Entry{Level: viz.LevelInfo, Text: "End of history reached"}, nil
		}
		for ctrl.StepForward() {
		}
		return stepEntry("Played", ctrl), nil
	case commands.ControlPause:
		return Entry{Level: viz.LevelInfo, Text: "Nothing is playing"}, nil
	case commands.ControlHelp:
		return Entry{Level: viz.LevelInfo, Text: reg.Help(ctrl.Kind(), ctrl.Verbs())}, nil
	}

	res := ctrl.Do(p.Action)
	n := res.Notice
	var frames []string
	if res.Animated {
		for {
			f, ok := ctrl.NextFrame(res.Animation)
			if !ok {
				break
			}
			if f.Caption != "" {
				frames = append(frames, f.Caption)
			}
			if f.Notice != nil {
				n = *f.Notice
			}
		}
	}

	e := Entry{Level: n.Level, Text: n.Text, Code: n.Code, Frames: frames}
	if n.Level == viz.LevelError {
		err := res.Err
		if err == nil {
			err = errors.New(n.Text)
		}
		return e, err
	}
	return e, nil
}

func stepEntry(verb string, ctrl viz.Controller) Entry {
	pos := ctrl.Position()
	return Entry{
		Level: viz.LevelInfo,
		Text:  fmt.Sprintf("%s to step %d of %d", verb, pos.Cursor+1, pos.Len),
	}
}

// summarize fills the state fields of r from ctrl.
func summarize(ctrl viz.Controller, r *Report) *Report {
	snap := ctrl.Snapshot()
	r.History = ctrl.Timeline()
	r.Cursor = ctrl.Position().Cursor
	if r.Cursor < len(r.History) {
		r.State = r.History[r.Cursor].State
	}
	r.Values = snap.Values
	if snap.Root == nil && r.Values == nil && isSequence(snap.Kind) {
		r.Values = []int{}
	}
	r.Traversal = snap.Traversal
	return r
}

func isSequence(k viz.Kind) bool {
	return k != viz.KindBinaryTree && k != viz.KindBST
}
