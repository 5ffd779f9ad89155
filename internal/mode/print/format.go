// ABOUTME: Output formatters for script runs: text, JSON report, and stream-JSON lines
// ABOUTME: Text output draws the final structure and an optional go-pretty history table

package print

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mailru/easyjson/jwriter"
	"github.com/mauromedda/dsviz/internal/render"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

type formatter interface {
	start(ctrl viz.Controller)
	entry(e Entry)
	end(r *Report, snap viz.Snapshot, replayed bool) error
}

func newFormatter(cfg Config, out io.Writer, styles theme.Styles, width int) (formatter, error) {
	switch cfg.OutputFormat {
	case "text":
		return &textFormatter{out: out, styles: styles, width: width, timeline: cfg.Timeline}, nil
	case "json":
		return &jsonFormatter{out: out}, nil
	case "stream-json":
		return &streamJSONFormatter{out: out}, nil
	}
	return nil, errors.WithHint(
		errors.Wrapf(ds.ErrInvalidInput, "unknown output format %q", cfg.OutputFormat),
		"valid formats: text, json, stream-json",
	)
}

// textFormatter writes a human-readable transcript.
type textFormatter struct {
	out      io.Writer
	styles   theme.Styles
	width    int
	timeline bool
}

func (f *textFormatter) start(ctrl viz.Controller) {
	fmt.Fprintln(f.out, f.styles.Title.Render(ctrl.Title()))
}

func (f *textFormatter) entry(e Entry) {
	var mark string
	switch e.Level {
	case viz.LevelSuccess:
		mark = f.styles.Success.Render("✓")
	case viz.LevelError:
		mark = f.styles.Error.Render("✗")
	default:
		mark = f.styles.Info.Render("•")
	}
	prompt := f.styles.Prompt.Render("> " + e.Input)
	fmt.Fprintf(f.out, "%s\n  %s %s\n", prompt, mark, strings.ReplaceAll(e.Text, "\n", "\n    "))
	for _, c := range e.Frames {
		fmt.Fprintf(f.out, "    %s\n", f.styles.Muted.Render(c))
	}
}

func (f *textFormatter) end(r *Report, snap viz.Snapshot, replayed bool) error {
	if !replayed {
		fmt.Fprintf(f.out, "\n%s\n", render.Snapshot(snap, f.styles))
	}
	if f.timeline {
		fmt.Fprintf(f.out, "\n%s\n", historyTable(r, f.width))
	}
	if r.Failures > 0 {
		fmt.Fprintln(f.out, f.styles.Error.Render(fmt.Sprintf("%d of %d lines failed", r.Failures, len(r.Entries))))
	}
	return nil
}

// historyTable lists every history entry with the cursor marked.
func historyTable(r *Report, width int) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = true
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Format.Footer = text.FormatDefault
	if width > 0 {
		tbl.SetAllowedRowLength(width)
	}
	tbl.AppendHeader(table.Row{"", "#", "Step", "State"})
	for _, s := range r.History {
		cur := ""
		if s.Index == r.Cursor {
			cur = "▶"
		}
		tbl.AppendRow(table.Row{cur, s.Index + 1, s.Caption, s.State})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d steps", len(r.History)), ""})
	return tbl.Render()
}

// jsonFormatter writes one report object at the end.
type jsonFormatter struct {
	out io.Writer
}

func (f *jsonFormatter) start(viz.Controller) {}
func (f *jsonFormatter) entry(Entry)          {}

func (f *jsonFormatter) end(r *Report, _ viz.Snapshot, _ bool) error {
	w := jwriter.Writer{}
	r.MarshalEasyJSON(&w)
	w.RawByte('\n')
	_, err := w.DumpTo(f.out)
	return err
}

// streamJSONFormatter writes one JSON object per event, newline-delimited.
type streamJSONFormatter struct {
	out io.Writer
	err error
}

func (f *streamJSONFormatter) start(ctrl viz.Controller) {
	w := jwriter.Writer{}
	w.RawString(`{"type":"start","structure":`)
	w.String(string(ctrl.Kind()))
	w.RawString(`,"title":`)
	w.String(ctrl.Title())
	w.RawByte('}')
	f.write(&w)
}

func (f *streamJSONFormatter) entry(e Entry) {
	w := jwriter.Writer{}
	w.RawString(`{"type":"step","step":`)
	e.MarshalEasyJSON(&w)
	w.RawByte('}')
	f.write(&w)
}

func (f *streamJSONFormatter) end(r *Report, _ viz.Snapshot, _ bool) error {
	w := jwriter.Writer{}
	w.RawString(`{"type":"end","state":`)
	w.String(r.State)
	w.RawString(`,"cursor":`)
	w.Int(r.Cursor)
	w.RawString(`,"steps":`)
	w.Int(len(r.History))
	w.RawString(`,"failures":`)
	w.Int(r.Failures)
	w.RawByte('}')
	f.write(&w)
	return f.err
}

func (f *streamJSONFormatter) write(w *jwriter.Writer) {
	if f.err != nil {
		return
	}
	w.RawByte('\n')
	_, f.err = w.DumpTo(f.out)
}
