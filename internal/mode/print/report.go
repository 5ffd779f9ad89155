// ABOUTME: Script run report types with hand-written easyjson marshalers
// ABOUTME: Encoded through mailru/easyjson jwriter without reflection

package print

import (
	"github.com/mailru/easyjson/jwriter"
	"github.com/mauromedda/dsviz/internal/viz"
)

// Entry is the outcome of one script line.
type Entry struct {
	Line   int
	Input  string
	Level  viz.Level
	Text   string
	Code   string
	Frames []string
}

// Report summarises a whole script run.
type Report struct {
	Structure viz.Kind
	Title     string
	Entries   []Entry
	State     string
	Values    []int
	Traversal []int
	Cursor    int
	History   []viz.Step
	Failures  int
}

// MarshalEasyJSON writes e as a JSON object.
func (e Entry) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"line":`)
	w.Int(e.Line)
	w.RawString(`,"input":`)
	w.String(e.Input)
	w.RawString(`,"level":`)
	w.String(e.Level.String())
	w.RawString(`,"text":`)
	w.String(e.Text)
	if e.Code != "" {
		w.RawString(`,"code":`)
		w.String(e.Code)
	}
	if len(e.Frames) > 0 {
		w.RawString(`,"frames":`)
		writeStrings(w, e.Frames)
	}
	w.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface.
func (e Entry) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	e.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// MarshalEasyJSON writes r as a JSON object.
func (r *Report) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"structure":`)
	w.String(string(r.Structure))
	w.RawString(`,"title":`)
	w.String(r.Title)
	w.RawString(`,"steps":[`)
	for i, e := range r.Entries {
		if i > 0 {
			w.RawByte(',')
		}
		e.MarshalEasyJSON(w)
	}
	w.RawString(`],"state":`)
	w.String(r.State)
	if r.Values != nil {
		w.RawString(`,"values":`)
		writeInts(w, r.Values)
	}
	if len(r.Traversal) > 0 {
		w.RawString(`,"traversal":`)
		writeInts(w, r.Traversal)
	}
	w.RawString(`,"cursor":`)
	w.Int(r.Cursor)
	w.RawString(`,"history":[`)
	for i, s := range r.History {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"index":`)
		w.Int(s.Index)
		w.RawString(`,"caption":`)
		w.String(s.Caption)
		w.RawString(`,"state":`)
		w.String(s.State)
		w.RawByte('}')
	}
	w.RawString(`],"failures":`)
	w.Int(r.Failures)
	w.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface.
func (r *Report) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	r.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

func writeInts(w *jwriter.Writer, vals []int) {
	w.RawByte('[')
	for i, v := range vals {
		if i > 0 {
			w.RawByte(',')
		}
		w.Int(v)
	}
	w.RawByte(']')
}

func writeStrings(w *jwriter.Writer, vals []string) {
	w.RawByte('[')
	for i, v := range vals {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(v)
	}
	w.RawByte(']')
}
