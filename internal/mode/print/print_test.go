// ABOUTME: Tests for headless script mode covering text, JSON, stream-JSON, strict runs, and replay
// ABOUTME: Uses in-memory writers so output is unstyled and deterministic

package print

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

func fastOptions() viz.Options {
	opts := viz.DefaultOptions()
	opts.Delays = viz.Delays{
		Playback:   time.Millisecond,
		Search:     time.Millisecond,
		TreeSearch: time.Millisecond,
		Traversal:  time.Millisecond,
	}
	return opts
}

func newCtrl(t *testing.T, kind viz.Kind) viz.Controller {
	t.Helper()
	c, err := viz.New(kind, fastOptions())
	if err != nil {
		t.Fatalf("viz.New(%s): %v", kind, err)
	}
	return c
}

func TestApply_ArrayScript(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindArray)
	var seen []Entry
	r, err := Apply(ctrl, []string{"add 30", "search 15", "remove", "explode"}, false, func(e Entry) {
		seen = append(seen, e)
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(seen) != 4 || len(r.Entries) != 4 {
		t.Fatalf("got %d emitted / %d entries; want 4", len(seen), len(r.Entries))
	}

	if got := r.Entries[0].Text; got != "Added 30 to the array" {
		t.Errorf("entry 1 text = %q", got)
	}
	search := r.Entries[1]
	if search.Text != "Found 15 at index 2" || search.Level != viz.LevelSuccess {
		t.Errorf("search entry = %+v", search)
	}
	if len(search.Frames) != 3 || search.Frames[0] != "Searching at index: 0" {
		t.Errorf("search frames = %q", search.Frames)
	}
	if got := r.Entries[2].Text; got != "Removed last element from the array" {
		t.Errorf("entry 3 text = %q", got)
	}

	bad := r.Entries[3]
	if bad.Level != viz.LevelError || bad.Code != ds.Code(ds.ErrInvalidInput) {
		t.Errorf("bad entry = %+v", bad)
	}
	if !strings.Contains(bad.Text, "type help for the command list") {
		t.Errorf("bad entry text %q lacks hint", bad.Text)
	}
	if r.Failures != 1 {
		t.Errorf("Failures = %d; want 1", r.Failures)
	}

	if r.State != "[5 10 15 20 25]" {
		t.Errorf("State = %q", r.State)
	}
	if len(r.History) != 3 || r.Cursor != 2 {
		t.Errorf("history len %d cursor %d; want 3 and 2", len(r.History), r.Cursor)
	}
	if line := r.Entries[3].Line; line != 4 {
		t.Errorf("line = %d; want 4", line)
	}
}

func TestApply_Strict(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindStack)
	r, err := Apply(ctrl, []string{"push 1", "pop", "pop", "push 2"}, true, nil)
	if err == nil {
		t.Fatal("expected strict failure")
	}
	if !errors.Is(err, ds.ErrEmpty) {
		t.Errorf("err = %v; want ErrEmpty", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("err %q does not name the line", err)
	}
	if len(r.Entries) != 3 {
		t.Errorf("entries = %d; want 3 (stopped at failure)", len(r.Entries))
	}
}

func TestApply_HistoryControls(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindQueue)
	r, err := Apply(ctrl, []string{"enqueue 1", "enqueue 2", "back", "back", "back", "play", "forward"}, false, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []string{
		"Item enqueued: 1 has been added to the queue",
		"Item enqueued: 2 has been added to the queue",
		"Stepped back to step 2 of 3",
		"Stepped back to step 1 of 3",
		"Already at the first step",
		"Played to step 3 of 3",
		"End of history reached",
	}
	for i, w := range want {
		if got := r.Entries[i].Text; got != w {
			t.Errorf("entry %d = %q; want %q", i+1, got, w)
		}
	}
	if r.State != "[1 2]" {
		t.Errorf("State = %q", r.State)
	}
}

func TestApply_Help(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindBST)
	r, _ := Apply(ctrl, []string{"help"}, false, nil)
	if !strings.Contains(r.Entries[0].Text, "traverse") {
		t.Errorf("help text %q does not list traverse", r.Entries[0].Text)
	}
}

func TestApply_TreeTraversal(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindBST)
	r, err := Apply(ctrl, []string{"traverse preorder"}, false, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []int{50, 30, 20, 40, 70, 60, 80}
	if len(r.Traversal) != len(want) {
		t.Fatalf("Traversal = %v; want %v", r.Traversal, want)
	}
	for i := range want {
		if r.Traversal[i] != want[i] {
			t.Fatalf("Traversal = %v; want %v", r.Traversal, want)
		}
	}
	if len(r.Entries[0].Frames) == 0 {
		t.Error("traversal produced no frames")
	}
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(),
		Config{Structure: viz.KindArray, Timeline: true},
		Deps{Options: fastOptions(), Out: &out},
		[]string{"add 30"},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Array", "> add 30", "✓ Added 30 to the array", "30", "Initial state", "▶", "2 steps"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("output to a buffer should not contain escape sequences")
	}
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(),
		Config{Structure: viz.KindStack, OutputFormat: "json"},
		Deps{Options: fastOptions(), Out: &out},
		[]string{"push 4", "pop", "pop"},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got struct {
		Structure string `json:"structure"`
		Steps     []struct {
			Line  int    `json:"line"`
			Level string `json:"level"`
			Text  string `json:"text"`
			Code  string `json:"code"`
		} `json:"steps"`
		Values   []int `json:"values"`
		History  []any `json:"history"`
		Failures int   `json:"failures"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if got.Structure != "stack" || len(got.Steps) != 3 {
		t.Fatalf("report = %+v", got)
	}
	if got.Steps[2].Level != "error" || got.Steps[2].Code != "empty" {
		t.Errorf("step 3 = %+v", got.Steps[2])
	}
	if got.Values == nil || len(got.Values) != 0 {
		t.Errorf("values = %v; want empty array", got.Values)
	}
	if got.Failures != 1 || len(got.History) != 3 {
		t.Errorf("failures %d history %d", got.Failures, len(got.History))
	}
}

func TestRun_StreamJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(),
		Config{Structure: viz.KindLinkedList, OutputFormat: "stream-json"},
		Deps{Options: fastOptions(), Out: &out},
		[]string{"add 40", "search 20"},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want 4:\n%s", len(lines), out.String())
	}
	var types []string
	for _, l := range lines {
		var evt struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(l), &evt); err != nil {
			t.Fatalf("invalid line %q: %v", l, err)
		}
		types = append(types, evt.Type)
	}
	if strings.Join(types, ",") != "start,step,step,end" {
		t.Errorf("event types = %v", types)
	}
	if !strings.Contains(lines[2], "Found value 20 at position 1") {
		t.Errorf("search line = %s", lines[2])
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(),
		Config{Structure: viz.KindArray, OutputFormat: "xml"},
		Deps{Options: fastOptions(), Out: io.Discard},
		nil,
	)
	if !errors.Is(err, ds.ErrInvalidInput) {
		t.Errorf("err = %v; want ErrInvalidInput", err)
	}
}

func TestRun_StrictReturnsError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(),
		Config{Structure: viz.KindArray, Strict: true},
		Deps{Options: fastOptions(), Out: &out},
		[]string{"search 99", "add 1"},
	)
	if !errors.Is(err, ds.ErrNotFound) {
		t.Errorf("err = %v; want ErrNotFound", err)
	}
	if strings.Contains(out.String(), "> add 1") {
		t.Error("strict run continued past the failure")
	}
}

func TestReplay_WritesEveryStep(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindStack)
	if _, err := Apply(ctrl, []string{"push 1", "push 2"}, true, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var out bytes.Buffer
	if err := Replay(context.Background(), ctrl, time.Millisecond, &out, theme.Styles{}, false); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	got := out.String()
	for _, want := range []string{"step 1/3", "step 2/3", "step 3/3"} {
		if !strings.Contains(got, want) {
			t.Errorf("replay missing %q:\n%s", want, got)
		}
	}
	if pos := ctrl.Position(); pos.Cursor != 2 {
		t.Errorf("cursor after replay = %d; want 2", pos.Cursor)
	}
}

func TestReplay_Cancelled(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t, viz.KindArray)
	if _, err := Apply(ctrl, []string{"add 1", "add 2"}, true, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Replay(ctx, ctrl, time.Hour, io.Discard, theme.Styles{}, true); err != nil {
		t.Errorf("Replay after cancel = %v; want nil", err)
	}
	if ctrl.Position().Cursor == 2 {
		t.Error("cancelled replay should not reach the end")
	}
}
