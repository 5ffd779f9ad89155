// ABOUTME: Tests for keybindings manager
// ABOUTME: Validates key lookup, overrides, conflict detection, and help formatting

package keybindings

import (
	"slices"
	"strings"
	"testing"
)

func TestManager_DefaultBindings(t *testing.T) {
	t.Parallel()
	m, _ := New(nil)

	tests := []struct {
		key    string
		action Action
	}{
		{"left", ActionStepBack},
		{"right", ActionStepForward},
		{" ", ActionTogglePlay},
		{"tab", ActionCycleOrder},
		{"?", ActionToggleInfo},
		{"esc", ActionBack},
		{"ctrl+c", ActionQuit},
	}

	for _, tt := range tests {
		t.Run(string(tt.action)+"/"+tt.key, func(t *testing.T) {
			got := m.ActionFor(tt.key)
			if got != tt.action {
				t.Errorf("ActionFor(%q) = %q; want %q", tt.key, got, tt.action)
			}
		})
	}
}

func TestManager_UnboundKey(t *testing.T) {
	t.Parallel()
	m, _ := New(nil)

	if action := m.ActionFor("z"); action != "" {
		t.Errorf("expected empty action for unbound key, got %q", action)
	}
}

func TestManager_Overrides(t *testing.T) {
	t.Parallel()
	m, unknown := New(map[string][]string{
		"togglePlay": {"p"},
		"QUIT":       {"ctrl+q", "Escape"},
		"explode":    {"x"},
	})

	if got := m.ActionFor("p"); got != ActionTogglePlay {
		t.Errorf("ActionFor(p) = %q", got)
	}
	if got := m.ActionFor(" "); got != "" {
		t.Errorf("space should be unbound after override, got %q", got)
	}
	if got := m.ActionFor("ctrl+q"); got != ActionQuit {
		t.Errorf("ActionFor(ctrl+q) = %q", got)
	}
	if !slices.Equal(unknown, []string{"explode"}) {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestManager_Conflicts(t *testing.T) {
	t.Parallel()

	m, _ := New(nil)
	if c := m.Conflicts(); len(c) != 0 {
		t.Errorf("defaults should not conflict: %+v", c)
	}

	m, _ = New(map[string][]string{"quit": {"escape"}})
	conflicts := m.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %+v", conflicts)
	}
	if conflicts[0].Key != "esc" || len(conflicts[0].Actions) != 2 {
		t.Errorf("conflict = %+v", conflicts[0])
	}
}

func TestManager_FormatAll(t *testing.T) {
	t.Parallel()
	m, _ := New(nil)

	out := m.FormatAll()
	for _, want := range []string{"left", "step back in history", "space", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatAll missing %q:\n%s", want, out)
		}
	}
}

func TestManager_Short(t *testing.T) {
	t.Parallel()
	m, _ := New(nil)

	want := "←/→ step · space play · ? info · esc menu · ctrl+c quit"
	if got := m.Short(); got != want {
		t.Errorf("Short() = %q; want %q", got, want)
	}
}
