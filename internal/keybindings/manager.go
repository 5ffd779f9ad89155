// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the visualizer TUI
// ABOUTME: Merges config overrides over the defaults, detects conflicts, formats the help table

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Action names something a key can do.
type Action string

const (
	ActionStepBack    Action = "stepBack"
	ActionStepForward Action = "stepForward"
	ActionTogglePlay  Action = "togglePlay"
	ActionCycleOrder  Action = "cycleOrder"
	ActionToggleInfo  Action = "toggleInfo"
	ActionBack        Action = "back"
	ActionQuit        Action = "quit"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionStepBack, ActionStepForward, ActionTogglePlay,
	ActionCycleOrder, ActionToggleInfo, ActionBack, ActionQuit,
}

var descriptions = map[Action]string{
	ActionStepBack:    "step back in history",
	ActionStepForward: "step forward in history",
	ActionTogglePlay:  "play or pause",
	ActionCycleOrder:  "next traversal order",
	ActionToggleInfo:  "show structure info",
	ActionBack:        "back to the menu",
	ActionQuit:        "quit",
}

// Defaults returns the stock bindings. Printable keys share the input
// line, so the TUI only treats them as actions while the line is empty.
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionStepBack:    {"left"},
		ActionStepForward: {"right"},
		ActionTogglePlay:  {"space"},
		ActionCycleOrder:  {"tab"},
		ActionToggleInfo:  {"?"},
		ActionBack:        {"esc"},
		ActionQuit:        {"ctrl+c"},
	}
}

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action // "ctrl+c" → ActionQuit
}

// New creates a Manager from the defaults overridden by overrides, keyed
// by action name. Unknown action names are ignored and returned so the
// caller can warn about them.
func New(overrides map[string][]string) (*Manager, []string) {
	kb := Defaults()
	var unknown []string
	for name, keys := range overrides {
		a, ok := parseAction(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		kb[a] = keys
	}
	slices.Sort(unknown)
	return NewFromBindings(kb), unknown
}

// NewFromBindings creates a Manager from an explicit binding table.
func NewFromBindings(kb map[Action][]string) *Manager {
	m := &Manager{bindings: maps.Clone(kb)}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to a key as bubbletea names it
// ("left", " ", "ctrl+c"), or "" if unbound.
func (m *Manager) ActionFor(key string) Action {
	return m.lookup[normalize(key)]
}

// Keys returns the keys bound to a.
func (m *Manager) Keys(a Action) []string {
	return m.bindings[a]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, action := range Actions {
		for _, k := range m.bindings[action] {
			k = normalize(k)
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	slices.SortFunc(conflicts, func(a, b ConflictInfo) int { return strings.Compare(a.Key, b.Key) })
	return conflicts
}

// FormatAll returns the key help shown under the visualizer.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	for _, action := range Actions {
		keys := m.bindings[action]
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %s\n", strings.Join(keys, ", "), descriptions[action])
	}
	return b.String()
}

// Short returns a one-line hint such as "←/→ step · space play".
func (m *Manager) Short() string {
	label := func(a Action) string {
		keys := m.bindings[a]
		if len(keys) == 0 {
			return ""
		}
		return display(keys[0])
	}
	var parts []string
	if back, fwd := label(ActionStepBack), label(ActionStepForward); back != "" && fwd != "" {
		parts = append(parts, back+"/"+fwd+" step")
	}
	for _, p := range []struct {
		a    Action
		what string
	}{
		{ActionTogglePlay, "play"},
		{ActionToggleInfo, "info"},
		{ActionBack, "menu"},
		{ActionQuit, "quit"},
	} {
		if k := label(p.a); k != "" {
			parts = append(parts, k+" "+p.what)
		}
	}
	return strings.Join(parts, " · ")
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for action, keys := range m.bindings {
		for _, k := range keys {
			m.lookup[normalize(k)] = action
		}
	}
}

func parseAction(name string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(string(a), name) {
			return a, true
		}
	}
	return "", false
}

// normalize maps config spellings onto the names bubbletea reports.
func normalize(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	switch k {
	case "space", "":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	return k
}

func display(k string) string {
	switch normalize(k) {
	case "left":
		return "←"
	case "right":
		return "→"
	case " ":
		return "space"
	}
	return k
}
