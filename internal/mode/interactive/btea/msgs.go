// ABOUTME: All custom tea.Msg types for the Bubble Tea TUI
// ABOUTME: Timed steps carry the visualizer session and generation token so stale ticks are dropped

package btea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/history"
)

// --- Timers ---

// playTickMsg advances playback by one snapshot.
type playTickMsg struct {
	session int
	token   history.Token
}

// frameTickMsg shows the next highlight frame of a search or traversal.
type frameTickMsg struct {
	session int
	token   history.Token
}

// toastExpiredMsg hides the toast it names, unless a newer one replaced it.
type toastExpiredMsg struct{ id int }

// --- Navigation ---

// OpenMsg asks the app to open the visualizer for an item.
type OpenMsg struct{ Item catalog.Item }

// BackMsg returns from a visualizer to the picker.
type BackMsg struct{}

// NoticeMsg shows a notice that did not come through the controller bus,
// such as a parse error from the input line.
type NoticeMsg struct{ Notice viz.Notice }

func playTick(session int, t history.Token, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return playTickMsg{session: session, token: t}
	})
}

func frameTick(session int, t history.Token, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return frameTickMsg{session: session, token: t}
	})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
