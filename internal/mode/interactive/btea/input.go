// ABOUTME: InputModel is the single-line command prompt under the visualizer
// ABOUTME: Appends at the end of the line and recalls earlier commands with up/down

package btea

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/pkg/tui/width"
)

// CursorMarker is the visible block cursor character.
const CursorMarker = "█"

const inputHistoryDepth = 50

// InputModel is a one-line editor. Left and right belong to the history
// stepper, so the cursor always sits at the end of the line.
type InputModel struct {
	value       []rune
	prompt      string
	placeholder string
	focused     bool
	width       int

	// past holds submitted lines, oldest first; recall indexes into it
	// while browsing and equals len(past) otherwise.
	past   []string
	recall int
}

// NewInputModel creates an empty, focused input.
func NewInputModel(prompt string) InputModel {
	return InputModel{prompt: prompt, focused: true}
}

// Init returns nil; no commands needed at startup.
func (m InputModel) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.dispatchKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *InputModel) dispatchKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.value = append(m.value, msg.Runes...)
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeyCtrlU:
		m.value = m.value[:0]
	case tea.KeyCtrlW:
		m.deleteWord()
	case tea.KeyUp:
		if m.recall > 0 {
			m.recall--
			m.value = []rune(m.past[m.recall])
		}
	case tea.KeyDown:
		if m.recall < len(m.past) {
			m.recall++
			if m.recall == len(m.past) {
				m.value = nil
			} else {
				m.value = []rune(m.past[m.recall])
			}
		}
	}
}

func (m *InputModel) deleteWord() {
	s := strings.TrimRight(string(m.value), " ")
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		m.value = []rune(s[:i+1])
		return
	}
	m.value = m.value[:0]
}

// View renders the prompt, the line and the cursor.
func (m InputModel) View() string {
	s := Styles()
	prompt := s.Prompt.Render(m.prompt)

	if len(m.value) == 0 {
		if m.focused && m.placeholder != "" {
			return prompt + CursorMarker + s.Muted.Render(m.placeholder)
		}
		return prompt + CursorMarker
	}

	line := string(m.value)
	if m.width > 0 {
		// Keep the tail visible when the line outgrows the terminal.
		room := m.width - width.VisibleWidth(m.prompt) - 1
		for room > 0 && width.VisibleWidth(line) > room {
			_, size := utf8.DecodeRuneInString(line)
			line = line[size:]
		}
	}
	return prompt + line + CursorMarker
}

// Value returns the current line.
func (m InputModel) Value() string {
	return string(m.value)
}

// IsEmpty returns true if the line contains no text.
func (m InputModel) IsEmpty() bool {
	return len(m.value) == 0
}

// Submit returns the trimmed line, remembers it for recall and clears the
// input. Blank lines are not remembered.
func (m InputModel) Submit() (InputModel, string) {
	line := strings.TrimSpace(string(m.value))
	m.value = nil
	if line != "" {
		m.past = append(m.past, line)
		if over := len(m.past) - inputHistoryDepth; over > 0 {
			m.past = append(m.past[:0:0], m.past[over:]...)
		}
	}
	m.recall = len(m.past)
	return m, line
}

// Reset clears the line without remembering it.
func (m InputModel) Reset() InputModel {
	m.value = nil
	m.recall = len(m.past)
	return m
}

// SetPlaceholder sets dim hint text shown when empty and focused.
func (m InputModel) SetPlaceholder(p string) InputModel {
	m.placeholder = p
	return m
}

// SetFocused sets the focus state.
func (m InputModel) SetFocused(focused bool) InputModel {
	m.focused = focused
	return m
}
