// ABOUTME: VisualizerModel drives one controller: input line, key controls, timed ticks, panels
// ABOUTME: Ticks carry a session id and generation token; anything stale is dropped

package btea

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/commands"
	"github.com/mauromedda/dsviz/internal/keybindings"
	"github.com/mauromedda/dsviz/internal/render"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
)

var placeholders = map[viz.Kind]string{
	viz.KindArray:      "add 5 · remove · search 15 · help",
	viz.KindLinkedList: "add 5 · remove · find 20 · help",
	viz.KindStack:      "push 5 · pop · clear · help",
	viz.KindQueue:      "enqueue 5 · dequeue · clear · help",
	viz.KindBinaryTree: "insert 5 · traverse preorder · help",
	viz.KindBST:        "insert 45 · delete 30 · search 60 · traverse",
}

// VisualizerModel shows one structure with its prompt and panels.
type VisualizerModel struct {
	session  int
	item     catalog.Item
	ctrl     viz.Controller
	registry *commands.Registry
	keys     *keybindings.Manager
	md       *MarkdownRenderer

	input  InputModel
	footer FooterModel

	// order is what a bare traverse and the tab key use next.
	order    tree.Order
	showInfo bool
	showHelp bool

	width, height int
}

// NewVisualizerModel wraps ctrl. session must differ between visualizers
// opened by the same app so ticks of a closed one are ignored.
func NewVisualizerModel(session int, item catalog.Item, ctrl viz.Controller, keys *keybindings.Manager, md *MarkdownRenderer) VisualizerModel {
	m := VisualizerModel{
		session:  session,
		item:     item,
		ctrl:     ctrl,
		registry: commands.NewRegistry(),
		keys:     keys,
		md:       md,
		input:    NewInputModel("❯ ").SetPlaceholder(placeholders[ctrl.Kind()]),
		footer:   NewFooterModel(keys.Short()).WithTitle(ctrl.Title()),
		order:    tree.Inorder,
	}
	return m.sync()
}

// Init returns nil; no commands needed at startup.
func (m VisualizerModel) Init() tea.Cmd {
	return nil
}

// Controller returns the driven controller.
func (m VisualizerModel) Controller() viz.Controller {
	return m.ctrl
}

// Update handles keys, ticks and window-size messages.
func (m VisualizerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		in, _ := m.input.Update(msg)
		m.input = in.(InputModel)
		ft, _ := m.footer.Update(msg)
		m.footer = ft.(FooterModel)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case playTickMsg:
		if msg.session == m.session && m.ctrl.Tick(msg.token) {
			cmd = playTick(m.session, msg.token, m.ctrl.Interval())
		}

	case frameTickMsg:
		if msg.session != m.session {
			break
		}
		if _, ok := m.ctrl.NextFrame(msg.token); ok {
			cmd = frameTick(m.session, msg.token, m.ctrl.FrameDelay())
		}
	}
	return m.sync(), cmd
}

// printable reports whether a key would type into the input line.
func printable(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

func (m VisualizerModel) handleKey(msg tea.KeyMsg) (VisualizerModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	action := m.keys.ActionFor(msg.String())
	if action != "" && (m.input.IsEmpty() || !printable(msg)) {
		switch action {
		case keybindings.ActionStepBack:
			m.ctrl.Pause()
			m.ctrl.StepBackward()
			return m, nil
		case keybindings.ActionStepForward:
			m.ctrl.Pause()
			m.ctrl.StepForward()
			return m, nil
		case keybindings.ActionTogglePlay:
			return m.togglePlay()
		case keybindings.ActionCycleOrder:
			if m.traverses() {
				m.order = m.order.Next()
			}
			return m, nil
		case keybindings.ActionToggleInfo:
			m.showInfo = !m.showInfo
			return m, nil
		case keybindings.ActionBack:
			return m.back()
		}
	}

	in, _ := m.input.Update(msg)
	m.input = in.(InputModel)
	return m, nil
}

// back closes a panel, then clears the line, then leaves the visualizer.
func (m VisualizerModel) back() (VisualizerModel, tea.Cmd) {
	switch {
	case m.showInfo || m.showHelp:
		m.showInfo, m.showHelp = false, false
	case !m.input.IsEmpty():
		m.input = m.input.Reset()
	default:
		m.ctrl.Pause()
		return m, emit(BackMsg{})
	}
	return m, nil
}

func (m VisualizerModel) togglePlay() (VisualizerModel, tea.Cmd) {
	if m.ctrl.Playing() {
		m.ctrl.Pause()
		return m, nil
	}
	return m.play()
}

func (m VisualizerModel) play() (VisualizerModel, tea.Cmd) {
	tok, ok := m.ctrl.Play()
	if !ok {
		return m, nil
	}
	return m, playTick(m.session, tok, m.ctrl.Interval())
}

func (m VisualizerModel) submit() (VisualizerModel, tea.Cmd) {
	var line string
	m.input, line = m.input.Submit()
	if line == "" {
		return m, nil
	}

	p, err := m.registry.Parse(m.ctrl.Kind(), m.ctrl.Verbs(), line)
	if err != nil {
		text := err.Error()
		if hint := ds.Hint(err); hint != "" {
			text += " (" + hint + ")"
		}
		return m, emit(NoticeMsg{Notice: viz.Notice{
			Kind: m.ctrl.Kind(), Level: viz.LevelError, Text: text, Code: ds.Code(err),
		}})
	}

	switch p.Command.Control {
	case commands.ControlBack:
		m.ctrl.Pause()
		m.ctrl.StepBackward()
	case commands.ControlForward:
		m.ctrl.Pause()
		m.ctrl.StepForward()
	case commands.ControlPlay:
		if !m.ctrl.Playing() {
			return m.play()
		}
	case commands.ControlPause:
		m.ctrl.Pause()
	case commands.ControlHelp:
		m.showHelp = !m.showHelp
	default:
		return m.do(p.Action, line)
	}
	return m, nil
}

func (m VisualizerModel) do(a viz.Action, line string) (VisualizerModel, tea.Cmd) {
	if a.Verb == viz.VerbTraverse {
		if len(strings.Fields(line)) == 1 {
			a.Order = m.order
		}
		m.order = a.Order
	}
	res := m.ctrl.Do(a)
	if !res.Animated {
		return m, nil
	}
	// The first frame shows at once; later ones follow the frame delay.
	return m, emit(frameTickMsg{session: m.session, token: res.Animation})
}

// sync copies controller state into the footer.
func (m VisualizerModel) sync() VisualizerModel {
	m.footer = m.footer.
		WithPosition(m.ctrl.Position()).
		WithPlaying(m.ctrl.Playing()).
		WithAnimating(m.ctrl.Animating())
	if m.traverses() {
		m.footer = m.footer.WithOrder(m.order.String())
	}
	return m
}

// traverses reports whether the structure offers traversal walks.
func (m VisualizerModel) traverses() bool {
	return slices.Contains(m.ctrl.Verbs(), viz.VerbTraverse)
}

// View renders the visualizer without a toast.
func (m VisualizerModel) View() string {
	return m.Render("")
}

// Render draws the header, the structure, the panels, the prompt, toast
// and footer.
func (m VisualizerModel) Render(toast string) string {
	s := Styles()
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	header := s.Title.Render(strings.TrimSpace(m.item.Icon + " " + m.ctrl.Title()))
	if m.item.Description != "" {
		header += "  " + s.Muted.Render(m.item.Description)
	}
	b.WriteString(header + "\n\n")
	b.WriteString(indent(render.Snapshot(snap, s), "  "))
	b.WriteString("\n\n")
	b.WriteString("  " + s.Subtle.Render(snap.Caption) + "\n")

	panelWidth := 76
	if m.width > 8 {
		panelWidth = min(m.width-4, 96)
	}
	if m.showInfo {
		b.WriteString(s.Panel.Render(m.md.Render(catalog.Markdown(m.item), panelWidth-4)) + "\n")
	}
	if m.showHelp {
		help := m.registry.Help(m.ctrl.Kind(), m.ctrl.Verbs()) + "\nKeys:\n" + m.keys.FormatAll()
		b.WriteString(s.Panel.Render(strings.TrimRight(help, "\n")) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	if toast != "" {
		b.WriteString(toast + "\n")
	}
	b.WriteString(m.footer.View())
	return b.String()
}

func indent(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
