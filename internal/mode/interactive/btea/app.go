// ABOUTME: Root AppModel switching between the picker and a visualizer
// ABOUTME: Collects controller notices from the event bus into an expiring toast

package btea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/eventbus"
	"github.com/mauromedda/dsviz/internal/keybindings"
	"github.com/mauromedda/dsviz/internal/log"
	"github.com/mauromedda/dsviz/internal/viz"
)

// defaultToastTTL is how long a notice stays on screen.
const defaultToastTTL = 3 * time.Second

type screen int

const (
	screenPicker screen = iota
	screenVisualizer
)

// shared holds mutable state that must survive AppModel value copies.
// The bus handler runs inside Update (controllers publish synchronously),
// so no lock is needed.
type shared struct {
	pending     []viz.Notice
	unsubscribe func()
}

type toast struct {
	id     int
	notice viz.Notice
}

// AppModel is the root Bubble Tea model for the interactive TUI.
type AppModel struct {
	sh   *shared // survives value copies
	deps AppDeps

	screen   screen
	picker   PickerModel
	viz      VisualizerModel
	md       *MarkdownRenderer
	sessions int

	toast    toast
	toastSeq int
	toastTTL time.Duration

	width, height int
}

// NewAppModel creates an AppModel wired with the given dependencies. With
// deps.Structure set it starts on that visualizer.
func NewAppModel(deps AppDeps) (AppModel, error) {
	if deps.Catalog == nil {
		cat, err := catalog.Load()
		if err != nil {
			return AppModel{}, err
		}
		deps.Catalog = cat
	}
	if deps.Keys == nil {
		deps.Keys, _ = keybindings.New(nil)
	}
	if deps.Options.Bus == nil {
		deps.Options.Bus = eventbus.New[viz.Notice](64)
	}

	sh := &shared{}
	sh.unsubscribe = deps.Options.Bus.Subscribe(func(n viz.Notice) {
		sh.pending = append(sh.pending, n)
	})

	m := AppModel{
		sh:       sh,
		deps:     deps,
		picker:   NewPickerModel(deps.Catalog),
		md:       NewMarkdownRenderer(deps.MarkdownStyle),
		toastTTL: defaultToastTTL,
	}

	if deps.Structure != "" {
		it, ok := deps.Catalog.Lookup(string(deps.Structure))
		if !ok {
			sh.unsubscribe()
			return AppModel{}, errors.Newf("structure %q is not in the catalog", deps.Structure)
		}
		var err error
		if m, err = m.open(it); err != nil {
			sh.unsubscribe()
			return AppModel{}, err
		}
	}
	return m, nil
}

// Close detaches the model from the notice bus.
func (m AppModel) Close() {
	if m.sh.unsubscribe != nil {
		m.sh.unsubscribe()
	}
}

// Init returns nil; the first frame needs no commands.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen, then turns notices
// published during the update into a toast.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.route(msg)
	if len(m.sh.pending) == 0 {
		return m, cmd
	}
	last := m.sh.pending[len(m.sh.pending)-1]
	m.sh.pending = m.sh.pending[:0]
	m, tcmd := m.showToast(last)
	return m, tea.Batch(cmd, tcmd)
}

func (m AppModel) route(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		p, _ := m.picker.Update(msg)
		m.picker = p.(PickerModel)
		if m.screen == screenVisualizer {
			v, _ := m.viz.Update(msg)
			m.viz = v.(VisualizerModel)
		}
		return m, nil

	case tea.KeyMsg:
		if m.deps.Keys.ActionFor(msg.String()) == keybindings.ActionQuit {
			if m.screen == screenVisualizer {
				m.viz.Controller().Pause()
			}
			return m, tea.Quit
		}
		return m.forward(msg)

	case OpenMsg:
		next, err := m.open(msg.Item)
		if err != nil {
			log.Error("opening %s: %v", msg.Item.ID, err)
			return m.showToast(viz.Notice{Level: viz.LevelError, Text: err.Error()})
		}
		return next, nil

	case BackMsg:
		m.screen = screenPicker
		return m, nil

	case NoticeMsg:
		return m.showToast(msg.Notice)

	case toastExpiredMsg:
		if msg.id == m.toast.id {
			m.toast = toast{}
		}
		return m, nil

	case playTickMsg, frameTickMsg:
		if m.screen != screenVisualizer {
			return m, nil
		}
		v, cmd := m.viz.Update(msg)
		m.viz = v.(VisualizerModel)
		return m, cmd
	}
	return m, nil
}

// forward hands a key to the active screen.
func (m AppModel) forward(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	if m.screen == screenVisualizer {
		v, cmd := m.viz.Update(msg)
		m.viz = v.(VisualizerModel)
		return m, cmd
	}
	p, cmd := m.picker.Update(msg)
	m.picker = p.(PickerModel)
	return m, cmd
}

// open starts a fresh controller for it. Each visit gets a new session
// so ticks scheduled by an earlier visit are ignored.
func (m AppModel) open(it catalog.Item) (AppModel, error) {
	kind, err := viz.ParseKind(it.ID)
	if err != nil {
		return m, err
	}
	ctrl, err := viz.New(kind, m.deps.Options)
	if err != nil {
		return m, err
	}
	m.sessions++
	m.viz = NewVisualizerModel(m.sessions, it, ctrl, m.deps.Keys, m.md)
	if m.width > 0 {
		v, _ := m.viz.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.viz = v.(VisualizerModel)
	}
	m.screen = screenVisualizer
	m.toast = toast{}
	log.Debug("opened %s visualizer (session %d)", kind, m.sessions)
	return m, nil
}

func (m AppModel) showToast(n viz.Notice) (AppModel, tea.Cmd) {
	m.toastSeq++
	m.toast = toast{id: m.toastSeq, notice: n}
	id := m.toastSeq
	return m, tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// toastLine renders the current toast, or "" when none is showing.
func (m AppModel) toastLine() string {
	if m.toast.id == 0 {
		return ""
	}
	s := Styles()
	n := m.toast.notice
	switch n.Level {
	case viz.LevelSuccess:
		return s.Success.Render("✓ " + n.Text)
	case viz.LevelError:
		return s.Error.Render("✗ " + n.Text)
	default:
		return s.Info.Render("• " + n.Text)
	}
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.screen == screenVisualizer {
		return m.viz.Render(m.toastLine())
	}
	return m.picker.Render(m.toastLine())
}
