package editor

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/ui"
	"github.com/iw2rmb/quire/units"
)

// Model is a Bubble Tea component editing a set of buffers. Only the current
// buffer is shown; the last row of the window is the status line.
type Model struct {
	cfg      Config
	buffers  *buffer.Buffers
	renderer *lipgloss.Renderer
	help     help.Model

	width, height int

	// screen covers the text area. It is nil while the window is too small
	// to show any text.
	screen *ui.Screen

	// status replaces the key help in the status line until the next key.
	status string
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buffers:  cfg.Buffers,
		renderer: cfg.Renderer,
		help:     help.New(),
	}
	if m.buffers == nil {
		m.buffers = buffer.NewBuffers(buffer.New())
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}

	if cfg.OnOpen != nil {
		for _, b := range m.buffers.All() {
			if params, ok := b.DidOpenParams(); ok {
				cfg.OnOpen(params)
			}
		}
	}
	return m
}

func (m Model) Buffers() *buffer.Buffers { return m.buffers }

// Status returns the message shown in the status line, if any.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the window size, status line included.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

// layout fits the current buffer into the text area. The gutter grows with
// the line count, so this runs after every update.
func (m *Model) layout() {
	textHeight := m.height - 1
	textWidth := m.width - m.gutterWidth()
	b := m.buffers.Current()

	if textHeight <= 0 || textWidth <= 0 {
		m.screen = nil
		b.Hide()
		return
	}

	size := ui.Size{Width: m.width, Height: textHeight}
	if m.screen == nil || m.screen.Size() != size {
		m.screen = ui.NewScreen(size)
		logging.Default().Debug("editor resized", logging.FieldWidth, m.width, logging.FieldHeight, m.height)
	}

	want := units.Size{Width: textWidth, Height: textHeight}
	if vp, ok := b.Viewport(); !ok || vp.Size != want {
		b.Resize(want)
	}
}
