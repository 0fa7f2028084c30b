package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/dodger"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// statusSeconds is how long a status message replaces the help bar.
const statusSeconds = 2

// Model is the Bubble Tea model for running a dodger session.
type Model struct {
	session    *dodger.Session
	screen     *core.Screen
	canvas     *ScreenCanvas
	config     core.RuntimeConfig
	virtualW   float64
	virtualH   float64
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	status     string
	statusLeft int // Ticks until the status is cleared
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a Bubble Tea model drawing the session onto a
// width×height terminal.
func NewModel(session *dodger.Session, cfg core.RuntimeConfig, width, height int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vw, vh := session.Lanes().Size()
	screen := core.NewScreen(width, core.Max(height-helpRows, 1))
	h := help.New()
	h.ShowAll = false
	h.Width = width

	return Model{
		session:    session,
		screen:     screen,
		canvas:     NewScreenCanvas(screen, vw, vh),
		config:     cfg,
		virtualW:   vw,
		virtualH:   vh,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy) && m.session.Phase() == dodger.PhaseEnd:
		m.copySummary()
		return m, nil
	}

	m.setStatus("")
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the scale onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.canvas.SetVirtualSize(m.virtualW, m.virtualH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dodger_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}
	m.setStatus("saved " + path)
	m.logger.Info("saved screenshot", "path", path)
}

func (m *Model) copySummary() {
	summary := m.session.State().Summary()
	if err := clipboard.WriteAll(summary); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("copied: " + summary)
}

// setStatus shows msg instead of the help bar for a couple of seconds.
// An empty msg restores the help bar.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusLeft = 0
	if msg != "" {
		m.statusLeft = statusSeconds * m.config.TickRate
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(session *dodger.Session, cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(session, cfg, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
