// Package tui renders the interactive two-pane monitor configurator on top
// of a session aggregate. The left pane lists monitors, the right pane the
// per-monitor options; all state mutation is delegated to the session.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyprtui/hyprtui/internal/session"
)

// Model is the Bubble Tea model for the configurator.
type Model struct {
	session *session.Session

	keys KeyMap
	help help.Model

	focused  Pane
	width    int
	height   int
	quitting bool

	// Detail view showing the selected monitor's full mode list.
	showDetail     bool
	detailViewport viewport.Model
	viewportReady  bool
}

// NewModel creates a model around an initialized session.
func NewModel(s *session.Session) Model {
	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		focused: PaneMonitors,
	}
}

// Init implements tea.Model. The configurator is purely input-driven; there
// is no tick loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
	}

	return m, nil
}

// View renders the configurator.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showDetail {
		return m.renderDetail()
	}
	return m.render()
}

// handleKey processes one keypress. Any key clears the transient info banner
// first, matching how short-lived status messages behave.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.session.ClearInfo()

	// Help overlay swallows everything except its own toggles.
	if m.help.ShowAll {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
			m.help.ShowAll = false
		}
		return m, nil
	}

	// Detail view: esc or enter returns to the list.
	if m.showDetail {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Execute):
			m.showDetail = false
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true

	case key.Matches(msg, m.keys.TogglePane):
		if m.focused == PaneMonitors {
			m.focused = PaneOptions
		} else {
			m.focused = PaneMonitors
		}

	case key.Matches(msg, m.keys.Up):
		if m.focused == PaneMonitors {
			m.session.SelectMonitor(false)
		} else {
			m.session.SelectOption(false)
		}

	case key.Matches(msg, m.keys.Down):
		if m.focused == PaneMonitors {
			m.session.SelectMonitor(true)
		} else {
			m.session.SelectOption(true)
		}

	case key.Matches(msg, m.keys.Increase):
		if m.focused == PaneOptions {
			m.session.Adjust(true)
		}

	case key.Matches(msg, m.keys.Decrease):
		if m.focused == PaneOptions {
			m.session.Adjust(false)
		}

	case key.Matches(msg, m.keys.Execute):
		if m.focused == PaneOptions {
			m.session.Execute()
		} else if m.session.SelectedMonitor() >= 0 {
			m.openDetail()
		}

	case key.Matches(msg, m.keys.Reload):
		// Reload failures leave the previous state in place; the session
		// stays usable either way.
		_ = m.session.Reload()
	}

	return m, nil
}

// openDetail opens the scrollable mode list for the selected monitor.
func (m *Model) openDetail() {
	m.resizeViewport()
	m.detailViewport.SetContent(m.renderDetailContent())
	m.detailViewport.GotoTop()
	m.showDetail = true
}

// resizeViewport keeps the detail viewport matched to the terminal,
// reserving rows for the header and footer.
func (m *Model) resizeViewport() {
	headerHeight := 2
	footerHeight := 2
	vpHeight := m.height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.viewportReady {
		m.detailViewport = viewport.New(m.width, vpHeight)
		m.viewportReady = true
		return
	}
	m.detailViewport.Width = m.width
	m.detailViewport.Height = vpHeight
}

// Focused returns the currently focused pane.
func (m Model) Focused() Pane {
	return m.focused
}
