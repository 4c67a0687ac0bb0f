package tui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorAccent  = lipgloss.Color("4") // Blue
	ColorSuccess = lipgloss.Color("2") // Green
	ColorDanger  = lipgloss.Color("1") // Red
	ColorInfo    = lipgloss.Color("6") // Cyan
	ColorHint    = lipgloss.Color("3") // Yellow
	ColorMuted   = lipgloss.Color("8") // Gray (bright black)
)

var (
	// Pane borders; the focused pane gets the accent color.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	PaneFocusedStyle = PaneStyle.
				BorderForeground(ColorAccent)

	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true)

	// List rows
	SelectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(ColorAccent)

	// Action rows in the options pane
	ApplyStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	SaveStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	DisableStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	// Footer line
	HintStyle = lipgloss.NewStyle().Foreground(ColorHint)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	FooterStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			Padding(0, 1)
)

// Monitor state icons shown in the monitors pane.
const (
	IconActive   = "✅"
	IconInactive = "❌"
)
