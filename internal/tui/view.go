package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyprtui/hyprtui/internal/session"
)

// render draws the two-pane layout with the footer line underneath.
func (m Model) render() string {
	monitors := m.renderMonitorsPane()
	options := m.renderOptionsPane()

	content := lipgloss.JoinHorizontal(lipgloss.Top, monitors, options)

	var b strings.Builder
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderMonitorsPane lists every output with an active/inactive icon.
func (m Model) renderMonitorsPane() string {
	var rows []string
	rows = append(rows, PaneTitleStyle.Render("Monitors"))

	selected := m.session.SelectedMonitor()
	for i, monitor := range m.session.Monitors() {
		icon := IconInactive
		if monitor.Active {
			icon = IconActive
		}
		row := fmt.Sprintf("%s %s", icon, monitor.Name)
		if i == selected && m.focused == PaneMonitors {
			row = SelectedRowStyle.Render(">> " + row)
		} else {
			row = "   " + row
		}
		rows = append(rows, row)
	}

	if len(m.session.Monitors()) == 0 {
		rows = append(rows, HintStyle.Render("no monitors found"))
	}

	return m.paneStyle(PaneMonitors).Render(strings.Join(rows, "\n"))
}

// renderOptionsPane shows the working selection and the action list for the
// selected monitor.
func (m Model) renderOptionsPane() string {
	var rows []string
	rows = append(rows, PaneTitleStyle.Render("Options"))

	idx := m.session.SelectedMonitor()
	cfg, ok := m.session.ConfigAt(idx)
	if !ok {
		return m.paneStyle(PaneOptions).Render(strings.Join(rows, "\n"))
	}

	dpms := "On"
	if !cfg.DPMSOn {
		dpms = "Off"
	}

	labels := []string{
		fmt.Sprintf("%-13s <%s>", "Resolution:", cfg.Resolution),
		fmt.Sprintf("%-13s <%.1f Hz>", "Refresh Rate:", cfg.RefreshRate),
		fmt.Sprintf("%-13s <%.2f>", "Scale:", cfg.ScaleFloat()),
		ApplyStyle.Render("-> Apply Changes <-"),
		"Set as Main Screen",
		"Extend Left",
		"Extend Right",
		"Mirror Another Monitor",
		fmt.Sprintf("Toggle Black Screen (Currently: %s)", dpms),
		SaveStyle.Render("-> Save to File <-"),
		DisableStyle.Render("-> Disable Monitor <-"),
	}

	selected := m.session.SelectedOption()
	for i, label := range labels {
		if i == selected && m.focused == PaneOptions {
			rows = append(rows, SelectedRowStyle.Render("> "+label))
		} else {
			rows = append(rows, "  "+label)
		}
	}

	return m.paneStyle(PaneOptions).Render(strings.Join(rows, "\n"))
}

// renderFooter shows either the transient info banner or the key hints.
func (m Model) renderFooter() string {
	if info := m.session.Info(); info != "" {
		return FooterStyle.Render(InfoStyle.Render(info))
	}
	if m.help.ShowAll {
		return FooterStyle.Render(m.help.View(m.keys))
	}
	return FooterStyle.Render(HintStyle.Render(m.help.View(m.keys)))
}

// renderDetail draws the scrollable mode list for the selected monitor.
func (m Model) renderDetail() string {
	idx := m.session.SelectedMonitor()
	name := ""
	if idx >= 0 && idx < len(m.session.Monitors()) {
		name = m.session.Monitors()[idx].Name
	}

	header := PaneTitleStyle.Render("Modes: "+name) + "\n"
	footer := "\n" + FooterStyle.Render(HintStyle.Render("esc back | ↑/↓ scroll"))
	return header + m.detailViewport.View() + footer
}

// renderDetailContent lists every resolution with its available rates.
func (m Model) renderDetailContent() string {
	idx := m.session.SelectedMonitor()
	if idx < 0 || idx >= len(m.session.Monitors()) {
		return ""
	}

	monitor := m.session.Monitors()[idx]
	cfg, _ := m.session.ConfigAt(idx)

	var b strings.Builder
	for _, res := range monitor.Modes.Resolutions() {
		marker := "  "
		if res == cfg.Resolution {
			marker = "> "
		}
		rates := make([]string, 0, len(monitor.Modes.Rates(res)))
		for _, rate := range monitor.Modes.Rates(res) {
			rates = append(rates, fmt.Sprintf("%.2f Hz", rate))
		}
		fmt.Fprintf(&b, "%s%-12s %s\n", marker, res, strings.Join(rates, ", "))
	}

	if monitor.Modes.Empty() {
		b.WriteString(HintStyle.Render("no modes reported"))
	}

	return b.String()
}

// paneStyle picks the focused or unfocused border for a pane.
func (m Model) paneStyle(pane Pane) lipgloss.Style {
	style := PaneStyle
	if m.focused == pane {
		style = PaneFocusedStyle
	}

	// Split the terminal roughly 40/60 like the option pane needs more room.
	if m.width > 0 {
		if pane == PaneMonitors {
			style = style.Width(m.width * 4 / 10)
		} else {
			style = style.Width(m.width*6/10 - 2)
		}
	}
	return style
}

// optionLabel returns a plain-text description of an option index, used by
// the list command and tests.
func optionLabel(option int) string {
	switch option {
	case session.OptionResolution:
		return "resolution"
	case session.OptionRefreshRate:
		return "refresh rate"
	case session.OptionScale:
		return "scale"
	case session.OptionApply:
		return "apply changes"
	case session.OptionSetPrimary:
		return "set as main screen"
	case session.OptionExtendLeft:
		return "extend left"
	case session.OptionExtendRight:
		return "extend right"
	case session.OptionMirror:
		return "mirror another monitor"
	case session.OptionToggleDPMS:
		return "toggle black screen"
	case session.OptionSave:
		return "save to file"
	case session.OptionDisable:
		return "disable monitor"
	default:
		return "unknown"
	}
}
