package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyprtui/hyprtui/internal/config"
	"github.com/hyprtui/hyprtui/internal/errors"
	"github.com/hyprtui/hyprtui/internal/hyprctl"
	"github.com/hyprtui/hyprtui/internal/profile"
	"github.com/hyprtui/hyprtui/internal/session"
	"github.com/hyprtui/hyprtui/internal/tui"
)

// buildSession wires the collaborators from config: hyprctl client, shell
// runner, and profile writer. Used by the TUI and the non-interactive
// subcommands alike.
func buildSession(configPath string) (*session.Session, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	client := hyprctl.NewClient(cfg.Hyprctl)
	runner := hyprctl.NewShellRunner()
	writer := profile.NewWriter(cfg.ProfilePath)

	s, err := session.New(client, runner, writer)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// runTUI starts the interactive configurator.
func runTUI(configPath string) error {
	s, _, err := buildSession(configPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Terminal UI failed")
	}
	return nil
}
