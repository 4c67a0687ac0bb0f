package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hyprtui/hyprtui/internal/display"
	"github.com/hyprtui/hyprtui/internal/session"
)

var listJSON bool

// listCmd prints the connected monitors without entering the TUI.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print connected monitors and their current modes",
	Long: `Query hyprctl and print each connected monitor with its current
resolution, refresh rate, and scale.

Examples:
  hyprtui list
  hyprtui list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := buildSession(configFlag)
		if err != nil {
			return err
		}
		return listMonitors(cmd.OutOrStdout(), s, listJSON)
	},
}

// monitorSummary is the per-monitor shape for --json output.
type monitorSummary struct {
	Name        string  `json:"name"`
	Active      bool    `json:"active"`
	Resolution  string  `json:"resolution,omitempty"`
	RefreshRate float64 `json:"refreshRate,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	ModeCount   int     `json:"modeCount"`
}

func listMonitors(w io.Writer, s *session.Session, asJSON bool) error {
	monitors := s.Monitors()

	if asJSON {
		summaries := make([]monitorSummary, 0, len(monitors))
		for i, m := range monitors {
			cfg, _ := s.ConfigAt(i)
			summaries = append(summaries, summarize(m, cfg))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(monitors) == 0 {
		fmt.Fprintln(w, "No monitors found.")
		return nil
	}

	for i, m := range monitors {
		cfg, _ := s.ConfigAt(i)
		status := "inactive"
		if m.Active {
			status = "active"
		}
		fmt.Fprintf(w, "%s (%s)\n", m.Name, status)
		if m.Active {
			fmt.Fprintf(w, "  mode:  %s@%.2fHz\n", cfg.Resolution, cfg.RefreshRate)
			fmt.Fprintf(w, "  scale: %.2f\n", cfg.ScaleFloat())
		}
		fmt.Fprintf(w, "  modes: %d resolutions available\n", m.Modes.Len())
	}
	return nil
}

func summarize(m display.Monitor, cfg display.Config) monitorSummary {
	s := monitorSummary{
		Name:      m.Name,
		Active:    m.Active,
		ModeCount: m.Modes.Len(),
	}
	if m.Active {
		s.Resolution = cfg.Resolution
		s.RefreshRate = cfg.RefreshRate
		s.Scale = cfg.ScaleFloat()
	}
	return s
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output machine-readable JSON")
}
