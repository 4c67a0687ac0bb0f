package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyprtui/hyprtui/internal/config"
	"github.com/hyprtui/hyprtui/internal/hyprctl"
	"github.com/hyprtui/hyprtui/internal/profile"
	"github.com/hyprtui/hyprtui/internal/session"
)

var saveOutputFlag string

// saveCmd writes the current layout to the monitors profile without
// entering the TUI.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the current monitor layout to the profile file",
	Long: `Query the current monitor state and persist it to the monitors
profile, the same file the interactive Save action writes.

Examples:
  hyprtui save
  hyprtui save --output ~/.config/hypr/monitors.conf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}

		path := cfg.ProfilePath
		if saveOutputFlag != "" {
			path = saveOutputFlag
		}

		client := hyprctl.NewClient(cfg.Hyprctl)
		writer := profile.NewWriter(path)

		s, err := session.New(client, hyprctl.NewShellRunner(), writer)
		if err != nil {
			return err
		}

		resolved, err := s.SaveProfile()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved monitor profile to %s\n", resolved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVarP(&saveOutputFlag, "output", "o", "", "Write to this path instead of the configured profile path")
}
