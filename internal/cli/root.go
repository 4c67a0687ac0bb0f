package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyprtui/hyprtui/internal/errors"
)

// Global flags available to all subcommands
var configFlag string

// rootCmd is the base command. Running it with no subcommand starts the
// interactive configurator.
var rootCmd = &cobra.Command{
	Use:   "hyprtui",
	Short: "Interactive monitor configuration for Hyprland",
	Long: `hyprtui is a terminal UI for configuring Hyprland monitors.

Navigate connected monitors, cycle resolutions and refresh rates, adjust
scale, rearrange outputs, and persist the layout to a monitors.conf that
hyprland.conf can source.

Run without arguments to launch the interactive configurator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(configFlag)
	},
}

// Execute runs the root command and exits non-zero on failure. Structured
// errors print with their suggestion; anything else prints as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var appErr *errors.Error
		if stderrors.As(err, &appErr) {
			fmt.Fprintln(os.Stderr, appErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: $XDG_CONFIG_HOME/hyprtui/config.yaml)")
}
