package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hyprtui/hyprtui/internal/config"
	"github.com/hyprtui/hyprtui/internal/errors"
)

var initForce bool

// initCmd scaffolds the hyprtui config file with defaults.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the hyprtui config file",
	Long: `Initialize the hyprtui configuration file with defaults.

Writes config.yaml under the hyprtui config directory (honoring
XDG_CONFIG_HOME). Prompts before overwriting an existing file.

Examples:
  hyprtui init
  hyprtui init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()
		if configFlag != "" {
			path = configFlag
		}
		return initConfig(cmd, path, initForce)
	},
}

func initConfig(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := writeDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

// writeDefaultConfig marshals the default config to path, creating parent
// directories as needed.
func writeDefaultConfig(path string) error {
	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode default config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to create config directory for %s", path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check file permissions")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
}
