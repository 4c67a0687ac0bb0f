package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hyprtui/hyprtui/internal/errors"
)

const (
	// ConfigDir is the directory under the user's config root.
	ConfigDir = "hyprtui"
	// ConfigFileName is the config file name inside ConfigDir.
	ConfigFileName = "config.yaml"
)

// Path returns the default config file location
// (~/.config/hyprtui/config.yaml), honoring XDG_CONFIG_HOME.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDir, ConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", ConfigDir, ConfigFileName)
	}
	return filepath.Join(home, ".config", ConfigDir, ConfigFileName)
}

// Load reads config from the specified path. An empty path means the default
// location; a missing file at the default location is not an error and yields
// the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+path,
					"Check the path is correct, or run 'hyprtui init' to create one.")
			}
			return DefaultConfig(), nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot access config file: "+path,
			"Check file permissions.")
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check that "+path+" is valid YAML.")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path+".")
	}

	return cfg, nil
}

// setDefaults seeds viper so omitted keys fall back to DefaultConfig values.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("hyprctl", defaults.Hyprctl)
	v.SetDefault("profile_path", defaults.ProfilePath)
}
