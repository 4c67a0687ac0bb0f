package config

// Config represents the hyprtui configuration file.
type Config struct {
	// Hyprctl is the compositor control binary to invoke.
	Hyprctl string `yaml:"hyprctl" mapstructure:"hyprctl"`

	// ProfilePath is where saved monitor profiles are written.
	// Supports ~ for the user's home directory.
	ProfilePath string `yaml:"profile_path" mapstructure:"profile_path"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Hyprctl:     "hyprctl",
		ProfilePath: "~/.config/hypr/monitors.conf",
	}
}
