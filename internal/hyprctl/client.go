package hyprctl

import (
	"encoding/json"
	"os/exec"

	"github.com/hyprtui/hyprtui/internal/errors"
	"github.com/hyprtui/hyprtui/internal/logger"
)

// DefaultBinary is the hyprctl executable used when the config does not
// override it.
const DefaultBinary = "hyprctl"

// Client queries monitor state from the compositor.
type Client struct {
	binary string
	log    logger.Logger
}

// NewClient creates a client around the given hyprctl binary.
// An empty binary falls back to DefaultBinary.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		binary: binary,
		log:    logger.NewEnvLogger("[hyprctl]"),
	}
}

// Monitors runs 'hyprctl monitors all -j' and decodes the result.
// Invocation and decode failures are both QUERY-coded errors; either one
// aborts session startup.
func (c *Client) Monitors() ([]Monitor, error) {
	out, err := exec.Command(c.binary, "monitors", "all", "-j").Output()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrQuery,
			"Couldn't query monitors from Hyprland",
			"Make sure hyprctl is on your PATH and you are running inside a Hyprland session.")
	}

	var monitors []Monitor
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrQuery,
			"hyprctl returned output that isn't valid monitor JSON",
			"Your Hyprland version may be incompatible; try updating hyprtui or Hyprland.")
	}

	c.log.Debug("queried %d monitors", len(monitors))
	return monitors, nil
}
