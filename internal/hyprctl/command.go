package hyprctl

import "fmt"

// Command string builders for 'hyprctl keyword monitor' and
// 'hyprctl dispatch dpms'. Refresh rate and scale are always rendered with
// exactly two decimal digits; this formatting is the one bit-exact contract
// the tool has with the compositor and with saved profile files.

// ApplyCommand applies a mode and scale to a monitor.
func ApplyCommand(name, resolution string, rate, scale float64) string {
	return fmt.Sprintf("hyprctl keyword monitor \"%s,%s@%.2f,auto,%.2f\"",
		name, resolution, rate, scale)
}

// SetPrimaryCommand makes a monitor the main screen at its preferred mode.
func SetPrimaryCommand(name, resolution string, rate, scale float64) string {
	return fmt.Sprintf("hyprctl keyword monitor \"%s,preferred,%s@%.2f,auto,%.2f\"",
		name, resolution, rate, scale)
}

// ExtendCommand places a monitor to the left or right of another output.
// direction must be "left" or "right".
func ExtendCommand(name, resolution string, rate, scale float64, direction, other string) string {
	return fmt.Sprintf("hyprctl keyword monitor \"%s,%s@%.2f,auto,%.2f,%sof,%s\"",
		name, resolution, rate, scale, direction, other)
}

// MirrorCommand mirrors a source monitor onto another output, carrying the
// source's mode and scale.
func MirrorCommand(source, resolution string, rate, scale float64, target string) string {
	return fmt.Sprintf("hyprctl keyword monitor \"%s,%s@%.2f,auto,%.2f,mirror,%s\"",
		source, resolution, rate, scale, target)
}

// DPMSCommand turns a monitor's power state on or off.
func DPMSCommand(name string, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return fmt.Sprintf("hyprctl dispatch dpms %s %s", state, name)
}

// DisableCommand switches a monitor off entirely.
func DisableCommand(name string) string {
	return fmt.Sprintf("hyprctl keyword monitor \"%s,disable\"", name)
}
