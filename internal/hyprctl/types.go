// Package hyprctl talks to the Hyprland compositor through its hyprctl
// command-line tool: querying the monitor list as JSON and dispatching
// configuration keywords.
package hyprctl

// Workspace identifies a workspace attached to a monitor.
type Workspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Monitor matches one entry of 'hyprctl monitors all -j' output.
//
// Disabled, Scale, and RefreshRate are pointers because their absence carries
// meaning: a missing "disabled" key marks a phantom output that must be
// treated as disabled, and missing scale/refreshRate fall back to 1.0/60.0
// rather than their zero values.
type Monitor struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Serial           string    `json:"serial"`
	Width            int64     `json:"width"`
	Height           int64     `json:"height"`
	RefreshRate      *float64  `json:"refreshRate"`
	X                int64     `json:"x"`
	Y                int64     `json:"y"`
	ActiveWorkspace  Workspace `json:"activeWorkspace"`
	SpecialWorkspace Workspace `json:"specialWorkspace"`
	Scale            *float64  `json:"scale"`
	Transform        int64     `json:"transform"`
	Focused          bool      `json:"focused"`
	DPMSStatus       bool      `json:"dpmsStatus"`
	VRR              bool      `json:"vrr"`
	Disabled         *bool     `json:"disabled"`
	CurrentFormat    string    `json:"currentFormat"`
	MirrorOf         string    `json:"mirrorOf"`
	AvailableModes   []string  `json:"availableModes"`
}

// IsDisabled reports the disabled flag, treating a missing key as disabled.
func (m Monitor) IsDisabled() bool {
	if m.Disabled == nil {
		return true
	}
	return *m.Disabled
}

// ScaleOrDefault returns the reported scale, or 1.0 when the key is missing.
func (m Monitor) ScaleOrDefault() float64 {
	if m.Scale == nil {
		return 1.0
	}
	return *m.Scale
}

// RefreshRateOrDefault returns the reported refresh rate, or 60.0 when the
// key is missing.
func (m Monitor) RefreshRateOrDefault() float64 {
	if m.RefreshRate == nil {
		return 60.0
	}
	return *m.RefreshRate
}
