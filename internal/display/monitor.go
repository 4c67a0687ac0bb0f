// Package display holds the normalized monitor model and the mutation rules
// that keep an operator's working selection (resolution, refresh rate, scale)
// internally consistent while it is being edited.
package display

// Scale is stored as an integer percentage (150 = 1.5x) so stepping and
// clamping stay exact.
const (
	// ScaleStep is the increment applied by AdjustScale.
	ScaleStep = 25
	// MinScale is the floor AdjustScale clamps to.
	MinScale = 50
)

// defaultRefreshRate is used whenever a rate cannot be resolved from a
// monitor's mode set.
const defaultRefreshRate = 60.0

// Monitor is one physical output with its normalized mode catalog.
// Immutable once built; rebuilt wholesale on a re-query.
type Monitor struct {
	Name   string
	Active bool
	Modes  ModeSet
}

// Config is the operator's working selection for one Monitor.
//
// ResolutionIndex and RefreshRateIndex are cached positions into the owning
// monitor's mode set; they are kept in lock-step with Resolution and
// RefreshRate by the mutation methods in state.go, which are the only
// sanctioned write path.
type Config struct {
	Resolution       string
	RefreshRate      float64
	Scale            int
	ResolutionIndex  int
	RefreshRateIndex int
	DPMSOn           bool
}

// ScaleFloat returns the scale as the fractional value hyprctl expects
// (150 -> 1.5).
func (c Config) ScaleFloat() float64 {
	return float64(c.Scale) / 100.0
}
