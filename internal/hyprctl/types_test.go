package hyprctl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_DecodeFullRecord(t *testing.T) {
	payload := `[{
		"id": 0,
		"name": "DP-1",
		"description": "Dell Inc. DELL U2720Q",
		"width": 3840,
		"height": 2160,
		"refreshRate": 59.99700,
		"x": 0,
		"y": 0,
		"scale": 1.50,
		"focused": true,
		"dpmsStatus": true,
		"disabled": false,
		"availableModes": ["3840x2160@60.00Hz", "3840x2160@30.00Hz", "1920x1080@60.00Hz"]
	}]`

	var monitors []Monitor
	require.NoError(t, json.Unmarshal([]byte(payload), &monitors))
	require.Len(t, monitors, 1)

	m := monitors[0]
	assert.Equal(t, "DP-1", m.Name)
	assert.False(t, m.IsDisabled())
	assert.Equal(t, 1.5, m.ScaleOrDefault())
	assert.InDelta(t, 59.997, m.RefreshRateOrDefault(), 0.0001)
	assert.Len(t, m.AvailableModes, 3)
}

func TestMonitor_MissingKeysCarryDefaults(t *testing.T) {
	var m Monitor
	require.NoError(t, json.Unmarshal([]byte(`{"name": "HDMI-A-1"}`), &m))

	// A record without a disabled key is a phantom output: treat as disabled.
	assert.True(t, m.IsDisabled())
	assert.Equal(t, 1.0, m.ScaleOrDefault())
	assert.Equal(t, 60.0, m.RefreshRateOrDefault())
}

func TestMonitor_ExplicitDisabled(t *testing.T) {
	var m Monitor
	require.NoError(t, json.Unmarshal([]byte(`{"name": "DP-2", "disabled": true}`), &m))
	assert.True(t, m.IsDisabled())

	require.NoError(t, json.Unmarshal([]byte(`{"name": "DP-2", "disabled": false}`), &m))
	assert.False(t, m.IsDisabled())
}
