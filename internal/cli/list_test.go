package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprtui/hyprtui/internal/hyprctl"
	"github.com/hyprtui/hyprtui/internal/profile"
	"github.com/hyprtui/hyprtui/internal/session"
)

type fakeQuerier struct {
	records []hyprctl.Monitor
}

func (f *fakeQuerier) Monitors() ([]hyprctl.Monitor, error) {
	return f.records, nil
}

type fakeRunner struct{}

func (f *fakeRunner) Run(command string) bool { return true }

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func newTestSession(t *testing.T, records []hyprctl.Monitor) *session.Session {
	t.Helper()
	writer := profile.NewWriter(filepath.Join(t.TempDir(), "monitors.conf"))
	s, err := session.New(&fakeQuerier{records: records}, &fakeRunner{}, writer)
	require.NoError(t, err)
	return s
}

func listRecords() []hyprctl.Monitor {
	return []hyprctl.Monitor{
		{
			Name:           "DP-1",
			Width:          2560,
			Height:         1440,
			RefreshRate:    floatPtr(144.0),
			Scale:          floatPtr(1.5),
			Disabled:       boolPtr(false),
			AvailableModes: []string{"2560x1440@144.00Hz", "1920x1080@60.00Hz"},
		},
		{
			Name:           "HDMI-A-1",
			AvailableModes: []string{"1920x1080@60.00Hz"},
		},
	}
}

func TestListMonitors_Plain(t *testing.T) {
	s := newTestSession(t, listRecords())

	var buf bytes.Buffer
	require.NoError(t, listMonitors(&buf, s, false))

	out := buf.String()
	assert.Contains(t, out, "DP-1 (active)")
	assert.Contains(t, out, "mode:  2560x1440@144.00Hz")
	assert.Contains(t, out, "scale: 1.50")
	assert.Contains(t, out, "modes: 2 resolutions available")
	assert.Contains(t, out, "HDMI-A-1 (inactive)")
}

func TestListMonitors_InactiveSkipsMode(t *testing.T) {
	s := newTestSession(t, listRecords())

	var buf bytes.Buffer
	require.NoError(t, listMonitors(&buf, s, false))

	// The inactive monitor must not show a mode line of its own.
	out := buf.String()
	idx := bytes.Index(buf.Bytes(), []byte("HDMI-A-1"))
	require.Greater(t, idx, 0)
	assert.NotContains(t, out[idx:], "mode:")
}

func TestListMonitors_JSON(t *testing.T) {
	s := newTestSession(t, listRecords())

	var buf bytes.Buffer
	require.NoError(t, listMonitors(&buf, s, true))

	var summaries []monitorSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summaries))
	require.Len(t, summaries, 2)

	assert.Equal(t, "DP-1", summaries[0].Name)
	assert.True(t, summaries[0].Active)
	assert.Equal(t, "2560x1440", summaries[0].Resolution)
	assert.InDelta(t, 144.0, summaries[0].RefreshRate, 0.001)
	assert.InDelta(t, 1.5, summaries[0].Scale, 0.001)
	assert.Equal(t, 2, summaries[0].ModeCount)

	assert.Equal(t, "HDMI-A-1", summaries[1].Name)
	assert.False(t, summaries[1].Active)
	assert.Empty(t, summaries[1].Resolution)
}

func TestListMonitors_Empty(t *testing.T) {
	s := newTestSession(t, nil)

	var buf bytes.Buffer
	require.NoError(t, listMonitors(&buf, s, false))

	assert.Contains(t, buf.String(), "No monitors found.")
}
