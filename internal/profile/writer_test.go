package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprtui/hyprtui/internal/display"
)

func TestSave_WritesActiveMonitorsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitors.conf")
	writer := NewWriter(path)

	monitors := []display.Monitor{
		{Name: "DP-1", Active: true},
		{Name: "HDMI-A-1", Active: false},
		{Name: "eDP-1", Active: true},
	}
	configs := []display.Config{
		{Resolution: "2560x1440", RefreshRate: 165.0, Scale: 100},
		{Resolution: "1920x1080", RefreshRate: 60.0, Scale: 100},
		{Resolution: "1920x1200", RefreshRate: 59.95, Scale: 150},
	}

	resolved, err := writer.Save(monitors, configs)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "monitor=DP-1,2560x1440@165.00,auto,1.00\n")
	assert.Contains(t, string(content), "monitor=eDP-1,1920x1200@59.95,auto,1.50\n")
	assert.NotContains(t, string(content), "HDMI-A-1")
}

func TestSave_IncludesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitors.conf")

	_, err := NewWriter(path).Save(nil, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Monitor settings generated by hyprtui")
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "monitors.conf")

	resolved, err := NewWriter(path).Save(
		[]display.Monitor{{Name: "DP-1", Active: true}},
		[]display.Config{{Resolution: "1920x1080", RefreshRate: 60.0, Scale: 100}},
	)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.FileExists(t, path)
}

func TestSave_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	resolved, err := NewWriter("~/profiles/monitors.conf").Save(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "profiles", "monitors.conf"), resolved)
	assert.FileExists(t, resolved)
}

func TestSave_WriteFailureIsDescriptive(t *testing.T) {
	// Target a path whose parent is a file, so MkdirAll fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewWriter(filepath.Join(blocker, "monitors.conf")).Save(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Couldn't create directory")
}
