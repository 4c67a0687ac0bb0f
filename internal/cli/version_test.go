package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOutput(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	defer func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-01-08T12:00:00Z")

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionShort = false
	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	assert.Contains(t, output, "hyprtui v1.2.3")
	assert.Contains(t, output, "commit: abc1234")
	assert.Contains(t, output, "built: 2026-01-08T12:00:00Z")
	assert.Contains(t, output, "go: "+runtime.Version())
	assert.Contains(t, output, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionShortOutput(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	version = "2.0.0"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionShort = true
	defer func() { versionShort = false }()
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "2.0.0", strings.TrimSpace(buf.String()))
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"bare version gets v prefix", "1.2.3", "v1.2.3"},
		{"prefixed version unchanged", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestGetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	version = "3.1.4"
	require.Equal(t, "3.1.4", GetVersion())
}
