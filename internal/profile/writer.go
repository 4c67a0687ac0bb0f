// Package profile persists the operator's working monitor selection as a
// Hyprland-sourceable configuration file.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyprtui/hyprtui/internal/config"
	"github.com/hyprtui/hyprtui/internal/display"
	"github.com/hyprtui/hyprtui/internal/errors"
)

const header = `# Monitor settings generated by hyprtui
# Add 'source = ~/.config/hypr/monitors.conf' to your hyprland.conf

`

// Writer writes monitor profiles to a configured path.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the given path (~ is expanded at save
// time).
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Save renders one monitor line per active output and writes the file,
// creating parent directories as needed. Returns the resolved path on
// success. monitors and configs are the session's parallel collections.
func (w *Writer) Save(monitors []display.Monitor, configs []display.Config) (string, error) {
	path := config.ExpandTilde(w.path)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrSave,
				"Couldn't create directory "+dir,
				"Check permissions on the parent directory.")
		}
	}

	var b strings.Builder
	b.WriteString(header)
	for i, monitor := range monitors {
		if !monitor.Active {
			continue
		}
		cfg := configs[i]
		fmt.Fprintf(&b, "monitor=%s,%s@%.2f,auto,%.2f\n",
			monitor.Name, cfg.Resolution, cfg.RefreshRate, cfg.ScaleFloat())
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSave,
			"Couldn't write "+path,
			"Check the file isn't locked and the directory is writable.")
	}

	return path, nil
}
