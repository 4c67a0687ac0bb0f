package hyprctl

import (
	"io"
	"os"
	"os/exec"

	"github.com/hyprtui/hyprtui/internal/logger"
)

// Runner executes a fully-formed shell command and reports only whether it
// succeeded. Callers never learn why a command failed; action feedback stays
// a plain boolean so the interactive loop cannot be derailed by compositor
// quirks.
type Runner interface {
	Run(command string) bool
}

// ShellRunner runs commands through the user's shell with all output
// discarded, matching how short-lived hyprctl dispatches are fired.
type ShellRunner struct {
	log logger.Logger
}

// NewShellRunner creates the default command runner.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{log: logger.NewEnvLogger("[exec]")}
}

// Run executes the command via 'sh -c' and returns true on exit status zero.
func (r *ShellRunner) Run(command string) bool {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", command)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err != nil {
		r.log.Debug("command failed: %s: %v", command, err)
		return false
	}

	r.log.Debug("command ok: %s", command)
	return true
}
