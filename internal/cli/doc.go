// Package cli implements the hyprtui command-line interface.
//
// The package is organized around Cobra commands. Running the bare binary
// launches the interactive configurator; subcommands cover the
// non-interactive paths:
//
//	hyprtui           - Interactive two-pane monitor configurator
//	hyprtui list      - Print connected monitors and their current modes
//	hyprtui save      - Write the current layout to the monitors profile
//	hyprtui init      - Create the hyprtui config file
//	hyprtui version   - Print version information
//
// # Flag Handling
//
// The global --config flag is defined on the root command and available to
// all subcommands. Command-specific flags like --json and --output are
// defined on individual commands.
//
// # Wiring
//
// Commands build the same collaborators the interactive path uses: a
// hyprctl client for queries, a shell runner for keyword commands, and a
// profile writer for the generated monitors.conf. Keeping one construction
// path means the subcommands and the TUI can never disagree about how
// monitors are read or written.
package cli
