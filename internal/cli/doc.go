// Package cli implements the stagehand command-line interface.
//
// # Command Structure
//
// The root command is "stagehand"; with no subcommand it behaves like play:
//
//	stagehand play        - Interactive player (headless on pipes)
//	stagehand stages      - Stage visibility table
//	stagehand init        - Create .stagehand.yaml
//	stagehand version     - Version information
//	stagehand completion  - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. Command-specific flags are
// registered in commands.go.
//
// Every command that reads config goes through loadConfig, which applies
// the search order and environment overrides from the config package,
// validates, and sets the color profile.
package cli
