// Package ui provides the shared terminal styling for stagehand's CLI output.
//
// # Components Overview
//
//	PhaseDisplay  - One line per sequence event, for headless runs
//	RenderHeader  - Branded header printed before headless output
//	NewTable      - Bubbles table with default styling (stages command)
//	NewSpinner    - Bubbles spinner with the ◐ ◓ ◑ ◒ frames
//
// # Color Scheme
//
// The palette is hex based; lipgloss downsamples it to whatever the terminal
// supports. ApplyColorMode maps the output.color setting onto a termenv
// profile, and DisableColors forces plain ASCII (for --no-color).
//
// # Symbols
//
//	SymbolComplete (filled)     - Stage reached
//	SymbolPending  (circle)     - Stage not reached
//	SymbolProgress (half-fill)  - Settling before a run
//	SymbolSuccess  (checkmark)  - Run finished
//	SymbolSkipped  (slashed)    - Run stopped early
package ui
