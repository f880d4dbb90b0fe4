package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Run finished
	SymbolFail     = "✗" // Error
	SymbolPending  = "○" // Stage not reached yet
	SymbolProgress = "◐" // Settling
	SymbolComplete = "●" // Stage reached
	SymbolSkipped  = "⊘" // Run stopped early
	SymbolWarning  = "⚠"
)

// Progress dot glyphs. The pulsing dot swaps to the large glyph at the top
// of its pulse.
const (
	DotEmpty  = "○"
	DotFilled = "●"
	DotPulse  = "⬤"
)
