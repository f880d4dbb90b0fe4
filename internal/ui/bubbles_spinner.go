package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) for use in Bubble Tea programs.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// NewSpinner returns a bubbles spinner using SpinnerFrames in the given color.
func NewSpinner(color lipgloss.Color) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(SpinnerFrames),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(color)),
	)
}
