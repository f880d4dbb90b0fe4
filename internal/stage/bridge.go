package stage

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/stagehand/internal/sequence"
)

// Bridge subscribes to the sequence controller and forwards every snapshot
// to the Bubble Tea program via program.Send(). This is goroutine-safe.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a new bridge that forwards snapshots to the given program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// StateChanged is a sequence.Listener. Send blocks until the program takes
// the message, so it must never run on the program's own goroutine.
func (b *Bridge) StateChanged(s sequence.PlaybackState) {
	b.program.Send(StateMsg{State: s})
}
