package stage

import (
	"time"

	"github.com/rileyhilliard/stagehand/internal/sequence"
)

// StateMsg carries a snapshot published by the sequence controller.
type StateMsg struct {
	State sequence.PlaybackState
}

// frameMsg drives transitions while anything on screen is moving.
type frameMsg time.Time
