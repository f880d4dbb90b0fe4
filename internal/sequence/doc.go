// Package sequence implements the five-step playback state machine behind
// the stagehand player.
//
// # States
//
// The controller is either idle or running a step:
//
//	idle ──Play──▶ (settle delay) ──▶ running(0)
//	running(n) ──tick──▶ running(n+1)   for n < 4
//	running(4)                          terminal, no further ticks
//	running(n) ──Stop──▶ idle
//	running(n) ──Play──▶ idle ──(settle delay)──▶ running(0)
//
// # Timers
//
// At most one timer is pending at any instant: either the settle timer
// started by Play or the tick timer that advances the step. Every mutation
// cancels the pending timer before deciding whether to schedule a new one.
// A callback that was already running when it got cancelled is discarded by
// comparing its generation against the controller's current generation.
//
// # Visibility
//
// Visible, VisibleStages and ResetVisible are pure functions of a
// PlaybackState. Renderers subscribe to snapshots and never mutate state.
package sequence
