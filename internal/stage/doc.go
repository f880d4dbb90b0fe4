// Package stage renders the five-stage sequence.
//
// The interactive player is a Bubble Tea program. It never reads controller
// state directly: every published snapshot arrives as a StateMsg through the
// Bridge, and the model drops snapshots whose revision it has already seen.
// Keys call Play and Stop from inside a tea.Cmd, never from Update, because
// the controller delivers the resulting snapshot synchronously through
// program.Send.
//
// Enter and exit transitions belong to this package. The controller only
// says which stages are visible; the model timestamps each change and
// derives fades, springs and scales from those timestamps on every frame.
//
// RunHeadless is the fallback for pipes and CI logs: one line per stage,
// no cursor movement.
package stage
