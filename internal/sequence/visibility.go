package sequence

// Visible reports whether stage is shown for state s.
// A stage stays visible for the rest of the run once revealed.
func Visible(s PlaybackState, stage Step) bool {
	return s.Playing && s.Step >= stage
}

// VisibleStages returns every stage shown for s, in run order.
func VisibleStages(s PlaybackState) []Step {
	var out []Step
	for _, st := range Steps() {
		if Visible(s, st) {
			out = append(out, st)
		}
	}
	return out
}

// ResetVisible reports whether the reset control is offered.
func ResetVisible(s PlaybackState) bool {
	return Visible(s, StepComplete)
}

// ProgressVisible reports whether the five-dot progress indicator is shown.
func ProgressVisible(s PlaybackState) bool {
	return s.Playing
}

// DotFilled reports whether progress dot i is filled.
func DotFilled(s PlaybackState, i Step) bool {
	return s.Step >= i
}

// DotActive reports whether progress dot i is the pulsing one.
func DotActive(s PlaybackState, i Step) bool {
	return s.Playing && s.Step == i
}

// StateSpace enumerates the ten (Playing, Step) combinations a renderer can observe.
func StateSpace() []PlaybackState {
	out := make([]PlaybackState, 0, 2*StepCount)
	for _, playing := range []bool{false, true} {
		for _, st := range Steps() {
			out = append(out, PlaybackState{Playing: playing, Step: st})
		}
	}
	return out
}
