package sequence

// Step is a milestone within a run. Steps increase by one per tick and gate
// which visual stages are shown.
type Step int

const (
	StepTitle Step = iota
	StepList
	StepCircle
	StepText
	StepComplete
)

// StepCount is the number of steps in a run.
const StepCount = int(StepComplete) + 1

// String returns the short identifier for the step.
func (s Step) String() string {
	switch s {
	case StepTitle:
		return "title"
	case StepList:
		return "list"
	case StepCircle:
		return "circle"
	case StepText:
		return "text"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Label returns a human-readable description of the stage revealed at this step.
func (s Step) Label() string {
	switch s {
	case StepTitle:
		return "Title fade-in"
	case StepList:
		return "Staggered list"
	case StepCircle:
		return "Growing circle"
	case StepText:
		return "Text reveal"
	case StepComplete:
		return "Sequence complete"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the five defined steps.
func (s Step) Valid() bool {
	return s >= StepTitle && s <= StepComplete
}

// Steps returns every step in run order.
func Steps() []Step {
	return []Step{StepTitle, StepList, StepCircle, StepText, StepComplete}
}
