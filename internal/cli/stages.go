package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

var stageColumns = []ui.TableColumn{
	{Title: "STATE", Width: 12},
	{Title: "TITLE", Width: 6},
	{Title: "LIST", Width: 5},
	{Title: "CIRCLE", Width: 7},
	{Title: "TEXT", Width: 5},
	{Title: "DONE", Width: 5},
	{Title: "RESET", Width: 6},
	{Title: "DOTS", Width: 6},
}

// stagesCommand prints the visibility of every stage in every playback state.
func stagesCommand(w io.Writer) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, ui.RenderTable(stageColumns, stageRows(), terminalRow()))
	fmt.Fprintln(w)

	timing := sequence.Timing{Settle: cfg.Timing.Settle, Tick: cfg.Timing.Tick}
	fmt.Fprintf(w, "settle %s · tick %s · full run %s\n", timing.Settle, timing.Tick, timing.RunDuration())

	if path == "" {
		path = "defaults"
	}
	fmt.Fprintln(w, ui.MutedStyle().Render("config: "+path))
	return nil
}

func stageRows() [][]string {
	states := sequence.StateSpace()
	rows := make([][]string, 0, len(states))

	for _, s := range states {
		row := []string{stateLabel(s)}
		for _, st := range sequence.Steps() {
			row = append(row, ui.Mark(sequence.Visible(s, st)))
		}
		row = append(row, ui.Mark(sequence.ResetVisible(s)), dots(s))
		rows = append(rows, row)
	}
	return rows
}

// terminalRow is the index of the one state where reset shows.
func terminalRow() int {
	for i, s := range sequence.StateSpace() {
		if sequence.ResetVisible(s) {
			return i
		}
	}
	return ui.NoHighlight
}

// stateLabel names a snapshot; a stopped run keeps its step.
func stateLabel(s sequence.PlaybackState) string {
	if s.Playing || s.Step == sequence.StepTitle {
		return s.String()
	}
	return fmt.Sprintf("stopped(%d)", s.Step)
}

func dots(s sequence.PlaybackState) string {
	if !sequence.ProgressVisible(s) {
		return "-"
	}
	var b strings.Builder
	for _, st := range sequence.Steps() {
		if sequence.DotFilled(s, st) {
			b.WriteString(ui.DotFilled)
		} else {
			b.WriteString(ui.DotEmpty)
		}
	}
	return b.String()
}
