package stage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/stagehand/internal/errors"
	"github.com/rileyhilliard/stagehand/internal/ui"
	"golang.org/x/term"
)

// RunOptions configures Run.
type RunOptions struct {
	Model Options

	// Headless forces line output even on a terminal.
	Headless bool

	// Loop is the number of headless runs.
	Loop int

	// LogFile receives log output while the TUI owns the screen. Without
	// one, logging is discarded for the lifetime of the TUI.
	LogFile string

	// Output is where headless output goes (default os.Stdout).
	Output io.Writer

	// Header is printed once before headless output.
	Header string
}

// Run plays the sequence interactively when stdout is a terminal and falls
// back to RunHeadless otherwise.
func Run(ctx context.Context, seq Sequencer, opts RunOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.Headless || !isTerminal(out) {
		width := 0
		if f, ok := out.(*os.File); ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				width = w
			}
		}
		if opts.Header != "" {
			fmt.Fprint(out, opts.Header)
		}
		return RunHeadless(ctx, seq, out, HeadlessOptions{
			Content: opts.Model.Content,
			Runs:    opts.Loop,
			Width:   width,
		})
	}

	if opts.Loop > 1 {
		ui.PrintWarning("--loop only applies to headless output; playing interactively")
	}

	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "stagehand")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Can't open log file "+opts.LogFile,
				"Check the directory exists and is writable")
		}
		defer f.Close()
	} else {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}

	program := tea.NewProgram(
		NewModel(seq, opts.Model),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	unsubscribe := seq.Subscribe(NewBridge(program).StateChanged)
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The player exited unexpectedly",
			"Try 'stagehand play --headless' for line output")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
