package stage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/errors"
	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

// Sequencer is a Player that also publishes snapshots.
type Sequencer interface {
	Player
	Subscribe(l sequence.Listener) func()
}

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	Content config.ContentConfig

	// Runs is how many runs to play back to back (at least one).
	Runs int

	// Width wraps the stage text; 0 means no wrapping.
	Width int

	// Now overrides the wall clock used for stage offsets (tests).
	Now func() time.Time
}

// headlessBuffer holds every snapshot that can be published between two
// reads: a run publishes at most StepCount+1 times and Play is only called
// once the previous run has gone quiet.
const headlessBuffer = 4 * sequence.StepCount

// RunHeadless plays opts.Runs runs on seq and narrates each stage to w, one
// line per event. It returns ctx.Err() if ctx is cancelled mid-run, after
// stopping the run.
func RunHeadless(ctx context.Context, seq Sequencer, w io.Writer, opts HeadlessOptions) error {
	if opts.Runs < 1 {
		opts.Runs = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	states := make(chan sequence.PlaybackState, headlessBuffer)
	done := make(chan struct{})
	defer close(done)

	unsubscribe := seq.Subscribe(func(s sequence.PlaybackState) {
		select {
		case states <- s:
		case <-done:
		}
	})
	defer unsubscribe()

	h := &headless{
		pd:       ui.NewPhaseDisplay(w),
		opts:     opts,
		states:   states,
		revision: seq.State().Revision,
	}

	started := opts.Now()
	for run := 1; run <= opts.Runs; run++ {
		if run > 1 {
			h.pd.Divider()
		}
		h.pd.RenderProgress(fmt.Sprintf("Run %d/%d settling", run, opts.Runs))
		before := seq.State().Revision
		seq.Play()
		if seq.State().Revision == before {
			// Play publishes synchronously unless the sequencer is closed.
			return errors.New(errors.ErrSequence,
				"The sequencer is closed",
				"Create a new player for each session")
		}

		if err := h.await(ctx, seq); err != nil {
			return err
		}
	}

	if opts.Runs > 1 {
		h.pd.RenderSuccess(fmt.Sprintf("%d runs complete", opts.Runs), opts.Now().Sub(started))
	}
	return nil
}

type headless struct {
	pd       *ui.PhaseDisplay
	opts     HeadlessOptions
	states   <-chan sequence.PlaybackState
	revision uint64
}

// await narrates one run until it completes or is stopped.
func (h *headless) await(ctx context.Context, seq Sequencer) error {
	var (
		runStart time.Time
		last     sequence.PlaybackState
		running  bool
	)

	for {
		select {
		case <-ctx.Done():
			seq.Stop()
			reason := "before start"
			if running {
				reason = "at " + last.Step.Label()
			}
			h.pd.RenderSkipped("Run interrupted", reason)
			return ctx.Err()

		case s := <-h.states:
			if s.Revision <= h.revision {
				continue
			}
			h.revision = s.Revision

			switch {
			case s.Playing && (!running || s.Step != last.Step):
				if !running {
					runStart = h.opts.Now()
					running = true
					h.pd.RenderSubStatus(ui.SymbolPending, "run "+s.RunID)
				}
				last = s
				h.pd.RenderReached(s.Step.Label(), h.opts.Now().Sub(runStart))
				h.narrate(s.Step)

				if s.Step == sequence.StepComplete {
					h.pd.RenderSuccess("Run complete", h.opts.Now().Sub(runStart))
					return nil
				}

			case !s.Playing && running:
				h.pd.RenderSkipped("Run stopped", "at "+last.Step.Label())
				return nil

			case !s.Playing && !s.Settling:
				// Stopped before the settle delay ran out.
				h.pd.RenderSkipped("Run stopped", "before start")
				return nil
			}
		}
	}
}

// narrate prints the content a stage reveals.
func (h *headless) narrate(st sequence.Step) {
	c := h.opts.Content
	switch st {
	case sequence.StepTitle:
		h.pd.RenderSubStatus("┃", c.Title)
	case sequence.StepList:
		for _, item := range c.Items {
			h.pd.RenderSubStatus("•", item)
		}
	case sequence.StepCircle:
		h.pd.RenderSubStatus(ui.DotFilled, "circle")
	case sequence.StepText:
		text := c.Text
		if h.opts.Width > 4 {
			text = lipgloss.NewStyle().Width(h.opts.Width - 4).Render(text)
		}
		for _, line := range strings.Split(text, "\n") {
			h.pd.RenderSubStatus(" ", strings.TrimRight(line, " "))
		}
	case sequence.StepComplete:
		h.pd.RenderSubStatus(ui.SymbolSuccess, c.ResetLabel+" available")
	}
}
