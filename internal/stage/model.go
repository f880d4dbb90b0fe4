package stage

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

// Player is the part of the sequence controller the model drives.
type Player interface {
	Play()
	Stop()
	State() sequence.PlaybackState
}

// Options configures the player model.
type Options struct {
	Content config.ContentConfig
	Theme   config.ThemeConfig

	// Stagger is the delay between list items entering.
	Stagger time.Duration

	// FPS is the frame rate of enter/exit transitions.
	FPS int

	// Autoplay starts a run as soon as the program starts.
	Autoplay bool

	// Now overrides the wall clock (tests).
	Now func() time.Time
}

// OptionsFromConfig maps a loaded config onto model options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Content: cfg.Content,
		Theme:   cfg.Theme,
		Stagger: cfg.Timing.Stagger,
		FPS:     cfg.Output.FPS,
	}
}

// Model is the Bubble Tea model for the interactive player.
type Model struct {
	player  Player
	opts    Options
	styles  Styles
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	now     func() time.Time

	state sequence.PlaybackState

	// Transition timestamps. entered[i] is zero while stage i is hidden.
	entered      [sequence.StepCount]time.Time
	circleExitAt time.Time
	resetAt      time.Time
	pulseAt      time.Time
	items        []ItemSpring

	ticking  bool
	width    int
	quitting bool
}

// NewModel creates a player model showing the player's current state.
func NewModel(player Player, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		player:  player,
		opts:    opts,
		styles:  NewStyles(opts.Theme),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: ui.NewSpinner(ui.ColorSecondary),
		now:     opts.Now,
		state:   player.State(),
	}

	now := m.now()
	for _, st := range sequence.VisibleStages(m.state) {
		m.entered[st] = now
	}
	m.resetItems()
	m.keys.Reset.SetEnabled(sequence.ResetVisible(m.state))
	return m
}

// Init starts a run immediately when autoplay is set.
func (m Model) Init() tea.Cmd {
	if m.opts.Autoplay {
		return m.playCmd()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case StateMsg:
		cmd := m.applyState(msg.State)
		return m, cmd

	case frameMsg:
		cmd := m.advanceFrame()
		return m, cmd

	case spinner.TickMsg:
		// Letting the tick drop ends the spinner loop once settled.
		if !m.state.Settling {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// State returns the last snapshot the model applied.
func (m Model) State() sequence.PlaybackState {
	return m.state
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.Play):
		return m.playCmd()

	case key.Matches(msg, m.keys.Reset):
		// Only enabled while the reset control is visible.
		return m.stopCmd()
	}
	return nil
}

// playCmd and stopCmd run off the event loop: the controller answers
// synchronously through the Bridge, which needs the loop to be free.
func (m Model) playCmd() tea.Cmd {
	player := m.player
	return func() tea.Msg {
		player.Play()
		return nil
	}
}

func (m Model) stopCmd() tea.Cmd {
	player := m.player
	return func() tea.Msg {
		player.Stop()
		return nil
	}
}

// applyState diffs next against the current snapshot and timestamps every
// visibility change so the view can animate it.
func (m *Model) applyState(next sequence.PlaybackState) tea.Cmd {
	if next.Revision <= m.state.Revision {
		return nil
	}

	now := m.now()
	prev := m.state
	m.state = next

	for _, st := range sequence.Steps() {
		was, is := sequence.Visible(prev, st), sequence.Visible(next, st)
		switch {
		case !was && is:
			m.entered[st] = now
			if st == sequence.StepList {
				m.resetItems()
			}
			if st == sequence.StepCircle {
				m.circleExitAt = time.Time{}
			}
		case was && !is:
			m.entered[st] = time.Time{}
			if st == sequence.StepCircle {
				m.circleExitAt = now
			}
		}
	}

	if !sequence.ResetVisible(prev) && sequence.ResetVisible(next) {
		m.resetAt = now
	}
	m.keys.Reset.SetEnabled(sequence.ResetVisible(next))

	if next.Playing && (!prev.Playing || prev.Step != next.Step) {
		m.pulseAt = now
	}

	var cmds []tea.Cmd
	if next.Settling && !prev.Settling {
		cmds = append(cmds, m.spinner.Tick)
	}
	cmds = append(cmds, m.startFrames(now))
	return tea.Batch(cmds...)
}

func (m *Model) resetItems() {
	m.items = make([]ItemSpring, len(m.opts.Content.Items))
	for i := range m.items {
		m.items[i] = NewItemSpring(m.opts.FPS)
	}
}

// itemStart is when item i begins to move: the list container fades in
// for one stagger interval, then items follow one stagger apart.
func (m Model) itemStart(i int) time.Time {
	return m.entered[sequence.StepList].Add(time.Duration(i+1) * m.opts.Stagger)
}

// animating reports whether anything on screen still changes over time.
// The active progress dot pulses for as long as a run is playing.
func (m Model) animating(now time.Time) bool {
	if m.state.Playing {
		return true
	}
	return m.circleExiting(now)
}

func (m Model) circleExiting(now time.Time) bool {
	return !m.circleExitAt.IsZero() && Progress(m.circleExitAt, now, CircleExitDuration) < 1
}

// startFrames starts the frame loop unless one is already running.
func (m *Model) startFrames(now time.Time) tea.Cmd {
	if m.ticking || !m.animating(now) {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// advanceFrame steps the item springs and keeps the loop alive while
// something is still moving.
func (m *Model) advanceFrame() tea.Cmd {
	now := m.now()

	if sequence.Visible(m.state, sequence.StepList) {
		for i := range m.items {
			if !now.Before(m.itemStart(i)) {
				m.items[i].Step()
			}
		}
	}

	if !m.animating(now) {
		m.ticking = false
		return nil
	}
	return m.frameCmd()
}
