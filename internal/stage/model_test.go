package stage

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayer counts Play and Stop calls.
type fakePlayer struct {
	mu    sync.Mutex
	plays int
	stops int
	state sequence.PlaybackState
}

func (p *fakePlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
}

func (p *fakePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
}

func (p *fakePlayer) State() sequence.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *fakePlayer) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays, p.stops
}

// manualTime is a wall clock the test moves by hand.
type manualTime struct {
	t time.Time
}

func (m *manualTime) Now() time.Time          { return m.t }
func (m *manualTime) Advance(d time.Duration) { m.t = m.t.Add(d) }

func newTestModel(t *testing.T) (Model, *fakePlayer, *manualTime) {
	t.Helper()
	cfg := config.DefaultConfig()
	clk := &manualTime{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := OptionsFromConfig(cfg)
	opts.Now = clk.Now

	player := &fakePlayer{}
	return NewModel(player, opts), player, clk
}

// send applies msg and returns the updated model and command.
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runState builds a published snapshot.
func runState(rev uint64, playing bool, step sequence.Step) StateMsg {
	return StateMsg{State: sequence.PlaybackState{Playing: playing, Step: step, Revision: rev, RunID: "run-1"}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.False(t, m.State().Playing)
	assert.Equal(t, 30, m.opts.FPS)
	assert.Len(t, m.items, 3)
	assert.False(t, m.keys.Reset.Enabled())
	assert.Nil(t, m.Init(), "no autoplay")
}

func TestModel_IdleView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, config.DefaultHeading)
	assert.Contains(t, view, "Press p to play")
	assert.Contains(t, view, "Play Animation Sequence")
	assert.NotContains(t, view, config.DefaultTitle)
	assert.NotContains(t, view, ui.DotEmpty, "no progress dots while idle")
	assert.NotContains(t, view, "reset")
}

func TestModel_PlayKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		keyRunes("p"),
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace},
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			m, player, _ := newTestModel(t)

			_, cmd := send(m, k)
			require.NotNil(t, cmd)

			plays, _ := player.counts()
			assert.Equal(t, 0, plays, "Play runs inside the command, not in Update")

			assert.Nil(t, cmd())
			plays, _ = player.counts()
			assert.Equal(t, 1, plays)
		})
	}
}

func TestModel_Autoplay(t *testing.T) {
	player := &fakePlayer{}
	m := NewModel(player, Options{Autoplay: true, Content: config.DefaultConfig().Content})

	cmd := m.Init()
	require.NotNil(t, cmd)
	cmd()

	plays, _ := player.counts()
	assert.Equal(t, 1, plays)
}

func TestModel_ResetOnlyWhenVisible(t *testing.T) {
	m, player, _ := newTestModel(t)

	_, cmd := send(m, keyRunes("r"))
	assert.Nil(t, cmd, "reset is disabled while idle")

	m, _ = send(m, runState(1, true, sequence.StepText))
	_, cmd = send(m, keyRunes("r"))
	assert.Nil(t, cmd, "reset is disabled before the final step")

	m, _ = send(m, runState(2, true, sequence.StepComplete))
	assert.True(t, m.keys.Reset.Enabled())
	assert.Contains(t, m.View(), "Reset")
	assert.Contains(t, m.View(), "reset", "help lists the reset key")

	_, cmd = send(m, keyRunes("r"))
	require.NotNil(t, cmd)
	cmd()
	_, stops := player.counts()
	assert.Equal(t, 1, stops)

	m, _ = send(m, runState(3, false, sequence.StepComplete))
	assert.False(t, m.keys.Reset.Enabled())
	assert.NotContains(t, m.View(), "Reset")
}

func TestModel_DropsStaleSnapshots(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, runState(5, true, sequence.StepCircle))
	m, cmd := send(m, runState(4, true, sequence.StepList))

	assert.Nil(t, cmd)
	assert.Equal(t, sequence.StepCircle, m.State().Step)
	assert.Equal(t, uint64(5), m.State().Revision)

	m, _ = send(m, runState(5, false, sequence.StepCircle))
	assert.True(t, m.State().Playing, "same revision is a duplicate")
}

func TestModel_SettlingStartsSpinner(t *testing.T) {
	m, _, _ := newTestModel(t)

	msg := StateMsg{State: sequence.PlaybackState{Settling: true, Revision: 1}}
	m, cmd := send(m, msg)

	require.NotNil(t, cmd, "spinner tick")
	assert.Contains(t, m.View(), "Starting...")
	assert.False(t, m.ticking, "nothing moves while idle and settling")
}

func TestModel_TitleFadesIn(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, cmd := send(m, runState(1, true, sequence.StepTitle))
	require.NotNil(t, cmd)
	assert.True(t, m.ticking)
	assert.Equal(t, clk.Now(), m.entered[sequence.StepTitle])

	assert.Contains(t, m.View(), config.DefaultTitle)
	assert.NotContains(t, m.View(), "First item in sequence")

	clk.Advance(TitleFadeDuration)
	assert.Contains(t, m.View(), config.DefaultTitle)
}

func TestModel_ListItemsStagger(t *testing.T) {
	m, _, clk := newTestModel(t)
	items := config.DefaultItems()

	m, _ = send(m, runState(1, true, sequence.StepTitle))
	clk.Advance(time.Second)
	m, _ = send(m, runState(2, true, sequence.StepList))

	assert.NotContains(t, m.View(), items[0], "container fades in before the first item")

	clk.Advance(300 * time.Millisecond)
	view := m.View()
	assert.Contains(t, view, items[0])
	assert.NotContains(t, view, items[1])

	clk.Advance(300 * time.Millisecond)
	assert.Contains(t, m.View(), items[1])
	assert.NotContains(t, m.View(), items[2])

	// Run frames until every spring rests.
	for i := 0; i < 120; i++ {
		clk.Advance(time.Second / 30)
		var cmd tea.Cmd
		m, cmd = send(m, frameMsg(clk.Now()))
		require.NotNil(t, cmd, "frames continue while playing")
	}
	for i, spring := range m.items {
		assert.True(t, spring.Settled(), "item %d at rest", i)
		assert.Equal(t, 0, spring.Offset())
	}
	for _, item := range items {
		assert.Contains(t, m.View(), item)
	}
}

func TestModel_ListResetsOnNewRun(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, _ = send(m, runState(1, true, sequence.StepList))
	clk.Advance(2 * time.Second)
	for i := 0; i < 60; i++ {
		m, _ = send(m, frameMsg(clk.Now()))
	}
	require.True(t, m.items[0].Settled())

	m, _ = send(m, StateMsg{State: sequence.PlaybackState{Settling: true, Step: sequence.StepList, Revision: 2}})
	m, _ = send(m, runState(3, true, sequence.StepTitle))
	m, _ = send(m, runState(4, true, sequence.StepList))

	assert.Equal(t, 1.0, m.items[0].Pos, "springs start displaced again")
}

func TestModel_CircleExit(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, _ = send(m, runState(1, true, sequence.StepCircle))
	clk.Advance(CircleEnterDuration)
	assert.Contains(t, m.View(), DiskGlyph)

	// Play during the run: the circle shrinks away while settling.
	m, cmd := send(m, StateMsg{State: sequence.PlaybackState{Step: sequence.StepCircle, Settling: true, Revision: 2}})
	require.NotNil(t, cmd)
	assert.True(t, m.circleExiting(clk.Now()))
	assert.True(t, m.ticking)

	clk.Advance(CircleExitDuration / 3)
	assert.Contains(t, m.View(), DiskGlyph)

	clk.Advance(CircleExitDuration)
	assert.NotContains(t, m.View(), DiskGlyph)

	m, cmd = send(m, frameMsg(clk.Now()))
	assert.Nil(t, cmd, "frame loop ends once nothing moves")
	assert.False(t, m.ticking)
}

func TestModel_TextReveal(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, _ = send(m, runState(1, true, sequence.StepText))
	assert.NotContains(t, m.View(), "demonstrates", "zero height at entry")

	clk.Advance(TextRevealDuration)
	assert.Contains(t, m.View(), "demonstrates")
}

func TestModel_ProgressDots(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, _ = send(m, runState(1, true, sequence.StepCircle))
	clk.Advance(PulseDuration + 10*time.Millisecond)

	view := m.View()
	assert.Equal(t, 3, strings.Count(view, ui.DotFilled))
	assert.Equal(t, 2, strings.Count(view, ui.DotEmpty))
	assert.NotContains(t, view, ui.DotPulse)

	// Top of the next pulse.
	clk.Advance(PulseRepeatDelay - 10*time.Millisecond + PulseDuration/2)
	view = m.View()
	assert.Contains(t, view, ui.DotPulse)
	assert.Equal(t, 2, strings.Count(view, ui.DotFilled))

	m, _ = send(m, runState(2, false, sequence.StepCircle))
	assert.NotContains(t, m.View(), ui.DotEmpty, "dots only while playing")
}

func TestModel_PulseRestartsOnStep(t *testing.T) {
	m, _, clk := newTestModel(t)

	m, _ = send(m, runState(1, true, sequence.StepTitle))
	first := m.pulseAt

	clk.Advance(time.Second)
	m, _ = send(m, runState(2, true, sequence.StepList))
	assert.True(t, m.pulseAt.After(first))
}

func TestModel_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)

	m, _ = send(m, keyRunes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, _, _ := newTestModel(t)

			m, cmd := send(m, k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, MaxCardWidth, m.cardWidth())

	m, _ = send(m, tea.WindowSizeMsg{Width: 20, Height: 50})
	assert.Equal(t, MinCardWidth, m.cardWidth())

	m, _ = send(m, tea.WindowSizeMsg{Width: 50, Height: 50})
	assert.Equal(t, 46, m.cardWidth())
}

func TestModel_FullRunThroughController(t *testing.T) {
	m, _, clk := newTestModel(t)

	revs := []StateMsg{
		{State: sequence.PlaybackState{Settling: true, Revision: 1}},
		runState(2, true, sequence.StepTitle),
		runState(3, true, sequence.StepList),
		runState(4, true, sequence.StepCircle),
		runState(5, true, sequence.StepText),
		runState(6, true, sequence.StepComplete),
	}
	for _, msg := range revs {
		m, _ = send(m, msg)
		clk.Advance(time.Second)
	}

	view := m.View()
	assert.Contains(t, view, config.DefaultTitle)
	for _, item := range config.DefaultItems() {
		assert.Contains(t, view, item)
	}
	assert.Contains(t, view, DiskGlyph)
	assert.Contains(t, view, "Reset")
	assert.NotContains(t, view, "Starting...")
}
