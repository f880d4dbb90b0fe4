package stage

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

// ResetPadding is the reset button's horizontal padding at full scale.
const ResetPadding = 3

// View renders the player.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	now := m.now()
	sections := []string{
		m.styles.Heading.Render(m.opts.Content.Heading),
		"",
		m.renderCard(now),
		"",
		m.renderButtons(now),
	}

	if m.state.Settling {
		sections = append(sections, "", m.spinner.View()+" "+m.styles.Status.Render("Starting..."))
	}

	if sequence.ProgressVisible(m.state) {
		sections = append(sections, "", m.renderDots(now))
	}

	sections = append(sections, "", m.help.View(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		out = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
	}
	return out
}

// cardWidth is the outer card width, border included.
func (m Model) cardWidth() int {
	if m.width <= 0 {
		return MaxCardWidth
	}
	w := m.width - 4
	if w > MaxCardWidth {
		w = MaxCardWidth
	}
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

func (m Model) innerWidth() int {
	return m.cardWidth() - 2 - m.styles.Card.GetHorizontalPadding()
}

func (m Model) renderCard(now time.Time) string {
	inner := m.innerWidth()

	var blocks []string
	if s := m.renderTitle(now, inner); s != "" {
		blocks = append(blocks, s)
	}
	if s := m.renderList(now, inner); s != "" {
		blocks = append(blocks, s)
	}
	if s := m.renderCircle(now, inner); s != "" {
		blocks = append(blocks, s)
	}
	if s := m.renderText(now, inner); s != "" {
		blocks = append(blocks, s)
	}

	if len(blocks) == 0 {
		hint := m.styles.Status.Render("Press p to play")
		blocks = append(blocks, lipgloss.PlaceHorizontal(inner, lipgloss.Center, hint))
	}

	return m.styles.Card.Width(m.cardWidth() - 2).Render(strings.Join(blocks, "\n\n"))
}

// renderTitle fades the title in while it slides into place.
func (m Model) renderTitle(now time.Time, inner int) string {
	if !sequence.Visible(m.state, sequence.StepTitle) {
		return ""
	}
	p := Ease(Progress(m.entered[sequence.StepTitle], now, TitleFadeDuration))
	slide := int(math.Round((1 - p) * TitleSlide))

	title := m.styles.Title.
		Foreground(Blend(m.styles.Surface, m.styles.TextFg, p)).
		Render(m.opts.Content.Title)
	return lipgloss.PlaceHorizontal(inner, lipgloss.Center, strings.Repeat(" ", slide)+title)
}

// renderList keeps a line per item as soon as the container is visible;
// items that haven't started yet render blank.
func (m Model) renderList(now time.Time, inner int) string {
	if !sequence.Visible(m.state, sequence.StepList) {
		return ""
	}

	lines := make([]string, len(m.opts.Content.Items))
	for i, item := range m.opts.Content.Items {
		if i >= len(m.items) || now.Before(m.itemStart(i)) {
			continue
		}
		spring := m.items[i]
		opacity := spring.Opacity()
		style := m.styles.Item.
			Foreground(Blend(m.styles.Surface, m.styles.TextFg, opacity)).
			BorderForeground(Blend(m.styles.Surface, m.styles.Accent, opacity)).
			MaxWidth(inner - ItemTravel)
		lines[i] = strings.Repeat(" ", spring.Offset()) + style.Render(item)
	}
	return strings.Join(lines, "\n")
}

// renderCircle grows the circle on entry and shrinks it on exit.
func (m Model) renderCircle(now time.Time, inner int) string {
	var scale float64
	switch {
	case sequence.Visible(m.state, sequence.StepCircle):
		scale = Ease(Progress(m.entered[sequence.StepCircle], now, CircleEnterDuration))
	case m.circleExiting(now):
		scale = 1 - Ease(Progress(m.circleExitAt, now, CircleExitDuration))
	default:
		return ""
	}

	disk := lipgloss.NewStyle().
		Foreground(Blend(m.styles.Surface, m.styles.Circle, scale)).
		Render(RenderDisk(scale, DiskRows, DiskGlyph))
	return lipgloss.PlaceHorizontal(inner, lipgloss.Center, disk)
}

// renderText reveals the wrapped text line by line, top down.
func (m Model) renderText(now time.Time, inner int) string {
	if !sequence.Visible(m.state, sequence.StepText) {
		return ""
	}
	p := Ease(Progress(m.entered[sequence.StepText], now, TextRevealDuration))

	wrapped := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(m.opts.Content.Text)
	lines := strings.Split(wrapped, "\n")
	shown := int(math.Ceil(p * float64(len(lines))))
	if shown == 0 {
		return ""
	}

	return m.styles.Text.
		Foreground(Blend(m.styles.Surface, m.styles.TextFg, p)).
		Render(strings.Join(lines[:shown], "\n"))
}

func (m Model) renderButtons(now time.Time) string {
	play := m.styles.PlayButton.Padding(0, 2).Render(m.opts.Content.PlayLabel)
	if !sequence.ResetVisible(m.state) {
		return play
	}

	p := Ease(Progress(m.resetAt, now, ResetEnterDuration))
	pad := int(math.Round(Lerp(0.8, 1, p) * ResetPadding))
	reset := m.styles.ResetButton.
		Foreground(Blend(m.styles.Surface, m.styles.Accent, p)).
		Padding(0, pad).
		Render(m.opts.Content.ResetLabel)

	return lipgloss.JoinHorizontal(lipgloss.Center, play, "  ", reset)
}

func (m Model) renderDots(now time.Time) string {
	dots := make([]string, 0, sequence.StepCount)
	for _, st := range sequence.Steps() {
		glyph, color := ui.DotEmpty, m.styles.DotIdle
		if sequence.DotFilled(m.state, st) {
			glyph, color = ui.DotFilled, m.styles.Circle
		}
		if sequence.DotActive(m.state, st) && PulseScale(now.Sub(m.pulseAt)) > 1.1 {
			glyph = ui.DotPulse
		}
		dots = append(dots, lipgloss.NewStyle().Foreground(color).Render(glyph))
	}
	return strings.Join(dots, " ")
}
