package stage

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Transition durations of the individual stages.
const (
	TitleFadeDuration   = 500 * time.Millisecond
	CircleEnterDuration = 500 * time.Millisecond
	CircleExitDuration  = 300 * time.Millisecond
	TextRevealDuration  = 500 * time.Millisecond
	ResetEnterDuration  = 300 * time.Millisecond

	// The active progress dot pulses for PulseDuration, then rests for
	// PulseRepeatDelay before pulsing again.
	PulseDuration    = 300 * time.Millisecond
	PulseRepeatDelay = 500 * time.Millisecond
	PulsePeak        = 1.2
)

// List items ride a spring with stiffness 300 and damping 24 (unit mass).
const (
	ItemStiffness = 300.0
	ItemDamping   = 24.0
)

// Distances, in terminal cells, that entering elements travel.
const (
	TitleSlide = 4
	ItemTravel = 6
)

// springSettled is how close to rest an item must be before frames stop.
const springSettled = 0.005

// Progress returns how far along a transition of length d that began at
// start is at now, clamped to [0, 1].
func Progress(start, now time.Time, d time.Duration) float64 {
	if start.IsZero() {
		return 0
	}
	if d <= 0 {
		return 1
	}
	p := float64(now.Sub(start)) / float64(d)
	return math.Max(0, math.Min(1, p))
}

// Ease is a cubic ease-out.
func Ease(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	u := 1 - t
	return 1 - u*u*u
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// PulseScale returns the active dot scale elapsed into its pulse cycle:
// 1 → PulsePeak → 1 over PulseDuration, then 1 for PulseRepeatDelay.
func PulseScale(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return 1
	}
	cycle := PulseDuration + PulseRepeatDelay
	in := elapsed % cycle
	if in >= PulseDuration {
		return 1
	}
	phase := float64(in) / float64(PulseDuration)
	return 1 + (PulsePeak-1)*math.Sin(math.Pi*phase)
}

// Blend mixes two colors in Lab space. It stands in for opacity, which a
// terminal cell doesn't have: t=0 is fully faded into from, t=1 is to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t >= 1 {
		return to
	}
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		// ANSI palette colors can't be mixed; snap halfway through.
		if t < 0.5 {
			return from
		}
		return to
	}
	return lipgloss.Color(a.BlendLab(b, math.Max(0, t)).Clamped().Hex())
}

// ItemSpring drives one list item from ItemTravel cells away to rest.
type ItemSpring struct {
	spring harmonica.Spring
	Pos    float64 // 1 = fully displaced, 0 = at rest
	Vel    float64
}

// NewItemSpring returns a displaced item spring stepping at fps.
func NewItemSpring(fps int) ItemSpring {
	if fps <= 0 {
		fps = 30
	}
	omega := math.Sqrt(ItemStiffness)
	zeta := ItemDamping / (2 * omega)
	return ItemSpring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		Pos:    1,
	}
}

// Step advances the spring by one frame toward rest.
func (s *ItemSpring) Step() {
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, 0)
	if s.Settled() {
		s.Pos, s.Vel = 0, 0
	}
}

// Settled reports whether the item is visually at rest.
func (s ItemSpring) Settled() bool {
	return math.Abs(s.Pos) < springSettled && math.Abs(s.Vel) < springSettled
}

// Offset is the item's current displacement in cells.
func (s ItemSpring) Offset() int {
	return int(math.Round(math.Max(0, s.Pos) * ItemTravel))
}

// Opacity maps displacement onto a 0..1 fade.
func (s ItemSpring) Opacity() float64 {
	return math.Max(0, math.Min(1, 1-s.Pos))
}

// RenderDisk draws a filled circle scaled by scale inside a fixed box of
// rows lines and 2*rows columns, so the layout never shifts while the
// circle grows or shrinks. Cells are roughly twice as tall as wide.
func RenderDisk(scale float64, rows int, glyph string) string {
	if rows <= 0 {
		return ""
	}
	cols := rows * 2
	r := float64(rows) / 2 * math.Max(0, math.Min(1, scale))

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		dy := float64(y) + 0.5 - float64(rows)/2
		for x := 0; x < cols; x++ {
			dx := (float64(x) + 0.5 - float64(cols)/2) / 2
			if r > 0 && dx*dx+dy*dy <= r*r {
				b.WriteString(glyph)
			} else {
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
