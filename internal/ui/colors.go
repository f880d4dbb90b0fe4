package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Accents.
const (
	ColorNeonPink    lipgloss.Color = "#FF2E97"
	ColorNeonCyan    lipgloss.Color = "#00F0FF"
	ColorDarkSurface lipgloss.Color = "#1A1033"
	ColorGlassBorder lipgloss.Color = "#3D2F5B"
)

// Status and text.
const (
	ColorSuccess   lipgloss.Color = "#4ADE80"
	ColorWarning   lipgloss.Color = "#FBBF24"
	ColorPrimary   lipgloss.Color = "#E2E8F0"
	ColorSecondary lipgloss.Color = "#818CF8"
	ColorMuted     lipgloss.Color = "#64748B"
)

// GradientStops run purple to cyan; Gradient interpolates between them.
var GradientStops = []lipgloss.Color{"#9333EA", "#A855F7", "#818CF8", "#22D3EE"}

// Gradient spreads n colors evenly across GradientStops, blending in Lab
// space so the midpoints don't go muddy.
func Gradient(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}

	stops := make([]colorful.Color, len(GradientStops))
	for i, c := range GradientStops {
		stops[i], _ = colorful.Hex(string(c))
	}
	if n == 1 {
		return []lipgloss.Color{GradientStops[0]}
	}

	out := make([]lipgloss.Color, n)
	segments := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		c := stops[seg].BlendLab(stops[seg+1], pos-float64(seg))
		switch pos - float64(seg) {
		case 0:
			c = stops[seg]
		case 1:
			c = stops[seg+1]
		}
		out[i] = lipgloss.Color(c.Clamped().Hex())
	}
	return out
}

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// WarningStyle renders warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// warnOut is swapped in tests.
var warnOut io.Writer = os.Stderr

// PrintWarning writes a styled warning line to stderr.
func PrintWarning(msg string) {
	fmt.Fprintf(warnOut, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}

// DisableColors switches lipgloss to plain ASCII output (--no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorMode sets the lipgloss profile from an output.color value.
// "auto" keeps whatever lipgloss detected.
func ApplyColorMode(mode string) {
	switch mode {
	case "never":
		DisableColors()
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
