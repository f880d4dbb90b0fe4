package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo is what the headless banner shows.
type HeaderInfo struct {
	Version string // e.g. "v0.1.0"; omitted when empty
	Tagline string // the configured heading
	Config  string // config file path; omitted when running on defaults
}

// HeaderWidth is the length of the gradient rule under the banner.
const HeaderWidth = 50

// RenderHeader renders the banner printed before headless output.
func RenderHeader(info HeaderInfo) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).Render("stagehand"))
	if info.Version != "" {
		b.WriteString(" " + lipgloss.NewStyle().Foreground(ColorNeonCyan).Render(info.Version))
	}
	b.WriteByte('\n')

	if info.Tagline != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(info.Tagline) + "\n")
	}
	if info.Config != "" {
		b.WriteString(MutedStyle().Render("config: "+info.Config) + "\n")
	}

	b.WriteString(GradientRule(HeaderWidth) + "\n")
	return b.String()
}

// GradientRule draws a heavy horizontal rule shaded across GradientStops.
func GradientRule(width int) string {
	var b strings.Builder
	for _, c := range Gradient(width) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("━"))
	}
	return b.String()
}
