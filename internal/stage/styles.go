package stage

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

// Layout constants.
const (
	MaxCardWidth = 64
	MinCardWidth = 36
	DiskRows     = 5
	DiskGlyph    = "█"
)

// ColorHeadingText is the heading foreground on the page background.
const ColorHeadingText lipgloss.Color = "#1E293B"

// ColorButtonText is the play button label color.
const ColorButtonText lipgloss.Color = "#FFFFFF"

// Styles are the player's lipgloss styles, derived from the theme.
type Styles struct {
	Heading     lipgloss.Style
	Card        lipgloss.Style
	Title       lipgloss.Style
	Item        lipgloss.Style
	Text        lipgloss.Style
	PlayButton  lipgloss.Style
	ResetButton lipgloss.Style
	Status      lipgloss.Style

	// Raw colors for per-frame blending.
	Surface lipgloss.Color
	TextFg  lipgloss.Color
	Accent  lipgloss.Color
	Circle  lipgloss.Color
	DotIdle lipgloss.Color
}

// NewStyles builds the styles for a theme.
func NewStyles(theme config.ThemeConfig) Styles {
	accent := lipgloss.Color(theme.Accent)
	text := lipgloss.Color(theme.Text)

	return Styles{
		Heading: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Background)).
			Foreground(ColorHeadingText).
			Bold(true).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true),
		Item: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1),
		Text: lipgloss.NewStyle(),
		PlayButton: lipgloss.NewStyle().
			Background(accent).
			Foreground(ColorButtonText).
			Bold(true),
		ResetButton: lipgloss.NewStyle().
			Background(ui.ColorDarkSurface).
			Foreground(accent),
		Status: lipgloss.NewStyle().Foreground(ui.ColorMuted),

		Surface: ui.ColorDarkSurface,
		TextFg:  text,
		Accent:  accent,
		Circle:  lipgloss.Color(theme.Circle),
		DotIdle: ui.ColorMuted,
	}
}
