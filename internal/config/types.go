package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .stagehand.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Timing  TimingConfig  `yaml:"timing" mapstructure:"timing"`
	Content ContentConfig `yaml:"content" mapstructure:"content"`
	Theme   ThemeConfig   `yaml:"theme" mapstructure:"theme"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// TimingConfig controls the sequence clock.
type TimingConfig struct {
	// Settle is the pause between tearing down a run and starting the next one.
	Settle time.Duration `yaml:"settle" mapstructure:"settle"`

	// Tick is the interval between step advances.
	Tick time.Duration `yaml:"tick" mapstructure:"tick"`

	// Stagger is the delay between list items entering.
	Stagger time.Duration `yaml:"stagger" mapstructure:"stagger"`
}

// MarshalYAML writes durations as strings ("300ms") instead of nanoseconds.
func (t TimingConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Settle  string `yaml:"settle"`
		Tick    string `yaml:"tick"`
		Stagger string `yaml:"stagger"`
	}{
		Settle:  t.Settle.String(),
		Tick:    t.Tick.String(),
		Stagger: t.Stagger.String(),
	}, nil
}

// ContentConfig holds the text shown by each stage.
type ContentConfig struct {
	// Heading sits above the card and is always visible.
	Heading string `yaml:"heading" mapstructure:"heading"`

	// Title fades in at step 0.
	Title string `yaml:"title" mapstructure:"title"`

	// Items are revealed one after another at step 1.
	Items []string `yaml:"items" mapstructure:"items"`

	// Text is revealed at step 3.
	Text string `yaml:"text" mapstructure:"text"`

	// PlayLabel and ResetLabel are the button captions.
	PlayLabel  string `yaml:"play_label" mapstructure:"play_label"`
	ResetLabel string `yaml:"reset_label" mapstructure:"reset_label"`
}

// ThemeConfig holds the player colors (hex "#RRGGBB" or ANSI "0"-"255").
type ThemeConfig struct {
	Background string `yaml:"background" mapstructure:"background"`
	Accent     string `yaml:"accent" mapstructure:"accent"`
	Circle     string `yaml:"circle" mapstructure:"circle"`
	Text       string `yaml:"text" mapstructure:"text"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// FPS is the animation frame rate of the interactive player.
	FPS int `yaml:"fps" mapstructure:"fps"`
}

// Default content shown when no config file overrides it.
const (
	DefaultHeading = "Sequential Animations"
	DefaultTitle   = "Welcome to Animation Sequence"
	DefaultText    = "This demonstrates how to chain animations in sequence. Each stage is " +
		"gated on a step counter that a single timer advances once per second, " +
		"so stages reveal in order and stay visible until the run is reset."
)

// DefaultItems returns the three default list entries.
func DefaultItems() []string {
	return []string{
		"First item in sequence",
		"Second item in sequence",
		"Third item in sequence",
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Timing: TimingConfig{
			Settle:  300 * time.Millisecond,
			Tick:    time.Second,
			Stagger: 300 * time.Millisecond,
		},
		Content: ContentConfig{
			Heading:    DefaultHeading,
			Title:      DefaultTitle,
			Items:      DefaultItems(),
			Text:       DefaultText,
			PlayLabel:  "Play Animation Sequence",
			ResetLabel: "Reset",
		},
		Theme: ThemeConfig{
			Background: "#6DE1D2",
			Accent:     "#9333EA",
			Circle:     "#A855F7",
			Text:       "#475569",
		},
		Output: OutputConfig{
			Color: "auto",
			FPS:   30,
		},
	}
}
