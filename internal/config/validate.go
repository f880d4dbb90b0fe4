package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/stagehand/internal/errors"
)

// Timing bounds. Ticks faster than MinTick turn the sequence into a flicker.
const (
	MinTick   = 100 * time.Millisecond
	MaxTick   = time.Minute
	MaxSettle = 10 * time.Second
	MinFPS    = 1
	MaxFPS    = 120
)

// ValidColorModes lists the accepted output.color values.
var ValidColorModes = []string{"auto", "always", "never"}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but stagehand only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade stagehand or lower the version in .stagehand.yaml.")
	}

	if err := validateTiming(cfg.Timing); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'timing' section in your .stagehand.yaml.")
	}

	if err := validateContent(cfg.Content); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'content' section in your .stagehand.yaml.")
	}

	if err := validateTheme(cfg.Theme); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'theme' section in your .stagehand.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .stagehand.yaml.")
	}

	return nil
}

func validateTiming(t TimingConfig) error {
	if t.Tick < MinTick {
		return fmt.Errorf("timing.tick must be at least %s, got %s", MinTick, t.Tick)
	}
	if t.Tick > MaxTick {
		return fmt.Errorf("timing.tick must be at most %s, got %s", MaxTick, t.Tick)
	}
	if t.Settle < 0 {
		return fmt.Errorf("timing.settle can't be negative, got %s", t.Settle)
	}
	if t.Settle > MaxSettle {
		return fmt.Errorf("timing.settle must be at most %s, got %s", MaxSettle, t.Settle)
	}
	if t.Stagger < 0 {
		return fmt.Errorf("timing.stagger can't be negative, got %s", t.Stagger)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("content.title can't be empty")
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("content.items needs at least one entry")
	}
	for i, item := range c.Items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("content.items has an empty entry at position %d", i)
		}
	}
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("content.text can't be empty")
	}
	return nil
}

func validateTheme(t ThemeConfig) error {
	colors := []struct {
		key   string
		value string
	}{
		{"theme.background", t.Background},
		{"theme.accent", t.Accent},
		{"theme.circle", t.Circle},
		{"theme.text", t.Text},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if !IsValidColor(c.value) {
			return fmt.Errorf("%s '%s' isn't a color - use #RRGGBB or an ANSI number 0-255", c.key, c.value)
		}
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	if !isValidColorMode(o.Color) {
		return fmt.Errorf("output.color '%s' isn't valid - use one of: %s", o.Color, strings.Join(ValidColorModes, ", "))
	}
	if o.FPS < MinFPS || o.FPS > MaxFPS {
		return fmt.Errorf("output.fps must be between %d and %d, got %d", MinFPS, MaxFPS, o.FPS)
	}
	return nil
}

// IsValidColor reports whether s is a hex color or an ANSI palette index.
func IsValidColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

func isValidColorMode(mode string) bool {
	for _, m := range ValidColorModes {
		if mode == m {
			return true
		}
	}
	return false
}
