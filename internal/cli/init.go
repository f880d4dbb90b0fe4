package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/errors"
	"github.com/rileyhilliard/stagehand/internal/ui"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Title          string    // Title shown by the first stage
	Tick           string    // Interval between stages, as a duration string
	Settle         string    // Pause before a run starts, as a duration string
	Dir            string    // Directory to write into (default: current directory)
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Skip prompts, use defaults
	Out            io.Writer // Progress output (default: stdout)
}

// initDefaults are values picked up from the environment.
type initDefaults struct {
	Title          string
	Tick           string
	Settle         string
	NonInteractive bool
}

// getInitDefaults reads init values from the same variables that override
// config at load time, plus STAGEHAND_NON_INTERACTIVE and CI.
func getInitDefaults() initDefaults {
	return initDefaults{
		Title:          os.Getenv("STAGEHAND_CONTENT_TITLE"),
		Tick:           os.Getenv("STAGEHAND_TIMING_TICK"),
		Settle:         os.Getenv("STAGEHAND_TIMING_SETTLE"),
		NonInteractive: isTruthy(os.Getenv("STAGEHAND_NON_INTERACTIVE")) || isTruthy(os.Getenv("CI")),
	}
}

// mergeInitOptions fills unset options from the environment. Flags win.
func mergeInitOptions(opts InitOptions) InitOptions {
	defaults := getInitDefaults()

	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Tick == "" {
		opts.Tick = defaults.Tick
	}
	if opts.Settle == "" {
		opts.Settle = defaults.Settle
	}
	opts.NonInteractive = opts.NonInteractive || defaults.NonInteractive
	return opts
}

// Init creates a new .stagehand.yaml configuration file.
func Init(opts InitOptions) error {
	opts = mergeInitOptions(opts)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	title := opts.Title
	if title == "" {
		title = cfg.Content.Title
	}
	tick := opts.Tick
	if tick == "" {
		tick = cfg.Timing.Tick.String()
	}
	settle := opts.Settle
	if settle == "" {
		settle = cfg.Timing.Settle.String()
	}

	if !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Title").
					Description("Shown by the first stage").
					Value(&title).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("title is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Tick").
					Description("Time between stages").
					Placeholder("1s").
					Value(&tick).
					Validate(validateTickInput),
				huh.NewInput().
					Title("Settle").
					Description("Pause between pressing play and the first stage").
					Placeholder("300ms").
					Value(&settle).
					Validate(validateSettleInput),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
	}

	tickDur, err := parseDuration("tick", tick)
	if err != nil {
		return err
	}
	settleDur, err := parseDuration("settle", settle)
	if err != nil {
		return err
	}

	cfg.Content.Title = strings.TrimSpace(title)
	cfg.Timing.Tick = tickDur
	cfg.Timing.Settle = settleDur

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# stagehand configuration
# Run 'stagehand play' to play the sequence
# Any key can be overridden from the environment, e.g. STAGEHAND_TIMING_TICK=500ms

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  stagehand play     - Play the sequence")
	fmt.Fprintln(out, "  stagehand stages   - Show the stage table")

	return nil
}

func validateTickInput(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 1s or 500ms")
	}
	if d < config.MinTick || d > config.MaxTick {
		return fmt.Errorf("tick must be between %s and %s", config.MinTick, config.MaxTick)
	}
	return nil
}

func validateSettleInput(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 300ms")
	}
	if d < 0 || d > config.MaxSettle {
		return fmt.Errorf("settle must be between 0s and %s", config.MaxSettle)
	}
	return nil
}
