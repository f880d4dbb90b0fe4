package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/stagehand/internal/clock"
	"github.com/rileyhilliard/stagehand/internal/config"
	"github.com/rileyhilliard/stagehand/internal/logger"
	"github.com/rileyhilliard/stagehand/internal/sequence"
	"github.com/rileyhilliard/stagehand/internal/stage"
	"github.com/rileyhilliard/stagehand/internal/ui"
)

// PlayOptions holds options for the play command.
type PlayOptions struct {
	Headless bool   // Narrate line by line even on a terminal
	Autoplay bool   // Start a run as soon as the player opens
	Loop     int    // Headless runs to play back to back
	LogFile  string // Log destination while the TUI owns the screen

	// Output receives headless output (default os.Stdout).
	Output io.Writer
}

// playCommand loads config, builds the controller and hands both to the player.
func playCommand(ctx context.Context, opts PlayOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := newController(cfg)
	defer ctrl.Close()

	model := stage.OptionsFromConfig(cfg)
	model.Autoplay = opts.Autoplay

	err = stage.Run(ctx, ctrl, stage.RunOptions{
		Model:    model,
		Headless: opts.Headless,
		Loop:     opts.Loop,
		LogFile:  config.ExpandPath(opts.LogFile),
		Output:   opts.Output,
		Header: ui.RenderHeader(ui.HeaderInfo{
			Version: formatVersion(currentBuild().Version),
			Tagline: cfg.Content.Heading,
			Config:  path,
		}),
	})
	if err != nil && ctx.Err() != nil {
		// Ctrl+C is how a headless loop ends.
		return nil
	}
	return err
}

// loadConfig finds, loads and validates the config, then applies its color mode.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(config.ExpandPath(cfgFile))
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}

	if noColor {
		ui.DisableColors()
	} else {
		ui.ApplyColorMode(cfg.Output.Color)
	}
	return cfg, path, nil
}

func newController(cfg *config.Config) *sequence.Controller {
	return sequence.NewController(clock.New(),
		sequence.WithTiming(sequence.Timing{
			Settle: cfg.Timing.Settle,
			Tick:   cfg.Timing.Tick,
		}),
		sequence.WithLogger(logger.NewEnvLogger("[sequence]")),
	)
}
