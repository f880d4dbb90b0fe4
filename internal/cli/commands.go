package cli

import (
	"github.com/rileyhilliard/stagehand/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	playFlags          PlayOptions
	initForce          bool
	initNonInteractive bool
	initFlags          InitOptions
)

// playCmd starts the interactive player
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the animation sequence",
	Long: `Start the interactive player. Press p (or enter) to play the sequence
from the top; once the last stage is showing, press r to reset.

When stdout isn't a terminal, or with --headless, the sequence is
narrated one line per stage instead.

Keyboard shortcuts:
  p / Enter / Space  Play from the start
  r                  Reset (after the final stage)
  ?                  Toggle help
  q / Ctrl+C         Quit

Examples:
  stagehand play
  stagehand play --autoplay
  stagehand play --headless --loop 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCommand(cmd.Context(), playFlags)
	},
}

// stagesCmd prints the visibility table
var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show which stages are visible in every playback state",
	Long: `Print the stage visibility table over every playback state, together
with the configured timing.

Examples:
  stagehand stages
  stagehand stages --config demo.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stagesCommand(cmd.OutOrStdout())
	},
}

// initCmd creates a new .stagehand.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .stagehand.yaml configuration",
	Long: `Create a .stagehand.yaml file in the current directory.

Prompts for the title and timing unless --non-interactive is set (or CI
is detected). Values can also come from STAGEHAND_CONTENT_TITLE,
STAGEHAND_TIMING_TICK and STAGEHAND_TIMING_SETTLE.

Examples:
  stagehand init
  stagehand init --non-interactive --tick 500ms
  stagehand init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initFlags
		opts.Overwrite = initForce
		opts.NonInteractive = initNonInteractive
		opts.Out = cmd.OutOrStdout()
		return Init(opts)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for stagehand.

Examples:
  # Bash
  stagehand completion bash > /etc/bash_completion.d/stagehand

  # Zsh
  stagehand completion zsh > "${fpath[1]}/_stagehand"

  # Fish
  stagehand completion fish > ~/.config/fish/completions/stagehand.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// play command flags
	playCmd.Flags().BoolVar(&playFlags.Headless, "headless", false, "narrate stages line by line instead of the TUI")
	playCmd.Flags().BoolVar(&playFlags.Autoplay, "autoplay", false, "start a run immediately")
	playCmd.Flags().IntVar(&playFlags.Loop, "loop", 1, "number of back-to-back runs in headless mode")
	playCmd.Flags().StringVar(&playFlags.LogFile, "log-file", "", "write logs here while the TUI is running")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use defaults")
	initCmd.Flags().StringVar(&initFlags.Title, "title", "", "title shown by the first stage")
	initCmd.Flags().StringVar(&initFlags.Tick, "tick", "", "interval between stages (e.g., 1s, 500ms)")
	initCmd.Flags().StringVar(&initFlags.Settle, "settle", "", "pause before a run starts (e.g., 300ms)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
