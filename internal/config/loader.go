package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/stagehand/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".stagehand.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/stagehand"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix is the prefix for environment overrides (STAGEHAND_TIMING_TICK=500ms).
	EnvPrefix = "STAGEHAND"
)

// Load reads the YAML file at path. Keys it leaves out keep their defaults,
// and STAGEHAND_* variables win over both.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'stagehand init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find returns the config file to use, or "" when there is none.
// An explicit path (--config) must exist; otherwise the first existing entry
// of searchPaths wins.
func Find(explicit string) (string, error) {
	if explicit != "" {
		_, err := os.Stat(explicit)
		switch {
		case err == nil:
			return explicit, nil
		case os.IsNotExist(err):
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		default:
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	home, _ := os.UserHomeDir()

	for _, candidate := range searchPaths(cwd, home) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// searchPaths lists config candidates in priority order: cwd, then each
// parent up to the enclosing git root (inclusive) without climbing to home,
// then the global file under home.
func searchPaths(cwd, home string) []string {
	paths := []string{filepath.Join(cwd, ConfigFileName)}

	for dir := cwd; !isGitRoot(dir); {
		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			break
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, ConfigFileName))
	}

	if home != "" {
		paths = append(paths, filepath.Join(home, GlobalConfigDir, GlobalConfigFile))
	}
	return paths
}

// LoadOrDefault loads config from the found path, or returns defaults
// (with environment overrides applied) if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper layers STAGEHAND_* variables over the registered defaults.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// parseConfig decodes v into a Config. source names the input in errors.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()
	// Items come from viper defaults; a partial list must not merge with them.
	cfg.Content.Items = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	return cfg, nil
}

// setDefaults registers every key so env overrides and partial files merge
// over DefaultConfig.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("timing.settle", d.Timing.Settle.String())
	v.SetDefault("timing.tick", d.Timing.Tick.String())
	v.SetDefault("timing.stagger", d.Timing.Stagger.String())
	v.SetDefault("content.heading", d.Content.Heading)
	v.SetDefault("content.title", d.Content.Title)
	v.SetDefault("content.items", d.Content.Items)
	v.SetDefault("content.text", d.Content.Text)
	v.SetDefault("content.play_label", d.Content.PlayLabel)
	v.SetDefault("content.reset_label", d.Content.ResetLabel)
	v.SetDefault("theme.background", d.Theme.Background)
	v.SetDefault("theme.accent", d.Theme.Accent)
	v.SetDefault("theme.circle", d.Theme.Circle)
	v.SetDefault("theme.text", d.Theme.Text)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.fps", d.Output.FPS)
}

// isGitRoot reports whether dir holds a .git entry. Worktrees and
// submodules use a .git file, so either kind counts.
func isGitRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
