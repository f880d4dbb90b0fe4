package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return unchanged if we can't get home
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ExpandPath resolves a user-supplied path (--config, --log-file):
// ${HOME} and a leading ~ become the home directory.
func ExpandPath(path string) string {
	if strings.Contains(path, "${HOME}") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.ReplaceAll(path, "${HOME}", home)
		}
	}
	return ExpandTilde(path)
}
