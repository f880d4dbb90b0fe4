package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/stagehand/internal/errors"
)

// parseDuration parses a duration flag or prompt answer.
// Returns zero duration if the value is empty.
func parseDuration(name, value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid %s", value, name),
			"Try something like 1s, 500ms, or 2s.")
	}
	return d, nil
}

// isTruthy reads boolean-ish environment values.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
