// Command stagehand plays a five-stage animation sequence in the terminal.
package main

import (
	"github.com/rileyhilliard/stagehand/internal/cli"
)

// Set at release time:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%FT%TZ)" ./cmd/stagehand
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
