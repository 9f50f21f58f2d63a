// Package main provides the entry point for the git-commit-aider MCP server.
package main

import (
	"context"
	"os"

	"github.com/MrOrz/git-commit-aider/internal/cli"
	"github.com/MrOrz/git-commit-aider/internal/signal"
)

// Build information set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%d)"
//
//nolint:gochecknoglobals // Set at build time
var (
	version string
	commit  string
	date    string
)

func main() {
	h := signal.NewHandler(context.Background())
	defer h.Stop()

	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(h.Context(), info); err != nil {
		select {
		case <-h.Interrupted():
			// Conventional exit status for SIGINT.
			os.Exit(130)
		default:
		}
		os.Exit(cli.ExitError)
	}
}
