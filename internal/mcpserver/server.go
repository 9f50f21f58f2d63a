// Package mcpserver hosts the MCP stdio server for git-commit-aider.
// It owns protocol framing and tool declaration; the commit semantics live
// in internal/git.
package mcpserver

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/MrOrz/git-commit-aider/internal/config"
	"github.com/MrOrz/git-commit-aider/internal/constants"
	"github.com/MrOrz/git-commit-aider/internal/git"
)

// Server wraps an MCP server with the commit_staged tool registered.
type Server struct {
	mcp       *server.MCPServer
	committer *git.Committer
	logger    zerolog.Logger
}

// New creates a Server wired to a real git binary per the configuration.
func New(cfg *config.Config, logger zerolog.Logger, version string) *Server {
	runner := git.NewExecRunner(cfg.Git.Binary)
	resolver := git.NewResolver(runner, nil, logger)
	committer := git.NewCommitter(runner, resolver, logger)
	return newServer(committer, logger, version)
}

// newServer creates a Server around an existing Committer.
// Split out so tests can inject a committer backed by a fake runner.
func newServer(committer *git.Committer, logger zerolog.Logger, version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			constants.AppName,
			version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		committer: committer,
		logger:    logger,
	}
	s.registerTools()
	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects or ctx is canceled. Stdout is the protocol channel; all
// logging goes to stderr or the log file.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info().Msg("serving MCP over stdio")
	stdio := server.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
