package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MrOrz/git-commit-aider/internal/config"
	"github.com/MrOrz/git-commit-aider/internal/errors"
	"github.com/MrOrz/git-commit-aider/internal/mcpserver"
)

// AddServeCommand adds the serve command to the root command.
// It is equivalent to a bare invocation; having an explicit subcommand
// keeps MCP client configurations self-documenting.
func AddServeCommand(root *cobra.Command, info BuildInfo) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP server on stdin/stdout until the client disconnects.

Register it with an MCP client, e.g. in Claude Desktop's configuration:

  { "mcpServers": { "git-commit-aider": { "command": "git-commit-aider" } } }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), info)
		},
	}

	root.AddCommand(cmd)
}

// runServe loads configuration, builds the server, and serves stdio.
func runServe(ctx context.Context, info BuildInfo) error {
	logger := GetLogger()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	version := info.Version
	if version == "" {
		version = "dev"
	}

	srv := mcpserver.New(cfg, logger, version)
	if err := srv.ServeStdio(ctx); err != nil {
		return errors.Wrap(err, "mcp server exited")
	}
	return nil
}
