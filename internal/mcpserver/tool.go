package mcpserver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	apperrors "github.com/MrOrz/git-commit-aider/internal/errors"
	"github.com/MrOrz/git-commit-aider/internal/git"
)

// commitStagedToolName is the single tool this server exposes.
const commitStagedToolName = "commit_staged"

// registerTools declares the tool schema to the protocol layer.
func (s *Server) registerTools() {
	tool := mcp.NewTool(commitStagedToolName,
		mcp.WithDescription("Commit currently staged changes with the given message. "+
			"The commit author is rewritten to mark the commit as AI-assisted."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Commit message"),
		),
		mcp.WithString("cwd",
			mcp.Description("Directory to run git in. Defaults to the server process's working directory."),
		),
	)
	s.mcp.AddTool(tool, s.handleCommitStaged)
}

// handleCommitStaged validates arguments, runs the commit, and maps the
// outcome to the response contract: isError is false for Success and
// Skipped, true for Failed. Malformed arguments are a protocol-level
// fault (returned as a Go error) and never reach outcome classification.
func (s *Server) handleCommitStaged(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()
	logger := s.logger.With().
		Str("request_id", requestID).
		Str("tool", commitStagedToolName).
		Logger()

	message, err := request.RequireString("message")
	if err != nil || message == "" {
		logger.Warn().Err(err).Msg("rejected request with missing or invalid message")
		return nil, fmt.Errorf("%w: message must be a non-empty string", apperrors.ErrInvalidRequest)
	}

	cwd := ""
	if raw, ok := request.GetArguments()["cwd"]; ok && raw != nil {
		str, isString := raw.(string)
		if !isString {
			logger.Warn().Msg("rejected request with non-string cwd")
			return nil, fmt.Errorf("%w: cwd must be a string", apperrors.ErrInvalidRequest)
		}
		cwd = str
	}

	logger.Info().Str("cwd", cwd).Msg("handling commit_staged request")

	outcome := s.committer.Commit(ctx, git.Request{Message: message, WorkDir: cwd})

	logger.Info().
		Str("status", outcome.Status.String()).
		Bool("is_error", outcome.IsError()).
		Msg("commit_staged completed")

	if outcome.IsError() {
		return mcp.NewToolResultError(outcome.Text()), nil
	}
	return mcp.NewToolResultText(outcome.Text()), nil
}
