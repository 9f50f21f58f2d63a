// Package git provides the git operations for git-commit-aider.
// This file defines the command execution capability used by the identity
// resolver and the commit executor.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/MrOrz/git-commit-aider/internal/constants"
	"github.com/MrOrz/git-commit-aider/internal/ctxutil"
	apperrors "github.com/MrOrz/git-commit-aider/internal/errors"
)

// CommandResult holds the captured output of a git invocation.
type CommandResult struct {
	Stdout string
	Stderr string
}

// CommandError reports a failed git invocation with its captured output.
// Callers use Diagnostic to extract the best available failure text.
type CommandError struct {
	Stdout  string // captured standard output
	Stderr  string // captured standard error
	Summary string // short summary, e.g. "exit status 1" or an exec failure
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		return e.Summary + ": " + diag
	}
	return e.Summary
}

// Unwrap allows errors.Is checks against ErrGitOperation.
func (e *CommandError) Unwrap() error {
	return apperrors.ErrGitOperation
}

// Diagnostic returns the most useful failure text, in priority order:
// captured stderr, then captured stdout, then the summary, then a generic
// fallback.
func (e *CommandError) Diagnostic() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Summary != "" {
		return e.Summary
	}
	return "git command failed"
}

// CommandRunner defines the capability for executing git commands.
// Implementations capture stdout and stderr separately; a failed invocation
// returns a *CommandError carrying both. This allows the core logic to be
// tested with a fake implementation, independent of any real process.
type CommandRunner interface {
	// Run executes git with the given arguments in workDir.
	// An empty workDir means the process's current working directory.
	Run(ctx context.Context, workDir string, args ...string) (CommandResult, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct {
	binary string
}

// NewExecRunner creates an ExecRunner invoking the given git binary.
// An empty binary falls back to the default PATH lookup of "git".
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = constants.DefaultGitBinary
	}
	return &ExecRunner{binary: binary}
}

// Run executes the git command and captures its output. The message and
// other arguments are passed verbatim to the process, never through a
// shell, so argument content cannot be interpreted as shell syntax.
func (r *ExecRunner) Run(ctx context.Context, workDir string, args ...string) (CommandResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return CommandResult{}, err
	}

	cmd := exec.CommandContext(ctx, r.binary, args...) //#nosec G204 -- argv execution without a shell; args are structural
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		// Surface cancellation as the context error, not a git failure.
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		return res, &CommandError{
			Stdout:  res.Stdout,
			Stderr:  res.Stderr,
			Summary: err.Error(),
		}
	}

	return res, nil
}

// Ensure ExecRunner implements CommandRunner.
var _ CommandRunner = (*ExecRunner)(nil)
