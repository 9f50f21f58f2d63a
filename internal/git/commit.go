// Package git provides the git operations for git-commit-aider.
// This file implements the commit executor and its outcome classification.
package git

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MrOrz/git-commit-aider/internal/constants"
)

// Request describes a single commit_staged invocation.
type Request struct {
	// Message is the commit message, passed to git verbatim.
	Message string

	// WorkDir is the directory the commit runs in. Empty means the
	// process's current working directory.
	WorkDir string
}

// Status is the three-way classification of a commit attempt.
type Status int

// Commit outcome statuses.
const (
	// StatusSuccess means git created the commit.
	StatusSuccess Status = iota
	// StatusSkipped means there were no staged changes; no commit was
	// created and no error occurred.
	StatusSkipped
	// StatusFailed means identity resolution or the commit itself failed.
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of a commit attempt. It is created
// once per request, rendered into the response, and discarded; nothing
// persists across requests.
type Outcome struct {
	Status Status
	Stdout string // captured git stdout (success only)
	Stderr string // captured git stderr (success only, warnings)
	Reason string // skip or failure detail
}

// IsError reports whether the outcome is an error for the caller.
// Skipped is a benign no-op, not an error.
func (o Outcome) IsError() bool {
	return o.Status == StatusFailed
}

// Text renders the human-readable response body for the caller.
func (o Outcome) Text() string {
	switch o.Status {
	case StatusSuccess:
		text := "Commit successful:\n" + strings.TrimSpace(o.Stdout)
		if warnings := strings.TrimSpace(o.Stderr); warnings != "" {
			text += "\nWarnings:\n" + warnings
		}
		return text
	case StatusSkipped:
		return "Commit skipped: " + o.Reason
	case StatusFailed:
		return "Commit failed: " + o.Reason
	default:
		return o.Reason
	}
}

// BuildAuthor derives the author override string from a resolved identity:
// "<name> (aider) <email>". No escaping is applied to name or email; git
// parses the author string itself, and a name or email containing ">" or
// control characters produces a malformed author. This mirrors git's own
// author-string handling rather than guarding against it.
func BuildAuthor(id Identity) string {
	return id.Name + " " + constants.AuthorSuffix + " <" + id.Email + ">"
}

// Committer performs the augmented commit and classifies its result.
type Committer struct {
	runner   CommandRunner
	resolver *Resolver
	logger   zerolog.Logger
}

// NewCommitter creates a Committer using the given runner and resolver.
func NewCommitter(runner CommandRunner, resolver *Resolver, logger zerolog.Logger) *Committer {
	return &Committer{runner: runner, resolver: resolver, logger: logger}
}

// Commit resolves the committer identity, invokes git commit with the
// augmented author, and classifies the result.
//
// Exactly one commit attempt is made per call, zero if identity resolution
// fails first, so a resolution failure has no side effects. Failed commits
// are never retried: retrying a failed version-control mutation without
// understanding the cause risks duplicate or inconsistent history.
func (c *Committer) Commit(ctx context.Context, req Request) Outcome {
	if req.Message == "" {
		return Outcome{Status: StatusFailed, Reason: "commit message cannot be empty"}
	}

	id, err := c.resolver.Resolve(ctx, req.WorkDir)
	if err != nil {
		c.logger.Error().Err(err).Msg("identity resolution failed, commit not attempted")
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}

	author := BuildAuthor(id)
	c.logger.Info().
		Str("author", author).
		Str("work_dir", req.WorkDir).
		Msg("committing staged changes")

	res, err := c.runner.Run(ctx, req.WorkDir, "commit", "-m", req.Message, "--author="+author)
	if err == nil {
		c.logger.Info().Str("status", StatusSuccess.String()).Msg("commit created")
		return Outcome{Status: StatusSuccess, Stdout: res.Stdout, Stderr: res.Stderr}
	}

	var cmdErr *CommandError
	if stderrors.As(err, &cmdErr) {
		failureText := cmdErr.Stderr + "\n" + cmdErr.Stdout
		if IsNoChanges(failureText) {
			c.logger.Info().Str("status", StatusSkipped.String()).Msg("nothing to commit")
			return Outcome{Status: StatusSkipped, Reason: cmdErr.Diagnostic()}
		}
		c.logger.Error().Str("status", StatusFailed.String()).Str("detail", cmdErr.Diagnostic()).Msg("commit failed")
		return Outcome{Status: StatusFailed, Reason: cmdErr.Diagnostic()}
	}

	// Cancellation or exec-level failure without captured output.
	c.logger.Error().Err(err).Msg("commit invocation failed")
	return Outcome{Status: StatusFailed, Reason: err.Error()}
}
