// Package git provides the git operations for git-commit-aider.
// This file implements committer identity resolution.
package git

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MrOrz/git-commit-aider/internal/constants"
	"github.com/MrOrz/git-commit-aider/internal/ctxutil"
	apperrors "github.com/MrOrz/git-commit-aider/internal/errors"
)

// Identity is the resolved committer identity used to build the commit
// author string. Both fields are non-empty once resolution succeeds.
type Identity struct {
	Name  string
	Email string
}

// identityField describes one resolvable field of the committer identity.
type identityField struct {
	kind      string // field name used in error messages and logs
	envVar    string // environment override, checked first
	configKey string // git config key queried as fallback
}

//nolint:gochecknoglobals // Read-only field descriptors
var (
	nameField = identityField{
		kind:      "name",
		envVar:    constants.EnvCommitterName,
		configKey: constants.GitConfigUserName,
	}
	emailField = identityField{
		kind:      "email",
		envVar:    constants.EnvCommitterEmail,
		configKey: constants.GitConfigUserEmail,
	}
)

// ResolutionError reports that a single identity field could not be
// resolved. Its message guides the user to either configure git or set
// the override environment variable.
type ResolutionError struct {
	Field     string // "name" or "email"
	ConfigKey string // git config key that was queried
	EnvVar    string // environment variable that would override the query
	Detail    string // underlying diagnostic from the git config query, if any
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf(
		"committer %s is not configured: set it with `git config %s` or the %s environment variable",
		e.Field, e.ConfigKey, e.EnvVar,
	)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap allows errors.Is checks against ErrIdentityResolution.
func (e *ResolutionError) Unwrap() error {
	return apperrors.ErrIdentityResolution
}

// EnvFunc looks up an environment variable by name, returning an empty
// string when unset. Injected into the Resolver so tests can substitute
// a deterministic environment.
type EnvFunc func(string) string

// Resolver produces a non-empty committer identity without performing
// any commit. Each field is resolved from its environment override first,
// falling back to a `git config` query in the target working directory.
type Resolver struct {
	env    EnvFunc
	runner CommandRunner
	logger zerolog.Logger
}

// NewResolver creates a Resolver using the given command runner and
// environment lookup. A nil env falls back to os.Getenv.
func NewResolver(runner CommandRunner, env EnvFunc, logger zerolog.Logger) *Resolver {
	if env == nil {
		env = os.Getenv
	}
	return &Resolver{env: env, runner: runner, logger: logger}
}

// Resolve produces the committer identity for the given working directory.
// Name and email are resolved independently: a failure in one does not
// prevent the other from being attempted, but any failure fails the whole
// resolution. Resolution is deterministic for a fixed environment and git
// configuration; no state is mutated.
func (r *Resolver) Resolve(ctx context.Context, workDir string) (Identity, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return Identity{}, err
	}

	name, nameErr := r.resolveField(ctx, nameField, workDir)
	email, emailErr := r.resolveField(ctx, emailField, workDir)

	if err := stderrors.Join(nameErr, emailErr); err != nil {
		return Identity{}, err
	}

	return Identity{Name: name, Email: email}, nil
}

// resolveField resolves a single identity field. A present, non-empty
// environment override short-circuits the git config query entirely.
func (r *Resolver) resolveField(ctx context.Context, f identityField, workDir string) (string, error) {
	if v := r.env(f.envVar); v != "" {
		r.logger.Debug().
			Str("field", f.kind).
			Str("env_var", f.envVar).
			Msg("committer identity resolved from environment override")
		return v, nil
	}

	res, err := r.runner.Run(ctx, workDir, "config", f.configKey)
	if err != nil {
		var cmdErr *CommandError
		if stderrors.As(err, &cmdErr) {
			return "", &ResolutionError{
				Field:     f.kind,
				ConfigKey: f.configKey,
				EnvVar:    f.envVar,
				Detail:    cmdErr.Diagnostic(),
			}
		}
		// Cancellation and other non-git failures propagate as-is.
		return "", err
	}

	value := strings.TrimSpace(res.Stdout)
	if value == "" {
		return "", &ResolutionError{
			Field:     f.kind,
			ConfigKey: f.configKey,
			EnvVar:    f.envVar,
		}
	}

	r.logger.Debug().
		Str("field", f.kind).
		Str("config_key", f.configKey).
		Msg("committer identity resolved from git config")
	return value, nil
}
