package git

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MrOrz/git-commit-aider/internal/errors"
	"github.com/MrOrz/git-commit-aider/internal/testutil"
)

func TestResolver_EnvironmentOverrideShortCircuits(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.email"] = "config@example.com"

	env := envFromMap(map[string]string{
		"GIT_COMMITTER_NAME": "Override Name",
	})
	resolver := NewResolver(runner, env, zerolog.Nop())

	id, err := resolver.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Override Name", id.Name)
	assert.Equal(t, "config@example.com", id.Email)
	// The name query must never be issued when the override is set.
	assert.Equal(t, []string{"user.email"}, runner.configCalls())
}

func TestResolver_BothOverridesSkipGitEntirely(t *testing.T) {
	runner := newFakeRunner()
	env := envFromMap(map[string]string{
		"GIT_COMMITTER_NAME":  "Ada",
		"GIT_COMMITTER_EMAIL": "ada@x.io",
	})
	resolver := NewResolver(runner, env, zerolog.Nop())

	id, err := resolver.Resolve(context.Background(), "/some/repo")

	require.NoError(t, err)
	assert.Equal(t, Identity{Name: "Ada", Email: "ada@x.io"}, id)
	assert.Empty(t, runner.calls)
}

func TestResolver_QueryOutputIsTrimmed(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "  Jane Dev \n"
	runner.configValues["user.email"] = "jane@example.com\n"

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	id, err := resolver.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", id.Name)
	assert.Equal(t, "jane@example.com", id.Email)
}

func TestResolver_EmptyQueryResultFails(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "Jane Dev"
	runner.configValues["user.email"] = "   \n"

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrIdentityResolution)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "email", resErr.Field)
	assert.Contains(t, err.Error(), "git config user.email")
	assert.Contains(t, err.Error(), "GIT_COMMITTER_EMAIL")
}

func TestResolver_QueryFailureCarriesDiagnostic(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "Jane Dev"
	runner.configErrs["user.email"] = &CommandError{
		Stderr:  "fatal: not in a git directory",
		Summary: "exit status 128",
	}

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.Error(t, err)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "email", resErr.Field)
	assert.Contains(t, resErr.Detail, "not in a git directory")
}

func TestResolver_FieldsResolveIndependently(t *testing.T) {
	runner := newFakeRunner()
	runner.configErrs["user.name"] = &CommandError{Summary: "exit status 1"}
	runner.configValues["user.email"] = "jane@example.com"

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.Error(t, err)
	// The name failure must not prevent the email query from being attempted.
	assert.Equal(t, []string{"user.name", "user.email"}, runner.configCalls())
	assert.Contains(t, err.Error(), "committer name")
	assert.NotContains(t, err.Error(), "committer email")
}

func TestResolver_BothFieldsFailingReportsBoth(t *testing.T) {
	runner := newFakeRunner()
	runner.configErrs["user.name"] = &CommandError{Summary: "exit status 1"}
	runner.configErrs["user.email"] = &CommandError{Summary: "exit status 1"}

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "committer name")
	assert.Contains(t, err.Error(), "committer email")
}

func TestResolver_Deterministic(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "Jane Dev"
	runner.configValues["user.email"] = "jane@example.com"

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	first, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)

	second, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolver_WorkDirPassedToQuery(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "Jane Dev"
	runner.configValues["user.email"] = "jane@example.com"

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "/target/repo")

	require.NoError(t, err)
	for _, dir := range runner.workDirs {
		assert.Equal(t, "/target/repo", dir)
	}
}

func TestResolver_CanceledContext(t *testing.T) {
	runner := newFakeRunner()
	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, runner.calls)
}

func TestResolver_NilEnvDefaultsToProcessEnvironment(t *testing.T) {
	t.Setenv("GIT_COMMITTER_NAME", "Process Env Name")
	t.Setenv("GIT_COMMITTER_EMAIL", "proc@example.com")

	runner := newFakeRunner()
	resolver := NewResolver(runner, nil, zerolog.Nop())

	id, err := resolver.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Process Env Name", id.Name)
	assert.Equal(t, "proc@example.com", id.Email)
}

func TestResolver_NonGitFailurePropagates(t *testing.T) {
	runner := newFakeRunner()
	runner.configValues["user.name"] = "Jane Dev"
	runner.configErrs["user.email"] = testutil.ErrMockExec

	resolver := NewResolver(runner, envFromMap(nil), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrMockExec)
}

func TestResolutionError_Message(t *testing.T) {
	err := &ResolutionError{
		Field:     "name",
		ConfigKey: "user.name",
		EnvVar:    "GIT_COMMITTER_NAME",
		Detail:    "exit status 1",
	}

	msg := err.Error()
	assert.Contains(t, msg, "committer name is not configured")
	assert.Contains(t, msg, "git config user.name")
	assert.Contains(t, msg, "GIT_COMMITTER_NAME")
	assert.Contains(t, msg, "exit status 1")
}
