package git

import (
	"context"

	apperrors "github.com/MrOrz/git-commit-aider/internal/errors"
)

// fakeRunner is a CommandRunner for tests. It serves configured values for
// `git config` queries and a fixed result for `git commit`, recording every
// invocation for assertions.
type fakeRunner struct {
	configValues map[string]string // config key -> stdout
	configErrs   map[string]error  // config key -> error
	commitResult CommandResult
	commitErr    error

	calls    [][]string
	workDirs []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		configValues: make(map[string]string),
		configErrs:   make(map[string]error),
	}
}

func (f *fakeRunner) Run(_ context.Context, workDir string, args ...string) (CommandResult, error) {
	f.calls = append(f.calls, args)
	f.workDirs = append(f.workDirs, workDir)

	if len(args) == 0 {
		return CommandResult{}, apperrors.ErrCommandNotConfigured
	}

	switch args[0] {
	case "config":
		key := args[1]
		if err, ok := f.configErrs[key]; ok {
			return CommandResult{}, err
		}
		return CommandResult{Stdout: f.configValues[key]}, nil
	case "commit":
		return f.commitResult, f.commitErr
	default:
		return CommandResult{}, apperrors.ErrCommandNotConfigured
	}
}

// configCalls returns the config keys queried, in order.
func (f *fakeRunner) configCalls() []string {
	var keys []string
	for _, call := range f.calls {
		if len(call) >= 2 && call[0] == "config" {
			keys = append(keys, call[1])
		}
	}
	return keys
}

// commitCalls returns the argument lists of commit invocations.
func (f *fakeRunner) commitCalls() [][]string {
	var commits [][]string
	for _, call := range f.calls {
		if len(call) >= 1 && call[0] == "commit" {
			commits = append(commits, call)
		}
	}
	return commits
}

// envFromMap builds an EnvFunc backed by a fixed map, for deterministic
// identity resolution in tests.
func envFromMap(m map[string]string) EnvFunc {
	return func(key string) string {
		return m[key]
	}
}
