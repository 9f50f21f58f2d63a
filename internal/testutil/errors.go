// Package testutil provides testing utilities for git-commit-aider.
//
// This package contains mock errors used across test files to simulate
// failure scenarios. It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockGitFailed indicates a mock git command failed (used in tests).
	ErrMockGitFailed = errors.New("git command failed")

	// ErrMockConfigQuery indicates a mock git config query failed (used in tests).
	ErrMockConfigQuery = errors.New("config query failed")

	// ErrMockExec indicates a mock process execution error (used in tests).
	ErrMockExec = errors.New("exec error")
)
