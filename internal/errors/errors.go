// Package errors provides centralized error handling for git-commit-aider.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be checked
// using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrGitOperation indicates that a git command (config, commit, etc.)
	// failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrIdentityResolution indicates that the committer identity could not
	// be resolved from environment overrides or git configuration.
	ErrIdentityResolution = errors.New("identity resolution failed")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrNotGitRepo indicates that a git repository is required but not found.
	ErrNotGitRepo = errors.New("not in a git repository")

	// ErrInvalidRequest indicates a malformed tool request (missing or
	// mistyped arguments). Surfaced at the protocol layer, never classified
	// as a commit outcome.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrCommandNotConfigured indicates that a mock command was not
	// configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")
)
