// Package git provides the git operations for git-commit-aider.
// This file isolates the substring matching of git's failure phrasing.
package git

import "strings"

// PatternMatcher checks if a string contains any of a list of patterns.
// It performs case-insensitive matching on the lowercased input.
type PatternMatcher struct {
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with the given patterns.
// All patterns should be lowercase for consistent matching.
func NewPatternMatcher(patterns ...string) *PatternMatcher {
	return &PatternMatcher{patterns: patterns}
}

// Matches returns true if the input string contains any of the patterns.
// The input is lowercased before matching.
func (m *PatternMatcher) Matches(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range m.patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// noChangesPatterns matches the phrases git prints when a commit is a
// no-op because nothing was staged. Matching git's exact wording is
// brittle; it is confined to this file so a git wording or localization
// change needs a one-place update.
//
//nolint:gochecknoglobals // Package-level immutable pattern matcher
var noChangesPatterns = NewPatternMatcher(
	"nothing to commit, working tree clean",
	"no changes added to commit",
)

// IsNoChanges reports whether the failure text of a commit invocation
// indicates a benign no-op: git exited non-zero only because there were
// no staged changes to commit.
func IsNoChanges(failureText string) bool {
	return noChangesPatterns.Matches(failureText)
}
