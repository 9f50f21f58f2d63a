package config

import (
	"strings"

	"github.com/MrOrz/git-commit-aider/internal/errors"
)

// Validate checks a Config for invalid values.
// Returns an error wrapping ErrConfigInvalid on the first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrConfigInvalid, "config is nil")
	}

	if strings.TrimSpace(cfg.Git.Binary) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "git.binary cannot be empty")
	}

	return nil
}
