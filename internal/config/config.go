// Package config provides configuration management for git-commit-aider
// with layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (GIT_COMMIT_AIDER_* prefix)
//  2. Global config (~/.git-commit-aider/config.yaml)
//  3. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for git-commit-aider.
type Config struct {
	// Git contains settings for git invocation.
	Git GitConfig `yaml:"git" mapstructure:"git"`
}

// GitConfig contains settings for git invocation.
type GitConfig struct {
	// Binary is the git executable to invoke. It may be a bare name
	// resolved via PATH or an absolute path.
	// Default: "git"
	Binary string `yaml:"binary" mapstructure:"binary"`
}
