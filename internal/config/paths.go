package config

import (
	"os"
	"path/filepath"

	"github.com/MrOrz/git-commit-aider/internal/constants"
	"github.com/MrOrz/git-commit-aider/internal/errors"
)

// HomeDir returns the application home directory.
// If the GIT_COMMIT_AIDER_HOME environment variable is set, it is used
// directly; otherwise the default is ~/.git-commit-aider.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.EnvAppHome); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	return filepath.Join(userHome, constants.AppHome), nil
}

// GlobalConfigPath returns the path of the global config file, whether or
// not it exists.
func GlobalConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// LogDir returns the directory where log files are written.
func LogDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir), nil
}
