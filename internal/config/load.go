package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/MrOrz/git-commit-aider/internal/constants"
	"github.com/MrOrz/git-commit-aider/internal/errors"
)

// newViperInstance creates a Viper instance with standard configuration:
// built-in defaults, the GIT_COMMIT_AIDER_ environment prefix, and a key
// replacer so git.binary maps to GIT_COMMIT_AIDER_GIT_BINARY.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvConfigPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper
// precedence: environment variables, then the global config file, then
// built-in defaults. A missing config file is not an error; only actual
// configuration problems are.
//
// The context carries the logger used for debug output; config file reads
// are fast local I/O and are not cancellable.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("git.binary", cfg.Git.Binary).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to read the global config file. Missing files
// and an undeterminable home directory are skipped silently.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil //nolint:nilerr // No home directory means no global config to read
	}

	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // Global config doesn't exist, skip silently
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}
