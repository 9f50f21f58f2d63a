package config

import (
	"github.com/spf13/viper"

	"github.com/MrOrz/git-commit-aider/internal/constants"
)

// setDefaults registers built-in default values on the viper instance.
// These are the lowest-precedence configuration layer.
func setDefaults(v *viper.Viper) {
	v.SetDefault("git.binary", constants.DefaultGitBinary)
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Binary: constants.DefaultGitBinary,
		},
	}
}
