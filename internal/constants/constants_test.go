package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityConstants(t *testing.T) {
	t.Run("env overrides match git's own variable names", func(t *testing.T) {
		assert.Equal(t, "GIT_COMMITTER_NAME", EnvCommitterName)
		assert.Equal(t, "GIT_COMMITTER_EMAIL", EnvCommitterEmail)
	})

	t.Run("config keys match git config layout", func(t *testing.T) {
		assert.Equal(t, "user.name", GitConfigUserName)
		assert.Equal(t, "user.email", GitConfigUserEmail)
	})

	t.Run("author suffix is the aider marker", func(t *testing.T) {
		assert.Equal(t, "(aider)", AuthorSuffix)
	})
}

func TestLogRotationConstants(t *testing.T) {
	assert.Positive(t, LogMaxSizeMB)
	assert.Positive(t, LogMaxBackups)
	assert.Positive(t, LogMaxAgeDays)
}
