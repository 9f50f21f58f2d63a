// Package constants provides centralized constant values used throughout
// git-commit-aider. This package is the single source of truth for all shared
// constants and MUST NOT import any other internal packages.
package constants

// AppName is the canonical name of the binary and the MCP server.
const AppName = "git-commit-aider"

// AuthorSuffix is appended to the resolved committer name to mark commits
// as AI-assisted. The final author string is "<name> (aider) <email>".
const AuthorSuffix = "(aider)"

// Environment variables consumed for identity resolution.
// When present and non-empty they short-circuit the git config query for
// the corresponding field.
const (
	// EnvCommitterName overrides the committer name.
	EnvCommitterName = "GIT_COMMITTER_NAME"

	// EnvCommitterEmail overrides the committer email.
	EnvCommitterEmail = "GIT_COMMITTER_EMAIL"
)

// Git configuration keys queried when no environment override is set.
const (
	// GitConfigUserName is the git config key holding the user's name.
	GitConfigUserName = "user.name"

	// GitConfigUserEmail is the git config key holding the user's email.
	GitConfigUserEmail = "user.email"
)

// DefaultGitBinary is the git executable invoked when no override is
// configured. Resolved via PATH lookup by os/exec.
const DefaultGitBinary = "git"

// Directory names and paths used for organizing data.
const (
	// AppHome is the hidden directory name where git-commit-aider stores
	// its data. Created in the user's home directory unless overridden by
	// the EnvAppHome environment variable.
	AppHome = ".git-commit-aider"

	// EnvAppHome overrides the application home directory location.
	EnvAppHome = "GIT_COMMIT_AIDER_HOME"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// LogFileName is the name of the rotating CLI log file.
	LogFileName = "git-commit-aider.log"
)

// Log rotation settings for the rotating file writer.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// EnvConfigPrefix is the environment variable prefix for configuration
// overrides (e.g. GIT_COMMIT_AIDER_GIT_BINARY).
const EnvConfigPrefix = "GIT_COMMIT_AIDER"
