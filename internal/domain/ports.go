package domain

// DocumentStore manages whatdo document persistence.
type DocumentStore interface {
	// Load reads and validates the document. Fails with ErrNotInitialized
	// if the document does not exist, or ErrMalformedDocument if a
	// structural invariant is violated.
	Load() (*TaskTree, error)

	// Save writes the tree back to the document.
	Save(tree *TaskTree) error

	// Path returns the document path (used for commit pathspecs).
	Path() string

	// Exists reports whether the document file is present.
	Exists() bool

	// Initialize creates an empty document with the given project summary.
	// Fails with ErrAlreadyInitialized if one exists.
	Initialize(summary string) error
}

// VCS provides the git operations the workflow engine sequences.
// Implementations report failures as errors wrapping ErrVCS (carrying the
// underlying diagnostic text), except merge conflicts which wrap
// ErrMergeConflict.
type VCS interface {
	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch() (string, error)

	// DefaultBranch returns the branch task branches are merged into.
	DefaultBranch() (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(branch string) (bool, error)

	// CreateBranch creates a branch and checks it out.
	CreateBranch(branch string) error

	// Checkout switches to an existing branch.
	Checkout(branch string) error

	// HasUncommittedChanges reports staged or unstaged changes.
	HasUncommittedChanges() (bool, error)

	// HasRemote reports whether a push remote is configured.
	HasRemote() (bool, error)

	// Commit stages the given paths and commits them.
	Commit(paths []string, message string) error

	// Push pushes a branch to the remote, setting upstream if needed.
	Push(branch string) error

	// Merge merges a branch into the current branch. A conflict fails with
	// an error wrapping ErrMergeConflict and leaves the merge half-applied
	// per git's own semantics; resolution is up to the user.
	Merge(branch string) error

	// DeleteBranch deletes a local branch and, if remote is true, its
	// remote counterpart as well.
	DeleteBranch(branch string, remote bool) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo over global over defaults).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Branch BranchConfig `toml:"branch"`
	Push   PushConfig   `toml:"push"`
	Log    LogConfig    `toml:"log"`
}

// BranchConfig holds branch settings from the [branch] section.
type BranchConfig struct {
	Default string `toml:"default,omitempty"` // Default branch override (empty = detect from origin/HEAD)
	Remote  string `toml:"remote,omitempty"`  // Remote name for pushes
}

// PushConfig holds push settings from the [push] section.
type PushConfig struct {
	OnStart bool `toml:"on_start"` // Push the new branch upstream when starting a whatdo
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Branch: BranchConfig{Remote: "origin"},
		Push:   PushConfig{OnStart: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Logger writes structured progress messages to the tool's log files.
type Logger interface {
	Debug(taskID, category, msg string)
	Info(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}
