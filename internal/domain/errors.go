package domain

import "errors"

// Domain errors.
var (
	ErrNotFound           = errors.New("whatdo not found")
	ErrDuplicateID        = errors.New("whatdo id already exists")
	ErrMalformedDocument  = errors.New("malformed whatdo document")
	ErrTaskAlreadyActive  = errors.New("another whatdo is already active")
	ErrNoActiveTask       = errors.New("no active whatdo")
	ErrDirtyWorkingTree   = errors.New("working tree has uncommitted changes")
	ErrBranchExists       = errors.New("branch already exists")
	ErrMergeConflict      = errors.New("merge conflict")
	ErrVCS                = errors.New("git command failed")
	ErrInvalidID          = errors.New("invalid whatdo id")
	ErrAlreadyInitialized = errors.New("whatdo already initialized")
	ErrNotInitialized     = errors.New("whatdo not initialized (run 'wd init' first)")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrActiveTask         = errors.New("whatdo is active (finish it instead of deleting)")
	ErrQueueEmpty         = errors.New("queue is empty")
)
