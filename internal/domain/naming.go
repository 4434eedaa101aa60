package domain

import (
	"path/filepath"
	"regexp"
)

// DocumentFileName is the whatdo document at the repository root.
const DocumentFileName = "WHATDO.yaml"

// ConfigFileName is the config file name in both repo and global locations.
const ConfigFileName = "config.toml"

// idPattern matches ids that are safe to use verbatim as git branch names.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/-]*$`)

// ValidateID checks that an id is usable as a whatdo id and branch name.
func ValidateID(id string) error {
	if id == "" || !idPattern.MatchString(id) {
		return ErrInvalidID
	}
	// git rejects refs ending in a slash, dot or ".lock"
	last := id[len(id)-1]
	if last == '/' || last == '.' {
		return ErrInvalidID
	}
	if len(id) > 5 && id[len(id)-5:] == ".lock" {
		return ErrInvalidID
	}
	return nil
}

// BranchName returns the branch name for a task. The task id is the branch
// name; that equivalence is what lets an interrupted run be detected from
// the checked-out branch alone.
func BranchName(id string) string {
	return id
}

// DocumentPath returns the path of the whatdo document for a repository.
func DocumentPath(repoRoot string) string {
	return filepath.Join(repoRoot, DocumentFileName)
}

// WhatdoDir returns the tool's private directory under .git.
func WhatdoDir(gitDir string) string {
	return filepath.Join(gitDir, "whatdo")
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "git-whatdo")
}

// GlobalLogPath returns the path of the shared log file.
func GlobalLogPath(whatdoDir string) string {
	return filepath.Join(whatdoDir, "logs", "whatdo.log")
}

// TaskLogPath returns the path of a per-task log file.
func TaskLogPath(whatdoDir, taskID string) string {
	return filepath.Join(whatdoDir, "logs", "task-"+taskID+".log")
}
