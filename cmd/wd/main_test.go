package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/git-whatdo/internal/domain"
)

func TestCanRunWithoutGit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"help command", []string{"help"}, true},
		{"help flag", []string{"--help"}, true},
		{"short help flag", []string{"-h"}, true},
		{"version flag", []string{"--version"}, true},
		{"subcommand help", []string{"start", "--help"}, true},
		{"no args", []string{}, false},
		{"status", []string{"status"}, false},
		{"start", []string{"start", "fix-auth"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutGit(tt.args))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("plain")))
	assert.Equal(t, 1, exitCode(fmt.Errorf("%q: %w", "x", domain.ErrNotFound)))
	assert.Equal(t, 2, exitCode(fmt.Errorf("git merge: %w", domain.ErrVCS)))
	assert.Equal(t, 2, exitCode(domain.ErrNotGitRepository))
}
