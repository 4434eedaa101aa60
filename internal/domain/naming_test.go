package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/git-whatdo/internal/domain"
)

func TestValidateID(t *testing.T) {
	for _, id := range []string{"fix-auth", "feature/login", "v1.2", "a"} {
		assert.NoError(t, domain.ValidateID(id), id)
	}

	invalid := []string{
		"",
		"-leading-dash",
		".hidden",
		"has space",
		"trailing/",
		"trailing.",
		"refs.lock",
		"bad~char",
		"bad:char",
	}
	for _, id := range invalid {
		assert.ErrorIs(t, domain.ValidateID(id), domain.ErrInvalidID, "%q", id)
	}
}

func TestBranchName(t *testing.T) {
	// The id is the branch name; interrupted runs are recognized from it.
	assert.Equal(t, "fix-auth", domain.BranchName("fix-auth"))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", "WHATDO.yaml"), domain.DocumentPath("/repo"))
	assert.Equal(t, filepath.Join("/repo/.git", "whatdo"), domain.WhatdoDir("/repo/.git"))
	assert.Equal(t, filepath.Join("/wd", "logs", "whatdo.log"), domain.GlobalLogPath("/wd"))
	assert.Equal(t, filepath.Join("/wd", "logs", "task-fix.log"), domain.TaskLogPath("/wd", "fix"))
}
