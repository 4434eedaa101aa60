package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/cli"
	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/testutil"
)

func newTestApp() (*app.Container, *testutil.MockDocumentStore, *testutil.MockVCS) {
	store := testutil.NewMockDocumentStore()
	vcs := testutil.NewMockVCS()
	c := app.NewWithDeps(app.Paths{
		RepoRoot:     "/repo",
		GitDir:       "/repo/.git",
		WhatdoDir:    "/repo/.git/whatdo",
		DocumentPath: "/repo/WHATDO.yaml",
	}, store, vcs, testutil.NewMockConfigLoader(), &testutil.MockLogger{})
	return c, store, vcs
}

func execute(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_AddShowList(t *testing.T) {
	c, store, _ := newTestApp()

	out, err := execute(t, c, "add", "fix-auth", "-m", "Fix the authentication timeout", "-t", "backend", "-p", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Added fix-auth")
	require.NotNil(t, store.Tree.Find("fix-auth"))

	out, err = execute(t, c, "show", "fix-auth")
	require.NoError(t, err)
	assert.Contains(t, out, "Fix the authentication timeout")
	assert.Contains(t, out, "priority: 1")
	assert.Contains(t, out, "backend")

	out, err = execute(t, c, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "fix-auth")
}

func TestRootCommand_AddRequiresSummary(t *testing.T) {
	c, _, _ := newTestApp()
	_, err := execute(t, c, "add", "fix-auth")
	assert.Error(t, err)
}

func TestRootCommand_Rm(t *testing.T) {
	c, store, _ := newTestApp()
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs"}))

	out, err := execute(t, c, "rm", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted docs")
	assert.Nil(t, store.Tree.Find("docs"))

	// delete is an alias for rm
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs"}))
	_, err = execute(t, c, "delete", "docs")
	require.NoError(t, err)
}

func TestRootCommand_Queue(t *testing.T) {
	c, store, _ := newTestApp()
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs"}))

	out, err := execute(t, c, "queue")
	require.NoError(t, err)
	assert.Contains(t, out, "Queue is empty")

	out, err = execute(t, c, "queue", "push", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "1. docs")

	out, err = execute(t, c, "queue", "pop")
	require.NoError(t, err)
	assert.Contains(t, out, "Popped docs")
}

func TestRootCommand_NextAndStart(t *testing.T) {
	c, store, vcs := newTestApp()
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "fix-auth", Summary: "Fix auth"}))

	out, err := execute(t, c, "next")
	require.NoError(t, err)
	assert.Contains(t, out, "fix-auth")

	out, err = execute(t, c, "next", "--start")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting fix-auth on branch fix-auth")
	assert.Equal(t, "fix-auth", vcs.CurrentBranchName)
	assert.Equal(t, "fix-auth", store.Tree.Active)
}

func TestRootCommand_StartByID(t *testing.T) {
	c, store, _ := newTestApp()
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "fix-auth", Summary: "Fix auth"}))

	out, err := execute(t, c, "start", "fix-auth")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting fix-auth")
	assert.Equal(t, "fix-auth", store.Tree.Active)
}

func TestRootCommand_Finish(t *testing.T) {
	c, store, vcs := newTestApp()
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "fix-auth", Summary: "Fix auth"}))
	require.NoError(t, store.Tree.SetActive("fix-auth"))
	vcs.Branches["fix-auth"] = true
	vcs.CurrentBranchName = "fix-auth"

	out, err := execute(t, c, "finish")
	require.NoError(t, err)
	assert.Contains(t, out, "Finished fix-auth: Fix auth")
	assert.Contains(t, out, "Congratulations!")
	assert.Nil(t, store.Tree.Find("fix-auth"))
}

func TestRootCommand_StatusIsDefault(t *testing.T) {
	c, store, _ := newTestApp()
	store.Tree.Summary = "demo project"
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs"}))

	// Bare 'wd' shows status.
	out, err := execute(t, c)
	require.NoError(t, err)
	assert.Contains(t, out, "demo project")
	assert.Contains(t, out, "Idle, nothing active")
	assert.Contains(t, out, "docs")

	out, err = execute(t, c, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Branch: main")
}

func TestRootCommand_ErrorsAreReturned(t *testing.T) {
	c, _, _ := newTestApp()
	_, err := execute(t, c, "start", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
