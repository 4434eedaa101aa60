package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/testutil"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

func TestStatus_Execute_Idle(t *testing.T) {
	store := newProjectStore(t)
	vcs := testutil.NewMockVCS()
	uc := usecase.NewStatus(store, vcs)

	out, err := uc.Execute(context.Background(), usecase.StatusInput{})
	require.NoError(t, err)

	assert.Nil(t, out.Active)
	assert.Equal(t, "demo project", out.Summary)
	assert.Equal(t, "main", out.CurrentBranch)
	assert.False(t, out.Dirty)
	assert.Len(t, out.Next, 3)
}

func TestStatus_Execute_ActiveExcludedFromNext(t *testing.T) {
	store := newProjectStore(t)
	require.NoError(t, store.Tree.SetActive("docs"))
	vcs := testutil.NewMockVCS()
	vcs.CurrentBranchName = "docs"
	vcs.HasUncommittedChangesV = true
	uc := usecase.NewStatus(store, vcs)

	out, err := uc.Execute(context.Background(), usecase.StatusInput{})
	require.NoError(t, err)

	require.NotNil(t, out.Active)
	assert.Equal(t, "docs", out.Active.ID)
	assert.True(t, out.Dirty)
	for _, c := range out.Next {
		assert.NotEqual(t, "docs", c.Task.ID)
	}
}

func TestStatus_Execute_DanglingActive(t *testing.T) {
	store := newProjectStore(t)
	require.NoError(t, store.Tree.SetActive("docs"))
	_, err := store.Tree.Remove("docs")
	require.NoError(t, err)
	uc := usecase.NewStatus(store, testutil.NewMockVCS())

	_, err = uc.Execute(context.Background(), usecase.StatusInput{})
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestInitRepo_Execute(t *testing.T) {
	store := testutil.NewMockDocumentStore()
	store.ExistsV = false
	store.Tree = nil
	uc := usecase.NewInitRepo(store)

	out, err := uc.Execute(context.Background(), usecase.InitRepoInput{Summary: "my project"})
	require.NoError(t, err)

	assert.Equal(t, store.Path(), out.Path)
	assert.Equal(t, "my project", store.Summary)

	_, err = uc.Execute(context.Background(), usecase.InitRepoInput{Summary: "again"})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}
