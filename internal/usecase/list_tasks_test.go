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

func newProjectStore(t *testing.T) *testutil.MockDocumentStore {
	t.Helper()
	store := testutil.NewMockDocumentStore()
	store.Tree.Summary = "demo project"
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "auth", Summary: "Auth", Tags: []string{"backend"}}))
	require.NoError(t, store.Tree.Insert("auth", &domain.Task{ID: "auth-login", Summary: "Login"}))
	require.NoError(t, store.Tree.Insert("auth", &domain.Task{ID: "auth-tokens", Summary: "Tokens", Priority: intPtr(1)}))
	require.NoError(t, store.Tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs", Tags: []string{"docs"}}))
	require.NoError(t, store.Tree.QueuePush("docs"))
	return store
}

func TestListTasks_Execute(t *testing.T) {
	store := newProjectStore(t)
	uc := usecase.NewListTasks(store)

	out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})
	require.NoError(t, err)

	require.Len(t, out.Candidates, 3)
	assert.Equal(t, "docs", out.Candidates[0].Task.ID)
	assert.Equal(t, "auth-tokens", out.Candidates[1].Task.ID)
	assert.Equal(t, "auth-login", out.Candidates[2].Task.ID)
}

func TestListTasks_Execute_TagFilter(t *testing.T) {
	store := newProjectStore(t)
	uc := usecase.NewListTasks(store)

	out, err := uc.Execute(context.Background(), usecase.ListTasksInput{
		Filter: domain.Filter{Tags: []string{"backend"}},
	})
	require.NoError(t, err)

	require.Len(t, out.Candidates, 2)
	assert.Equal(t, "auth-tokens", out.Candidates[0].Task.ID)
	assert.Equal(t, "auth-login", out.Candidates[1].Task.ID)
}

func TestNextTask_Execute(t *testing.T) {
	store := newProjectStore(t)
	uc := usecase.NewNextTask(store)

	out, err := uc.Execute(context.Background(), usecase.NextTaskInput{})
	require.NoError(t, err)
	require.NotNil(t, out.Candidate)
	assert.Equal(t, "docs", out.Candidate.Task.ID)
}

func TestNextTask_Execute_NothingMatches(t *testing.T) {
	store := testutil.NewMockDocumentStore()
	uc := usecase.NewNextTask(store)

	out, err := uc.Execute(context.Background(), usecase.NextTaskInput{})
	require.NoError(t, err)
	assert.Nil(t, out.Candidate)
}

func TestShowTask_Execute(t *testing.T) {
	store := newProjectStore(t)
	require.NoError(t, store.Tree.SetActive("auth-login"))
	uc := usecase.NewShowTask(store)

	out, err := uc.Execute(context.Background(), usecase.ShowTaskInput{ID: "auth-login"})
	require.NoError(t, err)

	assert.Equal(t, "auth-login", out.Task.ID)
	assert.True(t, out.Active)
	assert.False(t, out.Queued)
	// Tags are inherited from the ancestor chain.
	assert.Equal(t, []string{"backend"}, out.Tags)
	assert.Nil(t, out.Priority)
}

func TestShowTask_Execute_QueuedViaAncestor(t *testing.T) {
	store := newProjectStore(t)
	require.NoError(t, store.Tree.QueuePush("auth"))
	uc := usecase.NewShowTask(store)

	out, err := uc.Execute(context.Background(), usecase.ShowTaskInput{ID: "auth-tokens"})
	require.NoError(t, err)

	assert.True(t, out.Queued)
	require.NotNil(t, out.Priority)
	assert.Equal(t, 1, *out.Priority)
}

func TestShowTask_Execute_NotFound(t *testing.T) {
	uc := usecase.NewShowTask(testutil.NewMockDocumentStore())
	_, err := uc.Execute(context.Background(), usecase.ShowTaskInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
