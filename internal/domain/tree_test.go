package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-whatdo/internal/domain"
)

func intPtr(v int) *int { return &v }

// buildTree creates:
//
//	auth
//	  auth-login
//	  auth-tokens
//	docs
func buildTree(t *testing.T) *domain.TaskTree {
	t.Helper()
	tree := domain.NewTaskTree()
	require.NoError(t, tree.Insert("", &domain.Task{ID: "auth", Summary: "Auth overhaul"}))
	require.NoError(t, tree.Insert("auth", &domain.Task{ID: "auth-login", Summary: "Login flow"}))
	require.NoError(t, tree.Insert("auth", &domain.Task{ID: "auth-tokens", Summary: "Token refresh"}))
	require.NoError(t, tree.Insert("", &domain.Task{ID: "docs", Summary: "Write docs"}))
	return tree
}

func TestTaskTree_Insert(t *testing.T) {
	tree := buildTree(t)

	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, []string{"auth", "docs"}, tree.Roots())
	assert.Equal(t, "auth", tree.Find("auth-login").Parent)
	assert.Equal(t, []string{"auth-login", "auth-tokens"}, tree.Find("auth").Children)
}

func TestTaskTree_Insert_DuplicateID(t *testing.T) {
	tree := buildTree(t)

	err := tree.Insert("", &domain.Task{ID: "docs", Summary: "again"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	// Duplicates are rejected anywhere in the tree, not just among siblings.
	err = tree.Insert("docs", &domain.Task{ID: "auth-login", Summary: "again"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestTaskTree_Insert_MissingParent(t *testing.T) {
	tree := buildTree(t)

	err := tree.Insert("nope", &domain.Task{ID: "orphan", Summary: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, tree.Find("orphan"))
}

func TestTaskTree_Insert_EmptyID(t *testing.T) {
	tree := domain.NewTaskTree()
	assert.ErrorIs(t, tree.Insert("", &domain.Task{Summary: "x"}), domain.ErrInvalidID)
}

func TestTaskTree_Remove_Subtree(t *testing.T) {
	tree := buildTree(t)
	require.NoError(t, tree.QueuePush("auth-tokens"))
	require.NoError(t, tree.QueuePush("docs"))

	removed, err := tree.Remove("auth")
	require.NoError(t, err)

	assert.Equal(t, "auth", removed.ID)
	assert.Nil(t, tree.Find("auth-login"))
	assert.Nil(t, tree.Find("auth-tokens"))
	assert.Equal(t, []string{"docs"}, tree.Roots())
	// Queue entries pointing into the removed subtree are pruned.
	assert.Equal(t, []string{"docs"}, tree.Queue)
}

func TestTaskTree_Remove_Child(t *testing.T) {
	tree := buildTree(t)

	_, err := tree.Remove("auth-login")
	require.NoError(t, err)

	assert.Equal(t, []string{"auth-tokens"}, tree.Find("auth").Children)
	assert.Equal(t, 3, tree.Len())
}

func TestTaskTree_Remove_NotFound(t *testing.T) {
	tree := buildTree(t)
	_, err := tree.Remove("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskTree_ActiveTask(t *testing.T) {
	tree := buildTree(t)

	// Idle.
	active, err := tree.ActiveTask()
	require.NoError(t, err)
	assert.Nil(t, active)

	require.NoError(t, tree.SetActive("auth-login"))
	active, err = tree.ActiveTask()
	require.NoError(t, err)
	assert.Equal(t, "auth-login", active.ID)

	assert.ErrorIs(t, tree.SetActive("nope"), domain.ErrNotFound)
}

func TestTaskTree_ActiveTask_Dangling(t *testing.T) {
	tree := buildTree(t)
	require.NoError(t, tree.SetActive("docs"))

	_, err := tree.Remove("docs")
	require.NoError(t, err)

	_, err = tree.ActiveTask()
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestTaskTree_Queue(t *testing.T) {
	tree := buildTree(t)

	assert.ErrorIs(t, tree.QueuePush("nope"), domain.ErrNotFound)

	require.NoError(t, tree.QueuePush("docs"))
	require.NoError(t, tree.QueuePush("auth-login"))
	// Pushing an already-queued id is a no-op.
	require.NoError(t, tree.QueuePush("docs"))
	assert.Equal(t, []string{"docs", "auth-login"}, tree.Queue)

	id, err := tree.QueuePop()
	require.NoError(t, err)
	assert.Equal(t, "docs", id)
	assert.Equal(t, []string{"auth-login"}, tree.Queue)

	tree.QueueClear()
	assert.Empty(t, tree.Queue)

	_, err = tree.QueuePop()
	assert.ErrorIs(t, err, domain.ErrQueueEmpty)
}

func TestTaskTree_Walk_Order(t *testing.T) {
	tree := buildTree(t)

	var visited []string
	tree.Walk(func(task *domain.Task) {
		visited = append(visited, task.ID)
	})
	assert.Equal(t, []string{"auth", "auth-login", "auth-tokens", "docs"}, visited)
}

func TestTaskTree_Ancestors(t *testing.T) {
	tree := buildTree(t)
	require.NoError(t, tree.Insert("auth-login", &domain.Task{ID: "auth-login-ui", Summary: "UI"}))

	chain := tree.Ancestors("auth-login-ui")
	require.Len(t, chain, 2)
	assert.Equal(t, "auth-login", chain[0].ID)
	assert.Equal(t, "auth", chain[1].ID)

	assert.Empty(t, tree.Ancestors("auth"))
}

func TestTaskTree_Validate(t *testing.T) {
	tree := buildTree(t)
	require.NoError(t, tree.Validate())

	tree.Queue = []string{"nope"}
	assert.ErrorIs(t, tree.Validate(), domain.ErrMalformedDocument)

	tree.Queue = nil
	tree.Active = "nope"
	assert.ErrorIs(t, tree.Validate(), domain.ErrMalformedDocument)
}

func TestTask_Clone(t *testing.T) {
	task := &domain.Task{
		ID:       "a",
		Summary:  "s",
		Tags:     []string{"x"},
		Children: []string{"b"},
		Priority: intPtr(1),
	}
	clone := task.Clone()

	clone.Tags[0] = "y"
	*clone.Priority = 2
	assert.Equal(t, "x", task.Tags[0])
	assert.Equal(t, 1, *task.Priority)
}
