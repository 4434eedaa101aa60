package yamlstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/infra/yamlstore"
)

func newStore(t *testing.T) *yamlstore.Store {
	t.Helper()
	return yamlstore.New(filepath.Join(t.TempDir(), domain.DocumentFileName))
}

func writeDoc(t *testing.T, store *yamlstore.Store, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(), []byte(doc), 0o644))
}

func TestStore_Load(t *testing.T) {
	store := newStore(t)
	writeDoc(t, store, `summary: demo project
active: auth-login
queue:
  - docs
whatdos:
  auth:
    summary: Auth overhaul
    tags: [backend]
    priority: 1
    whatdos:
      auth-login: Login flow
      auth-tokens:
        summary: Token refresh
        description: Rotate refresh tokens.
  docs: Write the docs
`)

	tree, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "demo project", tree.Summary)
	assert.Equal(t, "auth-login", tree.Active)
	assert.Equal(t, []string{"docs"}, tree.Queue)
	assert.Equal(t, []string{"auth", "docs"}, tree.Roots())

	auth := tree.Find("auth")
	require.NotNil(t, auth)
	assert.Equal(t, []string{"backend"}, auth.Tags)
	require.NotNil(t, auth.Priority)
	assert.Equal(t, 1, *auth.Priority)
	assert.Equal(t, []string{"auth-login", "auth-tokens"}, auth.Children)

	login := tree.Find("auth-login")
	require.NotNil(t, login)
	assert.Equal(t, "Login flow", login.Summary)
	assert.True(t, login.Simple)

	tokens := tree.Find("auth-tokens")
	require.NotNil(t, tokens)
	assert.Equal(t, "Rotate refresh tokens.", tokens.Description)
	assert.False(t, tokens.Simple)
}

func TestStore_Load_NotInitialized(t *testing.T) {
	store := newStore(t)
	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestStore_Load_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"unknown top-level key", "summary: x\nbogus: y\n"},
		{"top level not a mapping", "- a\n- b\n"},
		{"duplicate id", "whatdos:\n  auth:\n    summary: a\n    whatdos:\n      dup: x\n  dup: y\n"},
		{"queue not a sequence", "queue: docs\n"},
		{"queue entry unresolvable", "queue:\n  - nope\nwhatdos:\n  docs: x\n"},
		{"active unresolvable", "active: nope\nwhatdos:\n  docs: x\n"},
		{"unknown task key", "whatdos:\n  docs:\n    summary: x\n    bogus: y\n"},
		{"priority not an integer", "whatdos:\n  docs:\n    summary: x\n    priority: soon\n"},
		{"tags not a sequence", "whatdos:\n  docs:\n    summary: x\n    tags: backend\n"},
		{"task neither string nor mapping", "whatdos:\n  docs:\n    - a\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStore(t)
			writeDoc(t, store, tc.doc)
			_, err := store.Load()
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	store := newStore(t)

	tree := domain.NewTaskTree()
	tree.Summary = "demo"
	p := 2
	require.NoError(t, tree.Insert("", &domain.Task{ID: "auth", Summary: "Auth", Tags: []string{"backend"}, Priority: &p}))
	require.NoError(t, tree.Insert("auth", &domain.Task{ID: "auth-login", Summary: "Login", Simple: true}))
	require.NoError(t, tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs", Simple: true}))
	require.NoError(t, tree.QueuePush("docs"))
	require.NoError(t, tree.SetActive("auth-login"))

	require.NoError(t, store.Save(tree))

	got, err := store.Load()
	require.NoError(t, err)

	// Declaration order survives the round trip; it is the selection tie-break.
	assert.Equal(t, tree.Roots(), got.Roots())
	assert.Equal(t, tree.Queue, got.Queue)
	assert.Equal(t, tree.Active, got.Active)
	assert.Equal(t, tree.Summary, got.Summary)
	assert.Equal(t, *tree.Find("auth").Priority, *got.Find("auth").Priority)
	// Simple tasks keep the short "id: summary" form.
	assert.True(t, got.Find("docs").Simple)
	assert.False(t, got.Find("auth").Simple)
}

func TestStore_Save_OmitsEmptySections(t *testing.T) {
	store := newStore(t)
	tree := domain.NewTaskTree()
	tree.Summary = "demo"
	require.NoError(t, tree.Insert("", &domain.Task{ID: "docs", Summary: "Docs", Simple: true}))
	require.NoError(t, store.Save(tree))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "active:")
	assert.NotContains(t, string(data), "queue:")
}

func TestStore_Initialize(t *testing.T) {
	store := newStore(t)
	assert.False(t, store.Exists())

	require.NoError(t, store.Initialize("my project"))
	assert.True(t, store.Exists())

	tree, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my project", tree.Summary)
	assert.Zero(t, tree.Len())

	assert.ErrorIs(t, store.Initialize("again"), domain.ErrAlreadyInitialized)
}
