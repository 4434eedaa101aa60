// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/runoshun/git-whatdo/internal/domain"
)

// MockDocumentStore is a test double for domain.DocumentStore backed by an
// in-memory tree.
type MockDocumentStore struct {
	Tree          *domain.TaskTree
	LoadErr       error
	SaveErr       error
	InitializeErr error
	PathV         string
	Summary       string
	ExistsV       bool
	SaveCalled    bool
	InitCalled    bool
}

// NewMockDocumentStore creates a store holding an empty tree.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		Tree:    domain.NewTaskTree(),
		PathV:   "/test/WHATDO.yaml",
		ExistsV: true,
	}
}

// Ensure MockDocumentStore implements domain.DocumentStore interface.
var _ domain.DocumentStore = (*MockDocumentStore)(nil)

// Load returns the in-memory tree or the configured error.
func (m *MockDocumentStore) Load() (*domain.TaskTree, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Tree == nil {
		return nil, domain.ErrNotInitialized
	}
	return m.Tree, nil
}

// Save records the call and replaces the in-memory tree.
func (m *MockDocumentStore) Save(tree *domain.TaskTree) error {
	m.SaveCalled = true
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tree = tree
	return nil
}

// Path returns the configured document path.
func (m *MockDocumentStore) Path() string {
	return m.PathV
}

// Exists returns the configured value.
func (m *MockDocumentStore) Exists() bool {
	return m.ExistsV
}

// Initialize records the call and creates an empty tree.
func (m *MockDocumentStore) Initialize(summary string) error {
	m.InitCalled = true
	if m.InitializeErr != nil {
		return m.InitializeErr
	}
	if m.ExistsV {
		return domain.ErrAlreadyInitialized
	}
	m.Tree = domain.NewTaskTree()
	m.Tree.Summary = summary
	m.Summary = summary
	m.ExistsV = true
	return nil
}

// MockVCS is a test double for domain.VCS.
// Fields are ordered to minimize memory padding.
type MockVCS struct {
	Branches map[string]bool

	CurrentBranchErr  error
	CreateBranchErr   error
	CheckoutErr       error
	HasUncommittedErr error
	CommitErr         error
	PushErr           error
	MergeErr          error
	DeleteBranchErr   error

	CurrentBranchName string
	DefaultBranchName string
	CreatedBranch     string
	MergedBranch      string
	DeletedBranch     string
	CommitMessage     string
	CheckedOut        []string
	PushedBranches    []string
	CommittedPaths    []string

	HasUncommittedChangesV bool
	HasRemoteV             bool
	DeletedRemote          bool
	CreateBranchCalled     bool
	CommitCalled           bool
	MergeCalled            bool
	DeleteBranchCalled     bool
}

// NewMockVCS creates a MockVCS sitting on a clean main branch.
func NewMockVCS() *MockVCS {
	return &MockVCS{
		Branches:          map[string]bool{"main": true},
		CurrentBranchName: "main",
		DefaultBranchName: "main",
		HasRemoteV:        true,
	}
}

// Ensure MockVCS implements domain.VCS interface.
var _ domain.VCS = (*MockVCS)(nil)

// CurrentBranch returns the configured branch name or error.
func (m *MockVCS) CurrentBranch() (string, error) {
	if m.CurrentBranchErr != nil {
		return "", m.CurrentBranchErr
	}
	return m.CurrentBranchName, nil
}

// DefaultBranch returns the configured default branch.
func (m *MockVCS) DefaultBranch() (string, error) {
	return m.DefaultBranchName, nil
}

// BranchExists consults the Branches map.
func (m *MockVCS) BranchExists(branch string) (bool, error) {
	return m.Branches[branch], nil
}

// CreateBranch records the call and checks out the new branch.
func (m *MockVCS) CreateBranch(branch string) error {
	m.CreateBranchCalled = true
	m.CreatedBranch = branch
	if m.CreateBranchErr != nil {
		return m.CreateBranchErr
	}
	m.Branches[branch] = true
	m.CurrentBranchName = branch
	return nil
}

// Checkout records the call and switches the current branch.
func (m *MockVCS) Checkout(branch string) error {
	m.CheckedOut = append(m.CheckedOut, branch)
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.CurrentBranchName = branch
	return nil
}

// HasUncommittedChanges returns the configured value or error.
func (m *MockVCS) HasUncommittedChanges() (bool, error) {
	if m.HasUncommittedErr != nil {
		return false, m.HasUncommittedErr
	}
	return m.HasUncommittedChangesV, nil
}

// HasRemote returns the configured value.
func (m *MockVCS) HasRemote() (bool, error) {
	return m.HasRemoteV, nil
}

// Commit records the paths and message.
func (m *MockVCS) Commit(paths []string, message string) error {
	m.CommitCalled = true
	m.CommittedPaths = append(m.CommittedPaths, paths...)
	m.CommitMessage = message
	return m.CommitErr
}

// Push records the pushed branch and returns the configured error.
func (m *MockVCS) Push(branch string) error {
	if m.PushErr != nil {
		return m.PushErr
	}
	m.PushedBranches = append(m.PushedBranches, branch)
	return nil
}

// Merge records the call and returns the configured error.
func (m *MockVCS) Merge(branch string) error {
	m.MergeCalled = true
	m.MergedBranch = branch
	return m.MergeErr
}

// DeleteBranch records the call and returns the configured error.
func (m *MockVCS) DeleteBranch(branch string, remote bool) error {
	m.DeleteBranchCalled = true
	m.DeletedBranch = branch
	m.DeletedRemote = remote
	if m.DeleteBranchErr != nil {
		return m.DeleteBranchErr
	}
	delete(m.Branches, branch)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockLogger is a no-op test double for domain.Logger.
type MockLogger struct{}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug is a no-op.
func (m *MockLogger) Debug(_, _, _ string) {}

// Info is a no-op.
func (m *MockLogger) Info(_, _, _ string) {}

// Warn is a no-op.
func (m *MockLogger) Warn(_, _, _ string) {}

// Error is a no-op.
func (m *MockLogger) Error(_, _, _ string) {}
