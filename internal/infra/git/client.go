// Package git implements the VCS gateway.
//
// Read-side queries (branch lookups, remotes) go through go-git; mutations
// (checkout, merge, push, branch deletion) shell out to git itself so that
// conflict and abort semantics are exactly the ones the user will resolve
// with their own git commands.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// Client provides git operations for a single repository.
// Fields are ordered to minimize memory padding.
type Client struct {
	repo            *gogit.Repository
	repoRoot        string // Working tree root
	gitDir          string // .git directory
	remote          string // Remote name for pushes
	defaultOverride string // Configured default branch (empty = detect)
}

// NewClient opens the repository containing dir.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	repoRoot, gitDir, err := findGitRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Client{
		repo:     repo,
		repoRoot: repoRoot,
		gitDir:   gitDir,
		remote:   "origin",
	}, nil
}

// Configure applies branch settings from the loaded configuration.
// Config loading itself needs the .git directory, so this runs after NewClient.
func (c *Client) Configure(branch domain.BranchConfig) {
	if branch.Remote != "" {
		c.remote = branch.Remote
	}
	c.defaultOverride = branch.Default
}

// Ensure Client implements the domain.VCS interface.
var _ domain.VCS = (*Client)(nil)

// RepoRoot returns the working tree root.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w: %v", domain.ErrVCS, err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached: %w", domain.ErrVCS)
	}
	return head.Name().Short(), nil
}

// BranchExists checks if a local branch exists.
func (c *Client) BranchExists(branch string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("lookup branch %s: %w: %v", branch, domain.ErrVCS, err)
}

// DefaultBranch returns the configured default branch, or detects it from
// the remote HEAD, falling back to main/master.
func (c *Client) DefaultBranch() (string, error) {
	if c.defaultOverride != "" {
		return c.defaultOverride, nil
	}
	ref, err := c.repo.Reference(plumbing.ReferenceName("refs/remotes/"+c.remote+"/HEAD"), false)
	if err == nil && ref.Type() == plumbing.SymbolicReference {
		return strings.TrimPrefix(ref.Target().Short(), c.remote+"/"), nil
	}
	for _, name := range []string{"main", "master"} {
		exists, err := c.BranchExists(name)
		if err != nil {
			return "", err
		}
		if exists {
			return name, nil
		}
	}
	return "", fmt.Errorf("cannot determine default branch: %w", domain.ErrVCS)
}

// HasRemote reports whether the push remote is configured.
func (c *Client) HasRemote() (bool, error) {
	_, err := c.repo.Remote(c.remote)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("lookup remote %s: %w: %v", c.remote, domain.ErrVCS, err)
}

// HasUncommittedChanges reports staged or unstaged changes.
// Uses porcelain status rather than go-git's worktree status, which does not
// honor all ignore rules.
func (c *Client) HasUncommittedChanges() (bool, error) {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return len(out) > 0, nil
}

// CreateBranch creates a branch at HEAD and checks it out.
func (c *Client) CreateBranch(branch string) error {
	exists, err := c.BranchExists(branch)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", branch, domain.ErrBranchExists)
	}
	_, err = c.run("checkout", "-b", branch)
	return err
}

// Checkout switches to an existing branch.
func (c *Client) Checkout(branch string) error {
	_, err := c.run("checkout", branch)
	return err
}

// Commit stages the given paths and commits them.
func (c *Client) Commit(paths []string, message string) error {
	args := append([]string{"add", "--"}, paths...)
	if _, err := c.run(args...); err != nil {
		return err
	}
	_, err := c.run("commit", "-m", message)
	return err
}

// Push pushes a branch to the remote, setting upstream if needed.
func (c *Client) Push(branch string) error {
	_, err := c.run("push", "-u", c.remote, branch)
	return err
}

// Merge merges a branch into the current branch. Conflicts are reported as
// ErrMergeConflict; the half-applied merge is left for the user to resolve
// or abort with git itself.
func (c *Client) Merge(branch string) error {
	out, err := c.runRaw("merge", "--no-ff", branch)
	if err == nil {
		return nil
	}
	if strings.Contains(out, "CONFLICT") || strings.Contains(out, "Automatic merge failed") {
		return fmt.Errorf("merging %s: %w", branch, domain.ErrMergeConflict)
	}
	return fmt.Errorf("git merge %s: %s: %w", branch, strings.TrimSpace(out), domain.ErrVCS)
}

// DeleteBranch deletes a local branch and optionally its remote counterpart.
func (c *Client) DeleteBranch(branch string, remote bool) error {
	if _, err := c.run("branch", "-d", branch); err != nil {
		return err
	}
	if remote {
		if _, err := c.run("push", c.remote, "--delete", branch); err != nil {
			return err
		}
	}
	return nil
}

// run executes a git command, wrapping failures with the diagnostic output.
func (c *Client) run(args ...string) (string, error) {
	out, err := c.runRaw(args...)
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(out), domain.ErrVCS)
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) runRaw(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.repoRoot
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// findGitRoot resolves the working tree root and the .git directory.
func findGitRoot(dir string) (repoRoot, gitDir string, err error) {
	cmd := exec.Command("git", "rev-parse", "--git-common-dir")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", "", domain.ErrNotGitRepository
	}
	gitDir = strings.TrimSpace(string(out))

	cmd = exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	toplevel, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("find toplevel: %w: %v", domain.ErrVCS, err)
	}
	repoRoot = strings.TrimSpace(string(toplevel))

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	return repoRoot, filepath.Clean(gitDir), nil
}
