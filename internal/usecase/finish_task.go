package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// FinishTaskInput contains the parameters for finishing a whatdo.
type FinishTaskInput struct {
	ID string // Whatdo id; empty = the active whatdo
}

// FinishTaskOutput contains the result of finishing a whatdo.
// Fields are ordered to minimize memory padding.
type FinishTaskOutput struct {
	Task          *domain.Task // Removed task (nil when resuming a prior run)
	Branch        string
	Resumed       bool // Removal was already committed by an earlier run
	Merged        bool
	Pushed        bool
	BranchDeleted bool
}

// FinishTask is the use case for ending a whatdo: removing it from the
// document and merging its branch into the default branch.
type FinishTask struct {
	store  domain.DocumentStore
	vcs    domain.VCS
	logger domain.Logger
}

// NewFinishTask creates a new FinishTask use case.
func NewFinishTask(store domain.DocumentStore, vcs domain.VCS, logger domain.Logger) *FinishTask {
	return &FinishTask{store: store, vcs: vcs, logger: logger}
}

// Execute finishes a whatdo:
//  1. remove the task (and its subtree) from the tree, clearing the active
//     pointer and any queue entries that referenced it
//  2. persist the document
//  3. commit the removal on the work branch
//  4. push the work branch
//  5. check out the default branch and merge the work branch
//  6. push the default branch
//  7. delete the work branch locally and remotely
//
// The removal is committed before the merge, so a merge conflict leaves a
// named re-enterable state: the document (on the work branch) already shows
// the task removed while the branches are not yet merged. Re-running finish
// for the same id detects that state and retries only the merge and the
// cleanup, never the removal. An interrupted run is likewise detected from
// being checked out on a branch whose task no longer resolves.
func (uc *FinishTask) Execute(_ context.Context, in FinishTaskInput) (*FinishTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	defaultBranch, err := uc.vcs.DefaultBranch()
	if err != nil {
		return nil, err
	}

	id := in.ID
	if id == "" {
		id, err = uc.inferID(tree, defaultBranch)
		if err != nil {
			return nil, err
		}
	}

	branch := domain.BranchName(id)
	task := tree.Find(id)
	isActive := tree.Active == id

	branchExists, err := uc.vcs.BranchExists(branch)
	if err != nil {
		return nil, err
	}

	out := &FinishTaskOutput{Branch: branch}

	if task == nil {
		// Only a previously interrupted finish leaves a work branch whose
		// task is gone from the document; anything else is a bad id.
		if !branchExists {
			return nil, fmt.Errorf("%q: %w", id, domain.ErrNotFound)
		}
		out.Resumed = true
	} else {
		// The removal commit must land on the work branch when there is one.
		if branchExists {
			current, curErr := uc.vcs.CurrentBranch()
			if curErr != nil {
				return nil, curErr
			}
			if current != branch {
				if err := uc.vcs.Checkout(branch); err != nil {
					return nil, err
				}
			}
		}

		removed, err := tree.Remove(id)
		if err != nil {
			return nil, err
		}
		if isActive {
			_ = tree.SetActive("")
		}
		if err := uc.store.Save(tree); err != nil {
			return nil, fmt.Errorf("persist document: %w", err)
		}
		if err := uc.vcs.Commit([]string{uc.store.Path()}, fmt.Sprintf("wd: finish %s", id)); err != nil {
			return nil, err
		}
		out.Task = removed
	}

	hasRemote, err := uc.vcs.HasRemote()
	if err != nil {
		return nil, err
	}

	if branchExists {
		if hasRemote {
			if err := uc.vcs.Push(branch); err != nil {
				return nil, err
			}
		}

		current, err := uc.vcs.CurrentBranch()
		if err != nil {
			return nil, err
		}
		if current != defaultBranch {
			if err := uc.vcs.Checkout(defaultBranch); err != nil {
				return nil, err
			}
		}
		if err := uc.vcs.Merge(branch); err != nil {
			if errors.Is(err, domain.ErrMergeConflict) {
				if uc.logger != nil {
					uc.logger.Error(id, "workflow", "merge conflict while finishing; removal is already committed")
				}
				return nil, fmt.Errorf(
					"merging %s into %s: the removal is already committed on %s; resolve the conflict, commit, and re-run 'wd finish %s' to retry only the merge and cleanup: %w",
					branch, defaultBranch, branch, id, err)
			}
			return nil, err
		}
		out.Merged = true

		if hasRemote {
			if err := uc.vcs.Push(defaultBranch); err != nil {
				return nil, err
			}
			out.Pushed = true
		}

		if err := uc.vcs.DeleteBranch(branch, hasRemote); err != nil {
			return nil, err
		}
		out.BranchDeleted = true
	}

	if uc.logger != nil {
		uc.logger.Info(id, "workflow", fmt.Sprintf("finished (merged=%t resumed=%t)", out.Merged, out.Resumed))
	}
	return out, nil
}

// inferID resolves which whatdo a bare 'wd finish' refers to: the active
// one, or, when an interrupted finish already cleared the pointer, the
// task-named branch that is still checked out.
func (uc *FinishTask) inferID(tree *domain.TaskTree, defaultBranch string) (string, error) {
	if tree.Active != "" {
		return tree.Active, nil
	}
	current, err := uc.vcs.CurrentBranch()
	if err != nil {
		return "", err
	}
	if current != defaultBranch && tree.Find(current) == nil {
		return current, nil
	}
	return "", domain.ErrNoActiveTask
}
