package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// ResolveTaskInput contains the parameters for resolving the active whatdo.
type ResolveTaskInput struct {
	Merge  bool // Merge the work branch into the default branch
	Push   bool // Push the work branch (and the default branch if merged)
	Finish bool // Finish the whatdo after resolving
}

// ResolveTaskOutput contains the result of resolving the active whatdo.
// Fields are ordered to minimize memory padding.
type ResolveTaskOutput struct {
	Task     *domain.Task
	Finished *FinishTaskOutput // Set when Finish was requested
	Branch   string
	Merged   bool
	Pushed   bool
}

// ResolveTask is the use case for merging/pushing the active whatdo's branch
// without ending the whatdo.
type ResolveTask struct {
	store  domain.DocumentStore
	vcs    domain.VCS
	finish *FinishTask
	logger domain.Logger
}

// NewResolveTask creates a new ResolveTask use case.
func NewResolveTask(store domain.DocumentStore, vcs domain.VCS, finish *FinishTask, logger domain.Logger) *ResolveTask {
	return &ResolveTask{
		store:  store,
		vcs:    vcs,
		finish: finish,
		logger: logger,
	}
}

// Execute resolves the active whatdo:
//  1. refuse to touch anything while the working tree is dirty
//  2. if merging, check out the default branch and merge the work branch;
//     a conflict aborts with the merge left half-applied per git's own
//     semantics, the whatdo stays active and the user resolves manually
//  3. push the updated branch(es)
//
// The tree state is untouched unless Finish is set, in which case the
// finish flow runs afterwards.
func (uc *ResolveTask) Execute(ctx context.Context, in ResolveTaskInput) (*ResolveTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	task, err := tree.ActiveTask()
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNoActiveTask
	}
	branch := domain.BranchName(task.ID)

	dirty, err := uc.vcs.HasUncommittedChanges()
	if err != nil {
		return nil, err
	}
	if dirty {
		return nil, fmt.Errorf("commit your work first: %w", domain.ErrDirtyWorkingTree)
	}

	out := &ResolveTaskOutput{Task: task, Branch: branch}

	var defaultBranch string
	if in.Merge || in.Push {
		defaultBranch, err = uc.vcs.DefaultBranch()
		if err != nil {
			return nil, err
		}
	}

	if in.Merge {
		if err := uc.vcs.Checkout(defaultBranch); err != nil {
			return nil, err
		}
		if err := uc.vcs.Merge(branch); err != nil {
			if errors.Is(err, domain.ErrMergeConflict) && uc.logger != nil {
				uc.logger.Warn(task.ID, "workflow", "merge conflict during resolve, whatdo stays active")
			}
			return nil, err
		}
		out.Merged = true
	}

	if in.Push {
		hasRemote, err := uc.vcs.HasRemote()
		if err != nil {
			return nil, err
		}
		if hasRemote {
			if err := uc.vcs.Push(branch); err != nil {
				return nil, err
			}
			if out.Merged {
				if err := uc.vcs.Push(defaultBranch); err != nil {
					return nil, err
				}
			}
			out.Pushed = true
		}
	}

	if in.Finish {
		finished, err := uc.finish.Execute(ctx, FinishTaskInput{ID: task.ID})
		if err != nil {
			return nil, err
		}
		out.Finished = finished
		return out, nil
	}

	// Work continues on the task branch after a resolve without finish.
	if out.Merged {
		if err := uc.vcs.Checkout(branch); err != nil {
			return nil, err
		}
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "workflow", fmt.Sprintf("resolved (merged=%t pushed=%t)", out.Merged, out.Pushed))
	}
	return out, nil
}
