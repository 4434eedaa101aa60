// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// StartTaskInput contains the parameters for starting a whatdo.
type StartTaskInput struct {
	ID string // Whatdo id to start
}

// StartTaskOutput contains the result of starting a whatdo.
// Fields are ordered to minimize memory padding.
type StartTaskOutput struct {
	Task        *domain.Task
	PushWarning error  // Non-fatal push failure, nil if pushed or push skipped
	Branch      string // Branch created for the whatdo
	Resumed     bool   // Branch was already created by an interrupted run
}

// StartTask is the use case for binding a whatdo to a new work branch.
type StartTask struct {
	store        domain.DocumentStore
	vcs          domain.VCS
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewStartTask creates a new StartTask use case.
func NewStartTask(store domain.DocumentStore, vcs domain.VCS, configLoader domain.ConfigLoader, logger domain.Logger) *StartTask {
	return &StartTask{
		store:        store,
		vcs:          vcs,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute starts a whatdo:
//  1. resolve the task in the tree
//  2. create and check out a branch named after the task id
//  3. set the active pointer
//  4. persist the document
//  5. push the branch upstream (failure is a warning, not an error: local
//     work can proceed without upstream visibility)
//
// A failed step leaves everything before it in place, and re-running the
// command continues from the failed step: if the branch already exists but
// is the one checked out, step 2 is treated as already done.
func (uc *StartTask) Execute(_ context.Context, in StartTaskInput) (*StartTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	if tree.Active != "" && tree.Active != in.ID {
		return nil, fmt.Errorf("%q is already started, finish it first: %w", tree.Active, domain.ErrTaskAlreadyActive)
	}

	task := tree.Find(in.ID)
	if task == nil {
		return nil, fmt.Errorf("%q: %w", in.ID, domain.ErrNotFound)
	}

	branch := domain.BranchName(task.ID)
	resumed := false
	exists, err := uc.vcs.BranchExists(branch)
	if err != nil {
		return nil, err
	}
	if exists {
		current, err := uc.vcs.CurrentBranch()
		if err != nil {
			return nil, err
		}
		if current != branch {
			return nil, fmt.Errorf("%s: %w", branch, domain.ErrBranchExists)
		}
		// An earlier run created and checked out the branch before failing;
		// continue from the persistence step.
		resumed = true
	} else {
		if err := uc.vcs.CreateBranch(branch); err != nil {
			return nil, err
		}
	}

	if err := tree.SetActive(task.ID); err != nil {
		return nil, err
	}
	if err := uc.store.Save(tree); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}

	out := &StartTaskOutput{Task: task, Branch: branch, Resumed: resumed}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Push.OnStart {
		hasRemote, remoteErr := uc.vcs.HasRemote()
		if remoteErr != nil {
			out.PushWarning = remoteErr
		} else if hasRemote {
			if pushErr := uc.vcs.Push(branch); pushErr != nil {
				out.PushWarning = pushErr
			}
		}
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "workflow", fmt.Sprintf("started on branch %q", branch))
		if out.PushWarning != nil {
			uc.logger.Warn(task.ID, "workflow", fmt.Sprintf("push failed: %v", out.PushWarning))
		}
	}

	return out, nil
}
