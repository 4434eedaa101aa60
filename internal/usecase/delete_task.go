package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a whatdo.
type DeleteTaskInput struct {
	ID string
}

// DeleteTaskOutput contains the result of deleting a whatdo.
type DeleteTaskOutput struct {
	Task *domain.Task // Root of the removed subtree
}

// DeleteTask is the use case for removing a whatdo (and its subtree) without
// any branch ceremony. The active whatdo can only be removed via finish.
type DeleteTask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.DocumentStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{store: store, logger: logger}
}

// Execute removes the whatdo and persists the document.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	if tree.Active == in.ID {
		return nil, fmt.Errorf("%q: %w", in.ID, domain.ErrActiveTask)
	}

	removed, err := tree.Remove(in.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(tree); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info(in.ID, "task", "deleted")
	}
	return &DeleteTaskOutput{Task: removed}, nil
}
