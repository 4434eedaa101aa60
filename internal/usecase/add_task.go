package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// AddTaskInput contains the parameters for creating a whatdo.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	ID          string
	Summary     string
	Description string
	Parent      string // Parent whatdo id (empty = root-level)
	Tags        []string
	Priority    *int
	Queue       bool // Also append the new whatdo to the queue
}

// AddTaskOutput contains the result of creating a whatdo.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for creating a whatdo.
type AddTask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.DocumentStore, logger domain.Logger) *AddTask {
	return &AddTask{store: store, logger: logger}
}

// Execute creates a whatdo and persists the document.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := domain.ValidateID(in.ID); err != nil {
		return nil, fmt.Errorf("%q: %w", in.ID, err)
	}
	if in.Summary == "" {
		return nil, fmt.Errorf("summary is required for %q", in.ID)
	}

	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          in.ID,
		Summary:     in.Summary,
		Description: in.Description,
		Tags:        in.Tags,
		Priority:    in.Priority,
		Simple:      in.Description == "" && len(in.Tags) == 0 && in.Priority == nil,
	}
	if err := tree.Insert(in.Parent, task); err != nil {
		return nil, err
	}
	if in.Queue {
		if err := tree.QueuePush(task.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.store.Save(tree); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "created")
	}
	return &AddTaskOutput{Task: task}, nil
}
