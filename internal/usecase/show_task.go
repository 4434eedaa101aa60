package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// ShowTaskInput contains the parameters for showing a whatdo.
type ShowTaskInput struct {
	ID string
}

// ShowTaskOutput contains the whatdo with its resolved attributes.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	Task     *domain.Task
	Tree     *domain.TaskTree
	Tags     []string // Own tags plus inherited ancestor tags
	Priority *int     // Own priority, or the nearest ancestor's
	Queued   bool
	Active   bool
}

// ShowTask is the use case for displaying a single whatdo.
type ShowTask struct {
	store domain.DocumentStore
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.DocumentStore) *ShowTask {
	return &ShowTask{store: store}
}

// Execute resolves a whatdo and its inherited attributes.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	task := tree.Find(in.ID)
	if task == nil {
		return nil, fmt.Errorf("%q: %w", in.ID, domain.ErrNotFound)
	}

	out := &ShowTaskOutput{
		Task:     task,
		Tree:     tree,
		Priority: task.Priority,
		Active:   tree.Active == task.ID,
	}
	out.Tags = append(out.Tags, task.Tags...)

	queued := map[string]bool{}
	for _, qid := range tree.Queue {
		queued[qid] = true
	}
	out.Queued = queued[task.ID]
	for _, anc := range tree.Ancestors(task.ID) {
		out.Tags = append(out.Tags, anc.Tags...)
		if out.Priority == nil {
			out.Priority = anc.Priority
		}
		if queued[anc.ID] {
			out.Queued = true
		}
	}
	return out, nil
}
