package usecase

import (
	"context"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// ListTasksInput contains the selection filter for listing whatdos.
type ListTasksInput struct {
	Filter domain.Filter
}

// ListTasksOutput contains the ordered candidates.
type ListTasksOutput struct {
	Candidates []domain.Candidate // Selection order: queued first, then priority
	Tree       *domain.TaskTree
}

// ListTasks is the use case for listing whatdos in selection order.
type ListTasks struct {
	store domain.DocumentStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.DocumentStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute lists the leaf whatdos matching the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{
		Candidates: domain.Select(tree, in.Filter),
		Tree:       tree,
	}, nil
}
