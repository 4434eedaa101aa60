package usecase

import (
	"context"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// NextTaskInput contains the selection filter.
type NextTaskInput struct {
	Filter domain.Filter
}

// NextTaskOutput contains the recommended whatdo, nil if nothing matches.
type NextTaskOutput struct {
	Candidate *domain.Candidate
}

// NextTask is the use case for recommending the next whatdo to work on.
type NextTask struct {
	store domain.DocumentStore
}

// NewNextTask creates a new NextTask use case.
func NewNextTask(store domain.DocumentStore) *NextTask {
	return &NextTask{store: store}
}

// Execute returns the head of the selection order.
func (uc *NextTask) Execute(_ context.Context, in NextTaskInput) (*NextTaskOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	return &NextTaskOutput{Candidate: domain.Next(tree, in.Filter)}, nil
}
