package usecase

import (
	"context"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// StatusInput is empty; status takes no parameters.
type StatusInput struct{}

// StatusOutput describes the active whatdo and what comes next.
// Fields are ordered to minimize memory padding.
type StatusOutput struct {
	Active        *domain.Task       // nil = idle
	Summary       string             // Project summary
	CurrentBranch string
	Next          []domain.Candidate // Selection order, active task excluded
	Dirty         bool
}

// Status is the use case for the default no-argument command.
type Status struct {
	store domain.DocumentStore
	vcs   domain.VCS
}

// NewStatus creates a new Status use case.
func NewStatus(store domain.DocumentStore, vcs domain.VCS) *Status {
	return &Status{store: store, vcs: vcs}
}

// Execute reports the active whatdo, branch state and the next candidates.
func (uc *Status) Execute(_ context.Context, _ StatusInput) (*StatusOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	active, err := tree.ActiveTask()
	if err != nil {
		return nil, err
	}

	out := &StatusOutput{Active: active, Summary: tree.Summary}
	for _, c := range domain.Select(tree, domain.Filter{}) {
		if active != nil && c.Task.ID == active.ID {
			continue
		}
		out.Next = append(out.Next, c)
	}

	out.CurrentBranch, err = uc.vcs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	out.Dirty, err = uc.vcs.HasUncommittedChanges()
	if err != nil {
		return nil, err
	}
	return out, nil
}
