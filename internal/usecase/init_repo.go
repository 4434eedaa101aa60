package usecase

import (
	"context"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// InitRepoInput contains the parameters for initializing the document.
type InitRepoInput struct {
	Summary string // Project summary (defaults to the repo directory name)
}

// InitRepoOutput contains the result of initialization.
type InitRepoOutput struct {
	Path string // Path of the created document
}

// InitRepo is the use case for creating an empty whatdo document.
type InitRepo struct {
	store domain.DocumentStore
}

// NewInitRepo creates a new InitRepo use case.
func NewInitRepo(store domain.DocumentStore) *InitRepo {
	return &InitRepo{store: store}
}

// Execute creates the document, failing if one already exists.
func (uc *InitRepo) Execute(_ context.Context, in InitRepoInput) (*InitRepoOutput, error) {
	if err := uc.store.Initialize(in.Summary); err != nil {
		return nil, err
	}
	return &InitRepoOutput{Path: uc.store.Path()}, nil
}
