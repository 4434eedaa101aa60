package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// QueueAction selects the queue operation to perform.
type QueueAction int

// Queue actions.
const (
	QueueList QueueAction = iota
	QueuePush
	QueuePop
	QueueClear
)

// EditQueueInput contains the parameters for a queue operation.
type EditQueueInput struct {
	ID     string // Required for QueuePush
	Action QueueAction
}

// EditQueueOutput contains the queue after the operation.
type EditQueueOutput struct {
	Popped string   // Id removed by QueuePop
	Queue  []string // Queue contents after the operation
}

// EditQueue is the use case for manipulating the pinned work order.
type EditQueue struct {
	store domain.DocumentStore
}

// NewEditQueue creates a new EditQueue use case.
func NewEditQueue(store domain.DocumentStore) *EditQueue {
	return &EditQueue{store: store}
}

// Execute performs a queue operation and persists the document when it
// mutated anything.
func (uc *EditQueue) Execute(_ context.Context, in EditQueueInput) (*EditQueueOutput, error) {
	tree, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	out := &EditQueueOutput{}
	switch in.Action {
	case QueueList:
		out.Queue = tree.Queue
		return out, nil
	case QueuePush:
		if err := tree.QueuePush(in.ID); err != nil {
			return nil, err
		}
	case QueuePop:
		id, err := tree.QueuePop()
		if err != nil {
			return nil, err
		}
		out.Popped = id
	case QueueClear:
		tree.QueueClear()
	default:
		return nil, fmt.Errorf("unknown queue action %d", in.Action)
	}

	if err := uc.store.Save(tree); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}
	out.Queue = tree.Queue
	return out, nil
}
