package domain

import "fmt"

// TaskTree is the in-memory form of the whole whatdo document.
// Tasks are stored arena-style: a flat map keyed by id, with parent/child
// relationships expressed as id references. Ids are unique across the whole
// tree, so queue entries and the active pointer always resolve unambiguously.
// Fields are ordered to minimize memory padding.
type TaskTree struct {
	tasks   map[string]*Task
	Summary string   // Project summary (top-level "summary" key)
	Active  string   // Active task id (empty = idle)
	Queue   []string // Manually pinned work order, highest priority first
	roots   []string // Ordered root-level task ids
}

// NewTaskTree creates an empty tree.
func NewTaskTree() *TaskTree {
	return &TaskTree{tasks: make(map[string]*Task)}
}

// Roots returns the ordered root-level task ids.
func (tr *TaskTree) Roots() []string {
	return tr.roots
}

// Find returns the task with the given id, or nil if it does not exist.
// Ids are globally unique, so no search-order tie-break is needed.
func (tr *TaskTree) Find(id string) *Task {
	return tr.tasks[id]
}

// Len returns the total number of tasks in the tree.
func (tr *TaskTree) Len() int {
	return len(tr.tasks)
}

// Insert adds a task under the given parent (empty parentID = root-level).
// The task's id must not exist anywhere in the tree.
func (tr *TaskTree) Insert(parentID string, task *Task) error {
	if task.ID == "" {
		return ErrInvalidID
	}
	if _, ok := tr.tasks[task.ID]; ok {
		return fmt.Errorf("%q: %w", task.ID, ErrDuplicateID)
	}
	if parentID == "" {
		task.Parent = ""
		tr.roots = append(tr.roots, task.ID)
		tr.tasks[task.ID] = task
		return nil
	}
	parent, ok := tr.tasks[parentID]
	if !ok {
		return fmt.Errorf("parent %q: %w", parentID, ErrNotFound)
	}
	task.Parent = parentID
	parent.Children = append(parent.Children, task.ID)
	tr.tasks[task.ID] = task
	return nil
}

// Remove deletes the task and its whole subtree, returning the removed task.
// Queue entries referencing removed tasks are pruned so the document stays
// well-formed. The active pointer is left untouched; callers that remove the
// active task are expected to clear it themselves (finish does this last).
func (tr *TaskTree) Remove(id string) (*Task, error) {
	task, ok := tr.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}

	removed := map[string]bool{}
	tr.removeSubtree(id, removed)

	if task.Parent == "" {
		tr.roots = removeID(tr.roots, id)
	} else if parent := tr.tasks[task.Parent]; parent != nil {
		parent.Children = removeID(parent.Children, id)
	}

	var queue []string
	for _, qid := range tr.Queue {
		if !removed[qid] {
			queue = append(queue, qid)
		}
	}
	tr.Queue = queue

	return task, nil
}

func (tr *TaskTree) removeSubtree(id string, removed map[string]bool) {
	task, ok := tr.tasks[id]
	if !ok {
		return
	}
	for _, child := range task.Children {
		tr.removeSubtree(child, removed)
	}
	delete(tr.tasks, id)
	removed[id] = true
}

// SetActive updates the active task pointer. A non-empty id must resolve.
func (tr *TaskTree) SetActive(id string) error {
	if id != "" {
		if _, ok := tr.tasks[id]; !ok {
			return fmt.Errorf("%q: %w", id, ErrNotFound)
		}
	}
	tr.Active = id
	return nil
}

// ActiveTask returns the active task. It fails with ErrMalformedDocument if
// the pointer is set but its target has been removed (e.g. the document was
// edited externally); state is never silently cleared.
func (tr *TaskTree) ActiveTask() (*Task, error) {
	if tr.Active == "" {
		return nil, nil
	}
	task, ok := tr.tasks[tr.Active]
	if !ok {
		return nil, fmt.Errorf("active whatdo %q does not exist: %w", tr.Active, ErrMalformedDocument)
	}
	return task, nil
}

// QueuePush appends an id to the queue. The id must resolve and must not
// already be queued.
func (tr *TaskTree) QueuePush(id string) error {
	if _, ok := tr.tasks[id]; !ok {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	for _, qid := range tr.Queue {
		if qid == id {
			return nil
		}
	}
	tr.Queue = append(tr.Queue, id)
	return nil
}

// QueuePop removes and returns the head of the queue.
func (tr *TaskTree) QueuePop() (string, error) {
	if len(tr.Queue) == 0 {
		return "", ErrQueueEmpty
	}
	id := tr.Queue[0]
	tr.Queue = tr.Queue[1:]
	return id, nil
}

// QueueClear empties the queue.
func (tr *TaskTree) QueueClear() {
	tr.Queue = nil
}

// Walk visits every task in depth-first, declaration order. The walk order
// is the tie-break for equal-priority selection, so it must stay stable.
func (tr *TaskTree) Walk(fn func(t *Task)) {
	for _, id := range tr.roots {
		tr.walk(id, fn)
	}
}

func (tr *TaskTree) walk(id string, fn func(t *Task)) {
	task, ok := tr.tasks[id]
	if !ok {
		return
	}
	fn(task)
	for _, child := range task.Children {
		tr.walk(child, fn)
	}
}

// Ancestors returns the chain of ancestor tasks from direct parent to root.
func (tr *TaskTree) Ancestors(id string) []*Task {
	var chain []*Task
	task := tr.tasks[id]
	for task != nil && task.Parent != "" {
		task = tr.tasks[task.Parent]
		if task != nil {
			chain = append(chain, task)
		}
	}
	return chain
}

// Validate checks the structural invariants that load must enforce: every
// queue entry resolves, and the active pointer (if set) resolves.
// Duplicate ids cannot be represented here; the codec rejects them earlier.
func (tr *TaskTree) Validate() error {
	for _, qid := range tr.Queue {
		if _, ok := tr.tasks[qid]; !ok {
			return fmt.Errorf("queue entry %q does not exist: %w", qid, ErrMalformedDocument)
		}
	}
	if tr.Active != "" {
		if _, ok := tr.tasks[tr.Active]; !ok {
			return fmt.Errorf("active whatdo %q does not exist: %w", tr.Active, ErrMalformedDocument)
		}
	}
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
