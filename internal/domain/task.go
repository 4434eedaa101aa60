// Package domain contains core business entities and interfaces.
package domain

// Task represents a single whatdo: a unit of work that is either a leaf
// (directly workable) or a container of sub-whatdos.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID          string   // Unique id across the whole tree, used as branch name
	Summary     string   // One-line summary (required)
	Description string   // Longer description (optional)
	Parent      string   // Parent task id (empty = root-level)
	Tags        []string // Tags, inherited downward for filtering
	Children    []string // Ordered child ids (empty = leaf)
	Priority    *int     // Lower = more urgent, nil = least urgent
	Simple      bool     // Written in the short "id: summary" document form
}

// IsLeaf returns true if the task has no sub-whatdos.
// Only leaf tasks are ever selected as "next".
func (t *Task) IsLeaf() bool {
	return len(t.Children) == 0
}

// HasTag returns true if the task itself carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	c.Children = append([]string(nil), t.Children...)
	if t.Priority != nil {
		p := *t.Priority
		c.Priority = &p
	}
	return &c
}
