package domain

import "sort"

// Filter narrows which leaf tasks are candidates for selection.
// Fields are ordered to minimize memory padding.
type Filter struct {
	Tags        []string // Tag filter; empty = no tag restriction
	MaxPriority *int     // Only tasks with effective priority <= this value
	AllTags     bool     // Require all filter tags instead of at least one
	RootsOnly   bool     // Consider only root-level leaves, not whole subtrees
}

// Candidate is a selected leaf task together with the resolved attributes
// the ordering was computed from.
// Fields are ordered to minimize memory padding.
type Candidate struct {
	Task     *Task
	Tags     []string // Own tags plus all ancestor tags, in resolution order
	Priority *int     // Own priority, or the nearest ancestor's
	QueuePos int      // Index of the matching queue entry (-1 = not queued)
	Order    int      // Position in depth-first declaration order
}

// Queued returns true if the candidate or one of its ancestors is queued.
func (c Candidate) Queued() bool {
	return c.QueuePos >= 0
}

// Select returns the leaf tasks matching the filter as a deterministic total
// order: queued tasks first (in queue order), then the remainder sorted by
// effective priority ascending with absent priority last, ties broken by
// first appearance in depth-first declaration order.
//
// Tags are inherited downward: a leaf matches a tag carried by any ancestor,
// since sub-whatdos of e.g. an "optional" whatdo are implicitly optional.
func Select(tree *TaskTree, filter Filter) []Candidate {
	queuePos := make(map[string]int, len(tree.Queue))
	for i, id := range tree.Queue {
		queuePos[id] = i
	}

	var queued, rest []Candidate
	order := 0
	tree.Walk(func(t *Task) {
		idx := order
		order++
		if !t.IsLeaf() {
			return
		}
		if filter.RootsOnly && t.Parent != "" {
			return
		}

		c := Candidate{Task: t, Order: idx, QueuePos: -1}
		c.Tags = append(c.Tags, t.Tags...)
		c.Priority = t.Priority

		// Resolve inherited attributes and the queue position. A leaf is
		// queued if its own id or any ancestor's id appears in the queue;
		// the earliest matching queue entry wins.
		if pos, ok := queuePos[t.ID]; ok {
			c.QueuePos = pos
		}
		for _, anc := range tree.Ancestors(t.ID) {
			c.Tags = append(c.Tags, anc.Tags...)
			if c.Priority == nil {
				c.Priority = anc.Priority
			}
			if pos, ok := queuePos[anc.ID]; ok && (c.QueuePos < 0 || pos < c.QueuePos) {
				c.QueuePos = pos
			}
		}

		if !matchesTags(c.Tags, filter) {
			return
		}
		if filter.MaxPriority != nil && (c.Priority == nil || *c.Priority > *filter.MaxPriority) {
			return
		}

		if c.Queued() {
			queued = append(queued, c)
		} else {
			rest = append(rest, c)
		}
	})

	// Queue order first; leaves pinned via the same subtree entry keep
	// their declaration order among themselves.
	sort.SliceStable(queued, func(i, j int) bool {
		if queued[i].QueuePos != queued[j].QueuePos {
			return queued[i].QueuePos < queued[j].QueuePos
		}
		return queued[i].Order < queued[j].Order
	})

	sort.SliceStable(rest, func(i, j int) bool {
		pi, pj := rest[i].Priority, rest[j].Priority
		switch {
		case pi == nil && pj == nil:
			return rest[i].Order < rest[j].Order
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		}
		return rest[i].Order < rest[j].Order
	})

	return append(queued, rest...)
}

// Next returns the single best candidate, or nil if nothing matches.
func Next(tree *TaskTree, filter Filter) *Candidate {
	candidates := Select(tree, filter)
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}

func matchesTags(resolved []string, filter Filter) bool {
	if len(filter.Tags) == 0 {
		return true
	}
	has := make(map[string]bool, len(resolved))
	for _, t := range resolved {
		has[t] = true
	}
	if filter.AllTags {
		for _, t := range filter.Tags {
			if !has[t] {
				return false
			}
		}
		return true
	}
	for _, t := range filter.Tags {
		if has[t] {
			return true
		}
	}
	return false
}
