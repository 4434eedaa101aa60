// Package yamlstore reads and writes the WHATDO.yaml document.
//
// The document is a tree-shaped mapping whose declaration order is
// significant (it is the tie-break for equal-priority selection), so the
// codec works on yaml.Node instead of map types.
package yamlstore

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/git-whatdo/internal/domain"
)

// Store persists a TaskTree as WHATDO.yaml.
type Store struct {
	path string
}

// New creates a store for the document at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Ensure Store implements domain.DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the document file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty document. Fails if one already exists.
func (s *Store) Initialize(summary string) error {
	if s.Exists() {
		return domain.ErrAlreadyInitialized
	}
	tree := domain.NewTaskTree()
	tree.Summary = summary
	return s.Save(tree)
}

// Load reads and validates the document.
func (s *Store) Load() (*domain.TaskTree, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}

	tree := domain.NewTaskTree()
	if len(doc.Content) == 0 {
		return tree, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", domain.ErrMalformedDocument)
	}

	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "summary":
			tree.Summary = value.Value
		case "active":
			tree.Active = value.Value
		case "queue":
			queue, err := decodeQueue(value)
			if err != nil {
				return nil, err
			}
			tree.Queue = queue
		case "whatdos":
			if err := decodeChildren(tree, "", value); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown key %q", domain.ErrMalformedDocument, key.Value)
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

// Save writes the tree back out, preserving declaration order and keeping
// the short "id: summary" form for tasks that still fit it.
func (s *Store) Save(tree *domain.TaskTree) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	if tree.Summary != "" {
		appendScalar(root, "summary", tree.Summary)
	}
	if tree.Active != "" {
		appendScalar(root, "active", tree.Active)
	}
	if len(tree.Queue) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, id := range tree.Queue {
			seq.Content = append(seq.Content, scalar(id))
		}
		root.Content = append(root.Content, scalar("queue"), seq)
	}
	if len(tree.Roots()) > 0 {
		root.Content = append(root.Content, scalar("whatdos"), encodeChildren(tree, tree.Roots()))
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // document is tracked in git, world-readable by design
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func decodeQueue(node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: queue must be a sequence", domain.ErrMalformedDocument)
	}
	var queue []string
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: queue entries must be strings", domain.ErrMalformedDocument)
		}
		queue = append(queue, item.Value)
	}
	return queue, nil
}

func decodeChildren(tree *domain.TaskTree, parentID string, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: whatdos must be a mapping", domain.ErrMalformedDocument)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return fmt.Errorf("%w: whatdo ids must be strings", domain.ErrMalformedDocument)
		}
		if err := decodeTask(tree, parentID, key.Value, value); err != nil {
			return err
		}
	}
	return nil
}

func decodeTask(tree *domain.TaskTree, parentID, id string, node *yaml.Node) error {
	task := &domain.Task{ID: id}

	var nested *yaml.Node
	switch node.Kind {
	case yaml.ScalarNode:
		task.Summary = node.Value
		task.Simple = true
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "summary":
				task.Summary = value.Value
			case "description":
				task.Description = value.Value
			case "tags":
				if value.Kind != yaml.SequenceNode {
					return fmt.Errorf("%w: %q: tags must be a sequence", domain.ErrMalformedDocument, id)
				}
				for _, tag := range value.Content {
					task.Tags = append(task.Tags, tag.Value)
				}
			case "priority":
				var p int
				if err := value.Decode(&p); err != nil {
					return fmt.Errorf("%w: %q: priority must be an integer", domain.ErrMalformedDocument, id)
				}
				task.Priority = &p
			case "whatdos":
				nested = value
			default:
				return fmt.Errorf("%w: %q: unknown key %q", domain.ErrMalformedDocument, id, key.Value)
			}
		}
	default:
		return fmt.Errorf("%w: %q must be a string or a mapping", domain.ErrMalformedDocument, id)
	}

	if err := tree.Insert(parentID, task); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrMalformedDocument, id)
		}
		return err
	}
	if nested != nil {
		return decodeChildren(tree, id, nested)
	}
	return nil
}

func encodeChildren(tree *domain.TaskTree, ids []string) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range ids {
		task := tree.Find(id)
		if task == nil {
			continue
		}
		m.Content = append(m.Content, scalar(id), encodeTask(tree, task))
	}
	return m
}

func encodeTask(tree *domain.TaskTree, task *domain.Task) *yaml.Node {
	if task.Simple && task.Description == "" && len(task.Tags) == 0 &&
		task.Priority == nil && task.IsLeaf() {
		return scalar(task.Summary)
	}

	m := &yaml.Node{Kind: yaml.MappingNode}
	appendScalar(m, "summary", task.Summary)
	if task.Description != "" {
		appendScalar(m, "description", task.Description)
	}
	if len(task.Tags) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, tag := range task.Tags {
			seq.Content = append(seq.Content, scalar(tag))
		}
		m.Content = append(m.Content, scalar("tags"), seq)
	}
	if task.Priority != nil {
		m.Content = append(m.Content, scalar("priority"), intScalar(*task.Priority))
	}
	if !task.IsLeaf() {
		m.Content = append(m.Content, scalar("whatdos"), encodeChildren(tree, task.Children))
	}
	return m
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func intScalar(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", v)}
}

func appendScalar(m *yaml.Node, key, value string) {
	m.Content = append(m.Content, scalar(key), scalar(value))
}
