package models

import (
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// PathSeparator delimits the segments of an entry path.
const PathSeparator = "/"

// EntryMap is the flat, insertion-ordered path→[Entry] collection.
//
// In memory every entry is addressed by its full path. On the wire the map
// is nested: each '/'-separated segment becomes one mapping level and the
// entry itself sits at the last segment, so "mail/work/alice" is stored as
//
//	mail:
//	  work:
//	    alice:
//	      username: alice
//	      password: ...
//
// Because a node is either a leaf or a collection, [EntryMap.Set] rejects
// paths that would make an existing leaf a collection or the other way round.
type EntryMap struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

// NewEntryMap returns an empty [EntryMap].
func NewEntryMap() *EntryMap {
	return &EntryMap{entries: orderedmap.New[string, Entry]()}
}

func (m *EntryMap) lazyInit() {
	if m.entries == nil {
		m.entries = orderedmap.New[string, Entry]()
	}
}

// Get returns the entry stored at path.
func (m *EntryMap) Get(path string) (Entry, bool) {
	m.lazyInit()
	return m.entries.Get(path)
}

// Has reports whether an entry is stored at path.
func (m *EntryMap) Has(path string) bool {
	_, ok := m.Get(path)
	return ok
}

// Set stores entry at path. An existing entry at the same path is replaced
// in place and keeps its position.
//
// Returns [ErrEmptyPath] for an empty path and [ErrPathConflict] when path
// and an existing path would nest into each other.
func (m *EntryMap) Set(path string, entry Entry) error {
	m.lazyInit()
	if path == "" {
		return ErrEmptyPath
	}
	if err := m.checkConflict(path); err != nil {
		return err
	}

	m.entries.Set(path, entry)
	return nil
}

// Delete removes the entry at path, preserving the order of the others.
func (m *EntryMap) Delete(path string) (Entry, bool) {
	m.lazyInit()
	return m.entries.Delete(path)
}

// Len returns the number of stored entries.
func (m *EntryMap) Len() int {
	m.lazyInit()
	return m.entries.Len()
}

// Paths returns all paths in insertion order.
func (m *EntryMap) Paths() []string {
	m.lazyInit()
	paths := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// All iterates over path/entry pairs in insertion order.
func (m *EntryMap) All() iter.Seq2[string, Entry] {
	m.lazyInit()
	return func(yield func(string, Entry) bool) {
		for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the map.
func (m *EntryMap) Clone() *EntryMap {
	out := NewEntryMap()
	for path, entry := range m.All() {
		out.entries.Set(path, entry.Clone())
	}
	return out
}

// Partition splits the map into the entries whose path satisfies keep and
// the rest. Both results preserve the original order.
func (m *EntryMap) Partition(keep func(path string) bool) (selected, rest *EntryMap) {
	selected, rest = NewEntryMap(), NewEntryMap()
	for path, entry := range m.All() {
		if keep(path) {
			selected.entries.Set(path, entry)
		} else {
			rest.entries.Set(path, entry)
		}
	}
	return selected, rest
}

// checkConflict verifies that path can live next to the stored paths in the
// nested representation.
func (m *EntryMap) checkConflict(path string) error {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		existing := pair.Key
		if existing == path {
			continue
		}
		if strings.HasPrefix(path, existing+PathSeparator) {
			return fmt.Errorf("%w: %q is an entry, cannot store %q under it", ErrPathConflict, existing, path)
		}
		if strings.HasPrefix(existing, path+PathSeparator) {
			return fmt.Errorf("%w: %q is a collection, cannot store an entry there", ErrPathConflict, path)
		}
	}
	return nil
}

// MarshalYAML nests the entries by path segment.
func (m *EntryMap) MarshalYAML() (any, error) {
	root := newCollectionNode()
	if m != nil {
		for path, entry := range m.All() {
			if err := root.insert(path, strings.Split(path, PathSeparator), entry); err != nil {
				return nil, err
			}
		}
	}
	return root.toYAML()
}

// UnmarshalYAML flattens a nested mapping back into full paths, depth
// first, keeping sibling order.
func (m *EntryMap) UnmarshalYAML(node *yaml.Node) error {
	m.entries = orderedmap.New[string, Entry]()

	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	return m.flatten(node, "", 0)
}

func (m *EntryMap) flatten(node *yaml.Node, prefix string, depth int) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("collection %q must be a mapping, got %s", prefix, kindName(node.Kind))
	}

	if depth > 0 && isLeafNode(node) {
		var entry Entry
		if err := entry.UnmarshalYAML(node); err != nil {
			return fmt.Errorf("entry %q: %w", prefix, err)
		}
		m.entries.Set(prefix, entry)
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		path := node.Content[i].Value
		if depth > 0 {
			path = prefix + PathSeparator + path
		}
		if err := m.flatten(node.Content[i+1], path, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// isLeafNode reports whether a mapping holds an entry: a non-empty mapping
// whose values are all scalars.
func isLeafNode(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return false
	}
	for i := 1; i < len(node.Content); i += 2 {
		if resolveAlias(node.Content[i]).Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

// nestedNode is one level of the nested representation: either a leaf
// entry or an ordered collection of children.
type nestedNode struct {
	children *orderedmap.OrderedMap[string, *nestedNode]
	leaf     *Entry
}

func newCollectionNode() *nestedNode {
	return &nestedNode{children: orderedmap.New[string, *nestedNode]()}
}

func (n *nestedNode) insert(path string, segments []string, entry Entry) error {
	current := segments[0]
	child, exists := n.children.Get(current)

	if len(segments) == 1 {
		if exists && child.leaf == nil {
			return fmt.Errorf("%w: %q is a collection, cannot store an entry there", ErrPathConflict, path)
		}
		n.children.Set(current, &nestedNode{leaf: &entry})
		return nil
	}

	if !exists {
		child = newCollectionNode()
		n.children.Set(current, child)
	} else if child.leaf != nil {
		return fmt.Errorf("%w: cannot store %q under an entry", ErrPathConflict, path)
	}

	return child.insert(path, segments[1:], entry)
}

func (n *nestedNode) toYAML() (*yaml.Node, error) {
	if n.leaf != nil {
		value, err := n.leaf.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return value.(*yaml.Node), nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		child, err := pair.Value.toYAML()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(pair.Key), child)
	}
	return node, nil
}
