// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// HiddenRoot is one hidden subtree: the encrypted, serialized [Subtree]
// and the salt/nonce of its own, independently derived key.
type HiddenRoot struct {
	Blob string     `yaml:"blob"`
	Salt SaltRecord `yaml:"salt"`
}

// HiddenIndex maps root paths to their [HiddenRoot], in insertion order.
// Lookups are by exact key.
type HiddenIndex struct {
	roots *orderedmap.OrderedMap[string, HiddenRoot]
}

// NewHiddenIndex returns an empty [HiddenIndex].
func NewHiddenIndex() *HiddenIndex {
	return &HiddenIndex{roots: orderedmap.New[string, HiddenRoot]()}
}

func (h *HiddenIndex) lazyInit() {
	if h.roots == nil {
		h.roots = orderedmap.New[string, HiddenRoot]()
	}
}

// Get returns the hidden root stored under root.
func (h *HiddenIndex) Get(root string) (HiddenRoot, bool) {
	h.lazyInit()
	return h.roots.Get(root)
}

// Set inserts or replaces the hidden root stored under root.
func (h *HiddenIndex) Set(root string, hidden HiddenRoot) {
	h.lazyInit()
	h.roots.Set(root, hidden)
}

// Delete removes the hidden root stored under root.
func (h *HiddenIndex) Delete(root string) (HiddenRoot, bool) {
	h.lazyInit()
	return h.roots.Delete(root)
}

// Len returns the number of hidden roots.
func (h *HiddenIndex) Len() int {
	h.lazyInit()
	return h.roots.Len()
}

// Roots returns the root keys in index order.
func (h *HiddenIndex) Roots() []string {
	h.lazyInit()
	roots := make([]string, 0, h.roots.Len())
	for pair := h.roots.Oldest(); pair != nil; pair = pair.Next() {
		roots = append(roots, pair.Key)
	}
	return roots
}

// All iterates over root/hidden pairs in index order.
func (h *HiddenIndex) All() iter.Seq2[string, HiddenRoot] {
	h.lazyInit()
	return func(yield func(string, HiddenRoot) bool) {
		for pair := h.roots.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalYAML encodes the index as a flat mapping.
func (h *HiddenIndex) MarshalYAML() (any, error) {
	if h == nil {
		return marshalOrdered[HiddenRoot](nil)
	}
	return marshalOrdered(h.roots)
}

// UnmarshalYAML decodes a flat mapping into the index.
func (h *HiddenIndex) UnmarshalYAML(node *yaml.Node) error {
	roots, err := unmarshalOrdered[HiddenRoot](node)
	if err != nil {
		return err
	}
	h.roots = roots
	return nil
}

// Subtree is the plaintext content of a [HiddenRoot]: the hidden entries
// together with the salt records they were encrypted with. It reuses the
// main collection types, so the blob nests entries the same way the entry
// collection does.
type Subtree struct {
	Entries *EntryMap   `yaml:"entries"`
	Salts   *SaltLedger `yaml:"salts"`
}

// NewSubtree returns an empty [Subtree].
func NewSubtree() *Subtree {
	return &Subtree{Entries: NewEntryMap(), Salts: NewSaltLedger()}
}

// lazyInit fills collections left nil by decoding a blob without them.
func (s *Subtree) lazyInit() {
	if s.Entries == nil {
		s.Entries = NewEntryMap()
	}
	if s.Salts == nil {
		s.Salts = NewSaltLedger()
	}
}

// Insert adds an entry and its salt record to the subtree.
func (s *Subtree) Insert(path string, entry Entry, salt SaltRecord) error {
	s.lazyInit()
	if err := s.Entries.Set(path, entry); err != nil {
		return err
	}
	s.Salts.Set(path, salt)
	return nil
}

// Lookup returns the entry at path together with its salt record. Both
// must be present.
func (s *Subtree) Lookup(path string) (Entry, SaltRecord, bool) {
	s.lazyInit()
	entry, ok := s.Entries.Get(path)
	if !ok {
		return Entry{}, SaltRecord{}, false
	}
	salt, ok := s.Salts.Get(path)
	if !ok {
		return Entry{}, SaltRecord{}, false
	}
	return entry, salt, true
}

// Len returns the number of hidden entries.
func (s *Subtree) Len() int {
	s.lazyInit()
	return s.Entries.Len()
}

// All iterates over the hidden entries with their salt records, in entry
// order. Entries without a salt record are skipped.
func (s *Subtree) All() iter.Seq2[string, HiddenEntry] {
	s.lazyInit()
	return func(yield func(string, HiddenEntry) bool) {
		for path, entry := range s.Entries.All() {
			salt, ok := s.Salts.Get(path)
			if !ok {
				continue
			}
			if !yield(path, HiddenEntry{Entry: entry, Salt: salt}) {
				return
			}
		}
	}
}

// HiddenEntry is an entry moved into hiding with the salt record it was
// encrypted with.
type HiddenEntry struct {
	Entry Entry
	Salt  SaltRecord
}
