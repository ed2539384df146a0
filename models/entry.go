// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

const (
	usernameField = "username"
	passwordField = "password"
)

// ExtraFields holds the free-form fields of an [Entry] in insertion order.
type ExtraFields = orderedmap.OrderedMap[string, string]

// NewExtraFields returns an empty [ExtraFields] mapping.
func NewExtraFields() *ExtraFields {
	return orderedmap.New[string, string]()
}

// Entry is a single stored login.
//
// Password holds either the base64 ciphertext of the secret (when the entry
// has a matching [SaltRecord]) or the plaintext secret itself (when it does
// not). Extra carries any additional fields; it may be nil.
type Entry struct {
	Username string
	Password string
	Extra    *ExtraFields
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	out := Entry{Username: e.Username, Password: e.Password}
	if e.Extra != nil {
		out.Extra = NewExtraFields()
		for pair := e.Extra.Oldest(); pair != nil; pair = pair.Next() {
			out.Extra.Set(pair.Key, pair.Value)
		}
	}
	return out
}

// MarshalYAML encodes the entry as a flat mapping: username, password and
// then every extra field in order.
func (e Entry) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content,
		stringNode(usernameField), stringNode(e.Username),
		stringNode(passwordField), stringNode(e.Password),
	)
	if e.Extra != nil {
		for pair := e.Extra.Oldest(); pair != nil; pair = pair.Next() {
			node.Content = append(node.Content, stringNode(pair.Key), stringNode(pair.Value))
		}
	}
	return node, nil
}

// UnmarshalYAML decodes a flat mapping produced by [Entry.MarshalYAML].
// Unknown keys become extra fields.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("entry must be a mapping, got %s", kindName(node.Kind))
	}

	*e = Entry{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var value string
		if err := resolveAlias(node.Content[i+1]).Decode(&value); err != nil {
			return fmt.Errorf("entry field %q: %w", key, err)
		}

		switch key {
		case usernameField:
			e.Username = value
		case passwordField:
			e.Password = value
		default:
			if e.Extra == nil {
				e.Extra = NewExtraFields()
			}
			e.Extra.Set(key, value)
		}
	}

	return nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
