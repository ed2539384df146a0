package models

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// marshalOrdered encodes om as a flat YAML mapping in insertion order.
func marshalOrdered[V any](om *orderedmap.OrderedMap[string, V]) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if om == nil {
		return node, nil
	}

	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		value := new(yaml.Node)
		if err := value.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("encode %q: %w", pair.Key, err)
		}
		node.Content = append(node.Content, stringNode(pair.Key), value)
	}
	return node, nil
}

// unmarshalOrdered decodes a flat YAML mapping into a fresh ordered map.
// A null document yields an empty map.
func unmarshalOrdered[V any](node *yaml.Node) (*orderedmap.OrderedMap[string, V], error) {
	om := orderedmap.New[string, V]()

	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return om, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got %s", kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var value V
		if err := resolveAlias(node.Content[i+1]).Decode(&value); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		om.Set(key, value)
	}
	return om, nil
}
