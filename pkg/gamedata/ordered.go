// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gamedata

import (
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed mapping that remembers the order in which
// keys were decoded or set.
type OrderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// UnmarshalYAML decodes a YAML mapping, keeping document order.
func (m *OrderedMap[T]) UnmarshalYAML(node *yaml.Node) error {
	m.keys = nil
	m.values = nil
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	m.keys = make([]string, 0, len(node.Content)/2)
	m.values = make(map[string]T, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if _, dup := m.values[key]; dup {
			return fmt.Errorf("line %d: duplicate key %q", keyNode.Line, key)
		}
		var v T
		if err := valueNode.Decode(&v); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		m.keys = append(m.keys, key)
		m.values[key] = v
	}
	return nil
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (m *OrderedMap[T]) Set(key string, v T) {
	if m.values == nil {
		m.values = make(map[string]T)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m OrderedMap[T]) Get(key string) (T, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m OrderedMap[T]) Len() int { return len(m.keys) }

// Keys returns the keys in order.
func (m OrderedMap[T]) Keys() []string { return slices.Clone(m.keys) }

// All iterates over the entries in order.
func (m OrderedMap[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
