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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMapKeepsDocumentOrder(t *testing.T) {
	var m OrderedMap[Item]
	err := yaml.Unmarshal([]byte(`
zeta:
  name: Z
alpha:
  name: A
mid:
  name: M
`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	item, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "A", item.Name)

	var names []string
	for _, v := range m.All() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Z", "A", "M"}, names)
}

func TestOrderedMapNested(t *testing.T) {
	var m OrderedMap[OrderedMap[PowerRecipe]]
	err := yaml.Unmarshal([]byte(`
Generator B:
  Second: {in: {Coal: 1}, out: {Power: 2}}
  First: {in: {Coal: 3}, out: {Power: 4}}
Generator A:
  Only: {in: {Fuel: 1}, out: {Power: 5}}
`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"Generator B", "Generator A"}, m.Keys())
	inner, ok := m.Get("Generator B")
	require.True(t, ok)
	assert.Equal(t, []string{"Second", "First"}, inner.Keys())
	first, _ := inner.Get("First")
	assert.Equal(t, 4.0, first.Out["Power"])
}

func TestOrderedMapRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"sequence", "- a\n- b\n"},
		{"duplicate key", "a:\n  name: x\na:\n  name: y\n"},
		{"bad value", "a: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m OrderedMap[Item]
			assert.Error(t, yaml.Unmarshal([]byte(tt.doc), &m))
		})
	}
}

func TestOrderedMapSet(t *testing.T) {
	var m OrderedMap[int]
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, 3, v)

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}
