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

package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

func testSpecs() []Spec {
	return []Spec{
		{
			Name:    "Iron Ingot",
			Machine: "Smelter",
			Inputs:  map[string]float64{"Iron Ore": 30, "Power": 4},
			Outputs: map[string]float64{"Iron Ingot": 30},
		},
		{
			Name:    "Alternate: Pure Iron Ingot",
			Machine: "Refinery",
			Inputs:  map[string]float64{"Iron Ore": 35, "Water": 20, "Power": 30},
			Outputs: map[string]float64{"Iron Ingot": 65},
		},
		{
			Name:    "Iron Plate",
			Machine: "Constructor",
			Inputs:  map[string]float64{"Iron Ingot": 30, "Power": 4},
			Outputs: map[string]float64{"Iron Plate": 20},
		},
		{
			Name:    "Iron Rod",
			Machine: "Constructor",
			Inputs:  map[string]float64{"Iron Ingot": 15, "Power": 4},
			Outputs: map[string]float64{"Iron Rod": 15},
		},
		{
			Name:    "Alternate: Iron Alloy Ingot",
			Machine: "Foundry",
			Inputs:  map[string]float64{"Iron Ore": 20, "Copper Ore": 20, "Power": 16},
			Outputs: map[string]float64{"Iron Ingot": 30},
		},
	}
}

func mustBuild(t *testing.T, specs []Spec) *Index {
	t.Helper()
	idx, err := Build(specs)
	require.NoError(t, err)
	return idx
}

func TestBuildAssignsStableIdentity(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	require.Equal(t, 5, idx.Len())
	for i, r := range idx.Recipes() {
		assert.Equal(t, ID(i), r.ID())
		name, err := idx.FindName(r.ID())
		require.NoError(t, err)
		assert.Equal(t, r.Name(), name)
	}
}

func TestFindNameUnknownIdentity(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	for _, id := range []ID{-1, 5, 100} {
		_, err := idx.FindName(id)
		require.Error(t, err)
		assert.True(t, pgerrors.HasCode(err, pgerrors.ErrCodeNotFound), "id %d", id)
	}
}

func TestByOutputContainsEachRecipeOnceAtDeclaredRate(t *testing.T) {
	specs := testSpecs()
	idx := mustBuild(t, specs)

	for _, s := range specs {
		for part, rate := range s.Outputs {
			buckets := idx.ByOutput(part)
			count := 0
			for bucketRate, refs := range buckets {
				for _, ref := range refs {
					if ref.Name == s.Name {
						count++
						assert.Equal(t, rate, bucketRate)
					}
				}
			}
			assert.Equal(t, 1, count, "recipe %q output %q", s.Name, part)
		}
	}
}

func TestByOutputBucketOrder(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	buckets := idx.ByOutput("Iron Ingot")
	require.Len(t, buckets, 2)
	require.Len(t, buckets[30], 2)
	assert.Equal(t, "Iron Ingot", buckets[30][0].Name)
	assert.Equal(t, "Alternate: Iron Alloy Ingot", buckets[30][1].Name)
	assert.Equal(t, "Alternate: Pure Iron Ingot", buckets[65][0].Name)

	assert.Empty(t, idx.ByOutput("Iron Ore"))
	assert.Empty(t, idx.ByOutput("Unobtainium"))
}

func TestByMachine(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	constructor := idx.ByMachine("Constructor")
	require.Len(t, constructor, 2)
	assert.Contains(t, constructor, "Iron Plate")
	assert.Contains(t, constructor, "Iron Rod")
	assert.Empty(t, idx.ByMachine("Blender"))
	assert.Equal(t, []string{"Constructor", "Foundry", "Refinery", "Smelter"}, idx.Machines())
}

func TestAllPartsCoversEveryReference(t *testing.T) {
	specs := testSpecs()
	idx := mustBuild(t, specs)
	parts := idx.AllParts()

	for _, s := range specs {
		for part := range s.Inputs {
			assert.True(t, parts.Has(part), part)
		}
		for part := range s.Outputs {
			assert.True(t, parts.Has(part), part)
		}
	}
	assert.Equal(t, 7, parts.Len())
}

func TestReturnedViewsAreCopies(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	parts := idx.AllParts()
	parts.Delete("Iron Ore")
	assert.True(t, idx.HasPart("Iron Ore"))

	all := idx.AllRecipes()
	delete(all, "Iron Plate")
	_, ok := idx.Recipe("Iron Plate")
	assert.True(t, ok)

	r, _ := idx.Recipe("Iron Plate")
	in := r.Inputs()
	in["Iron Ingot"] = 1
	rate, _ := r.Input("Iron Ingot")
	assert.Equal(t, 30.0, rate)

	spec := r.Spec()
	spec.Outputs["Iron Plate"] = 1
	out, _ := r.Output("Iron Plate")
	assert.Equal(t, 20.0, out)
}

func TestProducersAndConsumers(t *testing.T) {
	idx := mustBuild(t, testSpecs())

	producers := idx.Producers("Iron Ingot")
	require.Len(t, producers, 3)
	assert.Equal(t, "Iron Ingot", producers[0].Name())
	assert.Equal(t, "Alternate: Iron Alloy Ingot", producers[2].Name())

	consumers := idx.Consumers("Iron Ingot")
	require.Len(t, consumers, 2)
	assert.Equal(t, "Iron Plate", consumers[0].Name())

	assert.True(t, idx.IsProduced("Iron Rod"))
	assert.False(t, idx.IsConsumed("Iron Rod"))
	assert.False(t, idx.IsProduced("Water"))
	assert.True(t, idx.IsConsumed("Water"))
}

func TestBuildDataIntegrityErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
	}{
		{
			name: "duplicate name",
			specs: []Spec{
				{Name: "Iron Plate", Machine: "Constructor", Outputs: map[string]float64{"Iron Plate": 20}},
				{Name: "Iron Plate", Machine: "Assembler", Outputs: map[string]float64{"Iron Plate": 40}},
			},
		},
		{
			name:  "empty name",
			specs: []Spec{{Name: " ", Machine: "Constructor", Outputs: map[string]float64{"Iron Plate": 20}}},
		},
		{
			name:  "missing machine",
			specs: []Spec{{Name: "Iron Plate", Outputs: map[string]float64{"Iron Plate": 20}}},
		},
		{
			name:  "no outputs",
			specs: []Spec{{Name: "Sink", Machine: "Sink", Inputs: map[string]float64{"Iron Plate": 20}}},
		},
		{
			name: "zero input rate",
			specs: []Spec{{Name: "Iron Plate", Machine: "Constructor",
				Inputs: map[string]float64{"Iron Ingot": 0}, Outputs: map[string]float64{"Iron Plate": 20}}},
		},
		{
			name: "negative output rate",
			specs: []Spec{{Name: "Iron Plate", Machine: "Constructor",
				Outputs: map[string]float64{"Iron Plate": -20}}},
		},
		{
			name: "NaN rate",
			specs: []Spec{{Name: "Iron Plate", Machine: "Constructor",
				Outputs: map[string]float64{"Iron Plate": math.NaN()}}},
		},
		{
			name: "infinite rate",
			specs: []Spec{{Name: "Iron Plate", Machine: "Constructor",
				Outputs: map[string]float64{"Iron Plate": math.Inf(1)}}},
		},
		{
			name: "empty part name",
			specs: []Spec{{Name: "Iron Plate", Machine: "Constructor",
				Outputs: map[string]float64{"": 20}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := Build(tt.specs)
			require.Error(t, err)
			assert.Nil(t, idx)
			assert.True(t, pgerrors.HasCode(err, pgerrors.ErrCodeDataIntegrity), err.Error())
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	idx := mustBuild(t, nil)
	assert.Zero(t, idx.Len())
	assert.Zero(t, idx.AllParts().Len())
}
