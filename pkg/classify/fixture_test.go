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

package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

const power = "Power"

type fixtureRecipe struct {
	name    string
	machine string
	inputs  []string
	outputs []string
}

// spec gives every input and output a rate of 10; classification only
// depends on graph shape.
func (f fixtureRecipe) spec() recipe.Spec {
	s := recipe.Spec{
		Name:    f.name,
		Machine: f.machine,
		Inputs:  map[string]float64{},
		Outputs: map[string]float64{},
	}
	for _, in := range f.inputs {
		s.Inputs[in] = 10
	}
	for _, out := range f.outputs {
		s.Outputs[out] = 10
	}
	return s
}

var factoryRecipes = []fixtureRecipe{
	{"Coal Power", "Coal-Fired Generator", []string{"Coal", "Water"}, []string{power}},
	{"Iron Ingot", "Smelter", []string{"Iron Ore", power}, []string{"Iron Ingot"}},
	{"Copper Ingot", "Smelter", []string{"Copper Ore", power}, []string{"Copper Ingot"}},
	{"Iron Plate", "Constructor", []string{"Iron Ingot", power}, []string{"Iron Plate"}},
	{"Iron Rod", "Constructor", []string{"Iron Ingot", power}, []string{"Iron Rod"}},
	{"Screw", "Constructor", []string{"Iron Rod", power}, []string{"Screw"}},
	{"Wire", "Constructor", []string{"Copper Ingot", power}, []string{"Wire"}},
	{"Cable", "Constructor", []string{"Wire", power}, []string{"Cable"}},
	{"Reinforced Iron Plate", "Assembler", []string{"Iron Plate", "Screw", power}, []string{"Reinforced Iron Plate"}},
	{"Rotor", "Assembler", []string{"Iron Rod", "Screw", power}, []string{"Rotor"}},
	{"Smart Plating", "Assembler", []string{"Reinforced Iron Plate", "Rotor", power}, []string{"Smart Plating"}},
	{"Modular Frame", "Assembler", []string{"Reinforced Iron Plate", "Iron Rod", power}, []string{"Modular Frame"}},
	{"Biomass (Leaves)", "Constructor", []string{"Leaves", power}, []string{"Biomass"}},
	{"Fabric", "Assembler", []string{"Mycelia", "Biomass", power}, []string{"Fabric"}},
	{"Gas Filter", "Manufacturer", []string{"Fabric", "Coal", "Iron Plate", power}, []string{"Gas Filter"}},
	{"Stun Rebar", "Assembler", []string{"Iron Rod", "Wire", power}, []string{"Stun Rebar"}},
	{"Plastic", "Refinery", []string{"Crude Oil", power}, []string{"Plastic", "Heavy Oil Residue"}},
	{"Fuel", "Refinery", []string{"Heavy Oil Residue", power}, []string{"Fuel"}},
	{"Petroleum Coke", "Refinery", []string{"Heavy Oil Residue", power}, []string{"Petroleum Coke"}},
	{"Empty Canister", "Constructor", []string{"Plastic", power}, []string{"Empty Canister"}},
	{"Packaged Fuel", "Packager", []string{"Fuel", "Empty Canister", power}, []string{"Packaged Fuel"}},
	{"Packaged Water", "Packager", []string{"Water", "Empty Canister", power}, []string{"Packaged Water"}},
	{"Unpackage Fuel", "Packager", []string{"Packaged Fuel", power}, []string{"Fuel", "Empty Canister"}},
	{"Steel Ingot", "Foundry", []string{"Iron Ore", "Coal", power}, []string{"Steel Ingot"}},
	{"Steel Pipe", "Constructor", []string{"Steel Ingot", power}, []string{"Steel Pipe"}},
	{"Black Powder", "Assembler", []string{"Coal", "Sulfur", power}, []string{"Black Powder"}},
	{"Nobelisk", "Assembler", []string{"Black Powder", "Steel Pipe", power}, []string{"Nobelisk"}},
	{"Rifle Ammo", "Assembler", []string{"Steel Pipe", "Black Powder", power}, []string{"Rifle Ammo"}},
}

var factoryExtractable = []string{
	"Iron Ore", "Copper Ore", "Coal", "Water", "Crude Oil", "Sulfur", "Nitrogen Gas",
}

func factoryRules() Rules {
	return Rules{
		ProjectAssembly: []string{"Smart Plating", "Versatile Framework"},
		Fluids:          []string{"Water", "Crude Oil", "Heavy Oil Residue", "Fuel", "Nitrogen Gas"},
		FluidAllowList:  []string{"Packaged Fuel", "Packaged Ionized Fuel"},
		PowerPart:       power,
	}
}

func buildIndex(t *testing.T, recipes []fixtureRecipe) *recipe.Index {
	t.Helper()
	specs := make([]recipe.Spec, 0, len(recipes))
	for _, r := range recipes {
		specs = append(specs, r.spec())
	}
	idx, err := recipe.Build(specs)
	require.NoError(t, err)
	return idx
}

func factoryParts(t *testing.T) (*recipe.Index, *PartSets) {
	t.Helper()
	idx := buildIndex(t, factoryRecipes)
	return idx, NewPartClassifier(idx, factoryExtractable).Classify()
}
