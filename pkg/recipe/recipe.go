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
	"maps"
	"slices"

	"k8s.io/utils/set"
)

// ID is the stable identity of a recipe within an Index. IDs are assigned in
// registration order starting at zero and are never reused, so comparing IDs
// also compares registration order.
type ID int

// Spec is the declarative form of a recipe as produced by the data loader.
// Rates are in units per minute.
type Spec struct {
	Name    string             `json:"name" yaml:"name"`
	Machine string             `json:"machine" yaml:"machine"`
	Inputs  map[string]float64 `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs map[string]float64 `json:"outputs" yaml:"outputs"`
}

// Recipe is an immutable, indexed recipe. It is safe to share between
// goroutines; accessors that return maps return copies.
type Recipe struct {
	id      ID
	name    string
	machine string
	inputs  map[string]float64
	outputs map[string]float64
}

func newRecipe(id ID, s Spec) *Recipe {
	return &Recipe{
		id:      id,
		name:    s.Name,
		machine: s.Machine,
		inputs:  maps.Clone(nonNil(s.Inputs)),
		outputs: maps.Clone(nonNil(s.Outputs)),
	}
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

// ID returns the recipe's stable identity.
func (r *Recipe) ID() ID { return r.id }

// Name returns the recipe's display name.
func (r *Recipe) Name() string { return r.name }

// Machine returns the machine the recipe runs in.
func (r *Recipe) Machine() string { return r.machine }

// Inputs returns a copy of the input rates.
func (r *Recipe) Inputs() map[string]float64 { return maps.Clone(r.inputs) }

// Outputs returns a copy of the output rates.
func (r *Recipe) Outputs() map[string]float64 { return maps.Clone(r.outputs) }

// Input returns the rate at which the recipe consumes part.
func (r *Recipe) Input(part string) (float64, bool) {
	rate, ok := r.inputs[part]
	return rate, ok
}

// Output returns the rate at which the recipe produces part.
func (r *Recipe) Output(part string) (float64, bool) {
	rate, ok := r.outputs[part]
	return rate, ok
}

// Consumes reports whether part is one of the recipe's inputs.
func (r *Recipe) Consumes(part string) bool {
	_, ok := r.inputs[part]
	return ok
}

// Produces reports whether part is one of the recipe's outputs.
func (r *Recipe) Produces(part string) bool {
	_, ok := r.outputs[part]
	return ok
}

// InputParts returns the input part names in sorted order.
func (r *Recipe) InputParts() []string {
	return slices.Sorted(maps.Keys(r.inputs))
}

// OutputParts returns the output part names in sorted order.
func (r *Recipe) OutputParts() []string {
	return slices.Sorted(maps.Keys(r.outputs))
}

// InputsWithin reports whether every input of the recipe is in available.
// A recipe without inputs is trivially satisfied.
func (r *Recipe) InputsWithin(available set.Set[string]) bool {
	for part := range r.inputs {
		if !available.Has(part) {
			return false
		}
	}
	return true
}

// Spec returns a detached declarative copy of the recipe, suitable for
// serialization.
func (r *Recipe) Spec() Spec {
	return Spec{
		Name:    r.name,
		Machine: r.machine,
		Inputs:  maps.Clone(r.inputs),
		Outputs: maps.Clone(r.outputs),
	}
}
