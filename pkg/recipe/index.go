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
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	"k8s.io/utils/set"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

// Ref pairs a recipe with its name, as returned by lookups.
type Ref struct {
	Name   string  `json:"name" yaml:"name"`
	Recipe *Recipe `json:"-" yaml:"-"`
}

// Index is the read-only recipe index built from an ordered recipe set.
//
// The order of the input set is preserved: Recipes returns recipes in
// registration order and every per-rate bucket of ByOutput lists recipes in
// that order, so the first entry of a bucket is the earliest registered.
type Index struct {
	recipes   []*Recipe
	byName    map[string]*Recipe
	byOutput  map[string]map[float64][]*Recipe
	byMachine map[string]map[string]*Recipe
	producers map[string][]*Recipe
	consumers map[string][]*Recipe
	parts     set.Set[string]
}

// Build indexes specs in order. It fails with a data integrity error if two
// recipes share a name, a recipe has no name, machine, or outputs, a part name
// is empty, or a rate is not a positive finite number. No partial index is
// returned on failure.
func Build(specs []Spec) (*Index, error) {
	idx := &Index{
		recipes:   make([]*Recipe, 0, len(specs)),
		byName:    make(map[string]*Recipe, len(specs)),
		byOutput:  make(map[string]map[float64][]*Recipe),
		byMachine: make(map[string]map[string]*Recipe),
		producers: make(map[string][]*Recipe),
		consumers: make(map[string][]*Recipe),
		parts:     set.New[string](),
	}

	for i, s := range specs {
		if err := validateSpec(s); err != nil {
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeDataIntegrity,
				"invalid recipe", err, map[string]any{
					"position": i,
					"recipe":   s.Name,
				})
		}
		if _, dup := idx.byName[s.Name]; dup {
			return nil, pgerrors.NewWithContext(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("duplicate recipe name %q", s.Name), map[string]any{
					"position": i,
					"recipe":   s.Name,
				})
		}
		idx.add(newRecipe(ID(len(idx.recipes)), s))
	}

	slog.Debug("recipe index built",
		"recipes", len(idx.recipes),
		"parts", idx.parts.Len(),
		"machines", len(idx.byMachine))

	return idx, nil
}

func validateSpec(s Spec) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("recipe name is empty")
	}
	if strings.TrimSpace(s.Machine) == "" {
		return fmt.Errorf("recipe %q has no machine", s.Name)
	}
	if len(s.Outputs) == 0 {
		return fmt.Errorf("recipe %q has no outputs", s.Name)
	}
	if err := validateRates(s.Name, "input", s.Inputs); err != nil {
		return err
	}
	return validateRates(s.Name, "output", s.Outputs)
}

func validateRates(name, kind string, rates map[string]float64) error {
	for part, rate := range rates {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("recipe %q has an empty %s part name", name, kind)
		}
		if !(rate > 0) || math.IsInf(rate, 0) {
			return fmt.Errorf("recipe %q has non-positive %s rate %v for %q", name, kind, rate, part)
		}
	}
	return nil
}

func (idx *Index) add(r *Recipe) {
	idx.recipes = append(idx.recipes, r)
	idx.byName[r.name] = r

	machine, ok := idx.byMachine[r.machine]
	if !ok {
		machine = make(map[string]*Recipe)
		idx.byMachine[r.machine] = machine
	}
	machine[r.name] = r

	for _, part := range r.OutputParts() {
		buckets, ok := idx.byOutput[part]
		if !ok {
			buckets = make(map[float64][]*Recipe)
			idx.byOutput[part] = buckets
		}
		rate := r.outputs[part]
		buckets[rate] = append(buckets[rate], r)
		idx.producers[part] = append(idx.producers[part], r)
		idx.parts.Insert(part)
	}
	for _, part := range r.InputParts() {
		idx.consumers[part] = append(idx.consumers[part], r)
		idx.parts.Insert(part)
	}
}

// Len returns the number of indexed recipes.
func (idx *Index) Len() int { return len(idx.recipes) }

// Recipes returns every recipe in registration order.
func (idx *Index) Recipes() []*Recipe {
	return slices.Clone(idx.recipes)
}

// Recipe returns the recipe registered under name.
func (idx *Index) Recipe(name string) (*Recipe, bool) {
	r, ok := idx.byName[name]
	return r, ok
}

// AllRecipes returns a copy of the name to recipe mapping.
func (idx *Index) AllRecipes() map[string]*Recipe {
	return maps.Clone(idx.byName)
}

// ByOutput returns the recipes producing part grouped by output rate. Each
// bucket is in registration order. The result is empty if nothing produces part.
func (idx *Index) ByOutput(part string) map[float64][]Ref {
	return idx.byOutputFiltered(part, nil)
}

func (idx *Index) byOutputFiltered(part string, enabled *Enablement) map[float64][]Ref {
	out := make(map[float64][]Ref)
	for rate, recipes := range idx.byOutput[part] {
		refs := make([]Ref, 0, len(recipes))
		for _, r := range recipes {
			if enabled.Allows(r.name) {
				refs = append(refs, Ref{Name: r.name, Recipe: r})
			}
		}
		if len(refs) > 0 {
			out[rate] = refs
		}
	}
	return out
}

// ByMachine returns a copy of the recipes that run in machine, keyed by name.
func (idx *Index) ByMachine(machine string) map[string]*Recipe {
	return maps.Clone(idx.byMachine[machine])
}

// Machines returns every machine with at least one recipe, sorted.
func (idx *Index) Machines() []string {
	return slices.Sorted(maps.Keys(idx.byMachine))
}

// FindName returns the name of the recipe with the given identity.
func (idx *Index) FindName(id ID) (string, error) {
	if id < 0 || int(id) >= len(idx.recipes) {
		return "", pgerrors.NewWithContext(pgerrors.ErrCodeNotFound,
			fmt.Sprintf("unknown recipe identity %d", id), map[string]any{
				"id": int(id),
			})
	}
	return idx.recipes[id].name, nil
}

// AllParts returns every part appearing as an input or output of any recipe.
func (idx *Index) AllParts() set.Set[string] {
	return idx.parts.Clone()
}

// HasPart reports whether part appears in any recipe.
func (idx *Index) HasPart(part string) bool {
	return idx.parts.Has(part)
}

// Producers returns the recipes with part among their outputs, in
// registration order.
func (idx *Index) Producers(part string) []*Recipe {
	return slices.Clone(idx.producers[part])
}

// Consumers returns the recipes with part among their inputs, in
// registration order.
func (idx *Index) Consumers(part string) []*Recipe {
	return slices.Clone(idx.consumers[part])
}

// IsProduced reports whether any recipe produces part.
func (idx *Index) IsProduced(part string) bool {
	return len(idx.producers[part]) > 0
}

// IsConsumed reports whether any recipe consumes part.
func (idx *Index) IsConsumed(part string) bool {
	return len(idx.consumers[part]) > 0
}
