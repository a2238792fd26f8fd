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
	"maps"
	"math"

	"k8s.io/utils/set"

	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

// Validate checks the snapshot for unresolved references and invalid
// amounts. Hand-craft and building recipes are not part of the recipe set
// and are not checked.
func (s *Snapshot) Validate() error {
	if s.Facts != nil {
		if err := s.Facts.Validate(); err != nil {
			return err
		}
	}

	for id, item := range s.Items.All() {
		if item.Name == "" {
			return integrityError("item has no name", map[string]any{"item": id})
		}
	}

	for id, b := range s.Buildings.All() {
		if b.Name == "" {
			return integrityError("building has no name", map[string]any{"building": id})
		}
		for _, res := range b.AllowedResources {
			if _, ok := s.Items.Get(res); !ok {
				return integrityError(fmt.Sprintf("building %s allows unknown item %s", id, res),
					map[string]any{"building": id, "item": res})
			}
		}
	}

	if _, err := s.RecipeSet(); err != nil {
		return err
	}

	for id, sc := range s.Schematics.All() {
		for _, r := range sc.Unlock.Recipes {
			if _, ok := s.Recipes.Get(r); !ok {
				return integrityError(fmt.Sprintf("schematic %s unlocks unknown recipe %s", id, r),
					map[string]any{"schematic": id, "recipe": r})
			}
		}
	}
	return nil
}

func integrityError(msg string, fields map[string]any) error {
	return pgerrors.NewWithContext(pgerrors.ErrCodeDataIntegrity, msg, fields)
}

// RecipeSet converts the snapshot into the ordered recipe set the index is
// built from.
//
// Machine recipes are converted from per-cycle amounts to per-minute rates
// (amount * 60 / time) and, when their machine draws power, get the power
// part as an extra input at the machine's load. Power recipes follow in
// file order. Recipes not made in a machine, and recipes that make
// buildings, are skipped.
func (s *Snapshot) RecipeSet() ([]recipe.Spec, error) {
	facts := s.Facts
	if facts == nil {
		facts = DefaultFacts()
	}

	specs := make([]recipe.Spec, 0, s.Recipes.Len())
	for id, def := range s.Recipes.All() {
		if !def.InMachine || def.ForBuilding {
			continue
		}
		spec, err := s.convert(id, def, facts)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	for machine, recipes := range s.Power.All() {
		for name, pr := range recipes.All() {
			specs = append(specs, recipe.Spec{
				Name:    name,
				Machine: machine,
				Inputs:  maps.Clone(pr.In),
				Outputs: maps.Clone(pr.Out),
			})
		}
	}
	return specs, nil
}

func (s *Snapshot) convert(id string, def RecipeDef, facts *Facts) (recipe.Spec, error) {
	fields := map[string]any{"recipe": id}
	if def.Name == "" {
		return recipe.Spec{}, integrityError(fmt.Sprintf("recipe %s has no name", id), fields)
	}
	if !(def.Time > 0) || math.IsInf(def.Time, 0) {
		return recipe.Spec{}, integrityError(fmt.Sprintf("recipe %s has non-positive time %v", id, def.Time), fields)
	}
	if len(def.ProducedIn) == 0 {
		return recipe.Spec{}, integrityError(fmt.Sprintf("recipe %s has no producing machine", id), fields)
	}

	var machine string
	for i, b := range def.ProducedIn {
		building, ok := s.Buildings.Get(b)
		if !ok {
			return recipe.Spec{}, integrityError(fmt.Sprintf("recipe %s references unknown building %s", id, b),
				map[string]any{"recipe": id, "building": b})
		}
		if i == 0 {
			machine = building.Name
		}
	}

	inputs, err := s.perMinute(id, def.Ingredients, def.Time)
	if err != nil {
		return recipe.Spec{}, err
	}
	outputs, err := s.perMinute(id, def.Products, def.Time)
	if err != nil {
		return recipe.Spec{}, err
	}
	if load := facts.PowerLoad(machine); load > 0 {
		inputs[defaults.PowerPart] = load
	}

	return recipe.Spec{
		Name:    def.Name,
		Machine: machine,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

func (s *Snapshot) perMinute(id string, amounts []ItemAmount, seconds float64) (map[string]float64, error) {
	rates := make(map[string]float64, len(amounts))
	for _, a := range amounts {
		item, ok := s.Items.Get(a.Item)
		if !ok {
			return nil, integrityError(fmt.Sprintf("recipe %s references unknown item %s", id, a.Item),
				map[string]any{"recipe": id, "item": a.Item})
		}
		if !(a.Amount > 0) {
			return nil, integrityError(fmt.Sprintf("recipe %s has non-positive amount %v of %s", id, a.Amount, item.Name),
				map[string]any{"recipe": id, "item": a.Item})
		}
		rates[item.Name] += a.Amount * 60 / seconds
	}
	return rates, nil
}

// Unlocks returns the recipes unlocked by schematics at or below tier.
// Alternate schematics count only when includeAlternates is set. Power
// recipes are not gated by schematics and are always included.
func (s *Snapshot) Unlocks(tier int, includeAlternates bool) *recipe.Enablement {
	names := set.New[string]()
	for _, sc := range s.Schematics.All() {
		if sc.Tier > tier || (sc.Alternate && !includeAlternates) {
			continue
		}
		for _, id := range sc.Unlock.Recipes {
			if def, ok := s.Recipes.Get(id); ok {
				names.Insert(def.Name)
			}
		}
	}
	for _, recipes := range s.Power.All() {
		names.Insert(recipes.Keys()...)
	}
	return recipe.NewEnablement(names.UnsortedList()...)
}

// Extractable returns the names of items some extraction building can
// obtain, in building order.
func (s *Snapshot) Extractable() []string {
	seen := set.New[string]()
	var names []string
	for _, b := range s.Buildings.All() {
		for _, res := range b.AllowedResources {
			item, ok := s.Items.Get(res)
			if !ok || seen.Has(item.Name) {
				continue
			}
			seen.Insert(item.Name)
			names = append(names, item.Name)
		}
	}
	return names
}

// ItemNames returns every item name in file order.
func (s *Snapshot) ItemNames() []string {
	names := make([]string, 0, s.Items.Len())
	for _, item := range s.Items.All() {
		names = append(names, item.Name)
	}
	return names
}
