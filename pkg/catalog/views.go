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

package catalog

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

// PartList is a sorted category listing.
type PartList struct {
	Category Category `json:"category" yaml:"category"`
	Parts    []string `json:"parts" yaml:"parts"`
}

// Header implements table output.
func (p PartList) Header() []string { return []string{"PART"} }

// Rows implements table output.
func (p PartList) Rows() [][]string {
	rows := make([][]string, 0, len(p.Parts))
	for _, part := range p.Parts {
		rows = append(rows, []string{part})
	}
	return rows
}

// RecipeView is a recipe as presented to users. Rate is the rate of the
// queried part: produced for producer lookups, consumed for consumer lookups.
type RecipeView struct {
	Name    string             `json:"name" yaml:"name"`
	Machine string             `json:"machine" yaml:"machine"`
	Rate    float64            `json:"rate" yaml:"rate"`
	Inputs  map[string]float64 `json:"inputs" yaml:"inputs"`
	Outputs map[string]float64 `json:"outputs" yaml:"outputs"`
}

// NewRecipeView copies r into a view with the given rate.
func NewRecipeView(r *recipe.Recipe, rate float64) RecipeView {
	return RecipeView{
		Name:    r.Name(),
		Machine: r.Machine(),
		Rate:    rate,
		Inputs:  r.Inputs(),
		Outputs: r.Outputs(),
	}
}

var recipeHeader = []string{"RECIPE", "MACHINE", "RATE", "INPUTS", "OUTPUTS"}

func (v RecipeView) row() []string {
	return []string{v.Name, v.Machine, FormatRate(v.Rate), FormatRates(v.Inputs), FormatRates(v.Outputs)}
}

// Header implements table output.
func (v RecipeView) Header() []string { return recipeHeader }

// Rows implements table output.
func (v RecipeView) Rows() [][]string { return [][]string{v.row()} }

// RecipeList is the result of a producer or consumer lookup.
type RecipeList struct {
	Part    string       `json:"part" yaml:"part"`
	Recipes []RecipeView `json:"recipes" yaml:"recipes"`
}

// Header implements table output.
func (l RecipeList) Header() []string { return recipeHeader }

// Rows implements table output.
func (l RecipeList) Rows() [][]string {
	rows := make([][]string, 0, len(l.Recipes))
	for _, v := range l.Recipes {
		rows = append(rows, v.row())
	}
	return rows
}

// Names returns the recipe names in list order.
func (l RecipeList) Names() []string {
	names := make([]string, 0, len(l.Recipes))
	for _, v := range l.Recipes {
		names = append(names, v.Name)
	}
	return names
}

// PartList lists category sorted by name.
func (c *Catalog) PartList(category Category) (PartList, error) {
	parts, err := c.Parts(category)
	if err != nil {
		return PartList{}, err
	}
	return PartList{Category: category, Parts: parts.SortedList()}, nil
}

// BestRecipe normalizes part and returns the RecipeFor selection as a view.
func (c *Catalog) BestRecipe(part string, enabled *recipe.Enablement) (RecipeView, error) {
	sel, err := c.RecipeFor(c.NormalizeName(part), enabled)
	if err != nil {
		return RecipeView{}, err
	}
	return NewRecipeView(sel.Recipe, sel.Rate), nil
}

// ProducerList normalizes part and lists the enabled recipes producing it,
// highest rate first. Recipes sharing a rate keep registration order.
func (c *Catalog) ProducerList(part string, enabled *recipe.Enablement) RecipeList {
	part = c.NormalizeName(part)
	grouped := c.RecipesFor(part, enabled)

	rates := make([]float64, 0, len(grouped))
	for rate := range grouped {
		rates = append(rates, rate)
	}
	slices.Sort(rates)
	slices.Reverse(rates)

	list := RecipeList{Part: part}
	for _, rate := range rates {
		for _, ref := range grouped[rate] {
			list.Recipes = append(list.Recipes, NewRecipeView(ref.Recipe, rate))
		}
	}
	return list
}

// ConsumerList normalizes part and lists the enabled recipes consuming it in
// registration order.
func (c *Catalog) ConsumerList(part string, enabled *recipe.Enablement) RecipeList {
	part = c.NormalizeName(part)
	list := RecipeList{Part: part}
	for _, ref := range c.RecipesUsing(part, enabled) {
		rate, _ := ref.Recipe.Input(part)
		list.Recipes = append(list.Recipes, NewRecipeView(ref.Recipe, rate))
	}
	return list
}

// Enablement combines a schematic tier filter with explicitly enabled recipe
// names. A negative tier disables the tier filter. The result is nil, which
// enables every recipe, when neither restriction applies.
func (c *Catalog) Enablement(tier int, includeAlternates bool, names []string) *recipe.Enablement {
	var enabled *recipe.Enablement
	if tier >= 0 {
		enabled = c.Unlocks(tier, includeAlternates)
	}
	if len(names) == 0 {
		return enabled
	}

	for _, n := range names {
		if _, ok := c.index.Recipe(n); !ok {
			slog.Warn("unknown recipe enabled", "recipe", n)
		}
	}
	explicit := recipe.NewEnablement(names...)
	if enabled == nil {
		return explicit
	}
	return enabled.Union(explicit)
}

// FormatRate renders a rate without trailing zeros.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// FormatRates renders a rate map as "part rate" pairs sorted by part.
func FormatRates(rates map[string]float64) string {
	parts := make([]string, 0, len(rates))
	for part := range rates {
		parts = append(parts, part)
	}
	slices.Sort(parts)

	pairs := make([]string, 0, len(parts))
	for _, part := range parts {
		pairs = append(pairs, part+" "+FormatRate(rates[part]))
	}
	return strings.Join(pairs, ", ")
}
