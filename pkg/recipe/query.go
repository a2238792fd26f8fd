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

	"k8s.io/utils/set"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

// Enablement restricts queries to a set of recipe names. A nil *Enablement
// enables every recipe.
type Enablement struct {
	names set.Set[string]
}

// NewEnablement returns an enablement set allowing exactly the given recipe names.
func NewEnablement(names ...string) *Enablement {
	return &Enablement{names: set.New(names...)}
}

// Allows reports whether the recipe named name is enabled.
func (e *Enablement) Allows(name string) bool {
	return e == nil || e.names.Has(name)
}

// Len returns the number of enabled recipe names, or -1 when all are enabled.
func (e *Enablement) Len() int {
	if e == nil {
		return -1
	}
	return e.names.Len()
}

// Names returns the enabled recipe names sorted, or nil when all are enabled.
func (e *Enablement) Names() []string {
	if e == nil {
		return nil
	}
	return e.names.SortedList()
}

// Union returns an enablement allowing recipes enabled by either operand.
// If either operand enables everything, so does the result.
func (e *Enablement) Union(other *Enablement) *Enablement {
	if e == nil || other == nil {
		return nil
	}
	return &Enablement{names: e.names.Union(other.names)}
}

// Selection is the recipe chosen for an output by RecipeFor.
type Selection struct {
	Rate   float64 `json:"rate" yaml:"rate"`
	Name   string  `json:"name" yaml:"name"`
	Recipe *Recipe `json:"-" yaml:"-"`
}

// RecipesFor returns the enabled recipes producing output, grouped by output
// rate. The result is empty when no enabled recipe produces output.
func (idx *Index) RecipesFor(output string, enabled *Enablement) map[float64][]Ref {
	return idx.byOutputFiltered(output, enabled)
}

// RecipeFor selects the enabled recipe producing output at the highest rate.
// Ties at the highest rate go to the earliest registered recipe. It fails
// with a not found error when no enabled recipe produces output.
func (idx *Index) RecipeFor(output string, enabled *Enablement) (Selection, error) {
	var (
		best  Selection
		found bool
	)
	for rate, recipes := range idx.byOutput[output] {
		if found && rate <= best.Rate {
			continue
		}
		for _, r := range recipes {
			if !enabled.Allows(r.name) {
				continue
			}
			if !found || rate > best.Rate {
				best = Selection{Rate: rate, Name: r.name, Recipe: r}
				found = true
			}
			// buckets are in registration order
			break
		}
	}
	if !found {
		return Selection{}, pgerrors.NewWithContext(pgerrors.ErrCodeNotFound,
			fmt.Sprintf("no enabled recipe produces %q", output), map[string]any{
				"part":    output,
				"enabled": enabled.Len(),
			})
	}
	return best, nil
}

// RecipesUsing returns the enabled recipes consuming input in registration order.
func (idx *Index) RecipesUsing(input string, enabled *Enablement) []Ref {
	var out []Ref
	for _, r := range idx.recipes {
		if !enabled.Allows(r.name) || !r.Consumes(input) {
			continue
		}
		out = append(out, Ref{Name: r.name, Recipe: r})
	}
	return out
}
