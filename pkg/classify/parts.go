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
	"log/slog"

	"k8s.io/utils/set"

	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

// PartClassifier answers structural questions about parts of an index.
type PartClassifier struct {
	index       *recipe.Index
	extractable set.Set[string]
	ambient     set.Set[string]
}

// NewPartClassifier returns a classifier over index. extractable lists the
// parts obtainable from automated extraction (miners, pumps, well
// extractors); entries that no recipe references are ignored.
func NewPartClassifier(index *recipe.Index, extractable []string) *PartClassifier {
	return &PartClassifier{
		index:       index,
		extractable: set.New(extractable...),
		ambient:     set.New[string](),
	}
}

// WithAmbient marks parts as available to every recipe without being
// produced or extracted. Ambient parts seed the forage closure and are
// never base parts.
func (c *PartClassifier) WithAmbient(parts ...string) *PartClassifier {
	c.ambient.Insert(parts...)
	return c
}

// IsBasePart reports whether part appears in the index and either no recipe
// produces it or it is extractable. Extraction takes precedence over any
// recipe producing the part.
func (c *PartClassifier) IsBasePart(part string) bool {
	if !c.index.HasPart(part) || c.ambient.Has(part) {
		return false
	}
	return c.extractable.Has(part) || !c.index.IsProduced(part)
}

// IsTerminalPart reports whether no recipe consumes part.
func (c *PartClassifier) IsTerminalPart(part string) bool {
	for _, r := range c.index.Recipes() {
		if r.Consumes(part) {
			return false
		}
	}
	return true
}

// IsExtractedPart reports whether part is obtainable by automated extraction.
func (c *PartClassifier) IsExtractedPart(part string) bool {
	return c.extractable.Has(part) && c.index.HasPart(part)
}

// PartSets holds the structural classification of every part in an index.
type PartSets struct {
	all             set.Set[string]
	base            set.Set[string]
	terminal        set.Set[string]
	extracted       set.Set[string]
	foraged         set.Set[string]
	forageDependent set.Set[string]
	passes          int
}

// Classify computes every structural set.
func (c *PartClassifier) Classify() *PartSets {
	all := c.index.AllParts()
	ps := &PartSets{
		all:       all,
		base:      set.New[string](),
		terminal:  set.New[string](),
		extracted: all.Intersection(c.extractable),
	}

	for _, part := range all.SortedList() {
		if c.IsBasePart(part) {
			ps.base.Insert(part)
		}
		if !c.index.IsConsumed(part) {
			ps.terminal.Insert(part)
		}
	}

	ps.foraged = ps.base.Difference(ps.extracted)
	ps.forageDependent, ps.passes = c.forageDependent(all, ps.extracted, ps.foraged)

	slog.Debug("parts classified",
		"parts", all.Len(),
		"base", ps.base.Len(),
		"terminal", ps.terminal.Len(),
		"extracted", ps.extracted.Len(),
		"foraged", ps.foraged.Len(),
		"forage_dependent", ps.forageDependent.Len(),
		"passes", ps.passes)

	return ps
}

// forageDependent grows the available set from the extracted and ambient
// parts until a full pass adds nothing. Available only grows, so this ends
// after at most len(all) productive passes.
func (c *PartClassifier) forageDependent(all, extracted, foraged set.Set[string]) (set.Set[string], int) {
	available := extracted.Union(c.ambient)
	candidates := all.Difference(available).Difference(foraged).SortedList()

	passes := 0
	for {
		passes++
		added := 0
		for _, part := range candidates {
			if available.Has(part) {
				continue
			}
			for _, r := range c.index.Producers(part) {
				if r.InputsWithin(available) {
					available.Insert(part)
					added++
					break
				}
			}
		}
		if added == 0 {
			break
		}
	}

	return all.Difference(available).Difference(foraged), passes
}

// All returns every classified part.
func (ps *PartSets) All() set.Set[string] { return ps.all.Clone() }

// Base returns parts with no producing recipe or obtained by extraction.
func (ps *PartSets) Base() set.Set[string] { return ps.base.Clone() }

// Terminal returns parts no recipe consumes.
func (ps *PartSets) Terminal() set.Set[string] { return ps.terminal.Clone() }

// Extracted returns parts obtainable by automated extraction.
func (ps *PartSets) Extracted() set.Set[string] { return ps.extracted.Clone() }

// Foraged returns base parts that must be gathered by hand.
func (ps *PartSets) Foraged() set.Set[string] { return ps.foraged.Clone() }

// ForageDependent returns parts unreachable from extracted parts alone.
func (ps *PartSets) ForageDependent() set.Set[string] { return ps.forageDependent.Clone() }

// Passes returns how many passes the forage fixed point took, including the
// final pass that added nothing.
func (ps *PartSets) Passes() int { return ps.passes }

// IsBase reports whether part is a base part.
func (ps *PartSets) IsBase(part string) bool { return ps.base.Has(part) }

// IsTerminal reports whether part is a terminal part.
func (ps *PartSets) IsTerminal(part string) bool { return ps.terminal.Has(part) }

// IsExtracted reports whether part is an extracted part.
func (ps *PartSets) IsExtracted(part string) bool { return ps.extracted.Has(part) }

// IsForaged reports whether part is a foraged part.
func (ps *PartSets) IsForaged(part string) bool { return ps.foraged.Has(part) }

// IsForageDependent reports whether part is forage-dependent.
func (ps *PartSets) IsForageDependent(part string) bool { return ps.forageDependent.Has(part) }
