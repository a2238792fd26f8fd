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
	"fmt"
	"strings"

	"k8s.io/utils/set"

	"github.com/ficsit-tools/partgraph/pkg/classify"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

// Category names a derived part classification.
type Category string

const (
	CategoryAll             Category = "all"
	CategoryBase            Category = "base"
	CategoryTerminal        Category = "terminal"
	CategoryExtracted       Category = "extracted"
	CategoryForaged         Category = "foraged"
	CategoryForageDependent Category = "forage-dependent"
	CategoryStrategic       Category = "strategic"
	CategoryPortable        Category = "portable"
	CategorySingleUse       Category = "single-use"
	CategoryAmmo            Category = "ammo"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryBase,
		CategoryTerminal,
		CategoryExtracted,
		CategoryForaged,
		CategoryForageDependent,
		CategoryStrategic,
		CategoryPortable,
		CategorySingleUse,
		CategoryAmmo,
	}
}

// ParseCategory parses a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", pgerrors.NewWithContext(pgerrors.ErrCodeInvalidRequest,
		fmt.Sprintf("unknown part category %q", s),
		map[string]any{"category": s})
}

// Parts returns a copy of the parts in category.
func (c *Catalog) Parts(category Category) (set.Set[string], error) {
	switch category {
	case CategoryAll:
		return c.AllParts(), nil
	case CategoryBase:
		return c.BaseParts(), nil
	case CategoryTerminal:
		return c.TerminalParts(), nil
	case CategoryExtracted:
		return c.ExtractedParts(), nil
	case CategoryForaged:
		return c.ForagedParts(), nil
	case CategoryForageDependent:
		return c.ForageDependentParts(), nil
	case CategoryStrategic:
		return c.StrategicSolids(), nil
	case CategoryPortable:
		return c.PortableIntermediates(), nil
	case CategorySingleUse:
		return c.SingleUseIntermediates(), nil
	case CategoryAmmo:
		return c.Ammo(), nil
	default:
		return nil, pgerrors.NewWithContext(pgerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown part category %q", category),
			map[string]any{"category": string(category)})
	}
}

// Explanation shows how a part was classified.
type Explanation struct {
	Part       string            `json:"part" yaml:"part"`
	Categories []Category        `json:"categories" yaml:"categories"`
	Producers  []string          `json:"producers,omitempty" yaml:"producers,omitempty"`
	Consumers  []string          `json:"consumers,omitempty" yaml:"consumers,omitempty"`
	Strategic  classify.Decision `json:"strategic" yaml:"strategic"`
	Portable   classify.Decision `json:"portable" yaml:"portable"`
}

// Explain reports the categories of part and the rule that decided each
// strategic classification. The name is normalized first. It fails with
// NOT_FOUND when no recipe references the part.
func (c *Catalog) Explain(name string) (*Explanation, error) {
	part := c.NormalizeName(name)
	if !c.index.HasPart(part) {
		return nil, pgerrors.NewWithContext(pgerrors.ErrCodeNotFound,
			fmt.Sprintf("part %q not found", name),
			map[string]any{"part": name})
	}

	e := &Explanation{Part: part}
	for _, cat := range Categories() {
		if cat == CategoryAll {
			continue
		}
		parts, _ := c.Parts(cat)
		if parts.Has(part) {
			e.Categories = append(e.Categories, cat)
		}
	}
	for _, r := range c.index.Producers(part) {
		e.Producers = append(e.Producers, r.Name())
	}
	for _, r := range c.index.Consumers(part) {
		e.Consumers = append(e.Consumers, r.Name())
	}

	e.Strategic, _ = c.strategic.Decision(part, classify.TargetStrategic)
	e.Portable, _ = c.strategic.Decision(part, classify.TargetPortable)
	return e, nil
}
