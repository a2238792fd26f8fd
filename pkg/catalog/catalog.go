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
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/set"

	"github.com/ficsit-tools/partgraph/pkg/classify"
	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/gamedata"
	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

// Catalog is the read-only result of building a snapshot.
type Catalog struct {
	id      string
	source  string
	builtAt time.Time

	snapshot   *gamedata.Snapshot
	facts      *gamedata.Facts
	index      *recipe.Index
	aliases    *recipe.Aliases
	partRules  *classify.PartClassifier
	parts      *classify.PartSets
	strategic  *classify.StrategicSets
	classifier *classify.StrategicClassifier
}

type options struct {
	source     string
	allowRebar bool
}

// Option configures catalog construction.
type Option func(*options)

// WithSource records where the snapshot was loaded from.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithAllowRebar lets rebar ammunition qualify as a strategic solid.
func WithAllowRebar(allow bool) Option {
	return func(o *options) {
		o.allowRebar = allow
	}
}

// New builds a catalog from snap. The build fails with a data integrity
// error on unresolved references, non-positive rates, or duplicate recipe
// names; no partial catalog is returned.
func New(snap *gamedata.Snapshot, opts ...Option) (*Catalog, error) {
	start := time.Now()
	o := options{source: "embedded"}
	for _, opt := range opts {
		opt(&o)
	}

	if snap == nil {
		return nil, pgerrors.New(pgerrors.ErrCodeInvalidRequest, "snapshot is required")
	}

	cat, err := build(snap, o)
	if err != nil {
		catalogBuildErrors.Inc()
		return nil, err
	}

	elapsed := time.Since(start)
	catalogBuildDuration.Observe(elapsed.Seconds())
	cat.recordSizes()

	slog.Info("catalog built",
		"id", cat.id,
		"source", cat.source,
		"recipes", cat.index.Len(),
		"parts", cat.parts.All().Len(),
		"forage_passes", cat.parts.Passes(),
		"duration", elapsed)

	return cat, nil
}

func build(snap *gamedata.Snapshot, o options) (*Catalog, error) {
	specs, err := snap.RecipeSet()
	if err != nil {
		return nil, err
	}

	index, err := recipe.Build(specs)
	if err != nil {
		return nil, err
	}

	facts := gamedata.DefaultFacts()
	if snap.Facts != nil {
		facts = snap.Facts.Clone()
	}

	partRules := classify.NewPartClassifier(index, snap.Extractable())
	if !index.IsProduced(defaults.PowerPart) {
		// No generator recipes: machines are assumed to be powered.
		partRules.WithAmbient(defaults.PowerPart)
	}
	parts := partRules.Classify()

	classifier := classify.NewStrategicClassifier(index, parts, classify.Rules{
		ProjectAssembly: slices.Clone(facts.ProjectAssembly),
		Fluids:          facts.Fluids(),
		FluidAllowList:  slices.Clone(facts.FluidAllowList),
		PowerPart:       defaults.PowerPart,
		AllowRebar:      o.allowRebar,
	})

	// Item names go last so they win any case-folding collision.
	aliasNames := index.AllParts().SortedList()
	aliasNames = append(aliasNames, snap.ItemNames()...)

	return &Catalog{
		id:         uuid.NewString(),
		source:     o.source,
		builtAt:    time.Now().UTC(),
		snapshot:   snap,
		facts:      facts,
		index:      index,
		aliases:    recipe.NewAliases(aliasNames...),
		partRules:  partRules,
		parts:      parts,
		strategic:  classifier.Classify(),
		classifier: classifier,
	}, nil
}

func (c *Catalog) recordSizes() {
	for _, cat := range Categories() {
		parts, _ := c.Parts(cat)
		catalogParts.WithLabelValues(string(cat)).Set(float64(parts.Len()))
	}
}

// ID returns the unique identifier assigned when the catalog was built.
func (c *Catalog) ID() string { return c.id }

// Source returns where the snapshot was loaded from.
func (c *Catalog) Source() string { return c.source }

// BuiltAt returns the build time in UTC.
func (c *Catalog) BuiltAt() time.Time { return c.builtAt }

// Recipes returns every recipe in registration order.
func (c *Catalog) Recipes() []*recipe.Recipe { return c.index.Recipes() }

// Recipe returns the recipe named name.
func (c *Catalog) Recipe(name string) (*recipe.Recipe, bool) { return c.index.Recipe(name) }

// AllRecipes returns every recipe keyed by name.
func (c *Catalog) AllRecipes() map[string]*recipe.Recipe { return c.index.AllRecipes() }

// ByOutput returns the recipes producing part, grouped by output rate.
func (c *Catalog) ByOutput(part string) map[float64][]recipe.Ref { return c.index.ByOutput(part) }

// ByMachine returns the recipes run by machine, keyed by name.
func (c *Catalog) ByMachine(machine string) map[string]*recipe.Recipe {
	return c.index.ByMachine(machine)
}

// Machines returns every machine name, sorted.
func (c *Catalog) Machines() []string { return c.index.Machines() }

// FindName returns the name of the recipe with the given identity.
func (c *Catalog) FindName(id recipe.ID) (string, error) { return c.index.FindName(id) }

// AllParts returns every part referenced by any recipe.
func (c *Catalog) AllParts() set.Set[string] { return c.index.AllParts() }

// RecipesFor returns the enabled recipes producing output, grouped by rate.
func (c *Catalog) RecipesFor(output string, enabled *recipe.Enablement) map[float64][]recipe.Ref {
	return c.index.RecipesFor(output, enabled)
}

// RecipeFor returns the enabled recipe with the highest output rate for
// output. Ties go to the recipe registered first. It fails with NOT_FOUND
// when no enabled recipe produces output.
func (c *Catalog) RecipeFor(output string, enabled *recipe.Enablement) (recipe.Selection, error) {
	return c.index.RecipeFor(output, enabled)
}

// RecipesUsing returns the enabled recipes consuming input, in registration
// order.
func (c *Catalog) RecipesUsing(input string, enabled *recipe.Enablement) []recipe.Ref {
	return c.index.RecipesUsing(input, enabled)
}

// NormalizeName returns the canonical spelling of a part name, or raw
// unchanged when it matches no known part.
func (c *Catalog) NormalizeName(raw string) string { return c.aliases.Normalize(raw) }

// Unlocks returns the recipes unlocked at or below tier.
func (c *Catalog) Unlocks(tier int, includeAlternates bool) *recipe.Enablement {
	return c.snapshot.Unlocks(tier, includeAlternates)
}

// IsBasePart reports whether part has no producing recipe or is extracted.
func (c *Catalog) IsBasePart(part string) bool { return c.partRules.IsBasePart(part) }

// IsTerminalPart reports whether no recipe consumes part.
func (c *Catalog) IsTerminalPart(part string) bool { return c.partRules.IsTerminalPart(part) }

// BaseParts returns the base parts.
func (c *Catalog) BaseParts() set.Set[string] { return c.parts.Base() }

// TerminalParts returns the parts no recipe consumes.
func (c *Catalog) TerminalParts() set.Set[string] { return c.parts.Terminal() }

// ExtractedParts returns the parts obtainable by automated extraction.
func (c *Catalog) ExtractedParts() set.Set[string] { return c.parts.Extracted() }

// ForagedParts returns the base parts that must be gathered by hand.
func (c *Catalog) ForagedParts() set.Set[string] { return c.parts.Foraged() }

// ForageDependentParts returns the parts that cannot be made without a
// foraged part.
func (c *Catalog) ForageDependentParts() set.Set[string] { return c.parts.ForageDependent() }

// StrategicSolids returns the parts worth stockpiling.
func (c *Catalog) StrategicSolids() set.Set[string] { return c.strategic.StrategicSolids() }

// PortableIntermediates returns the parts worth shipping between factories.
func (c *Catalog) PortableIntermediates() set.Set[string] {
	return c.strategic.PortableIntermediates()
}

// SingleUseIntermediates returns the remaining produced parts.
func (c *Catalog) SingleUseIntermediates() set.Set[string] {
	return c.strategic.SingleUseIntermediates()
}

// Ammo returns the parts matching the ammunition name pattern.
func (c *Catalog) Ammo() set.Set[string] { return c.strategic.Ammo() }

// Facts returns a copy of the static fact tables.
func (c *Catalog) Facts() *gamedata.Facts { return c.facts.Clone() }

// ConveyorRate returns belt throughput for tier.
func (c *Catalog) ConveyorRate(tier int) (float64, error) { return c.facts.ConveyorRate(tier) }

// PipelineRate returns pipeline throughput for mark.
func (c *Catalog) PipelineRate(mark int) (float64, error) { return c.facts.PipelineRate(mark) }

// MiningRate returns miner output for mark and purity.
func (c *Catalog) MiningRate(mark, purity int) (float64, error) {
	return c.facts.MiningRate(mark, purity)
}

// WaterExtractionRate returns the water extractor output.
func (c *Catalog) WaterExtractionRate() float64 { return c.facts.WaterExtractionRate() }

// OilExtractionRate returns oil extractor output for purity.
func (c *Catalog) OilExtractionRate(purity int) (float64, error) {
	return c.facts.OilExtractionRate(purity)
}

// PowerLoad returns the power draw of machine in MW.
func (c *Catalog) PowerLoad(machine string) float64 { return c.facts.PowerLoad(machine) }

// FluidColor returns the display colour of a raw fluid.
func (c *Catalog) FluidColor(part string) (string, bool) { return c.facts.FluidColor(part) }
