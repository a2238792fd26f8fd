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

// Rules configures the strategic classifier.
type Rules struct {
	// ProjectAssembly lists parts that are always strategic solids.
	ProjectAssembly []string

	// Fluids lists the raw fluids. Any part prefixed "Packaged " is also a fluid.
	Fluids []string

	// FluidAllowList lists fluids that may still be strategic solids.
	FluidAllowList []string

	// PowerPart is the power sentinel part.
	PowerPart string

	// AllowRebar lets rebar ammunition be a strategic solid.
	AllowRebar bool
}

// Reason names the rule that decided a part.
type Reason string

// Reasons reported in a Decision. Exclusion reasons are listed in
// evaluation order.
const (
	ReasonBase            Reason = "base part"
	ReasonPower           Reason = "power"
	ReasonExtracted       Reason = "extracted part"
	ReasonForaged         Reason = "foraged or forage-dependent"
	ReasonFluid           Reason = "fluid"
	ReasonIngot           Reason = "ingot"
	ReasonRebar           Reason = "rebar ammunition"
	ReasonAmmo            Reason = "ammunition"
	ReasonProjectAssembly Reason = "project assembly part"
	ReasonAmmoPattern     Reason = "ammunition pattern"
	ReasonFanOut          Reason = "feeds several outputs"
	ReasonNarrowFanOut    Reason = "feeds at most one output"
)

// Target selects which classification a decision applies to.
type Target string

// Classification targets.
const (
	TargetStrategic Target = "strategic"
	TargetPortable  Target = "portable"
)

// Decision records how a part was classified for a target.
type Decision struct {
	Part     string `json:"part" yaml:"part"`
	Target   Target `json:"target" yaml:"target"`
	Included bool   `json:"included" yaml:"included"`
	Reason   Reason `json:"reason" yaml:"reason"`
	FanOut   int    `json:"fanOut" yaml:"fanOut"`
}

type exclusion struct {
	reason  Reason
	applies func(c *StrategicClassifier, part string, target Target) bool
}

// exclusions are evaluated in order; the first match decides.
var exclusions = []exclusion{
	{ReasonBase, func(c *StrategicClassifier, part string, _ Target) bool {
		return c.parts.IsBase(part)
	}},
	{ReasonPower, func(c *StrategicClassifier, part string, _ Target) bool {
		return part == c.rules.PowerPart
	}},
	{ReasonExtracted, func(c *StrategicClassifier, part string, _ Target) bool {
		return c.parts.IsExtracted(part)
	}},
	{ReasonForaged, func(c *StrategicClassifier, part string, _ Target) bool {
		return c.parts.IsForaged(part) || c.parts.IsForageDependent(part)
	}},
	{ReasonFluid, func(c *StrategicClassifier, part string, target Target) bool {
		if !c.IsFluid(part) {
			return false
		}
		return target == TargetPortable || !c.fluidAllow.Has(part)
	}},
	{ReasonIngot, func(_ *StrategicClassifier, part string, _ Target) bool {
		return IsIngot(part)
	}},
	{ReasonRebar, func(c *StrategicClassifier, part string, target Target) bool {
		return target == TargetStrategic && IsRebar(part) && !c.rules.AllowRebar
	}},
	{ReasonAmmo, func(_ *StrategicClassifier, part string, target Target) bool {
		return target == TargetPortable && IsAmmo(part)
	}},
}

// StrategicClassifier decides which parts are worth accumulating.
type StrategicClassifier struct {
	index           *recipe.Index
	parts           *PartSets
	rules           Rules
	fluids          set.Set[string]
	fluidAllow      set.Set[string]
	projectAssembly set.Set[string]
}

// NewStrategicClassifier returns a classifier layered on parts.
func NewStrategicClassifier(index *recipe.Index, parts *PartSets, rules Rules) *StrategicClassifier {
	return &StrategicClassifier{
		index:           index,
		parts:           parts,
		rules:           rules,
		fluids:          set.New(rules.Fluids...),
		fluidAllow:      set.New(rules.FluidAllowList...),
		projectAssembly: set.New(rules.ProjectAssembly...),
	}
}

// IsFluid reports whether part is a raw or packaged fluid.
func (c *StrategicClassifier) IsFluid(part string) bool {
	return c.fluids.Has(part) || IsPackaged(part)
}

// FanOut returns how many distinct parts are produced by the recipes that
// consume part.
func (c *StrategicClassifier) FanOut(part string) int {
	outputs := set.New[string]()
	for _, r := range c.index.Consumers(part) {
		outputs.Insert(r.OutputParts()...)
	}
	return outputs.Len()
}

func (c *StrategicClassifier) excluded(part string, target Target) (Reason, bool) {
	for _, ex := range exclusions {
		if ex.applies(c, part, target) {
			return ex.reason, true
		}
	}
	return "", false
}

// EvaluateStrategic decides whether part is a strategic solid.
func (c *StrategicClassifier) EvaluateStrategic(part string) Decision {
	d := Decision{Part: part, Target: TargetStrategic}
	if reason, ok := c.excluded(part, TargetStrategic); ok {
		d.Reason = reason
		return d
	}

	switch {
	case c.projectAssembly.Has(part):
		d.Included, d.Reason = true, ReasonProjectAssembly
	case IsAmmo(part):
		d.Included, d.Reason = true, ReasonAmmoPattern
	default:
		d.FanOut = c.FanOut(part)
		d.Included, d.Reason = fanOutReason(d.FanOut)
	}
	return d
}

// EvaluatePortable decides whether part is a portable intermediate.
func (c *StrategicClassifier) EvaluatePortable(part string) Decision {
	d := Decision{Part: part, Target: TargetPortable}
	if reason, ok := c.excluded(part, TargetPortable); ok {
		d.Reason = reason
		return d
	}
	d.FanOut = c.FanOut(part)
	d.Included, d.Reason = fanOutReason(d.FanOut)
	return d
}

func fanOutReason(fanOut int) (bool, Reason) {
	if fanOut > 1 {
		return true, ReasonFanOut
	}
	return false, ReasonNarrowFanOut
}

// StrategicSets holds the accumulation categories of every part.
type StrategicSets struct {
	strategicSolids        set.Set[string]
	portableIntermediates  set.Set[string]
	singleUseIntermediates set.Set[string]
	ammo                   set.Set[string]
	decisions              map[Target]map[string]Decision
}

// Classify evaluates every part of the index.
func (c *StrategicClassifier) Classify() *StrategicSets {
	all := c.parts.All()
	ss := &StrategicSets{
		strategicSolids:       set.New[string](),
		portableIntermediates: set.New[string](),
		ammo:                  set.New[string](),
		decisions: map[Target]map[string]Decision{
			TargetStrategic: make(map[string]Decision, all.Len()),
			TargetPortable:  make(map[string]Decision, all.Len()),
		},
	}

	for _, part := range all.SortedList() {
		if IsAmmo(part) {
			ss.ammo.Insert(part)
		}

		strategic := c.EvaluateStrategic(part)
		ss.decisions[TargetStrategic][part] = strategic
		if strategic.Included {
			ss.strategicSolids.Insert(part)
		}

		portable := c.EvaluatePortable(part)
		ss.decisions[TargetPortable][part] = portable
		if portable.Included {
			ss.portableIntermediates.Insert(part)
		}
	}

	ss.singleUseIntermediates = all.
		Difference(c.parts.base).
		Difference(ss.strategicSolids).
		Difference(ss.portableIntermediates).
		Difference(ss.ammo).
		Delete(c.rules.PowerPart)

	slog.Debug("strategic classification complete",
		"strategic_solids", ss.strategicSolids.Len(),
		"portable_intermediates", ss.portableIntermediates.Len(),
		"single_use_intermediates", ss.singleUseIntermediates.Len(),
		"ammo", ss.ammo.Len())

	return ss
}

// StrategicSolids returns the parts worth stockpiling.
func (ss *StrategicSets) StrategicSolids() set.Set[string] { return ss.strategicSolids.Clone() }

// PortableIntermediates returns the parts worth routing between factories.
func (ss *StrategicSets) PortableIntermediates() set.Set[string] {
	return ss.portableIntermediates.Clone()
}

// SingleUseIntermediates returns the non-base parts in neither category.
func (ss *StrategicSets) SingleUseIntermediates() set.Set[string] {
	return ss.singleUseIntermediates.Clone()
}

// Ammo returns the parts matching the ammunition pattern.
func (ss *StrategicSets) Ammo() set.Set[string] { return ss.ammo.Clone() }

// Decision returns the recorded decision for part and target.
func (ss *StrategicSets) Decision(part string, target Target) (Decision, bool) {
	d, ok := ss.decisions[target][part]
	return d, ok
}
