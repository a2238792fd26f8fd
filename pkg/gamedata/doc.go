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

// Package gamedata loads the game data snapshot that the catalog is built
// from and converts it into an ordered recipe set.
//
// A snapshot is read from six YAML files through a [DataProvider]:
//
//	items.yaml       item identifier -> {name}
//	buildings.yaml   building identifier -> {name, allowedResources}
//	recipes.yaml     recipe identifier -> {name, ingredients, products, time,
//	                 producedIn, inMachine, forBuilding}
//	schematics.yaml  schematic identifier -> {name, tier, alternate, unlock}
//	power.yaml       machine -> recipe name -> {in, out}
//	facts.yaml       static rate and lookup tables
//
// Mapping order in every file is preserved, so the recipe set produced by
// [Snapshot.RecipeSet] lists recipes in file order. Missing optional files
// (schematics, power, facts) fall back to empty tables or to the defaults
// in package defaults.
//
// The embedded data set is available through [Embedded]. An external
// directory can be layered over it with [NewLayeredDataProvider]; a file
// present in the external directory replaces the embedded file wholesale.
//
// Usage:
//
//	snap, err := gamedata.Load(ctx, gamedata.Embedded())
//	if err != nil {
//	    return err
//	}
//	specs, err := snap.RecipeSet()
package gamedata
