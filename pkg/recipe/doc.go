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

// Package recipe indexes production recipes and answers lookups over them.
//
// # Overview
//
// An Index is built once from an ordered slice of Spec values and is
// read-only afterward. Every recipe receives a stable ID equal to its
// position in the input, and that position is the tie-break whenever a
// lookup has to choose between recipes: the earliest registered wins.
//
// # Core Types
//
// Spec: declarative recipe as produced by the data loader
//
//	type Spec struct {
//	    Name    string             // unique recipe name
//	    Machine string             // building the recipe runs in
//	    Inputs  map[string]float64 // part -> units per minute
//	    Outputs map[string]float64 // part -> units per minute
//	}
//
// Index: forward (output part -> rate -> recipes), grouping
// (machine -> name -> recipe) and reverse (input part -> recipes) indices.
//
// Enablement: optional allow-list of recipe names. A nil *Enablement enables
// every recipe.
//
// Aliases: case-insensitive part name table.
//
// # Usage
//
//	idx, err := recipe.Build(specs)
//	if err != nil {
//	    return err // ErrCodeDataIntegrity
//	}
//
//	sel, err := idx.RecipeFor("Iron Ingot", nil)
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // nothing produces Iron Ingot
//	}
//	fmt.Printf("%s at %.1f/min\n", sel.Name, sel.Rate)
//
//	for _, ref := range idx.RecipesUsing("Iron Plate", recipe.NewEnablement("Reinforced Iron Plate")) {
//	    fmt.Println(ref.Name)
//	}
//
// # Errors
//
// Build fails with ErrCodeDataIntegrity on duplicate names, missing machine,
// empty part names and non-positive rates. FindName and RecipeFor fail with
// ErrCodeNotFound.
package recipe
