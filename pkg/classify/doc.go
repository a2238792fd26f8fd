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

// Package classify derives part classifications from a recipe index.
//
// PartClassifier computes the structural sets: base, terminal, extracted,
// foraged and forage-dependent. Forage dependency is a fixed point: starting
// from the extracted parts, a part becomes available once one of its
// producing recipes has every input available, and passes repeat until one
// adds nothing. Whatever is left, minus the foraged parts, can only be made
// from something gathered by hand.
//
// StrategicClassifier layers an ordered rule list on top to decide which
// parts are worth stockpiling (strategic solids) and worth routing between
// factories (portable intermediates). The first matching exclusion rule
// decides; inclusion rules are only tried once every exclusion passes.
//
// Ammo, ingot, rebar and packaged-fluid detection match on part names.
//
// All sets are computed once and returned as copies.
package classify
