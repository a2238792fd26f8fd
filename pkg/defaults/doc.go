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

// Package defaults provides centralized configuration constants for partgraph.
//
// This package defines the static game fact tables used when the loaded data
// omits them, the classification allow-lists, and the timeout applied to
// loading game data. Centralizing these values keeps the loader, catalog, and
// CLI in agreement.
//
// # Fact Tables
//
// Rates are in units per minute:
//
//   - Conveyor belts, indexed by tier (Mk.1 through Mk.4 as 0 through 3)
//   - Pipelines, indexed by mark (Mk.1, Mk.2 as 0, 1)
//   - Miners, indexed by [mark][purity] with purity impure, normal, pure
//   - Water extractor, a single fixed rate
//   - Oil extractor, indexed by purity
//
// Tables are returned by value or as fresh maps so callers cannot mutate
// shared state.
//
// # Usage
//
//	rates := defaults.ConveyorRates()
//	fmt.Println(rates[3]) // 480
package defaults
