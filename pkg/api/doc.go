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

// Package api serves the part catalog over HTTP.
//
// Serve loads the catalog from the embedded game data, optionally layered
// with files from PARTGRAPH_DATA_DIR, and runs it behind pkg/server. Set
// PARTGRAPH_ALLOW_REBAR=true to count rebar ammunition as strategic.
//
// # Endpoints
//
// Query endpoints (rate limited, GET only):
//   - /v1/parts?category=strategic   parts in a category (default all)
//   - /v1/recipe?part=Iron+Ingot     highest-rate enabled recipe for a part
//   - /v1/recipes?part=...           enabled producers, fastest first
//   - /v1/uses?part=...              enabled consumers
//   - /v1/explain?part=...           categories and the deciding rule
//   - /v1/summary                    catalog identity and sizes
//   - /v1/rates                      game facts
//
// The recipe endpoints accept tier (default -1, no tier filter), alternates
// (true/false) and any number of enabled=<recipe name> parameters.
//
// System endpoints: /health, /ready and /metrics.
//
// Responses carry the catalog ID as ETag, and If-None-Match is answered with
// 304. Until the catalog is loaded every query endpoint returns 503.
//
// Example:
//
//	curl -s "http://localhost:8080/v1/recipe?part=Iron%20Ingot&tier=5"
package api
