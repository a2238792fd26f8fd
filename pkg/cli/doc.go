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

// Package cli implements the command-line interface of the partgraph tool.
//
// # Overview
//
// partgraph loads the game data (embedded, or layered from --data-dir),
// builds the immutable catalog and answers read-only questions about it.
//
// # Commands
//
// parts - List a derived part category:
//
//	partgraph parts [all|base|terminal|extracted|foraged|forage-dependent|strategic|portable|single-use|ammo]
//
// recipe - Best enabled recipe for a part:
//
//	partgraph --tier 3 recipe Iron Ingot
//
// Selects the enabled recipe with the highest output rate. Ties go to the
// earliest registered recipe. Fails when nothing enabled produces the part.
//
// recipes, uses - All enabled recipes producing or consuming a part:
//
//	partgraph recipes "Heavy Oil Residue"
//	partgraph uses iron rod
//
// explain - Categories of a part and the rule that decided them:
//
//	partgraph explain "Smart Plating" --format yaml
//
// rates, summary - Static fact tables and catalog size per category.
//
// Part names are case-insensitive; unquoted names with spaces are joined.
//
// # Global Flags
//
//	--data-dir      Directory layered over the embedded data (env PARTGRAPH_DATA_DIR)
//	--tier          Enable recipes unlocked at or below a schematic tier (-1: all)
//	--alternates    Include alternate schematics with --tier
//	--enabled-file  File or URL listing additionally enabled recipe names
//	--allow-rebar   Count rebar ammunition as strategic
//	--log-level     debug, info, warn, error (env LOG_LEVEL, default warn)
//	--output, -o    Output file path (default: stdout)
//	--format, -t    table, json, yaml (default: table)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, data errors, unknown parts)
//	2  Interrupted
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ficsit-tools/partgraph/pkg/cli.version=1.0.0'"
package cli
