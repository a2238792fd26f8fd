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

// Package serializer encodes command output as JSON, YAML, or a text table
// and decodes JSON or YAML input documents.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Aligned columns for terminal viewing
//   - Values implementing [Tabular] print one row per entry; any other value
//     is flattened into FIELD/VALUE pairs
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, summary); err != nil {
//	    return err
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer w.Close()
//
// # Usage - Decoding
//
// Read a local file or http(s) URL, format taken from the extension:
//
//	names, err := serializer.FromFile[[]string](ctx, "enabled.yaml")
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
package serializer
