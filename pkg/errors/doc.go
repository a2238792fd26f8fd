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

// Package errors provides structured error types for programmatic error
// handling across the catalog, index, and classification packages.
//
// Catalog construction fails with ErrCodeDataIntegrity and aborts entirely;
// lookups that find nothing fail with ErrCodeNotFound. Both are deterministic,
// so callers should not retry them.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeDataIntegrity,
//	    "duplicate recipe name",
//	    map[string]any{
//	        "recipe": name,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // no enabled recipe produces the part
//	}
package errors
