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

package recipe

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

// Aliases resolves case-insensitive spellings of part names to their
// canonical display name.
//
// When two canonical names fold to the same key the one registered last
// wins. Registration follows snapshot order, so the outcome is deterministic
// for a given snapshot.
type Aliases struct {
	canonical map[string]string
}

// NewAliases registers names in order.
func NewAliases(names ...string) *Aliases {
	a := &Aliases{canonical: make(map[string]string, len(names))}
	for _, name := range names {
		key := foldKey(name)
		if key == "" {
			continue
		}
		if prev, ok := a.canonical[key]; ok && prev != name {
			slog.Debug("part alias collision, last registration wins",
				"key", key,
				"previous", prev,
				"canonical", name)
		}
		a.canonical[key] = name
	}
	return a
}

func foldKey(name string) string {
	// Casers carry state and are not safe to share.
	return cases.Fold().String(strings.TrimSpace(name))
}

// Normalize returns the canonical spelling of raw. Unknown names are returned
// unchanged so callers can apply their own validation.
func (a *Aliases) Normalize(raw string) string {
	if a == nil {
		return raw
	}
	if name, ok := a.canonical[foldKey(raw)]; ok {
		return name
	}
	return raw
}

// Resolve returns the canonical spelling of raw and whether it was known.
func (a *Aliases) Resolve(raw string) (string, bool) {
	if a == nil {
		return raw, false
	}
	name, ok := a.canonical[foldKey(raw)]
	if !ok {
		return raw, false
	}
	return name, true
}

// Len returns the number of distinct alias keys.
func (a *Aliases) Len() int {
	if a == nil {
		return 0
	}
	return len(a.canonical)
}
