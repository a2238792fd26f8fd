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

package catalog

import (
	"time"
)

// Summary describes a catalog for display.
type Summary struct {
	ID           string           `json:"id" yaml:"id"`
	Source       string           `json:"source" yaml:"source"`
	BuiltAt      time.Time        `json:"builtAt" yaml:"builtAt"`
	Recipes      int              `json:"recipes" yaml:"recipes"`
	Machines     int              `json:"machines" yaml:"machines"`
	ForagePasses int              `json:"foragePasses" yaml:"foragePasses"`
	Parts        map[Category]int `json:"parts" yaml:"parts"`
}

// Summary returns the catalog's size per category.
func (c *Catalog) Summary() Summary {
	s := Summary{
		ID:           c.id,
		Source:       c.source,
		BuiltAt:      c.builtAt,
		Recipes:      c.index.Len(),
		Machines:     len(c.index.Machines()),
		ForagePasses: c.parts.Passes(),
		Parts:        make(map[Category]int, len(Categories())),
	}
	for _, cat := range Categories() {
		parts, _ := c.Parts(cat)
		s.Parts[cat] = parts.Len()
	}
	return s
}
