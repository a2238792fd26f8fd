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

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/recipe"
)

// Query holds the parameters shared by the recipe endpoints.
type Query struct {
	// Part is the requested part name, not yet normalized.
	Part string

	// Tier limits recipes to schematics at or below it. Negative disables
	// the tier filter.
	Tier int

	// Alternates includes alternate schematics when filtering by tier.
	Alternates bool

	// Enabled names additional recipes to enable.
	Enabled []string
}

// ParseQuery parses a Query from the request's URL.
func ParseQuery(r *http.Request) (*Query, error) {
	if r == nil {
		return nil, pgerrors.New(pgerrors.ErrCodeInvalidRequest, "request cannot be nil")
	}
	return ParseQueryFromValues(r.URL.Query())
}

// ParseQueryFromValues parses a Query from URL values. part is required;
// tier defaults to -1, alternates to false, and enabled may repeat.
func ParseQueryFromValues(values url.Values) (*Query, error) {
	q := &Query{
		Part: strings.TrimSpace(values.Get("part")),
		Tier: -1,
	}
	if q.Part == "" {
		return nil, pgerrors.New(pgerrors.ErrCodeInvalidRequest, "part is required")
	}

	if s := values.Get("tier"); s != "" {
		tier, err := strconv.Atoi(s)
		if err != nil {
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeInvalidRequest,
				"invalid tier value", err, map[string]any{"tier": s})
		}
		q.Tier = tier
	}

	if s := values.Get("alternates"); s != "" {
		alternates, err := strconv.ParseBool(s)
		if err != nil {
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeInvalidRequest,
				"invalid alternates value", err, map[string]any{"alternates": s})
		}
		q.Alternates = alternates
	}

	for _, name := range values["enabled"] {
		if name = strings.TrimSpace(name); name != "" {
			q.Enabled = append(q.Enabled, name)
		}
	}

	return q, nil
}

// Enablement resolves the query's recipe filter against cat. A nil result
// enables every recipe.
func (q *Query) Enablement(cat *catalog.Catalog) *recipe.Enablement {
	return cat.Enablement(q.Tier, q.Alternates, q.Enabled)
}
