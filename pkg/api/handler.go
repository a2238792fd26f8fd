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
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/recipe"
	"github.com/ficsit-tools/partgraph/pkg/serializer"
	"github.com/ficsit-tools/partgraph/pkg/server"
)

// Handler serves catalog queries over HTTP. Every endpoint answers 503
// until a catalog has been set.
type Handler struct {
	catalog atomic.Pointer[catalog.Catalog]
}

// NewHandler returns a handler serving cat, which may be nil until SetCatalog.
func NewHandler(cat *catalog.Catalog) *Handler {
	h := &Handler{}
	if cat != nil {
		h.catalog.Store(cat)
	}
	return h
}

// SetCatalog swaps the catalog served by h.
func (h *Handler) SetCatalog(cat *catalog.Catalog) {
	h.catalog.Store(cat)
}

// Ready reports whether a catalog is loaded.
func (h *Handler) Ready() (bool, string) {
	if h.catalog.Load() == nil {
		return false, "catalog not loaded"
	}
	return true, ""
}

// Routes returns the query endpoints keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/parts":   withTimeout(h.HandleParts),
		"/v1/recipe":  withTimeout(h.HandleRecipe),
		"/v1/recipes": withTimeout(h.HandleRecipes),
		"/v1/uses":    withTimeout(h.HandleUses),
		"/v1/explain": withTimeout(h.HandleExplain),
		"/v1/summary": withTimeout(h.HandleSummary),
		"/v1/rates":   withTimeout(h.HandleRates),
	}
}

func withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(next, defaults.QueryHandlerTimeout, "query timed out").ServeHTTP
}

// begin validates the method, resolves the catalog and handles conditional
// requests. It returns nil when the response has already been written.
func (h *Handler) begin(w http.ResponseWriter, r *http.Request) *catalog.Catalog {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, pgerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return nil
	}

	cat := h.catalog.Load()
	if cat == nil {
		w.Header().Set("Retry-After", "1")
		server.WriteError(w, r, http.StatusServiceUnavailable, pgerrors.ErrCodeUnavailable,
			"Catalog is still loading", true, nil)
		return nil
	}

	etag := strconv.Quote(cat.ID())
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.QueryCacheTTL.Seconds())))
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	return cat
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// HandleParts lists the parts of ?category= (default all).
func (h *Handler) HandleParts(w http.ResponseWriter, r *http.Request) {
	cat := h.begin(w, r)
	if cat == nil {
		return
	}

	category := catalog.CategoryAll
	if s := r.URL.Query().Get("category"); s != "" {
		parsed, err := catalog.ParseCategory(s)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Invalid category", nil)
			return
		}
		category = parsed
	}

	list, err := cat.PartList(category)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list parts", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, list)
}

// HandleRecipe returns the highest-rate enabled recipe producing ?part=.
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	cat := h.begin(w, r)
	if cat == nil {
		return
	}

	q, err := ParseQuery(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid query", nil)
		return
	}

	view, err := cat.BestRecipe(q.Part, q.Enablement(cat))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to select recipe", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, view)
}

// HandleRecipes lists the enabled producers of ?part=, fastest first.
func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, (*catalog.Catalog).ProducerList)
}

// HandleUses lists the enabled consumers of ?part=.
func (h *Handler) HandleUses(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, (*catalog.Catalog).ConsumerList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request,
	list func(*catalog.Catalog, string, *recipe.Enablement) catalog.RecipeList) {

	cat := h.begin(w, r)
	if cat == nil {
		return
	}

	q, err := ParseQuery(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid query", nil)
		return
	}

	result := list(cat, cat.NormalizeName(q.Part), q.Enablement(cat))
	if result.Recipes == nil {
		result.Recipes = []catalog.RecipeView{}
	}
	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleExplain reports how ?part= was classified.
func (h *Handler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	cat := h.begin(w, r)
	if cat == nil {
		return
	}

	part := strings.TrimSpace(r.URL.Query().Get("part"))
	if part == "" {
		server.WriteError(w, r, http.StatusBadRequest, pgerrors.ErrCodeInvalidRequest,
			"part is required", false, nil)
		return
	}

	e, err := cat.Explain(part)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to explain part", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, e)
}

// HandleSummary returns the catalog's identity and size per category.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	cat := h.begin(w, r)
	if cat == nil {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, cat.Summary())
}

// HandleRates returns the game facts the catalog was built with.
func (h *Handler) HandleRates(w http.ResponseWriter, r *http.Request) {
	cat := h.begin(w, r)
	if cat == nil {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, cat.Facts())
}
