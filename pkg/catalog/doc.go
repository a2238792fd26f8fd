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

// Package catalog provides the immutable Catalog: the recipe index, the
// part alias table, and every derived part classification, built once from
// a game data snapshot.
//
// A Catalog is never mutated after [New] returns, so one value can be shared
// by any number of goroutines without locking. Getters return copies; the
// caller may modify what it receives without affecting the catalog.
//
// Building a catalog:
//
//	snap, err := gamedata.Load(ctx, gamedata.Embedded())
//	if err != nil {
//	    return err
//	}
//	cat, err := catalog.New(snap)
//
// Query operations take an optional enablement. A nil enablement allows
// every recipe:
//
//	sel, err := cat.RecipeFor("Iron Ingot", cat.Unlocks(5, true))
//	if pgerrors.HasCode(err, pgerrors.ErrCodeNotFound) {
//	    // no unlocked recipe produces the part
//	}
//
// # Shared catalogs
//
// [Loader] builds at most one catalog per data source even under
// concurrent first use, and caches it afterward. [Default] returns the
// catalog of the embedded data set.
package catalog
