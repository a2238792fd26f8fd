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
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/gamedata"
)

// Loader builds catalogs on first use and caches them by key. Concurrent
// callers asking for the same key share a single build.
type Loader struct {
	opts  []Option
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*Catalog
}

// NewLoader returns a loader that builds catalogs with opts.
func NewLoader(opts ...Option) *Loader {
	return &Loader{
		opts:  opts,
		cache: make(map[string]*Catalog),
	}
}

// Load returns the catalog cached under key, loading it from provider if
// needed. Failed builds are not cached. Cancelling ctx abandons this
// caller's wait only; the shared build runs under defaults.DataLoadTimeout.
func (l *Loader) Load(ctx context.Context, key string, provider gamedata.DataProvider) (*Catalog, error) {
	l.mu.RLock()
	cat, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		catalogCacheHits.Inc()
		return cat, nil
	}
	if ctx.Err() != nil {
		return nil, loadCancelled(ctx, key)
	}

	ch := l.group.DoChan(key, func() (any, error) {
		l.mu.RLock()
		cached, ok := l.cache[key]
		l.mu.RUnlock()
		if ok {
			catalogCacheHits.Inc()
			return cached, nil
		}

		catalogCacheMisses.Inc()
		slog.Debug("building catalog", "key", key)

		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.DataLoadTimeout)
		defer cancel()

		snap, err := gamedata.Load(buildCtx, provider)
		if err != nil {
			return nil, err
		}
		built, err := New(snap, append([]Option{WithSource(key)}, l.opts...)...)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[key] = built
		l.mu.Unlock()
		return built, nil
	})

	select {
	case <-ctx.Done():
		return nil, loadCancelled(ctx, key)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.Debug("catalog build shared", "key", key)
		}
		return res.Val.(*Catalog), nil
	}
}

func loadCancelled(ctx context.Context, key string) error {
	return pgerrors.WrapWithContext(
		pgerrors.ErrCodeTimeout,
		"catalog load cancelled",
		ctx.Err(),
		map[string]any{
			"key": key,
		},
	)
}

// Forget drops the catalog cached under key.
func (l *Loader) Forget(key string) {
	l.mu.Lock()
	delete(l.cache, key)
	l.mu.Unlock()
	l.group.Forget(key)
}

var defaultLoader = NewLoader()

// Default returns the catalog of the embedded data set. The first successful
// build is kept for the life of the process; a failed build is retried on
// the next call.
func Default(ctx context.Context) (*Catalog, error) {
	return defaultLoader.Load(ctx, "embedded", gamedata.Embedded())
}
