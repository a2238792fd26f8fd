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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog build metrics
	catalogBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "partgraph_catalog_build_duration_seconds",
			Help:    "Duration of catalog construction in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
	catalogBuildErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partgraph_catalog_build_errors_total",
			Help: "Total number of failed catalog builds",
		},
	)

	// Loader cache metrics
	catalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partgraph_catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
	)
	catalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partgraph_catalog_cache_misses_total",
			Help: "Total number of catalog cache misses (builds)",
		},
	)

	// Classification sizes of the most recently built catalog
	catalogParts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "partgraph_catalog_parts",
			Help: "Number of parts per classification in the last built catalog",
		},
		[]string{"category"},
	)
)
