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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficsit-tools/partgraph/pkg/gamedata"
)

func metricValue(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	case out.Histogram != nil:
		return float64(out.GetHistogram().GetSampleCount())
	}
	t.Fatalf("unsupported metric type: %v", out.String())
	return 0
}

func TestLoaderMetrics(t *testing.T) {
	l := NewLoader()
	ctx := context.Background()

	misses := metricValue(t, catalogCacheMisses)
	hits := metricValue(t, catalogCacheHits)
	builds := metricValue(t, catalogBuildDuration)

	_, err := l.Load(ctx, "metrics", gamedata.Embedded())
	require.NoError(t, err)
	_, err = l.Load(ctx, "metrics", gamedata.Embedded())
	require.NoError(t, err)

	assert.Equal(t, misses+1, metricValue(t, catalogCacheMisses))
	assert.Equal(t, hits+1, metricValue(t, catalogCacheHits))
	assert.Equal(t, builds+1, metricValue(t, catalogBuildDuration))
}

func TestCategorySizeMetrics(t *testing.T) {
	cat, err := NewLoader().Load(context.Background(), "sizes", gamedata.Embedded())
	require.NoError(t, err)

	for _, c := range Categories() {
		parts, err := cat.Parts(c)
		require.NoError(t, err)
		assert.Equal(t, float64(parts.Len()), metricValue(t, catalogParts.WithLabelValues(string(c))), "category %s", c)
	}
}
