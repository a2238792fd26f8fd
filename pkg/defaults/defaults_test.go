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

package defaults

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDataLoadTimeout(t *testing.T) {
	assert.GreaterOrEqual(t, DataLoadTimeout, 5*time.Second)
	assert.LessOrEqual(t, DataLoadTimeout, 2*time.Minute)
}

func TestHTTPTimeouts(t *testing.T) {
	assert.Less(t, HTTPConnectTimeout, HTTPClientTimeout)
	assert.Less(t, HTTPResponseHeaderTimeout, HTTPClientTimeout)
	assert.Less(t, HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	assert.Positive(t, HTTPIdleConnTimeout)
	assert.Positive(t, HTTPKeepAlive)
}

func TestServerTimeouts(t *testing.T) {
	assert.Less(t, ServerReadHeaderTimeout, ServerReadTimeout)
	assert.Less(t, ServerReadTimeout, ServerWriteTimeout)
	assert.Greater(t, ServerIdleTimeout, ServerWriteTimeout)
	assert.Positive(t, ServerShutdownTimeout)
}

func TestQueryDefaults(t *testing.T) {
	assert.Less(t, QueryHandlerTimeout, ServerWriteTimeout)
	assert.Positive(t, QueryCacheTTL)
}

func TestRateTables(t *testing.T) {
	conveyor := ConveyorRates()
	assert.Equal(t, 60.0, conveyor[0])
	assert.Equal(t, 480.0, conveyor[3])

	miner := MinerRates()
	assert.Equal(t, 480.0, miner[2][2])
	for mark := range miner {
		for purity := 1; purity < len(miner[mark]); purity++ {
			assert.Greater(t, miner[mark][purity], miner[mark][purity-1], "mark %d purity %d", mark, purity)
		}
	}

	assert.Equal(t, 120.0, OilExtractorRates()[1])
	assert.Equal(t, 600.0, PipelineRates()[1])
}

func TestTablesAreCopies(t *testing.T) {
	loads := PowerLoads()
	loads["Smelter"] = 9999
	assert.Equal(t, 4.0, PowerLoads()["Smelter"])

	colors := FluidColors()
	delete(colors, "Water")
	assert.Contains(t, FluidColors(), "Water")

	parts := ProjectAssemblyParts()
	parts[0] = "changed"
	assert.Equal(t, "Smart Plating", ProjectAssemblyParts()[0])
}

func TestFluidAllowListArePackaged(t *testing.T) {
	for _, name := range FluidAllowList() {
		assert.Contains(t, name, "Packaged ")
	}
}
