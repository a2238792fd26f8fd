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

package gamedata

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

// Resource node purities, used as the purity index of the miner and oil
// extractor tables.
const (
	PurityImpure = iota
	PurityNormal
	PurityPure
)

// Facts holds the static rate and lookup tables.
type Facts struct {
	ConveyorRates      []float64          `json:"conveyorRates" yaml:"conveyorRates"`
	PipelineRates      []float64          `json:"pipelineRates" yaml:"pipelineRates"`
	MinerRates         [][]float64        `json:"minerRates" yaml:"minerRates"`
	WaterExtractorRate float64            `json:"waterExtractorRate" yaml:"waterExtractorRate"`
	OilExtractorRates  []float64          `json:"oilExtractorRates" yaml:"oilExtractorRates"`
	PowerLoads         map[string]float64 `json:"powerLoads" yaml:"powerLoads"`
	FluidColors        map[string]string  `json:"fluidColors" yaml:"fluidColors"`
	ProjectAssembly    []string           `json:"projectAssembly" yaml:"projectAssembly"`
	FluidAllowList     []string           `json:"fluidAllowList" yaml:"fluidAllowList"`
}

// DefaultFacts returns the built-in fact tables.
func DefaultFacts() *Facts {
	f := &Facts{}
	f.applyDefaults()
	return f
}

// applyDefaults fills every table left empty by facts.yaml.
func (f *Facts) applyDefaults() {
	if len(f.ConveyorRates) == 0 {
		c := defaults.ConveyorRates()
		f.ConveyorRates = c[:]
	}
	if len(f.PipelineRates) == 0 {
		p := defaults.PipelineRates()
		f.PipelineRates = p[:]
	}
	if len(f.MinerRates) == 0 {
		for _, row := range defaults.MinerRates() {
			f.MinerRates = append(f.MinerRates, slices.Clone(row[:]))
		}
	}
	if f.WaterExtractorRate == 0 {
		f.WaterExtractorRate = defaults.WaterExtractorRate
	}
	if len(f.OilExtractorRates) == 0 {
		o := defaults.OilExtractorRates()
		f.OilExtractorRates = o[:]
	}
	if len(f.PowerLoads) == 0 {
		f.PowerLoads = defaults.PowerLoads()
	}
	if len(f.FluidColors) == 0 {
		f.FluidColors = defaults.FluidColors()
	}
	if len(f.ProjectAssembly) == 0 {
		f.ProjectAssembly = defaults.ProjectAssemblyParts()
	}
	if len(f.FluidAllowList) == 0 {
		f.FluidAllowList = defaults.FluidAllowList()
	}
}

// Validate checks table shapes and that every rate is positive.
func (f *Facts) Validate() error {
	shapes := []struct {
		table string
		got   int
		want  int
	}{
		{"conveyorRates", len(f.ConveyorRates), len(defaults.ConveyorRates())},
		{"pipelineRates", len(f.PipelineRates), len(defaults.PipelineRates())},
		{"minerRates", len(f.MinerRates), len(defaults.MinerRates())},
		{"oilExtractorRates", len(f.OilExtractorRates), len(defaults.OilExtractorRates())},
	}
	for _, s := range shapes {
		if s.got != s.want {
			return pgerrors.NewWithContext(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("fact table %s has %d entries, want %d", s.table, s.got, s.want),
				map[string]any{"table": s.table})
		}
	}
	for mark, row := range f.MinerRates {
		if len(row) != len(f.OilExtractorRates) {
			return pgerrors.NewWithContext(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("fact table minerRates[%d] has %d purities, want %d", mark, len(row), len(f.OilExtractorRates)),
				map[string]any{"table": "minerRates", "mark": mark})
		}
	}

	rates := slices.Concat(f.ConveyorRates, f.PipelineRates, f.OilExtractorRates, []float64{f.WaterExtractorRate})
	for _, row := range f.MinerRates {
		rates = append(rates, row...)
	}
	for _, r := range rates {
		if r <= 0 {
			return pgerrors.New(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("fact tables contain non-positive rate %v", r))
		}
	}
	for machine, load := range f.PowerLoads {
		if load < 0 {
			return pgerrors.NewWithContext(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("negative power load %v for %s", load, machine),
				map[string]any{"machine": machine})
		}
	}
	return nil
}

func lookup(table string, rates []float64, i int) (float64, error) {
	if i < 0 || i >= len(rates) {
		return 0, pgerrors.NewWithContext(pgerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s index %d out of range [0, %d)", table, i, len(rates)),
			map[string]any{"table": table, "index": i})
	}
	return rates[i], nil
}

// ConveyorRate returns belt throughput in items per minute for tier.
func (f *Facts) ConveyorRate(tier int) (float64, error) {
	return lookup("conveyor", f.ConveyorRates, tier)
}

// PipelineRate returns pipeline throughput in cubic metres per minute for mark.
func (f *Facts) PipelineRate(mark int) (float64, error) {
	return lookup("pipeline", f.PipelineRates, mark)
}

// MiningRate returns the output of a miner of the given mark on a node of
// the given purity.
func (f *Facts) MiningRate(mark, purity int) (float64, error) {
	if mark < 0 || mark >= len(f.MinerRates) {
		return 0, pgerrors.NewWithContext(pgerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("miner mark %d out of range [0, %d)", mark, len(f.MinerRates)),
			map[string]any{"table": "miner", "mark": mark})
	}
	return lookup("miner purity", f.MinerRates[mark], purity)
}

// WaterExtractionRate returns the fixed water extractor output.
func (f *Facts) WaterExtractionRate() float64 {
	return f.WaterExtractorRate
}

// OilExtractionRate returns the oil extractor output for purity.
func (f *Facts) OilExtractionRate(purity int) (float64, error) {
	return lookup("oil extractor", f.OilExtractorRates, purity)
}

// PowerLoad returns the power draw of machine in MW, or 0 if the machine
// draws no power.
func (f *Facts) PowerLoad(machine string) float64 {
	return f.PowerLoads[machine]
}

// FluidColor returns the display colour of a raw fluid.
func (f *Facts) FluidColor(part string) (string, bool) {
	c, ok := f.FluidColors[part]
	return c, ok
}

// Fluids returns the raw fluid names, sorted.
func (f *Facts) Fluids() []string {
	return slices.Sorted(maps.Keys(f.FluidColors))
}

// Clone returns a deep copy.
func (f *Facts) Clone() *Facts {
	c := &Facts{
		ConveyorRates:      slices.Clone(f.ConveyorRates),
		PipelineRates:      slices.Clone(f.PipelineRates),
		WaterExtractorRate: f.WaterExtractorRate,
		OilExtractorRates:  slices.Clone(f.OilExtractorRates),
		PowerLoads:         maps.Clone(f.PowerLoads),
		FluidColors:        maps.Clone(f.FluidColors),
		ProjectAssembly:    slices.Clone(f.ProjectAssembly),
		FluidAllowList:     slices.Clone(f.FluidAllowList),
	}
	for _, row := range f.MinerRates {
		c.MinerRates = append(c.MinerRates, slices.Clone(row))
	}
	return c
}
