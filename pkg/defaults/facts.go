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

// PowerPart is the synthetic part representing power draw on recipe inputs
// and power output on generator recipes.
const PowerPart = "Power"

// WaterExtractorRate is the fixed output of a water extractor.
const WaterExtractorRate = 120.0

// ConveyorRates returns belt throughput indexed by tier.
func ConveyorRates() [4]float64 {
	return [4]float64{60, 120, 270, 480}
}

// PipelineRates returns pipeline throughput indexed by mark.
func PipelineRates() [2]float64 {
	return [2]float64{300, 600}
}

// MinerRates returns miner output indexed by [mark][purity].
func MinerRates() [3][3]float64 {
	return [3][3]float64{
		{30, 60, 120},
		{60, 120, 240},
		{120, 240, 480},
	}
}

// OilExtractorRates returns oil extractor output indexed by purity.
func OilExtractorRates() [3]float64 {
	return [3]float64{60, 120, 240}
}

// PowerLoads returns the power draw in MW of each production machine.
func PowerLoads() map[string]float64 {
	return map[string]float64{
		"Smelter":         4,
		"Constructor":     4,
		"Assembler":       15,
		"Foundry":         16,
		"Refinery":        30,
		"Packager":        10,
		"Manufacturer":    55,
		"Blender":         75,
		"Quantum Encoder": 1000,
	}
}

// FluidColors returns the display colour of each raw fluid. The keys are the
// fluid list used by the classifiers.
func FluidColors() map[string]string {
	return map[string]string{
		"Water":             "#7ab0d4",
		"Crude Oil":         "#1a1a1a",
		"Heavy Oil Residue": "#6b2d75",
		"Fuel":              "#e8a53f",
		"Liquid Biofuel":    "#8fb25a",
		"Turbofuel":         "#d1482f",
		"Alumina Solution":  "#c7c9c8",
		"Sulfuric Acid":     "#f1f06a",
		"Nitrogen Gas":      "#a8a8b8",
		"Nitric Acid":       "#d6d1a3",
		"Rocket Fuel":       "#f25c3a",
		"Ionized Fuel":      "#f2c8ec",
	}
}

// ProjectAssemblyParts returns the parts delivered to the project assembly.
// These are always worth stockpiling.
func ProjectAssemblyParts() []string {
	return []string{
		"Smart Plating",
		"Versatile Framework",
		"Automated Wiring",
		"Modular Engine",
		"Adaptive Control Unit",
		"Assembly Director System",
		"Magnetic Field Generator",
		"Thermal Propulsion Rocket",
		"Nuclear Pasta",
		"Biochemical Sculptor",
		"AI Expansion Server",
		"Ballistic Warp Drive",
	}
}

// FluidAllowList returns the packaged fluids that still count as strategic solids.
func FluidAllowList() []string {
	return []string{
		"Packaged Fuel",
		"Packaged Ionized Fuel",
	}
}
