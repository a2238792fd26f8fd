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
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

const (
	testItems = `
Desc_Ore_C:
  name: Iron Ore
Desc_Ingot_C:
  name: Iron Ingot
Desc_Leaves_C:
  name: Leaves
`
	testBuildings = `
Build_Miner_C:
  name: Miner Mk.1
  allowedResources: [Desc_Ore_C]
Build_Smelter_C:
  name: Smelter
Build_Bench_C:
  name: Craft Bench
`
	testRecipes = `
Recipe_Ingot_C:
  name: Iron Ingot
  ingredients: [{item: Desc_Ore_C, amount: 1}]
  products: [{item: Desc_Ingot_C, amount: 1}]
  time: 2
  producedIn: [Build_Smelter_C]
  inMachine: true
Recipe_HandIngot_C:
  name: Hand Ingot
  ingredients: [{item: Desc_Leaves_C, amount: 1}]
  products: [{item: Desc_Ingot_C, amount: 1}]
  time: 1
  producedIn: [Build_Bench_C]
  inMachine: false
`
)

func testProvider(files map[string]string) *EmbeddedDataProvider {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys["data/"+name] = &fstest.MapFile{Data: []byte(content)}
	}
	return NewEmbeddedDataProvider(fsys, "data")
}

func minimalFiles() map[string]string {
	return map[string]string{
		ItemsFile:     testItems,
		BuildingsFile: testBuildings,
		RecipesFile:   testRecipes,
	}
}

func TestLoadEmbedded(t *testing.T) {
	snap, err := Load(context.Background(), Embedded())
	require.NoError(t, err)

	assert.Positive(t, snap.Items.Len())
	assert.Positive(t, snap.Recipes.Len())
	assert.Positive(t, snap.Schematics.Len())
	assert.Equal(t, 2, snap.Power.Len())
	require.NotNil(t, snap.Facts)

	keys := snap.Recipes.Keys()
	assert.Equal(t, "Recipe_IngotIron_C", keys[0])
}

func TestLoadMinimal(t *testing.T) {
	snap, err := Load(context.Background(), testProvider(minimalFiles()))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Items.Len())
	assert.Zero(t, snap.Schematics.Len())
	assert.Zero(t, snap.Power.Len())
	assert.Equal(t, DefaultFacts(), snap.Facts)
}

func TestLoadFactsOverride(t *testing.T) {
	files := minimalFiles()
	files[FactsFile] = "waterExtractorRate: 150\n"

	snap, err := Load(context.Background(), testProvider(files))
	require.NoError(t, err)
	assert.Equal(t, 150.0, snap.Facts.WaterExtractionRate())

	rate, err := snap.Facts.ConveyorRate(0)
	require.NoError(t, err)
	assert.Equal(t, 60.0, rate)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(files map[string]string)
		code   pgerrors.ErrorCode
	}{
		{
			name:   "missing required file",
			mutate: func(files map[string]string) { delete(files, RecipesFile) },
			code:   pgerrors.ErrCodeNotFound,
		},
		{
			name:   "malformed yaml",
			mutate: func(files map[string]string) { files[ItemsFile] = "a: [" },
			code:   pgerrors.ErrCodeDataIntegrity,
		},
		{
			name: "unknown allowed resource",
			mutate: func(files map[string]string) {
				files[BuildingsFile] = "Build_Miner_C:\n  name: Miner\n  allowedResources: [Desc_Nope_C]\n"
			},
			code: pgerrors.ErrCodeDataIntegrity,
		},
		{
			name: "schematic unlocks unknown recipe",
			mutate: func(files map[string]string) {
				files[SchematicsFile] = "S:\n  name: S\n  tier: 0\n  unlock: {recipes: [Recipe_Nope_C]}\n"
			},
			code: pgerrors.ErrCodeDataIntegrity,
		},
		{
			name:   "short fact table",
			mutate: func(files map[string]string) { files[FactsFile] = "pipelineRates: [300]\n" },
			code:   pgerrors.ErrCodeDataIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := minimalFiles()
			tt.mutate(files)

			_, err := Load(context.Background(), testProvider(files))
			require.Error(t, err)
			assert.True(t, pgerrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, Embedded())
	require.Error(t, err)
	assert.True(t, pgerrors.HasCode(err, pgerrors.ErrCodeTimeout))
}
