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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

// Data file names, relative to the data directory.
const (
	ItemsFile      = "items.yaml"
	BuildingsFile  = "buildings.yaml"
	RecipesFile    = "recipes.yaml"
	SchematicsFile = "schematics.yaml"
	PowerFile      = "power.yaml"
	FactsFile      = "facts.yaml"
)

// Load reads and validates a snapshot from provider. Items, buildings, and
// recipes are required; the other files are optional.
func Load(ctx context.Context, provider DataProvider) (*Snapshot, error) {
	snap := &Snapshot{}
	facts := &Facts{}

	files := []struct {
		name     string
		into     any
		required bool
	}{
		{ItemsFile, &snap.Items, true},
		{BuildingsFile, &snap.Buildings, true},
		{RecipesFile, &snap.Recipes, true},
		{SchematicsFile, &snap.Schematics, false},
		{PowerFile, &snap.Power, false},
		{FactsFile, facts, false},
	}

	for _, f := range files {
		if err := checkContext(ctx, f.name); err != nil {
			return nil, err
		}

		data, err := provider.ReadFile(f.name)
		if err != nil {
			if !f.required && errors.Is(err, fs.ErrNotExist) {
				slog.Debug("optional data file not present", "file", f.name)
				continue
			}
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeNotFound,
				fmt.Sprintf("failed to read %s", f.name), err,
				map[string]any{"file": f.name, "source": provider.Source(f.name)})
		}

		if err := yaml.Unmarshal(data, f.into); err != nil {
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeDataIntegrity,
				fmt.Sprintf("failed to parse %s", f.name), err,
				map[string]any{"file": f.name, "source": provider.Source(f.name)})
		}
		slog.Debug("loaded data file", "file", f.name, "source", provider.Source(f.name))
	}

	facts.applyDefaults()
	snap.Facts = facts

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("game data snapshot loaded",
		"items", snap.Items.Len(),
		"buildings", snap.Buildings.Len(),
		"recipes", snap.Recipes.Len(),
		"schematics", snap.Schematics.Len(),
		"power_machines", snap.Power.Len())

	return snap, nil
}

func checkContext(ctx context.Context, stage string) error {
	select {
	case <-ctx.Done():
		return pgerrors.WrapWithContext(
			pgerrors.ErrCodeTimeout,
			"game data load cancelled",
			ctx.Err(),
			map[string]any{
				"stage": stage,
			},
		)
	default:
		return nil
	}
}
