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

// Item is a part as listed in the game data.
type Item struct {
	Name string `json:"name" yaml:"name"`
}

// Building is a machine or extractor. AllowedResources lists the item
// identifiers an extraction building can obtain.
type Building struct {
	Name             string   `json:"name" yaml:"name"`
	AllowedResources []string `json:"allowedResources,omitempty" yaml:"allowedResources,omitempty"`
}

// ItemAmount is a per-cycle quantity of an item.
type ItemAmount struct {
	Item   string  `json:"item" yaml:"item"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// RecipeDef is a recipe as listed in the game data, with per-cycle amounts
// and a cycle time in seconds.
type RecipeDef struct {
	Name        string       `json:"name" yaml:"name"`
	Ingredients []ItemAmount `json:"ingredients" yaml:"ingredients"`
	Products    []ItemAmount `json:"products" yaml:"products"`
	Time        float64      `json:"time" yaml:"time"`
	ProducedIn  []string     `json:"producedIn" yaml:"producedIn"`
	InMachine   bool         `json:"inMachine" yaml:"inMachine"`
	ForBuilding bool         `json:"forBuilding" yaml:"forBuilding"`
}

// Unlock lists what a schematic unlocks.
type Unlock struct {
	Recipes []string `json:"recipes" yaml:"recipes"`
}

// Schematic is a research or milestone that unlocks recipes.
type Schematic struct {
	Name      string `json:"name" yaml:"name"`
	Tier      int    `json:"tier" yaml:"tier"`
	Alternate bool   `json:"alternate" yaml:"alternate"`
	Unlock    Unlock `json:"unlock" yaml:"unlock"`
}

// PowerRecipe is a pre-formatted generator recipe with per-minute rates
// keyed by part name.
type PowerRecipe struct {
	In  map[string]float64 `json:"in" yaml:"in"`
	Out map[string]float64 `json:"out" yaml:"out"`
}

// Snapshot is the complete game data a catalog is built from.
type Snapshot struct {
	Items      OrderedMap[Item]
	Buildings  OrderedMap[Building]
	Recipes    OrderedMap[RecipeDef]
	Schematics OrderedMap[Schematic]

	// Power maps machine name to recipe name to generator recipe.
	Power OrderedMap[OrderedMap[PowerRecipe]]

	Facts *Facts
}
