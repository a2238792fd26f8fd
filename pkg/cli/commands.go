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

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
)

func partsCmd() *cli.Command {
	categories := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		categories = append(categories, string(c))
	}

	return &cli.Command{
		Name:      "parts",
		Usage:     "List the parts of a derived category",
		ArgsUsage: "[category]",
		Description: fmt.Sprintf(`List the parts in a category, sorted by name. Without a category every
part referenced by a recipe is listed.

Supported categories: %s`, strings.Join(categories, ", ")),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category := catalog.CategoryAll
			if cmd.Args().Present() {
				c, err := catalog.ParseCategory(cmd.Args().First())
				if err != nil {
					return err
				}
				category = c
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			list, err := cat.PartList(category)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, list)
		},
	}
}

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipe",
		Usage:     "Show the enabled recipe producing a part at the highest rate",
		ArgsUsage: "<part>",
		Description: `Select the enabled recipe producing the part at the highest rate. When
several recipes share the highest rate the earliest registered one wins.
The command fails when no enabled recipe produces the part.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			part, err := partArg(cmd, cat)
			if err != nil {
				return err
			}
			enabled, err := enablement(ctx, cmd, cat)
			if err != nil {
				return err
			}

			view, err := cat.BestRecipe(part, enabled)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, view)
		},
	}
}

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipes",
		Usage:     "List the enabled recipes producing a part, highest rate first",
		ArgsUsage: "<part>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			part, err := partArg(cmd, cat)
			if err != nil {
				return err
			}
			enabled, err := enablement(ctx, cmd, cat)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, cat.ProducerList(part, enabled))
		},
	}
}

func usesCmd() *cli.Command {
	return &cli.Command{
		Name:      "uses",
		Usage:     "List the enabled recipes consuming a part",
		ArgsUsage: "<part>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			part, err := partArg(cmd, cat)
			if err != nil {
				return err
			}
			enabled, err := enablement(ctx, cmd, cat)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, cat.ConsumerList(part, enabled))
		},
	}
}

func explainCmd() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "Show the categories of a part and the rules that decided them",
		ArgsUsage: "<part>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			part, err := partArg(cmd, cat)
			if err != nil {
				return err
			}

			e, err := cat.Explain(part)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, e)
		},
	}
}

func ratesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rates",
		Usage: "Show the static fact tables",
		Description: `Print conveyor, pipeline, miner and extractor rates, machine power loads,
fluid colours and the project assembly parts of the loaded data set.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, cat.Facts())
		},
	}
}

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show catalog identity and size per category",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, cat.Summary())
		},
	}
}
