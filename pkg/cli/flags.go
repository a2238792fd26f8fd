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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
	"github.com/ficsit-tools/partgraph/pkg/defaults"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/gamedata"
	"github.com/ficsit-tools/partgraph/pkg/logging"
	"github.com/ficsit-tools/partgraph/pkg/recipe"
	"github.com/ficsit-tools/partgraph/pkg/serializer"
)

const embeddedKey = "embedded"

// globalFlags returns fresh instances of the flags shared by every command.
// Flags hold parsed values, so each root command gets its own.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "Directory with game data files layered over the embedded data set",
			Sources: cli.EnvVars("PARTGRAPH_DATA_DIR"),
		},
		&cli.IntFlag{
			Name:  "tier",
			Usage: "Only enable recipes unlocked at or below this schematic tier (-1 enables every recipe)",
			Value: -1,
		},
		&cli.BoolFlag{
			Name:  "alternates",
			Usage: "Include alternate recipe schematics when filtering by --tier",
		},
		&cli.StringFlag{
			Name:  "enabled-file",
			Usage: "Path or HTTP(S) URL of a YAML or JSON list of additionally enabled recipe names",
		},
		&cli.BoolFlag{
			Name:  "allow-rebar",
			Usage: "Allow rebar ammunition in the strategic solids",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "warn",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Value:   string(serializer.FormatTable),
		},
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadCatalog builds the catalog for --data-dir, or the embedded data set
// when no directory is given.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	dataDir := strings.TrimSpace(cmd.String("data-dir"))
	provider, err := gamedata.NewProvider(dataDir)
	if err != nil {
		return nil, err
	}

	key := embeddedKey
	if dataDir != "" {
		key = dataDir
	}

	loadCtx, cancel := context.WithTimeout(ctx, defaults.DataLoadTimeout)
	defer cancel()

	loader := catalog.NewLoader(catalog.WithAllowRebar(cmd.Bool("allow-rebar")))
	return loader.Load(loadCtx, key, provider)
}

// enablement combines --tier and --enabled-file. A nil result enables every
// recipe.
func enablement(ctx context.Context, cmd *cli.Command, cat *catalog.Catalog) (*recipe.Enablement, error) {
	var names []string
	if path := strings.TrimSpace(cmd.String("enabled-file")); path != "" {
		list, err := serializer.FromFile[[]string](ctx, path)
		if err != nil {
			return nil, pgerrors.WrapWithContext(pgerrors.ErrCodeInvalidRequest,
				"failed to read enabled recipe list", err,
				map[string]any{
					"path": path,
				})
		}
		names = *list
	}

	enabled := cat.Enablement(cmd.Int("tier"), cmd.Bool("alternates"), names)
	slog.Debug("recipes enabled", "count", enabled.Len())
	return enabled, nil
}

// partArg joins the positional arguments into one part name so unquoted
// names with spaces work, and normalizes it against the catalog.
func partArg(cmd *cli.Command, cat *catalog.Catalog) (string, error) {
	raw := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if raw == "" {
		return "", pgerrors.New(pgerrors.ErrCodeInvalidRequest, "a part name is required")
	}
	return cat.NormalizeName(raw), nil
}

// writeOutput serializes value to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, value any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, value)
}
