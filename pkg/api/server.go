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

package api

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
	"github.com/ficsit-tools/partgraph/pkg/defaults"
	"github.com/ficsit-tools/partgraph/pkg/gamedata"
	"github.com/ficsit-tools/partgraph/pkg/logging"
	"github.com/ficsit-tools/partgraph/pkg/server"
)

const (
	name           = "partgraphd"
	versionDefault = "dev"

	// EnvDataDir names a directory layered over the embedded game data.
	EnvDataDir = "PARTGRAPH_DATA_DIR"

	// EnvAllowRebar allows rebar ammunition in the strategic solids.
	EnvAllowRebar = "PARTGRAPH_ALLOW_REBAR"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/ficsit-tools/partgraph/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the query API and blocks until shutdown. The catalog loads in
// the background; /ready and the query endpoints report unavailable until it
// is built.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h := NewHandler(nil)
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
		server.WithReadyCheck(h.Ready),
	)

	if err := s.Run(ctx, h.loadTask(os.Getenv(EnvDataDir), allowRebarFromEnv())); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func allowRebarFromEnv() bool {
	allow, err := strconv.ParseBool(os.Getenv(EnvAllowRebar))
	return err == nil && allow
}

// loadTask builds the catalog for dataDir, or the embedded data set when
// dataDir is empty, and installs it in h. A failed load stops the server.
func (h *Handler) loadTask(dataDir string, allowRebar bool) func(context.Context) error {
	return func(ctx context.Context) error {
		dataDir = strings.TrimSpace(dataDir)
		provider, err := gamedata.NewProvider(dataDir)
		if err != nil {
			return err
		}

		key := "embedded"
		if dataDir != "" {
			key = dataDir
		}

		loadCtx, cancel := context.WithTimeout(ctx, defaults.DataLoadTimeout)
		defer cancel()

		cat, err := catalog.NewLoader(catalog.WithAllowRebar(allowRebar)).Load(loadCtx, key, provider)
		if err != nil {
			return err
		}

		h.SetCatalog(cat)
		slog.Info("catalog loaded",
			"id", cat.ID(),
			"source", cat.Source(),
			"recipes", len(cat.Recipes()),
		)
		return nil
	}
}
