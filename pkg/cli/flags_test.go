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
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/ficsit-tools/partgraph/pkg/catalog"
	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
	"github.com/ficsit-tools/partgraph/pkg/serializer"
)

// runWithFlags parses args against the global flags and calls fn with the
// parsed command.
func runWithFlags(t *testing.T, args []string, fn func(context.Context, *cli.Command) error) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  globalFlags(),
		Action: fn,
	}
	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"xml", "", true},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("format="+tt.format, func(t *testing.T) {
			runWithFlags(t, []string{"--format", tt.format}, func(_ context.Context, c *cli.Command) error {
				got, err := parseOutputFormat(c)
				if (err != nil) != tt.wantErr {
					t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
				}
				if !tt.wantErr && got != tt.want {
					t.Errorf("parseOutputFormat() = %v, want %v", got, tt.want)
				}
				return nil
			})
		})
	}
}

func TestPartArg(t *testing.T) {
	cat, err := catalog.Default(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"single arg", []string{"Screw"}, "Screw", false},
		{"joined words", []string{"reinforced", "IRON", "plate"}, "Reinforced Iron Plate", false},
		{"unknown passes through", []string{"Unobtainium"}, "Unobtainium", false},
		{"missing", nil, "", true},
		{"blank", []string{"  "}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runWithFlags(t, tt.args, func(_ context.Context, c *cli.Command) error {
				got, err := partArg(c, cat)
				if tt.wantErr {
					if !pgerrors.HasCode(err, pgerrors.ErrCodeInvalidRequest) {
						t.Errorf("expected INVALID_REQUEST, got %v", err)
					}
					return nil
				}
				if err != nil || got != tt.want {
					t.Errorf("partArg() = %q, %v; want %q", got, err, tt.want)
				}
				return nil
			})
		})
	}
}

func TestEnablementFlags(t *testing.T) {
	cat, err := catalog.Default(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	runWithFlags(t, nil, func(ctx context.Context, c *cli.Command) error {
		enabled, err := enablement(ctx, c, cat)
		if err != nil || enabled != nil {
			t.Errorf("expected no restriction without flags, got %v, %v", enabled, err)
		}
		return nil
	})

	runWithFlags(t, []string{"--tier", "1"}, func(ctx context.Context, c *cli.Command) error {
		enabled, err := enablement(ctx, c, cat)
		if err != nil {
			t.Fatalf("enablement failed: %v", err)
		}
		if !enabled.Allows("Screw") || enabled.Allows("Alternate: Pure Iron Ingot") {
			t.Errorf("unexpected tier 1 enablement: %v", enabled.Names())
		}
		return nil
	})
}
