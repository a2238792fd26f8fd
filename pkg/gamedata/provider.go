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
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	pgerrors "github.com/ficsit-tools/partgraph/pkg/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DataProvider abstracts access to game data files.
// This allows layering external directories over embedded data.
type DataProvider interface {
	// ReadFile reads a file by path (relative to data directory).
	ReadFile(path string) ([]byte, error)

	// Source returns a description of where data came from (for debugging).
	Source(path string) string
}

const (
	// DefaultMaxFileSize is the default maximum file size (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	// sourceEmbedded is the source name for embedded files.
	sourceEmbedded = "embedded"

	// sourceExternal is the source name for external files.
	sourceExternal = "external"
)

// EmbeddedDataProvider reads data files from a file system, typically the
// data set compiled into the binary.
type EmbeddedDataProvider struct {
	fsys   fs.FS
	prefix string
}

// NewEmbeddedDataProvider creates a provider over fsys. Paths are resolved
// under prefix.
func NewEmbeddedDataProvider(fsys fs.FS, prefix string) *EmbeddedDataProvider {
	return &EmbeddedDataProvider{
		fsys:   fsys,
		prefix: prefix,
	}
}

// Embedded returns a provider over the data set compiled into the binary.
func Embedded() *EmbeddedDataProvider {
	return NewEmbeddedDataProvider(dataFS, "data")
}

// ReadFile reads a file from the embedded filesystem.
func (p *EmbeddedDataProvider) ReadFile(name string) ([]byte, error) {
	fullPath := path.Join(p.prefix, name)
	slog.Debug("reading file from embedded provider", "path", name, "fullPath", fullPath)
	return fs.ReadFile(p.fsys, fullPath)
}

// Source returns "embedded" for all paths.
func (p *EmbeddedDataProvider) Source(string) string {
	return sourceEmbedded
}

// LayeredDataProvider overlays an external directory on top of embedded data.
// A file present in the external directory completely replaces the embedded
// file of the same name.
type LayeredDataProvider struct {
	embedded    *EmbeddedDataProvider
	externalDir string

	// Track which files came from external (for debugging)
	externalFiles map[string]bool
}

// LayeredProviderConfig configures the layered data provider.
type LayeredProviderConfig struct {
	// ExternalDir is the path to the external data directory.
	ExternalDir string

	// MaxFileSize is the maximum allowed file size in bytes (default: 10MB).
	MaxFileSize int64

	// AllowSymlinks allows symlinks in the external directory (default: false).
	AllowSymlinks bool
}

// NewLayeredDataProvider creates a provider that layers external data over embedded.
// Returns an error if:
// - External directory doesn't exist
// - Path traversal is detected
// - A symlink is found and symlinks are not allowed
// - File size exceeds limits
func NewLayeredDataProvider(embedded *EmbeddedDataProvider, config LayeredProviderConfig) (*LayeredDataProvider, error) {
	slog.Debug("creating layered data provider",
		"external_dir", config.ExternalDir,
		"max_file_size", config.MaxFileSize,
		"allow_symlinks", config.AllowSymlinks)

	if config.MaxFileSize == 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}

	info, err := os.Stat(config.ExternalDir)
	if err != nil {
		return nil, pgerrors.Wrap(pgerrors.ErrCodeNotFound,
			fmt.Sprintf("external data directory not found: %s", config.ExternalDir), err)
	}
	if !info.IsDir() {
		return nil, pgerrors.New(pgerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data path is not a directory: %s", config.ExternalDir))
	}

	externalFiles := make(map[string]bool)
	err = filepath.WalkDir(config.ExternalDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(config.ExternalDir, p)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}
		relPath = filepath.ToSlash(relPath)

		if strings.Contains(relPath, "..") {
			return pgerrors.New(pgerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("path traversal detected: %s", relPath))
		}

		if !config.AllowSymlinks && d.Type()&fs.ModeSymlink != 0 {
			return pgerrors.New(pgerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("symlinks not allowed: %s", relPath))
		}

		fi, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("failed to get file info: %w", statErr)
		}
		if fi.Size() > config.MaxFileSize {
			return pgerrors.New(pgerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("file too large (%d bytes, max %d): %s", fi.Size(), config.MaxFileSize, relPath))
		}

		externalFiles[relPath] = true
		slog.Debug("discovered external file", "path", relPath, "size", fi.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("layered data provider initialized",
		"external_dir", config.ExternalDir,
		"external_files", len(externalFiles))

	return &LayeredDataProvider{
		embedded:      embedded,
		externalDir:   config.ExternalDir,
		externalFiles: externalFiles,
	}, nil
}

// ReadFile reads a file, checking the external directory first.
func (p *LayeredDataProvider) ReadFile(name string) ([]byte, error) {
	if p.externalFiles[name] {
		data, err := os.ReadFile(filepath.Join(p.externalDir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("failed to read external file %s: %w", name, err)
		}
		slog.Debug("read from external data directory", "path", name)
		return data, nil
	}

	slog.Debug("falling back to embedded data", "path", name)
	return p.embedded.ReadFile(name)
}

// Source returns "external" or "embedded" depending on where the file comes from.
func (p *LayeredDataProvider) Source(name string) string {
	if p.externalFiles[name] {
		return sourceExternal
	}
	return sourceEmbedded
}

// NewProvider returns the embedded provider when dataDir is empty and a
// layered provider over dataDir otherwise.
func NewProvider(dataDir string) (DataProvider, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Embedded(), nil
	}
	return NewLayeredDataProvider(Embedded(), LayeredProviderConfig{ExternalDir: dataDir})
}
