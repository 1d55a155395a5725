// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config file from bytes
	Parse(ctx context.Context, data []byte) (*File, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📄 File is the on-disk shape of a config file. Unset fields keep their
// built-in defaults.
type File struct {
	Placeholder   string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty" hcl:"placeholder,optional"`
	DefaultDomain string   `json:"default_domain,omitempty" yaml:"default_domain,omitempty" hcl:"default_domain,optional"`
	Sources       []string `json:"sources,omitempty" yaml:"sources,omitempty" hcl:"sources,optional"`
	Artifact      string   `json:"artifact,omitempty" yaml:"artifact,omitempty" hcl:"artifact,optional"`
	EnvFiles      []string `json:"env_files,omitempty" yaml:"env_files,omitempty" hcl:"env_files,optional"`
	ArtifactGlob  string   `json:"artifact_glob,omitempty" yaml:"artifact_glob,omitempty" hcl:"artifact_glob,optional"`
}

// Apply overlays the set fields of f onto cfg
func (f *File) Apply(cfg *Config) {
	if f.Placeholder != "" {
		cfg.Placeholder = f.Placeholder
	}
	if f.DefaultDomain != "" {
		cfg.DefaultDomain = f.DefaultDomain
	}
	if f.Sources != nil {
		cfg.Sources = append([]string(nil), f.Sources...)
	}
	if f.Artifact != "" {
		cfg.Artifact = f.Artifact
	}
	if f.EnvFiles != nil {
		cfg.EnvFiles = append([]string(nil), f.EnvFiles...)
	}
	if f.ArtifactGlob != "" {
		cfg.ArtifactGlob = f.ArtifactGlob
	}
}

// 🎯 Load reads the config file at path and overlays it on the defaults for root
func Load(ctx context.Context, path string, root string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	file, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg := Default(root)
	file.Apply(cfg)
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the built-in defaults.
// A relative path is looked up under root.
func LoadOrDefault(ctx context.Context, path string, root string) (*Config, error) {
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if path == "" {
		return defaults(root)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
			return defaults(root)
		}
		return nil, errors.Errorf("checking config file: %w", err)
	}

	return Load(ctx, path, root)
}

func defaults(root string) (*Config, error) {
	cfg := Default(root)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
