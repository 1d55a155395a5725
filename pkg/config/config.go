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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Built-in defaults used when no config file overrides them
const (
	DefaultPlaceholder   = "https://your-domain.com"
	DefaultDomainLiteral = "http://localhost:3000"
	DefaultArtifact      = "public/sitemap.xml"
	DefaultConfigFile    = ".domainrw.yaml"
	DefaultEnvFile       = ".env"

	// DefaultSourceName is reported when no candidate variable was set
	DefaultSourceName = "default"
)

// DefaultSources are the candidate variables in priority order
var DefaultSources = []string{"SITE_URL", "FRONTEND_URL", "APP_URL"}

// 📚 Config is the explicit configuration handed to the rewriter
type Config struct {
	Placeholder   string   // Literal text searched for in the artifact
	DefaultDomain string   // Used when every source is empty
	Sources       []string // Variable names consulted in priority order
	Artifact      string   // Artifact path, relative to Root unless absolute
	ArtifactGlob  string   // Optional doublestar pattern the artifact path must match
	EnvFiles      []string // Dotenv files read before resolution
	Root          string   // Project root

	location string
}

// 🏭 Default returns the built-in configuration rooted at root
func Default(root string) *Config {
	return &Config{
		Placeholder:   DefaultPlaceholder,
		DefaultDomain: DefaultDomainLiteral,
		Sources:       append([]string(nil), DefaultSources...),
		Artifact:      DefaultArtifact,
		EnvFiles:      []string{DefaultEnvFile},
		Root:          root,
	}
}

// Location returns the config file this config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks the configuration and normalises paths and sources
func (cfg *Config) Validate() error {
	if cfg.Placeholder == "" {
		return errors.Errorf("placeholder is required")
	}
	if strings.TrimSpace(cfg.DefaultDomain) == "" {
		return errors.Errorf("default_domain is required")
	}
	if cfg.Artifact == "" {
		return errors.Errorf("artifact is required")
	}
	if cfg.ArtifactGlob != "" && !doublestar.ValidatePattern(cfg.ArtifactGlob) {
		return errors.Errorf("invalid artifact_glob %q", cfg.ArtifactGlob)
	}

	seen := make(map[string]bool, len(cfg.Sources))
	sources := make([]string, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		s = strings.TrimSpace(s)
		if s == "" {
			return errors.Errorf("sources: empty variable name")
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		sources = append(sources, s)
	}
	cfg.Sources = sources

	cfg.DefaultDomain = strings.TrimSpace(cfg.DefaultDomain)
	cfg.Artifact = filepath.Clean(cfg.Artifact)
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📂 ArtifactPath resolves the artifact against the project root
func (cfg *Config) ArtifactPath() string {
	if filepath.IsAbs(cfg.Artifact) {
		return cfg.Artifact
	}
	return filepath.Join(cfg.Root, cfg.Artifact)
}

// ArtifactName is the artifact path matched against ArtifactGlob: relative to
// Root and slash separated
func (cfg *Config) ArtifactName() string {
	return filepath.ToSlash(cfg.Artifact)
}

// EnvFilePaths resolves the dotenv files against the project root
func (cfg *Config) EnvFilePaths() []string {
	paths := make([]string, 0, len(cfg.EnvFiles))
	for _, f := range cfg.EnvFiles {
		if filepath.IsAbs(f) {
			paths = append(paths, f)
			continue
		}
		paths = append(paths, filepath.Join(cfg.Root, f))
	}
	return paths
}

// 🌐 EffectiveDomain looks up every source and picks the first non-empty one
func (cfg *Config) EffectiveDomain(lookup LookupFunc) Domain {
	candidates := make([]Candidate, 0, len(cfg.Sources))
	for _, name := range cfg.Sources {
		value, _ := lookup(name)
		candidates = append(candidates, Candidate{Name: name, Value: value})
	}
	return ResolveNamed(candidates, cfg.DefaultDomain)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> [%s|%s] in %s", cfg.Placeholder, strings.Join(cfg.Sources, ","), cfg.DefaultDomain, cfg.ArtifactPath())
}
