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

package rewrite

import (
	"bytes"
	"context"
	"os"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/domainrw/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📝 Request describes one rewrite of one artifact
type Request struct {
	Path        string // Artifact path, already resolved by the caller
	Placeholder string // Literal text to replace
	Domain      string // Effective domain written in its place
	DryRun      bool   // Compute the result and diff without writing

	// ArtifactGlob, when set, must match Name or the rewrite is refused
	ArtifactGlob string
	// Name is the path matched against ArtifactGlob; defaults to Path
	Name string
}

// 📊 Result reports what a rewrite did
type Result struct {
	Path     string
	Domain   string
	Count    int           // Occurrences found and replaced
	Modified bool          // Content changed
	Written  bool          // New content was written to disk
	Diff     string        // Changed lines, dry runs only
	Elapsed  time.Duration // Wall time of the run
}

// 🔄 Rewriter replaces a placeholder domain inside one artifact
type Rewriter struct {
	replacer text.TextReplacer
}

// 🏭 New creates a Rewriter backed by a literal replacer
func New() *Rewriter {
	return &Rewriter{replacer: text.NewLiteralReplacer()}
}

// NewWithReplacer creates a Rewriter with a custom replacer
func NewWithReplacer(r text.TextReplacer) *Rewriter {
	return &Rewriter{replacer: r}
}

// 🏃 Run reads the artifact, replaces every occurrence of the placeholder and
// writes the content back. The file is only written once the full new
// content is in memory, and never created if it was missing.
func (r *Rewriter) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx).With().Str("artifact", req.Path).Logger()

	if req.Placeholder == "" {
		return nil, errors.Errorf("placeholder is required")
	}
	if req.Domain == "" {
		return nil, errors.Errorf("domain is required")
	}

	rule := text.ReplacementRule{FromText: req.Placeholder, ToText: req.Domain, FileFilterGlob: req.ArtifactGlob}
	rules := []text.ReplacementRule{rule}
	if err := r.replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.Path
	}
	if !rule.Applies(name) {
		return nil, errors.Errorf("%w: %s does not match %q", ErrArtifactFiltered, name, req.ArtifactGlob)
	}

	content, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, &ArtifactError{Op: OpRead, Path: req.Path, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &ArtifactError{Op: OpDecode, Path: req.Path, Err: errNotText}
	}

	replaced, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	result := &Result{
		Path:     req.Path,
		Domain:   req.Domain,
		Count:    replaced.ReplacementCount,
		Modified: replaced.WasModified,
	}

	logger.Debug().
		Str("placeholder", req.Placeholder).
		Str("domain", req.Domain).
		Int("count", result.Count).
		Bool("modified", result.Modified).
		Msg("computed replacement")

	switch {
	case req.DryRun:
		result.Diff = Diff(string(replaced.OriginalContent), string(replaced.ModifiedContent))
	case result.Modified:
		if err := replaceFile(req.Path, replaced.ModifiedContent); err != nil {
			return nil, &ArtifactError{Op: OpWrite, Path: req.Path, Err: err}
		}
		result.Written = true
	default:
		logger.Debug().Msg("content unchanged, skipping write")
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
