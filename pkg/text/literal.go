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

package text

import (
	"context"
	"io"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*LiteralReplacer)(nil)

// LiteralReplacer implements TextReplacer with exact substring matching.
// Every rule is compiled from a quoted pattern so metacharacters in FromText
// (dots, plus signs, brackets) only ever match themselves.
type LiteralReplacer struct{}

// NewLiteralReplacer creates a new LiteralReplacer
func NewLiteralReplacer() *LiteralReplacer {
	return &LiteralReplacer{}
}

// LiteralPattern compiles from into a regexp that matches it verbatim
func LiteralPattern(from string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(from))
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *LiteralReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for i, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		// count and replace share one pattern, so the reported count is
		// exactly the number of substitutions
		pattern := LiteralPattern(rule.FromText)
		matches := len(pattern.FindAllStringIndex(currentContent, -1))
		if matches == 0 {
			continue
		}

		newContent := pattern.ReplaceAllLiteralString(currentContent, rule.ToText)

		zerolog.Ctx(ctx).Trace().
			Int("rule", i).
			Str("from", rule.FromText).
			Str("to", rule.ToText).
			Int("matches", matches).
			Msg("applied replacement rule")

		result.ReplacementCount += matches
		if newContent != currentContent {
			result.WasModified = true
		}
		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *LiteralReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
