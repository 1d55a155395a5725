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

package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func lines(buf *bytes.Buffer) []string {
	output := strings.TrimSpace(buf.String())
	if output == "" {
		return nil
	}
	out := strings.Split(output, "\n")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantOut  []string
		wantErrs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Success("success message")
			},
			wantOut: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"✅ success message",
			},
		},
		{
			name: "errors_go_to_error_stream",
			op: func(t *testing.T, logger *Logger) {
				logger.Errorf("error %s", "test")
			},
			wantErrs: []string{
				"❌ error test",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Successf("success %s", "test")
			},
			wantOut: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rewriting artifact domain")
			},
			wantOut: []string{
				"domainrw • rewriting artifact domain",
			},
		},
		{
			name: "log_domain",
			op: func(t *testing.T, logger *Logger) {
				logger.LogDomain("https://acme.io", "SITE_URL")
			},
			wantOut: []string{
				"◆ https://acme.io • SITE_URL",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantOut: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			errs := &bytes.Buffer{}
			logger := New(out, errs, zerolog.Nop())

			tt.op(t, logger)

			assert.Equal(t, tt.wantOut, lines(out), "console lines should match")
			assert.Equal(t, tt.wantErrs, lines(errs), "error lines should match")
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestRewriteFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	const path = "public/sitemap.xml"
	const domain = "https://acme.io"

	tests := []struct {
		name      string
		op        RewriteOperation
		want      string
		wantError bool
	}{
		{
			name: "modified",
			op:   RewriteOperation{Path: path, Domain: domain, Replacements: 2, IsModified: true},
			want: fmt.Sprintf("⟳ %-35s %-30s %s", path, domain, "2 replaced"),
		},
		{
			name: "unchanged",
			op:   RewriteOperation{Path: path, Domain: domain},
			want: fmt.Sprintf("• %-35s %-30s %s", path, domain, "no change"),
		},
		{
			name: "dry_run",
			op:   RewriteOperation{Path: path, Domain: domain, Replacements: 3, IsModified: true, IsDryRun: true},
			want: fmt.Sprintf("~ %-35s %-30s %s", path, domain, "3 to replace"),
		},
		{
			name:      "failed",
			op:        RewriteOperation{Path: path, Domain: domain, Err: errors.New("boom")},
			want:      fmt.Sprintf("✗ %-35s %-30s %s", path, domain, "failed"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			errs := &bytes.Buffer{}
			logger := New(out, errs, zerolog.Nop())

			logger.LogRewrite(context.Background(), tt.op)

			target := out
			if tt.wantError {
				target = errs
			}
			require.Len(t, lines(target), 1)
			assert.Equal(t, tt.want, lines(target)[0], "formatted output should match")
		})
	}
}

func TestSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out := &bytes.Buffer{}
	logger := New(out, io.Discard, zerolog.Nop())

	logger.Summary()
	assert.Empty(t, out.String(), "no rewrites, no table")

	logger.LogRewrite(context.Background(), RewriteOperation{Path: "public/sitemap.xml", Domain: "https://acme.io", Replacements: 4, IsModified: true})
	out.Reset()
	logger.Summary()

	table := out.String()
	assert.Contains(t, table, "artifact")
	assert.Contains(t, table, "public/sitemap.xml")
	assert.Contains(t, table, "https://acme.io")
	assert.Contains(t, table, "4")
	assert.Contains(t, table, "written")
}

func TestStructuredOutput(t *testing.T) {
	structured := &bytes.Buffer{}
	logger := New(io.Discard, io.Discard, zerolog.New(structured))

	logger.LogRewrite(context.Background(), RewriteOperation{Path: "a.xml", Domain: "https://acme.io", Replacements: 1, IsModified: true})

	assert.Contains(t, structured.String(), `"artifact":"a.xml"`)
	assert.Contains(t, structured.String(), `"replacements":1`)
	assert.Contains(t, structured.String(), `"message":"rewrite"`)
}
