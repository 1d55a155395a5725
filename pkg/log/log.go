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
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent artifact entries
	nameWidth   = 35 // Base width for the artifact path
	domainWidth = 30 // Width for the domain
	countWidth  = 15 // Width for the replacement count
)

// 🎯 RewriteOperation is one rewrite of one artifact, for reporting
type RewriteOperation struct {
	Path         string // Artifact path
	Domain       string // Effective domain
	Replacements int    // Occurrences replaced
	IsModified   bool   // Content changed
	IsDryRun     bool   // Nothing was written
	Err          error  // Failure, if any
}

// 🎯 Logger prints human progress lines and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	errs    io.Writer
	mu      sync.Mutex
	ops     []RewriteOperation
}

// 🏭 New creates a new logger. Progress goes to console, failures to errs.
func New(console, errs io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		errs:    errs,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRewrite formats a rewrite operation for display
func (l *Logger) formatRewrite(op RewriteOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case op.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
		status = "failed"
	case op.IsDryRun:
		symbol = '~'
		symbolColor = color.FgMagenta
		status = strconv.Itoa(op.Replacements) + " to replace"
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
		status = strconv.Itoa(op.Replacements) + " replaced"
	default:
		symbol = '•'
		symbolColor = color.FgCyan
		status = "no change"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgYellow).Sprint(fmt.Sprintf("%-*s", domainWidth, op.Domain)),
		fmt.Sprintf("%-*s", countWidth, status))
}

// 📝 LogRewrite records and prints one rewrite
func (l *Logger) LogRewrite(ctx context.Context, op RewriteOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ops = append(l.ops, op)

	out := l.console
	if op.Err != nil {
		out = l.errs
	}
	fmt.Fprintln(out, l.formatRewrite(op))

	ev := l.zlog.Info()
	if op.Err != nil {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("artifact", op.Path).
		Str("domain", op.Domain).
		Int("replacements", op.Replacements).
		Bool("is_modified", op.IsModified).
		Bool("is_dry_run", op.IsDryRun).
		Msg("rewrite")
}

// 🌐 LogDomain prints the resolved effective domain and where it came from
func (l *Logger) LogDomain(value, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(value),
		color.New(color.Faint).Sprint("• "+source))
	l.zlog.Info().Str("domain", value).Str("source", source).Msg("resolved effective domain")
}

// 📊 Summary prints a table of every rewrite logged so far
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.ops) == 0 {
		return
	}

	data := pterm.TableData{{"artifact", "domain", "replacements", "result"}}
	for _, op := range l.ops {
		result := "unchanged"
		switch {
		case op.Err != nil:
			result = "failed"
		case op.IsDryRun:
			result = "dry run"
		case op.IsModified:
			result = "written"
		}
		data = append(data, []string{op.Path, op.Domain, strconv.Itoa(op.Replacements), result})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Debug().Err(err).Msg("rendering summary table")
		return
	}
	fmt.Fprintln(l.console, table)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("domainrw")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message to the error stream
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errs, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Raw writes text to the console unchanged
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
