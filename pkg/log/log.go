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
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/unitytweak/pkg/status"
)

// 🎯 Logger prints the user-facing progress lines and mirrors them to zerolog.
// The console text is stable: scripts and tests match on it.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	colored bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger, colored bool) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		colored: colored,
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

func (l *Logger) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if l.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// 📝 Optimizing reports a texture meta file about to be rewritten
func (l *Logger) Optimizing(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", l.paint(color.FgBlue, "Optimizing:"), path)
	l.zlog.Info().Str("path", path).Msg("optimizing")
}

// 📝 StrippingUpdated reports that the stripping level was written
func (l *Logger) StrippingUpdated(levelName string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.paint(color.FgGreen, "Updated Managed Stripping Level to "+levelName))
	l.zlog.Info().Str("level", levelName).Msg("updated managed stripping level")
}

// 📝 StrippingNotFound reports that the placeholder was absent and nothing was written
func (l *Logger) StrippingNotFound(marker string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.paint(color.FgYellow, fmt.Sprintf("Could not find %s to replace. It might be already set.", marker)))
	l.zlog.Info().Str("marker", marker).Msg("stripping marker not found")
}

// 📝 Failed reports a file that could not be processed
func (l *Logger) Failed(path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s: %v\n", l.paint(color.FgRed, "Failed:"), path, err)
	l.zlog.Error().Err(err).Str("path", path).Msg("processing file")
}

// 📝 Diff prints the change made to a file
func (l *Logger) Diff(path, diff string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s\n%s", l.paint(color.Faint, "--- "+path), diff)
	if !strings.HasSuffix(diff, "\n") {
		fmt.Fprintln(l.console)
	}
}

// 📊 Summary prints a table of tracked files followed by the totals
func (l *Logger) Summary(files []status.FileInfo, summary status.Summary, dryRun bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(files) > 0 {
		data := pterm.TableData{status.SummaryHeader}
		for _, f := range files {
			data = append(data, status.FormatRow(f, l.colored))
		}

		table := pterm.DefaultTable.WithHasHeader().WithData(data)
		if !l.colored {
			table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
		}

		rendered, err := table.Srender()
		if err != nil {
			l.zlog.Warn().Err(err).Msg("rendering summary table")
		} else {
			fmt.Fprintln(l.console, rendered)
		}
	}

	line := status.FormatSummary(summary, dryRun)
	fmt.Fprintln(l.console, l.paint(color.Bold, line))
	l.zlog.Info().
		Int("modified", summary.Modified).
		Int("unchanged", summary.Unchanged).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Bool("dry_run", dryRun).
		Msg("run summary")
}
