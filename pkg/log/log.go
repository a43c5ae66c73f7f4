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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/tablerename/pkg/status"
)

// 🎯 Logger prints status lines to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.Formatter
	mu        sync.Mutex
	results   []status.Result
}

// 🏭 New creates a new logger. Status lines go to console, structured events
// go to zlog.
func New(console io.Writer, zlog zerolog.Logger, formatter status.Formatter) *Logger {
	if formatter == nil {
		formatter = status.NewPlainFormatter()
	}
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: formatter,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	return logger, ok && logger != nil
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileOperation prints the status line for one target path
func (l *Logger) LogFileOperation(ctx context.Context, r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)

	fmt.Fprintln(l.console, l.formatter.FormatResult(r))

	l.events(ctx).Info().
		Str("file", r.Path).
		Str("status", r.Status.String()).
		Int("replacements", r.Replacements).
		Msg("file processed")
}

// 📝 Done prints the final line of a run
func (l *Logger) Done(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatDone())

	sum := status.Summarize(l.results)
	l.events(ctx).Info().
		Int("files", sum.Total()).
		Int("updated", sum.Updated).
		Int("unchanged", sum.Unchanged).
		Int("skipped", sum.Skipped).
		Int("replacements", sum.Replacements).
		Msg("rename complete")
}

// events prefers the logger carried by ctx so run scoped fields are kept
func (l *Logger) events(ctx context.Context) *zerolog.Logger {
	if zl := zerolog.Ctx(ctx); zl.GetLevel() != zerolog.Disabled {
		return zl
	}
	return &l.zlog
}

// Results returns every result logged so far, in order
func (l *Logger) Results() []status.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]status.Result(nil), l.results...)
}
