// circuitassistant.org/go/pdf - schedule layout and PDF export
// Copyright (C) 2026  The circuitassistant.org authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Recorder is a slog.Handler which keeps the log output in memory, in
// slog's text format without time stamps.  Tests use it to check which
// messages were logged.
//
//	rec := logging.NewRecorder(slog.LevelDebug)
//	logging.SetLogger(slog.New(rec))
//	// ... export a document ...
//	if !rec.Contains("page break") { ... }
type Recorder struct {
	out *syncBuffer
	h   slog.Handler
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// NewRecorder returns a Recorder which keeps records at or above the given
// level.  A nil level keeps everything.
func NewRecorder(level slog.Leveler) *Recorder {
	if level == nil {
		level = slog.LevelDebug - 4
	}
	out := &syncBuffer{}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Recorder{out: out, h: h}
}

// Enabled implements slog.Handler.
func (r *Recorder) Enabled(ctx context.Context, level slog.Level) bool {
	return r.h.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (r *Recorder) Handle(ctx context.Context, rec slog.Record) error {
	return r.h.Handle(ctx, rec)
}

// WithAttrs implements slog.Handler.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{out: r.out, h: r.h.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (r *Recorder) WithGroup(name string) slog.Handler {
	return &Recorder{out: r.out, h: r.h.WithGroup(name)}
}

// String returns everything logged so far.
func (r *Recorder) String() string {
	r.out.mu.Lock()
	defer r.out.mu.Unlock()
	return r.out.buf.String()
}

// Lines returns the logged records, one per element.
func (r *Recorder) Lines() []string {
	s := strings.TrimSuffix(r.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Contains reports whether the log output contains s.
func (r *Recorder) Contains(s string) bool {
	return strings.Contains(r.String(), s)
}

// Reset discards the recorded output.
func (r *Recorder) Reset() {
	r.out.mu.Lock()
	defer r.out.mu.Unlock()
	r.out.buf.Reset()
}
