// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the console for display in
// the scrollback. Only records at or above the handler's configured
// level are delivered.
type logRecordMsg struct {
	// Summary is the one-line "message (key=value, ...)" form.
	Summary string

	// Level selects the scrollback line color.
	Level slog.Level
}

// LogHandler is a slog.Handler that routes log records into the
// console's scrollback via the host's bubbletea program. Records
// below the configured level are silently dropped; the rest are
// formatted to a one-line summary and delivered with program.Send(),
// which is safe from any goroutine.
//
// Create the handler before the program starts and call SetProgram
// once the tea.Program exists. Records arriving before SetProgram is
// called are dropped.
//
// Handlers derived via WithAttrs/WithGroup share the same program
// pointer, so a single SetProgram call propagates to every derived
// handler.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewLogHandler creates a handler that delivers records at or above
// the given level to the console. Call SetProgram after creating the
// tea.Program.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine. Propagates to all handlers derived
// from this one via WithAttrs/WithGroup.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it to the bubbletea program.
// If the program has not been set yet, the record is silently dropped.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	program.Send(logRecordMsg{
		Summary: handler.buildSummary(record),
		Level:   record.Level,
	})
	return nil
}

// buildSummary formats a record as "message (key=value, ...)", with
// handler-level attrs (from WithAttrs) before record-level ones.
func (handler *LogHandler) buildSummary(record slog.Record) string {
	summary := record.Message
	var attrParts []string

	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	if len(attrParts) > 0 {
		summary += " ("
		for index, part := range attrParts {
			if index > 0 {
				summary += ", "
			}
			summary += part
		}
		summary += ")"
	}
	return summary
}

// WithAttrs returns a new handler with the given attributes appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(sliceClone(handler.attrs), attrs...),
		groups:  sliceClone(handler.groups),
	}
}

// WithGroup returns a new handler with the given group name appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   sliceClone(handler.attrs),
		groups:  append(sliceClone(handler.groups), name),
	}
}

// sliceClone returns a shallow copy of a slice. Avoids aliasing when
// building derived handlers with WithAttrs/WithGroup.
func sliceClone[T any](source []T) []T {
	if source == nil {
		return nil
	}
	result := make([]T, len(source))
	copy(result, source)
	return result
}
