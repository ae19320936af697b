// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func testRecord(level slog.Level, message string, attrs ...slog.Attr) slog.Record {
	record := slog.NewRecord(time.Now(), level, message, 0)
	record.AddAttrs(attrs...)
	return record
}

func TestLogHandlerEnabled(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)
	ctx := context.Background()

	if handler.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !handler.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be enabled at info level")
	}
	if !handler.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestLogHandlerHandleWithoutProgram(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)

	// No program registered yet: the record is dropped, not an error.
	err := handler.Handle(context.Background(), testRecord(slog.LevelInfo, "too early"))
	if err != nil {
		t.Errorf("handle without a program should drop silently, got error %v", err)
	}
}

func TestLogHandlerSummary(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)

	summary := handler.buildSummary(testRecord(slog.LevelInfo, "proxy started"))
	if summary != "proxy started" {
		t.Errorf("summary without attrs should be the bare message, got %q", summary)
	}

	summary = handler.buildSummary(testRecord(
		slog.LevelInfo, "connected",
		slog.String("host", "example.com"),
		slog.Int("port", 443),
	))
	if summary != "connected (host=example.com, port=443)" {
		t.Errorf("summary should list attrs in parentheses, got %q", summary)
	}
}

func TestLogHandlerSummaryHandlerAttrsFirst(t *testing.T) {
	base := NewLogHandler(slog.LevelInfo)
	derived := base.WithAttrs([]slog.Attr{slog.String("component", "watcher")}).(*LogHandler)

	summary := derived.buildSummary(testRecord(
		slog.LevelInfo, "rescan",
		slog.Int("files", 12),
	))
	if summary != "rescan (component=watcher, files=12)" {
		t.Errorf("handler attrs should come before record attrs, got %q", summary)
	}
}

func TestLogHandlerDerivedSharesProgram(t *testing.T) {
	base := NewLogHandler(slog.LevelInfo)
	withAttrs := base.WithAttrs([]slog.Attr{slog.String("component", "store")}).(*LogHandler)
	withGroup := base.WithGroup("request").(*LogHandler)

	program := &tea.Program{}
	base.SetProgram(program)

	if withAttrs.program.Load() != program {
		t.Error("WithAttrs handler should see the program set on the base handler")
	}
	if withGroup.program.Load() != program {
		t.Error("WithGroup handler should see the program set on the base handler")
	}
}

func TestLogHandlerDerivedAttrsIndependent(t *testing.T) {
	base := NewLogHandler(slog.LevelInfo)
	first := base.WithAttrs([]slog.Attr{slog.String("a", "1")}).(*LogHandler)
	second := first.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*LogHandler)

	summary := first.buildSummary(testRecord(slog.LevelInfo, "msg"))
	if summary != "msg (a=1)" {
		t.Errorf("first handler should carry only its own attrs, got %q", summary)
	}
	summary = second.buildSummary(testRecord(slog.LevelInfo, "msg"))
	if summary != "msg (a=1, b=2)" {
		t.Errorf("second handler should accumulate attrs, got %q", summary)
	}
}

func TestConsoleDisplaysLogRecords(t *testing.T) {
	c := testConsole()

	c.Update(logRecordMsg{Summary: "cache miss (key=alpha)", Level: slog.LevelDebug})
	c.Update(logRecordMsg{Summary: "disk full", Level: slog.LevelError})

	content := ansi.Strip(c.Content())
	if !strings.Contains(content, "cache miss (key=alpha)") {
		t.Errorf("scrollback should contain the debug record, got %q", content)
	}
	if !strings.Contains(content, "disk full") {
		t.Errorf("scrollback should contain the error record, got %q", content)
	}
	if c.scrollback.Count() != 2 {
		t.Errorf("each record should be one fragment, got %d", c.scrollback.Count())
	}
}
