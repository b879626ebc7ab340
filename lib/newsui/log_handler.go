// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the model for display in the
// status bar.
type logRecordMsg struct {
	summary string
	level   slog.Level
}

// StatusLogHandler is a slog.Handler that routes log records into the
// running bubbletea program so background warnings surface in the
// status bar instead of corrupting the rendered screen. Records below
// the configured level, or arriving before SetProgram is called, are
// dropped.
//
// Handlers derived via WithAttrs/WithGroup share the same program
// pointer, so one SetProgram call covers every derived handler.
type StatusLogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
}

// NewStatusLogHandler creates a handler delivering records at or above
// the given level. Call SetProgram once the tea.Program exists.
func NewStatusLogHandler(level slog.Level) *StatusLogHandler {
	return &StatusLogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program that receives log messages. Safe to call
// from any goroutine.
func (handler *StatusLogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *StatusLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record as a one-line summary and sends it to the
// program.
func (handler *StatusLogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	program.Send(logRecordMsg{summary: summary, level: record.Level})
	return nil
}

// WithAttrs implements slog.Handler. The derived handler shares the
// program pointer.
func (handler *StatusLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(handler.attrs)+len(attrs))
	combined = append(combined, handler.attrs...)
	combined = append(combined, attrs...)
	return &StatusLogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   combined,
	}
}

// WithGroup implements slog.Handler. Groups are flattened: the status
// bar is one line, and nesting adds nothing there.
func (handler *StatusLogHandler) WithGroup(string) slog.Handler {
	return handler
}
