// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.With("service", "api").WithGroup("req").Info("served", "status", 200)

	out := buf.String()
	for _, want := range []string{`"service":"api"`, `"req.status":200`, `"message":"served"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			h := NewSlogHandlerWithLogger(NewTestLogger(&buf).Level(zerolog.TraceLevel))
			logger := slog.New(h)
			logger.Log(t.Context(), tt.level, "msg")
			if zerolog.GlobalLevel() > zerolog.DebugLevel && tt.level == slog.LevelDebug {
				return
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	if got := slogToZerologLevel(slog.LevelWarn); got != zerolog.WarnLevel {
		t.Errorf("warn mapped to %v", got)
	}
	if got := slogToZerologLevel(slog.Level(-8)); got != zerolog.TraceLevel {
		t.Errorf("below debug mapped to %v", got)
	}
}
