package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(nil, "ignored")
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "upstream failed", errors.New("boom"), FieldEndpoint, "towns")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "endpoint=towns") {
		t.Fatalf("expected error and endpoint fields, got %q", out)
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	Debug(logger, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at info level, got %q", buf.String())
	}
}
