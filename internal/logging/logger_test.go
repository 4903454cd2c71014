package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("packet ingested", "packet", "round-1", "tossups", 20)

	line := buf.String()
	for _, want := range []string{"INFO", "packet ingested", "packet=round-1", "tossups=20"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestConsoleLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("should be suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info line leaked through warn level: %q", buf.String())
	}
	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Fatal("warn line was suppressed")
	}
}

func TestJSONLoggerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("edition complete", "edition", "2024")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("parse json log: %v", err)
	}
	if payload["msg"] != "edition complete" {
		t.Fatalf("msg = %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("level = %v", payload["level"])
	}
	if payload["edition"] != "2024" {
		t.Fatalf("edition = %v", payload["edition"])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithRunIDProducesDistinctIDs(t *testing.T) {
	logger := NewNop()
	_, first := WithRunID(logger)
	_, second := WithRunID(logger)
	if first == second || first == "" {
		t.Fatalf("run IDs should be unique and non-empty: %q, %q", first, second)
	}
}
