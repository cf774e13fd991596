package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{" info ", LogLevelInfo},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message missing from output")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message missing from output")
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "richnote"})

	logger.Info("loaded %d runs", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO] richnote: loaded 3 runs") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "test"})

	derived := logger.WithField("file", "note.txt")
	derived.Info("opened")

	out := buf.String()
	if !strings.Contains(out, "{file=note.txt}") {
		t.Errorf("expected field block in output, got %q", out)
	}

	// The parent logger must not pick up the field.
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "file=") {
		t.Error("WithField modified the parent logger")
	}
}

func TestLoggerWithFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	logger.WithFields(map[string]any{"zeta": 1, "alpha": 2}).Info("msg")

	out := buf.String()
	if !strings.Contains(out, "{alpha=2, zeta=1}") {
		t.Errorf("expected sorted field block, got %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(LogLevelInfo)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("info message emitted before SetLevel")
	}
	if !strings.Contains(out, "after") {
		t.Error("info message missing after SetLevel")
	}
}

func TestNullLoggerSilent(t *testing.T) {
	logger := NullLogger()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("NullLogger wrote output: %q", buf.String())
	}
}

func TestNewLoggerDefaultOutput(t *testing.T) {
	logger := NewLogger(LoggerConfig{})
	if logger.output == nil {
		t.Error("expected default output to be set")
	}
}
