package logging

import (
	"bytes"
	stdlog "log"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// captureLogOutput redirects both loggers into a buffer for the duration of fn
func captureLogOutput(level string, fn func()) string {
	var buf bytes.Buffer

	SetOutput(&buf)
	SetLevel(level)
	defer RestoreOutput()

	fn()

	return strings.TrimSpace(buf.String())
}

// TestLogLevels tests that logging functions work at different levels
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name:     "Info level",
			logFunc:  func() { Info("test info message") },
			expected: "test info message",
		},
		{
			name:     "Warn level",
			logFunc:  func() { Warn("test warn message") },
			expected: "test warn message",
		},
		{
			name:     "Error level",
			logFunc:  func() { Error("test error message") },
			expected: "test error message",
		},
		{
			name:     "Debug level",
			logFunc:  func() { Debug("test debug %d", 42) },
			expected: "test debug 42",
		},
		{
			name:     "Success level",
			logFunc:  func() { Success("converged") },
			expected: "converged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput("DEBUG", tt.logFunc)
			if !strings.Contains(output, tt.expected) {
				t.Errorf("expected output to contain %q, got %q", tt.expected, output)
			}
		})
	}
}

// TestLevelFiltering verifies messages below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	output := captureLogOutput("ERROR", func() {
		Info("hidden info")
		Warn("hidden warn")
		Success("hidden success")
		Error("visible error")
	})

	if strings.Contains(output, "hidden") {
		t.Errorf("expected filtered messages to be dropped, got %q", output)
	}
	if !strings.Contains(output, "visible error") {
		t.Errorf("expected error message in output, got %q", output)
	}
}

// TestParseLevel tests level string mapping
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"DEBUG", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"WARN", log.WarnLevel},
		{"ERROR", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestLevelWriter verifies each line is logged separately with the prefix
func TestLevelWriter(t *testing.T) {
	output := captureLogOutput("DEBUG", func() {
		w := NewLevelWriter("warn", "gin")
		n, err := w.Write([]byte("first line\n\nsecond line\n"))
		if err != nil {
			t.Errorf("Write() error = %v", err)
		}
		if n != len("first line\n\nsecond line\n") {
			t.Errorf("Write() n = %d", n)
		}
	})

	if !strings.Contains(output, "gin: first line") {
		t.Errorf("expected prefixed first line, got %q", output)
	}
	if !strings.Contains(output, "gin: second line") {
		t.Errorf("expected prefixed second line, got %q", output)
	}
	if strings.Count(output, "gin:") != 2 {
		t.Errorf("expected blank lines to be skipped, got %q", output)
	}
}

// TestValidateLogLevel tests log level validation
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error: %v", level, err)
		}
	}
	for _, level := range []string{"info", "TRACE", ""} {
		if err := ValidateLogLevel(level); err == nil {
			t.Errorf("ValidateLogLevel(%q) expected error", level)
		}
	}
}

// TestRedirectStandardLog tests that stdlib log output reaches the loggers
func TestRedirectStandardLog(t *testing.T) {
	defer func() {
		stdlog.SetOutput(os.Stderr)
		stdlog.SetFlags(stdlog.LstdFlags)
	}()

	output := captureLogOutput("INFO", func() {
		RedirectStandardLog(NewLevelWriter("ERROR", "http"))
		stdlog.Print("http: TLS handshake error from 10.0.0.9:5555: EOF")
	})

	if !strings.Contains(output, "http: http: TLS handshake error") {
		t.Errorf("expected redirected line, got: %q", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected ERROR level, got: %q", output)
	}

	discarded := captureLogOutput("DEBUG", func() {
		RedirectStandardLog(nil)
		stdlog.Print("dropped")
	})
	if strings.Contains(discarded, "dropped") {
		t.Errorf("expected discarded output, got: %q", discarded)
	}
}
