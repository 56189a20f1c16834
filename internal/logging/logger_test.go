package logging

import (
	"os"
	"strings"
	"sync"
	"testing"
)

func setupLogger(t *testing.T, level Level) (string, func()) {
	t.Helper()

	logDir := t.TempDir()
	if err := Initialize(logDir, level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	logPath := GetLogPath()
	if logPath == "" {
		t.Fatalf("GetLogPath returned empty path")
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = Close()
			defaultLogger = nil
		})
	}
	t.Cleanup(cleanup)

	return logPath, cleanup
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelInfo)
	defer cleanup()

	Info("hello %s", "world")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "INFO: hello world") {
		t.Fatalf("expected log line to contain message, got: %q", string(data))
	}
}

func TestLevelFiltersLowSeverity(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelWarn)
	defer cleanup()

	Debug("too quiet")
	Info("still too quiet")
	Warn("loud enough")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "too quiet") {
		t.Fatalf("low-severity lines were written: %q", content)
	}
	if !strings.Contains(content, "WARN: loud enough") {
		t.Fatalf("expected warn line, got: %q", content)
	}
}

func TestWithErrorNilIsSilent(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelDebug)
	defer cleanup()

	WithError(nil, "should not appear")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "should not appear") {
		t.Fatalf("WithError(nil) wrote a line: %q", string(data))
	}
}

func TestLogWithoutInitializeIsNoop(t *testing.T) {
	defaultLogger = nil
	// Must not panic.
	Info("nowhere to go")
	Error("still nowhere")
}
