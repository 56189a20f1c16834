package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTheme(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := "[styles.error]\nfg = \"bright red\"\neffects = [\"bold\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestRunSwatches(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, nil, ""); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"bright-white", "strikethrough", "\x1b[31m", "\x1b[0m"} {
		if !strings.Contains(out, want) {
			t.Fatalf("swatch output missing %q", want)
		}
	}
	// The default pseudo-color has no visible swatch and gets no row.
	if strings.Contains(out, "default") {
		t.Fatalf("swatch output contains a default row: %q", out)
	}
}

func TestRunStyledText(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, []string{"error", "boom"}, writeTheme(t)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := buf.String(), "\x1b[91;1mboom\x1b[0m\n"; got != want {
		t.Fatalf("run() wrote %q, want %q", got, want)
	}
}

func TestRunListsTheme(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, nil, writeTheme(t)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[91;1merror\x1b[0m") {
		t.Fatalf("theme listing missing styled name: %q", buf.String())
	}
}

func TestRunUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{"nope"}, writeTheme(t))
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("run() error = %v, want unknown style error", err)
	}
}
