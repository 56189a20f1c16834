package tint

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatVerbs(t *testing.T) {
	red := New().Red()
	tests := []struct {
		format string
		value  any
		want   string
	}{
		{"%v", "TEST", "\x1b[31mTEST\x1b[0m"},
		{"%s", "TEST", "\x1b[31mTEST\x1b[0m"},
		{"%q", "TEST", "\x1b[31m\"TEST\"\x1b[0m"},
		{"%d", 42, "\x1b[31m42\x1b[0m"},
		{"%x", 255, "\x1b[31mff\x1b[0m"},
		{"%X", 255, "\x1b[31mFF\x1b[0m"},
		{"%o", 8, "\x1b[31m10\x1b[0m"},
		{"%b", 5, "\x1b[31m101\x1b[0m"},
		{"%.1e", 1234.5, "\x1b[31m1.2e+03\x1b[0m"},
		{"%.1E", 1234.5, "\x1b[31m1.2E+03\x1b[0m"},
		{"%05d", 42, "\x1b[31m00042\x1b[0m"},
		{"%+d", 42, "\x1b[31m+42\x1b[0m"},
		{"%-6s|", "ab", "\x1b[31mab    \x1b[0m|"},
		{"%#x", 255, "\x1b[31m0xff\x1b[0m"},
		{"%8.3f", 1.5, "\x1b[31m   1.500\x1b[0m"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, red.Apply(tt.value)); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatPointer(t *testing.T) {
	v := new(int)
	got := fmt.Sprintf("%p", New().Red().Apply(v))
	if !strings.HasPrefix(got, "\x1b[31m0x") || !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("pointer format = %q, want SGR-wrapped 0x address", got)
	}
	if got := Strip(got); got != fmt.Sprintf("%p", v) {
		t.Fatalf("stripped pointer = %q, want %q", got, fmt.Sprintf("%p", v))
	}
}

func TestFormatZeroStylePassthrough(t *testing.T) {
	// Every verb must be byte-identical to formatting the bare value.
	for _, format := range []string{"%v", "%q", "%05.2f", "%+v", "%-10s|", "%x"} {
		var value any = 3.5
		if strings.ContainsAny(format, "sq") || format == "%v" || format == "%+v" {
			value = "TEST"
		}
		got := fmt.Sprintf(format, New().Apply(value))
		want := fmt.Sprintf(format, value)
		if got != want {
			t.Errorf("zero style %q = %q, want %q", format, got, want)
		}
	}
}

func TestSprintf(t *testing.T) {
	got := New().Green().Sprintf("%d items", 3)
	want := "\x1b[32m3 items\x1b[0m"
	if got != want {
		t.Fatalf("Sprintf = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := New().Blue().Fprint(&buf, "TEST")
	if err != nil {
		t.Fatalf("Fprint() error = %v", err)
	}
	want := "\x1b[34mTEST\x1b[0m"
	if buf.String() != want {
		t.Fatalf("Fprint wrote %q, want %q", buf.String(), want)
	}
	if n != len(want) {
		t.Fatalf("Fprint reported %d bytes, want %d", n, len(want))
	}
}

var errSinkFull = errors.New("sink full")

// limitWriter accepts up to limit bytes, then fails.
type limitWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room <= 0 {
		return 0, errSinkFull
	}
	if len(p) > room {
		n, _ := w.buf.Write(p[:room])
		return n, errSinkFull
	}
	return w.buf.Write(p)
}

func TestFprintPropagatesWriteError(t *testing.T) {
	style := New().Red()
	prefix := "\x1b[31m"

	// Failure while writing the content: the reset must not follow.
	w := &limitWriter{limit: len(prefix) + 2}
	_, err := style.Fprint(w, "TEST")
	if !errors.Is(err, errSinkFull) {
		t.Fatalf("Fprint() error = %v, want %v", err, errSinkFull)
	}
	if got, want := w.buf.String(), prefix+"TE"; got != want {
		t.Fatalf("partial output = %q, want %q", got, want)
	}

	// Failure while writing the prefix.
	w = &limitWriter{limit: 2}
	if _, err := style.Fprint(w, "TEST"); !errors.Is(err, errSinkFull) {
		t.Fatalf("Fprint() error = %v, want %v", err, errSinkFull)
	}
	if got := w.buf.String(); strings.Contains(got, "TEST") {
		t.Fatalf("content written after prefix failure: %q", got)
	}
}

func TestStyledString(t *testing.T) {
	s := New().Red().Apply(42)
	if got, want := s.String(), "\x1b[31m42\x1b[0m"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	// fmt.Stringer and fmt.Formatter must agree.
	if got := fmt.Sprint(s); got != s.String() {
		t.Fatalf("fmt.Sprint = %q, String() = %q", fmt.Sprint(s), s.String())
	}
}
