package tint

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// reset clears every attribute, not just the ones a style set, so styled
// output never leaks into surrounding text.
const reset = "\x1b[0m"

// Styled pairs a Style with a value for a single formatting operation. It
// holds its own copy of the style and has no lifecycle beyond being
// formatted or discarded.
type Styled struct {
	target any
	style  Style
}

// Format implements fmt.Formatter. The wrapped value's own formatting is
// reproduced verbatim for every verb it supports (with flags, width and
// precision passed through), surrounded by the style's SGR prefix and the
// full reset sequence. With a zero style the value is formatted with no
// escape bytes at all.
func (s Styled) Format(f fmt.State, verb rune) {
	prefix := s.style.appendPrefix(nil)
	if len(prefix) == 0 {
		formatValue(f, verb, s.target)
		return
	}
	f.Write(prefix)
	formatValue(f, verb, s.target)
	io.WriteString(f, reset)
}

// String renders the wrapped value with the %v verb.
func (s Styled) String() string {
	return fmt.Sprintf("%v", s)
}

// formatValue replays the caller's format directive against the wrapped
// value, so the escape wrapping never inspects or alters the content.
func formatValue(f fmt.State, verb rune, target any) {
	directive := []byte{'%'}
	for _, flag := range []int{'-', '+', '#', ' ', '0'} {
		if f.Flag(flag) {
			directive = append(directive, byte(flag))
		}
	}
	if w, ok := f.Width(); ok {
		directive = strconv.AppendInt(directive, int64(w), 10)
	}
	if p, ok := f.Precision(); ok {
		directive = append(directive, '.')
		directive = strconv.AppendInt(directive, int64(p), 10)
	}
	directive = utf8.AppendRune(directive, verb)
	fmt.Fprintf(f, string(directive), target)
}

// Sprint renders the arguments in this style, concatenated the way
// fmt.Sprint would.
func (s Style) Sprint(args ...any) string {
	return s.wrap(fmt.Sprint(args...))
}

// Sprintf renders a formatted string in this style.
func (s Style) Sprintf(format string, args ...any) string {
	return s.wrap(fmt.Sprintf(format, args...))
}

func (s Style) wrap(content string) string {
	prefix := s.appendPrefix(nil)
	if len(prefix) == 0 {
		return content
	}
	buf := make([]byte, 0, len(prefix)+len(content)+len(reset))
	buf = append(buf, prefix...)
	buf = append(buf, content...)
	buf = append(buf, reset...)
	return string(buf)
}

// Fprint writes the arguments to w in this style. A write failure
// surfaces verbatim; if the content write fails the reset sequence is not
// written, leaving a truncated but well-ordered prefix on the sink.
func (s Style) Fprint(w io.Writer, args ...any) (int, error) {
	return s.fprint(w, fmt.Sprint(args...))
}

// Fprintf writes a formatted string to w in this style, with the same
// failure behavior as Fprint.
func (s Style) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return s.fprint(w, fmt.Sprintf(format, args...))
}

func (s Style) fprint(w io.Writer, content string) (int, error) {
	prefix := s.appendPrefix(nil)
	if len(prefix) == 0 {
		return io.WriteString(w, content)
	}
	total, err := w.Write(prefix)
	if err != nil {
		return total, err
	}
	n, err := io.WriteString(w, content)
	total += n
	if err != nil {
		return total, err
	}
	n, err = io.WriteString(w, reset)
	return total + n, err
}
