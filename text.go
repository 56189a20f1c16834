package tint

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Strip returns s with all ANSI escape sequences removed.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Width returns the display width of s in terminal cells, ignoring escape
// sequences.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Truncate cuts styled text down to at most width display cells, keeping
// every escape sequence (including the trailing reset) so attributes stay
// balanced. When truncation occurs, tail is appended unstyled after the
// preserved sequences. Wide runes that would straddle the boundary are
// dropped entirely.
func Truncate(s string, width int, tail string) string {
	if Width(s) <= width {
		return s
	}
	budget := width - runewidth.StringWidth(tail)
	if budget < 0 {
		budget = 0
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	var out strings.Builder
	out.Grow(len(s))
	used := 0
	full := false
	var state byte
	for len(s) > 0 {
		seq, w, n, newState := ansi.DecodeSequence(s, state, p)
		if n == 0 {
			// Undecodable input, keep the remainder untouched
			out.WriteString(s)
			break
		}
		switch {
		case w == 0:
			// Control sequence, always kept
			out.WriteString(seq)
		case !full && used+w <= budget:
			out.WriteString(seq)
			used += w
		default:
			// Once a printable no longer fits, the cut is final: admitting
			// later narrower runes would reorder the visible text.
			full = true
		}
		state = newState
		s = s[n:]
	}
	out.WriteString(tail)
	return out.String()
}
