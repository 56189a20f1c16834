package tint

// Style is a set of text attributes: an optional foreground color, an
// optional background color, and nine independent effect flags. It is a
// plain value; every mutator returns an updated copy, so calls chain and
// two styles built independently never share state. The zero Style renders
// any value unchanged, with no escape bytes at all.
type Style struct {
	fg, bg  Color
	effects [numEffects]bool
}

// New returns the zero Style: no colors, no effects.
func New() Style {
	return Style{}
}

// Fg sets the foreground color, overwriting any prior value in that slot.
func (s Style) Fg(c Color) Style {
	s.fg = c
	return s
}

// Bg sets the background color, overwriting any prior value in that slot.
func (s Style) Bg(c Color) Style {
	s.bg = c
	return s
}

// Color sets the foreground to a named ANSI color chosen at runtime.
func (s Style) Color(c ANSIColor) Style {
	return s.Fg(c.Color())
}

// OnColor sets the background to a named ANSI color chosen at runtime.
func (s Style) OnColor(c ANSIColor) Style {
	return s.Bg(c.Color())
}

// RemoveFg clears the foreground slot back to unset. This is not the same
// as DefaultColor: unset emits nothing, while DefaultColor emits SGR 39 to
// actively reset the terminal's foreground.
func (s Style) RemoveFg() Style {
	s.fg = Color{}
	return s
}

// RemoveBg clears the background slot back to unset.
func (s Style) RemoveBg() Style {
	s.bg = Color{}
	return s
}

// Truecolor sets the foreground to a 24-bit RGB value.
func (s Style) Truecolor(r, g, b uint8) Style {
	return s.Fg(RGB(r, g, b))
}

// OnTruecolor sets the background to a 24-bit RGB value.
func (s Style) OnTruecolor(r, g, b uint8) Style {
	return s.Bg(RGB(r, g, b))
}

// Effect turns on a single effect.
func (s Style) Effect(e Effect) Style {
	s.effects[e] = true
	return s
}

// RemoveEffect turns off a single effect.
func (s Style) RemoveEffect(e Effect) Style {
	s.effects[e] = false
	return s
}

// Effects turns on each listed effect. Application is additive and
// order-insensitive; effects not listed keep their prior state.
func (s Style) Effects(effects []Effect) Style {
	for _, e := range effects {
		s.effects[e] = true
	}
	return s
}

// RemoveEffects turns off each listed effect.
func (s Style) RemoveEffects(effects []Effect) Style {
	for _, e := range effects {
		s.effects[e] = false
	}
	return s
}

// RemoveAllEffects turns off all nine effects regardless of prior state.
func (s Style) RemoveAllEffects() Style {
	s.effects = [numEffects]bool{}
	return s
}

// Bold makes the text bold.
func (s Style) Bold() Style { return s.Effect(Bold) }

// Dimmed makes the text dim.
func (s Style) Dimmed() Style { return s.Effect(Dimmed) }

// Italic makes the text italicized.
func (s Style) Italic() Style { return s.Effect(Italic) }

// Underline underlines the text.
func (s Style) Underline() Style { return s.Effect(Underline) }

// Blink makes the text blink.
func (s Style) Blink() Style { return s.Effect(Blink) }

// BlinkFast makes the text blink rapidly.
func (s Style) BlinkFast() Style { return s.Effect(BlinkFast) }

// Reversed swaps the foreground and background colors.
func (s Style) Reversed() Style { return s.Effect(Reversed) }

// Hidden hides the text.
func (s Style) Hidden() Style { return s.Effect(Hidden) }

// Strikethrough crosses out the text.
func (s Style) Strikethrough() Style { return s.Effect(Strikethrough) }

// IsZero reports whether no color or effect is active, i.e. rendering with
// this style is a byte-for-byte passthrough.
func (s Style) IsZero() bool {
	if s.fg.IsSet() || s.bg.IsSet() {
		return false
	}
	for _, on := range s.effects {
		if on {
			return false
		}
	}
	return true
}

// Apply binds a copy of the style to a value for formatting.
func (s Style) Apply(target any) Styled {
	return Styled{target: target, style: s}
}

// appendPrefix appends the SGR introducer and parameter list, or nothing
// at all if no attribute is active. Parameters are emitted in a fixed
// order (fg, bg, then effects in declaration order) so output is
// byte-exact reproducible.
func (s Style) appendPrefix(buf []byte) []byte {
	if s.IsZero() {
		return buf
	}
	buf = append(buf, "\x1b["...)
	sep := false
	if s.fg.IsSet() {
		buf = s.fg.appendSGR(buf, false)
		sep = true
	}
	if s.bg.IsSet() {
		if sep {
			buf = append(buf, ';')
		}
		buf = s.bg.appendSGR(buf, true)
		sep = true
	}
	for i, on := range s.effects {
		if !on {
			continue
		}
		if sep {
			buf = append(buf, ';')
		}
		buf = append(buf, '1'+byte(i))
		sep = true
	}
	return append(buf, 'm')
}
