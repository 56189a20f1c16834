package tint

import "strconv"

// ANSIColor is one of the 16 standard terminal colors, or Default, which
// actively resets a slot to the terminal's configured color (SGR 39/49)
// rather than leaving it untouched.
type ANSIColor uint8

const (
	Black ANSIColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var ansiColorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"default",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c ANSIColor) String() string {
	if int(c) < len(ansiColorNames) {
		return ansiColorNames[c]
	}
	return "unknown"
}

// Color converts the named color into a runtime Color value.
func (c ANSIColor) Color() Color {
	return Color{kind: colorNamed, name: c}
}

// fgCode returns the foreground SGR parameter. Background codes are the
// same value shifted by 10 (40-series / 49 / 100-series).
func (c ANSIColor) fgCode() int {
	switch {
	case c <= White:
		return 30 + int(c)
	case c == Default:
		return 39
	default:
		return 90 + int(c-BrightBlack)
	}
}

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorRGB
)

// Color is a terminal color: one of the named ANSI colors or a 24-bit RGB
// value. The zero value is "no color" and emits nothing when rendered,
// which is distinct from Default (an explicit reset to the terminal's own
// color).
type Color struct {
	kind    colorKind
	name    ANSIColor
	r, g, b uint8
}

// RGB returns a true-color value with the given 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether the color is anything other than the zero "no
// color" value.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name.String()
	case colorRGB:
		return "rgb(" + strconv.Itoa(int(c.r)) + "," + strconv.Itoa(int(c.g)) + "," + strconv.Itoa(int(c.b)) + ")"
	}
	return "unset"
}

// appendSGR appends the color's SGR parameter codes. bg selects the
// background code family (40-series / 48-prefixed extended form).
func (c Color) appendSGR(buf []byte, bg bool) []byte {
	switch c.kind {
	case colorNamed:
		code := c.name.fgCode()
		if bg {
			code += 10
		}
		return strconv.AppendInt(buf, int64(code), 10)
	case colorRGB:
		if bg {
			buf = append(buf, "48;2;"...)
		} else {
			buf = append(buf, "38;2;"...)
		}
		buf = strconv.AppendUint(buf, uint64(c.r), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(c.g), 10)
		buf = append(buf, ';')
		return strconv.AppendUint(buf, uint64(c.b), 10)
	}
	return buf
}
