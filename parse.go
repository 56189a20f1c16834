package tint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Error definitions for runtime color and effect parsing
var (
	// ErrUnknownColor is returned for a color name that is neither a
	// recognized ANSI color nor a hex value
	ErrUnknownColor = errors.New("unknown color")
	// ErrUnknownEffect is returned for an unrecognized effect name
	ErrUnknownEffect = errors.New("unknown effect")
)

var colorsByName = func() map[string]ANSIColor {
	m := make(map[string]ANSIColor, len(ansiColorNames)+2)
	for i, name := range ansiColorNames {
		m[name] = ANSIColor(i)
	}
	// purple is an alias of magenta, not a distinct color
	m["purple"] = Magenta
	m["bright-purple"] = BrightMagenta
	return m
}()

var effectsByName = func() map[string]Effect {
	m := make(map[string]Effect, numEffects)
	for i, name := range effectNames {
		m[name] = Effect(i)
	}
	return m
}()

// normalizeName folds case and separator variants ("Bright Red",
// "bright_red") onto the canonical hyphenated form.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}

// ParseColor resolves a runtime color description: an ANSI color name
// ("red", "bright blue", "default", with "purple" accepted as an alias of
// magenta) or a hex value ("#rrggbb", "#rgb").
func ParseColor(s string) (Color, error) {
	name := normalizeName(s)
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	if c, ok := colorsByName[name]; ok {
		return c.Color(), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ParseEffect resolves an effect name ("bold", "blink-fast", ...).
func ParseEffect(s string) (Effect, error) {
	if e, ok := effectsByName[normalizeName(s)]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, s)
}
