// Package theme loads named styles from TOML files, turning on-disk color
// and effect names into tint.Style values.
package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/andyrewlee/tint"
)

// StyleSpec is the on-disk form of a single style. Empty color fields
// leave the slot unset; "default" actively resets it.
type StyleSpec struct {
	Fg      string   `toml:"fg"`
	Bg      string   `toml:"bg"`
	Effects []string `toml:"effects"`
}

// Build converts the spec into a Style.
func (s StyleSpec) Build() (tint.Style, error) {
	st := tint.New()
	if s.Fg != "" {
		c, err := tint.ParseColor(s.Fg)
		if err != nil {
			return tint.Style{}, fmt.Errorf("fg: %w", err)
		}
		st = st.Fg(c)
	}
	if s.Bg != "" {
		c, err := tint.ParseColor(s.Bg)
		if err != nil {
			return tint.Style{}, fmt.Errorf("bg: %w", err)
		}
		st = st.Bg(c)
	}
	for _, name := range s.Effects {
		e, err := tint.ParseEffect(name)
		if err != nil {
			return tint.Style{}, err
		}
		st = st.Effect(e)
	}
	return st, nil
}

type themeFile struct {
	Styles map[string]StyleSpec `toml:"styles"`
}

// Theme is a set of named styles resolved from a theme file.
type Theme struct {
	styles map[string]tint.Style
}

// Load reads and parses a theme file. A missing file surfaces as the
// os.ReadFile error unchanged.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a Theme from TOML content of the form:
//
//	[styles.error]
//	fg = "bright red"
//	effects = ["bold"]
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t := &Theme{styles: make(map[string]tint.Style, len(file.Styles))}
	for name, spec := range file.Styles {
		st, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[name] = st
	}
	return t, nil
}

// Style returns the style with the given name, if present.
func (t *Theme) Style(name string) (tint.Style, bool) {
	st, ok := t.styles[name]
	return st, ok
}

// Names returns the style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
