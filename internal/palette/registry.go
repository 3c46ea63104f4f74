package palette

import (
	"fmt"
	"slices"
	"strings"

	"tmt/pkg/logging"
)

const subsystem = "Palette"

// Registry holds the loaded palette and theme data. It is built once and never
// mutated afterwards; all accessors hand out copies.
type Registry struct {
	namedColors []NamedColor
	byName      map[string]string
	palettes    []ShadePalette
	classes     ClassIndex
	themes      []Theme
	issues      []error
}

// NewRegistry indexes the given datasets. Malformed entries are skipped and
// recorded as issues instead of failing the whole construction.
func NewRegistry(namedColors []NamedColor, palettes []ShadePalette, themes []Theme) *Registry {
	r := &Registry{
		byName: make(map[string]string, len(namedColors)),
		classes: ClassIndex{
			Background: make(map[string]string),
			Foreground: make(map[string]string),
		},
	}

	for i, c := range namedColors {
		if c.Hex == "" {
			c.Hex = c.Code
		}
		c.Code = ""
		if c.Name == "" || c.Hex == "" {
			r.addIssue(fmt.Errorf("named color #%d: missing name or hex", i+1))
			continue
		}
		key := strings.ToLower(c.Name)
		if _, exists := r.byName[key]; exists {
			r.addIssue(fmt.Errorf("named color %q: duplicate name", c.Name))
			continue
		}
		r.byName[key] = c.Hex
		r.namedColors = append(r.namedColors, c)
	}

	r.palettes = r.buildClassIndex(palettes)

	for i, t := range themes {
		if t.Name == "" || t.Background == "" || t.Foreground == "" {
			r.addIssue(fmt.Errorf("theme #%d: missing name, background or foreground", i+1))
			continue
		}
		r.themes = append(r.themes, t)
	}

	return r
}

// buildClassIndex flattens palettes into bg-/text- tokens and returns the
// palettes with malformed shades removed.
func (r *Registry) buildClassIndex(palettes []ShadePalette) []ShadePalette {
	kept := make([]ShadePalette, 0, len(palettes))
	for i, p := range palettes {
		if p.Name == "" {
			r.addIssue(fmt.Errorf("shade palette #%d: missing name", i+1))
			continue
		}
		clean := ShadePalette{Name: p.Name}
		for j, s := range p.Shades {
			if s.Shade == "" || s.Hex == "" {
				r.addIssue(fmt.Errorf("shade palette %q entry #%d: missing shade or hex", p.Name, j+1))
				continue
			}
			bg := BackgroundClass(p.Name, s.Shade)
			if _, exists := r.classes.Background[bg]; exists {
				r.addIssue(fmt.Errorf("shade palette %q: duplicate shade %q", p.Name, s.Shade))
				continue
			}
			r.classes.Background[bg] = s.Hex
			r.classes.Foreground[ForegroundClass(p.Name, s.Shade)] = s.Hex
			clean.Shades = append(clean.Shades, s)
		}
		kept = append(kept, clean)
	}
	return kept
}

func (r *Registry) addIssue(err error) {
	logging.Warn(subsystem, "Skipping entry: %v", err)
	r.issues = append(r.issues, err)
}

// LookupName matches name case-insensitively against the named colors.
func (r *Registry) LookupName(name string) (string, bool) {
	hex, ok := r.byName[strings.ToLower(name)]
	return hex, ok
}

// BackgroundClass looks up an exact bg-* token.
func (r *Registry) BackgroundClass(token string) (string, bool) {
	hex, ok := r.classes.Background[token]
	return hex, ok
}

// ForegroundClass looks up an exact text-* token.
func (r *Registry) ForegroundClass(token string) (string, bool) {
	hex, ok := r.classes.Foreground[token]
	return hex, ok
}

// NamedColors returns the loaded named colors in data order.
func (r *Registry) NamedColors() []NamedColor { return slices.Clone(r.namedColors) }

// Palettes returns the loaded shade palettes in data order.
func (r *Registry) Palettes() []ShadePalette {
	out := make([]ShadePalette, len(r.palettes))
	for i, p := range r.palettes {
		out[i] = ShadePalette{Name: p.Name, Shades: slices.Clone(p.Shades)}
	}
	return out
}

// Themes returns the loaded themes in data order; index i is theme number i+1.
func (r *Registry) Themes() []Theme { return slices.Clone(r.themes) }

// ClassCount returns the number of tokens per channel.
func (r *Registry) ClassCount() int { return len(r.classes.Background) }

// Issues lists everything that was skipped or failed to load.
func (r *Registry) Issues() []error { return slices.Clone(r.issues) }

// Degraded reports whether any data source or entry was dropped.
func (r *Registry) Degraded() bool { return len(r.issues) > 0 }
