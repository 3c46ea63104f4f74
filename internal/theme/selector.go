package theme

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"tmt/internal/palette"
)

// RandomReference selects a uniformly random theme.
const RandomReference = "random"

// ErrUnresolvedTheme is returned when a reference matches no theme.
var ErrUnresolvedTheme = errors.New("theme not found")

// Kind tells the caller what a Selection carries.
type Kind int

const (
	// Single means Selection.Theme is the theme to apply.
	Single Kind = iota
	// All means the caller should enumerate Selection.Themes, not apply anything.
	All
)

// Selection is the outcome of resolving a theme reference.
type Selection struct {
	Kind   Kind
	Theme  palette.Theme
	Index  int // 1-based, only set for Single
	Themes []palette.Theme
}

// Selector resolves theme references against a fixed theme list.
type Selector struct {
	themes []palette.Theme
	intN   func(n int) int
}

// Option configures a Selector.
type Option func(*Selector)

// WithRandomSource replaces the random source. intN must return a value in [0, n).
func WithRandomSource(intN func(n int) int) Option {
	return func(s *Selector) { s.intN = intN }
}

// NewSelector creates a Selector over themes.
func NewSelector(themes []palette.Theme, opts ...Option) *Selector {
	s := &Selector{themes: themes, intN: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the All selection.
func (s *Selector) List() Selection {
	return Selection{Kind: All, Themes: s.themes}
}

// Resolve matches reference as a 1-based index (exact string comparison with
// the stringified index), then case-insensitively by name. "random" picks one
// at random.
func (s *Selector) Resolve(reference string) (Selection, error) {
	if reference == RandomReference {
		return s.Random()
	}

	for i, t := range s.themes {
		if reference == strconv.Itoa(i+1) {
			return Selection{Kind: Single, Theme: t, Index: i + 1}, nil
		}
	}
	for i, t := range s.themes {
		if strings.EqualFold(reference, t.Name) {
			return Selection{Kind: Single, Theme: t, Index: i + 1}, nil
		}
	}
	return Selection{}, fmt.Errorf("%w: '%s'", ErrUnresolvedTheme, reference)
}

// Random draws an index from [0, len(themes)-1].
func (s *Selector) Random() (Selection, error) {
	if len(s.themes) == 0 {
		return Selection{}, fmt.Errorf("%w: no themes loaded", ErrUnresolvedTheme)
	}
	i := s.intN(len(s.themes))
	if i < 0 || i >= len(s.themes) {
		return Selection{}, fmt.Errorf("random source returned %d for %d themes", i, len(s.themes))
	}
	return Selection{Kind: Single, Theme: s.themes[i], Index: i + 1}, nil
}
