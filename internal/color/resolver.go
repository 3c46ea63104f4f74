package color

import (
	"strings"

	"tmt/internal/palette"
)

// NameLookup is the part of the palette registry the color resolver needs.
type NameLookup interface {
	LookupName(name string) (string, bool)
}

// Resolver resolves hex codes and color names.
type Resolver struct {
	names NameLookup
}

// NewResolver creates a Resolver backed by names.
func NewResolver(names NameLookup) *Resolver {
	return &Resolver{names: names}
}

// Resolve returns the canonical '#'-prefixed hex for token. Hex input keeps its
// case. Anything that is not exactly 3 or 6 hex digits falls through to name
// matching, so "12345" is only a color if some color is named "12345".
func (r *Resolver) Resolve(token string) (string, error) {
	if token == "" {
		return "", &UnresolvedError{Token: token, Kind: ErrUnresolvedColor}
	}

	if strings.HasPrefix(token, "#") {
		if (len(token) == 4 || len(token) == 7) && IsHex(token) {
			return token, nil
		}
	} else if (len(token) == 3 || len(token) == 6) && IsHex(token) {
		return "#" + token, nil
	}

	if r.names != nil {
		if hex, ok := r.names.LookupName(token); ok {
			return hex, nil
		}
	}
	return "", &UnresolvedError{Token: token, Kind: ErrUnresolvedColor}
}

// IsHex reports whether s, after dropping one optional leading '#', is exactly
// 3 or 6 hexadecimal digits.
func IsHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ClassLookup is the part of the palette registry the class resolver needs.
type ClassLookup interface {
	BackgroundClass(token string) (string, bool)
	ForegroundClass(token string) (string, bool)
}

var _ ClassLookup = (*palette.Registry)(nil)
var _ NameLookup = (*palette.Registry)(nil)

// ClassValue is a resolved class token.
type ClassValue struct {
	Token   string
	Channel Channel
	Hex     string
}

// ClassResolver resolves Tailwind-style class tokens.
type ClassResolver struct {
	classes ClassLookup
}

// NewClassResolver creates a ClassResolver backed by classes.
func NewClassResolver(classes ClassLookup) *ClassResolver {
	return &ClassResolver{classes: classes}
}

// Resolve matches token exactly, background mapping first.
func (r *ClassResolver) Resolve(token string) (ClassValue, error) {
	if hex, ok := r.classes.BackgroundClass(token); ok {
		return ClassValue{Token: token, Channel: Background, Hex: hex}, nil
	}
	if hex, ok := r.classes.ForegroundClass(token); ok {
		return ClassValue{Token: token, Channel: Foreground, Hex: hex}, nil
	}
	return ClassValue{}, &UnresolvedError{Token: token, Kind: ErrUnresolvedClass}
}

// ResolveBatch resolves tokens in order and stops at the first unresolved one.
// The values resolved before the failure are returned alongside the error.
func (r *ClassResolver) ResolveBatch(tokens []string) ([]ClassValue, error) {
	values := make([]ClassValue, 0, len(tokens))
	for _, token := range tokens {
		v, err := r.Resolve(token)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
