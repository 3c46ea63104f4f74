// Package color turns user supplied tokens into canonical hex colors.
//
// Two resolvers live here. Resolver accepts hex codes (3 or 6 digits, with or
// without a leading '#') and case-insensitive HTML/CSS color names. ClassResolver
// accepts Tailwind-style class tokens (bg-<palette>-<shade>, text-<palette>-<shade>)
// and reports which channel the class targets.
//
// Both are read-only views over a palette.Registry and are safe to share.
package color

import (
	"errors"
	"fmt"
)

// Channel is the terminal color a value is destined for.
type Channel int

const (
	Background Channel = iota
	Foreground
)

func (c Channel) String() string {
	switch c {
	case Background:
		return "background"
	case Foreground:
		return "foreground"
	default:
		return "unknown"
	}
}

// ParseChannel accepts "background"/"bg" and "foreground"/"fg"/"text".
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "background", "bg":
		return Background, nil
	case "foreground", "fg", "text":
		return Foreground, nil
	default:
		return 0, fmt.Errorf("unknown channel %q", s)
	}
}

var (
	// ErrUnresolvedColor is returned when a token is neither hex nor a known name.
	ErrUnresolvedColor = errors.New("unresolved color")
	// ErrUnresolvedClass is returned when a token is not a known bg-*/text-* class.
	ErrUnresolvedClass = errors.New("unresolved class")
)

// UnresolvedError carries the token that failed to resolve.
type UnresolvedError struct {
	Token string
	Kind  error
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%v: '%s'", e.Kind, e.Token)
}

func (e *UnresolvedError) Unwrap() error { return e.Kind }
