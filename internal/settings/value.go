package settings

import (
	"strconv"

	"tmt/internal/gsettings"
)

// Kind is the declared type of a profile property.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "double"
	default:
		return "unknown"
	}
}

// Value is a typed property value.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int
	f    float64
}

// String creates a string value; it is passed to the store single-quoted.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int creates an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Float creates a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind returns the value's type.
func (v Value) Kind() Kind { return v.kind }

// Literal serializes v in the store's text syntax: strings quoted, numbers and
// booleans bare.
func (v Value) Literal() string {
	switch v.kind {
	case KindString:
		return gsettings.Quote(v.s)
	default:
		return v.String()
	}
}

// String renders v without quoting, for messages.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return ""
	}
}
