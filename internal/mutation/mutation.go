// Package mutation turns a set of requested terminal changes into an ordered
// plan and applies it one change at a time.
//
// Every requested change is a tagged variant of Mutation. Plan builds the list
// in a fixed order; Executor consumes it. A failed mutation is reported and the
// executor moves on to the next one. The only batch that stops early is a class
// list: the first unknown class ends that batch, and classes applied before it
// stay applied.
package mutation

import (
	"fmt"
	"strings"

	"tmt/internal/color"
)

// Mutation is one requested change.
type Mutation interface {
	// Describe names the change for logs and reports.
	Describe() string
	mutation()
}

// SetColor sets the background or foreground from a color token.
type SetColor struct {
	Channel color.Channel
	Token   string
}

// ApplyDefaults writes the default preset.
type ApplyDefaults struct {
	Preset Preset
}

// ApplyClasses applies bg-*/text-* class tokens in order.
type ApplyClasses struct {
	Tokens []string
}

// ListThemes prints every theme without applying anything.
type ListThemes struct{}

// ApplyTheme applies a theme by 1-based index or name.
type ApplyTheme struct {
	Reference string
}

// RandomTheme applies a uniformly random theme.
type RandomTheme struct{}

// SetTransparency toggles or sets the background transparency.
type SetTransparency struct {
	Transparency Transparency
}

// SetFontSize writes the desktop monospace font with the given size.
type SetFontSize struct {
	Size int
}

// SetCellHeight sets the line height scale.
type SetCellHeight struct {
	Scale float64
}

// SetCellWidth sets the character width scale.
type SetCellWidth struct {
	Scale float64
}

// SetRows sets the default row count.
type SetRows struct {
	Count int
}

// SetColumns sets the default column count.
type SetColumns struct {
	Count int
}

// PrintProfile prints the current value of every tracked property.
type PrintProfile struct {
	Properties []string
}

func (SetColor) mutation()        {}
func (ApplyDefaults) mutation()   {}
func (ApplyClasses) mutation()    {}
func (ListThemes) mutation()      {}
func (ApplyTheme) mutation()      {}
func (RandomTheme) mutation()     {}
func (SetTransparency) mutation() {}
func (SetFontSize) mutation()     {}
func (SetCellHeight) mutation()   {}
func (SetCellWidth) mutation()    {}
func (SetRows) mutation()         {}
func (SetColumns) mutation()      {}
func (PrintProfile) mutation()    {}

func (m SetColor) Describe() string { return fmt.Sprintf("set %s color %q", m.Channel, m.Token) }
func (ApplyDefaults) Describe() string {
	return "apply default preset"
}
func (m ApplyClasses) Describe() string {
	return "apply classes " + strings.Join(m.Tokens, " ")
}
func (ListThemes) Describe() string        { return "list themes" }
func (m ApplyTheme) Describe() string      { return fmt.Sprintf("apply theme %q", m.Reference) }
func (RandomTheme) Describe() string       { return "apply random theme" }
func (m SetTransparency) Describe() string { return "set transparency " + m.Transparency.String() }
func (m SetFontSize) Describe() string     { return fmt.Sprintf("set font size %d", m.Size) }
func (m SetCellHeight) Describe() string   { return "set line height " + formatFloat(m.Scale) }
func (m SetCellWidth) Describe() string    { return "set character width " + formatFloat(m.Scale) }
func (m SetRows) Describe() string         { return fmt.Sprintf("set rows %d", m.Count) }
func (m SetColumns) Describe() string      { return fmt.Sprintf("set columns %d", m.Count) }
func (PrintProfile) Describe() string      { return "print profile" }

// Preset is the set of values written by ApplyDefaults. The colors are
// resolved like any other color token.
type Preset struct {
	Background          string
	Foreground          string
	Transparent         bool
	TransparencyPercent int
	Rows                int
	Columns             int
	CellHeightScale     float64
	CellWidthScale      float64
}
