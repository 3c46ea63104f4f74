package palette

// NamedColor is an HTML/CSS color name with its canonical hex value.
type NamedColor struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
	// Code is the key used by older data files; it is folded into Hex on load.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Shade is one intensity step of a ShadePalette, e.g. "500".
type Shade struct {
	Shade string `json:"shade" yaml:"shade"`
	Hex   string `json:"hex" yaml:"hex"`
}

// ShadePalette is a Tailwind-style color family.
type ShadePalette struct {
	Name   string  `json:"name" yaml:"name"`
	Shades []Shade `json:"shades" yaml:"shades"`
}

// Theme is a named background/foreground preset.
type Theme struct {
	Name       string `json:"name" yaml:"name"`
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
}

// Class token prefixes.
const (
	BackgroundPrefix = "bg-"
	ForegroundPrefix = "text-"
)

// ClassIndex maps class tokens to hex values, one mapping per channel.
type ClassIndex struct {
	Background map[string]string
	Foreground map[string]string
}

// BackgroundClass returns the bg-* token for a palette shade.
func BackgroundClass(paletteName, shade string) string {
	return BackgroundPrefix + paletteName + "-" + shade
}

// ForegroundClass returns the text-* token for a palette shade.
func ForegroundClass(paletteName, shade string) string {
	return ForegroundPrefix + paletteName + "-" + shade
}
