package palette

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	r := LoadDefault()

	assert.False(t, r.Degraded(), "embedded data should load cleanly: %v", r.Issues())
	assert.NotEmpty(t, r.NamedColors())
	assert.NotEmpty(t, r.Palettes())

	themes := r.Themes()
	require.GreaterOrEqual(t, len(themes), 3)
	assert.Equal(t, Theme{Name: "Dracula", Background: "#282a36", Foreground: "#f8f8f2"}, themes[2])

	hex, ok := r.BackgroundClass("bg-blue-500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", hex)
}

func TestEveryShadeIsIndexedOnBothChannels(t *testing.T) {
	r := LoadDefault()
	for _, p := range r.Palettes() {
		for _, s := range p.Shades {
			bg, ok := r.BackgroundClass(BackgroundClass(p.Name, s.Shade))
			require.True(t, ok, "bg-%s-%s", p.Name, s.Shade)
			fg, ok := r.ForegroundClass(ForegroundClass(p.Name, s.Shade))
			require.True(t, ok, "text-%s-%s", p.Name, s.Shade)
			assert.Equal(t, s.Hex, bg)
			assert.Equal(t, s.Hex, fg)
		}
	}
}

func TestLoad_MissingSourcesDegradeToEmpty(t *testing.T) {
	r := Load(fstest.MapFS{})

	assert.True(t, r.Degraded())
	assert.Empty(t, r.NamedColors())
	assert.Empty(t, r.Palettes())
	assert.Empty(t, r.Themes())
	require.Len(t, r.Issues(), 3)
	for _, err := range r.Issues() {
		assert.True(t, errors.Is(err, ErrSourceMissing))
	}
}

func TestLoad_UnparseableSourceOnlyDropsThatSource(t *testing.T) {
	fsys := fstest.MapFS{
		"htmlcolors.json":     {Data: []byte(`{"colors": [`)},
		"tailwindcolors.json": {Data: []byte(`{"colors": [{"name": "blue", "shades": [{"shade": "500", "hex": "#3b82f6"}]}]}`)},
		"themes.json":         {Data: []byte(`[{"name": "Dracula", "background": "#282a36", "foreground": "#f8f8f2"}]`)},
	}
	r := Load(fsys)

	assert.True(t, r.Degraded())
	assert.Empty(t, r.NamedColors())
	assert.Equal(t, 1, r.ClassCount())
	assert.Len(t, r.Themes(), 1)
}

func TestLoad_YAMLSources(t *testing.T) {
	fsys := fstest.MapFS{
		"htmlcolors.yaml":    {Data: []byte("colors:\n  - name: Tomato\n    hex: \"#FF6347\"\n  - name: Legacy\n    code: \"#123\"\n")},
		"tailwindcolors.yml": {Data: []byte("colors:\n  - name: rose\n    shades:\n      - shade: \"50\"\n        hex: \"#fff1f2\"\n")},
		"themes.yaml":        {Data: []byte("themes:\n  - name: Paper\n    background: \"#f2eede\"\n    foreground: \"#000000\"\n")},
	}
	r := Load(fsys)

	assert.False(t, r.Degraded(), "%v", r.Issues())
	hex, ok := r.LookupName("tomato")
	require.True(t, ok)
	assert.Equal(t, "#FF6347", hex)

	hex, ok = r.LookupName("LEGACY")
	require.True(t, ok)
	assert.Equal(t, "#123", hex)

	hex, ok = r.ForegroundClass("text-rose-50")
	require.True(t, ok)
	assert.Equal(t, "#fff1f2", hex)

	require.Len(t, r.Themes(), 1)
	assert.Equal(t, "Paper", r.Themes()[0].Name)
}

func TestNewRegistry_SkipsMalformedEntries(t *testing.T) {
	r := NewRegistry(
		[]NamedColor{{Name: "Red", Hex: "#FF0000"}, {Name: "", Hex: "#000"}, {Name: "red", Hex: "#111111"}},
		[]ShadePalette{
			{Name: "blue", Shades: []Shade{{Shade: "500", Hex: "#3b82f6"}, {Shade: "", Hex: "#000"}, {Shade: "600"}}},
			{Name: "", Shades: []Shade{{Shade: "100", Hex: "#fff"}}},
			{Name: "blue", Shades: []Shade{{Shade: "500", Hex: "#ffffff"}}},
		},
		[]Theme{{Name: "Ok", Background: "#000", Foreground: "#fff"}, {Name: "Broken", Background: "#000"}},
	)

	assert.True(t, r.Degraded())
	assert.Len(t, r.Issues(), 7)

	hex, ok := r.LookupName("RED")
	require.True(t, ok)
	assert.Equal(t, "#FF0000", hex, "first occurrence wins")

	assert.Equal(t, 1, r.ClassCount())
	hex, ok = r.BackgroundClass("bg-blue-500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", hex)

	assert.Len(t, r.Themes(), 1)
}

func TestRegistryAccessorsReturnCopies(t *testing.T) {
	r := NewRegistry(nil, []ShadePalette{{Name: "blue", Shades: []Shade{{Shade: "500", Hex: "#3b82f6"}}}},
		[]Theme{{Name: "Ok", Background: "#000", Foreground: "#fff"}})

	themes := r.Themes()
	themes[0].Name = "mutated"
	assert.Equal(t, "Ok", r.Themes()[0].Name)

	palettes := r.Palettes()
	palettes[0].Shades[0].Hex = "#000000"
	assert.Equal(t, "#3b82f6", r.Palettes()[0].Shades[0].Hex)
}
