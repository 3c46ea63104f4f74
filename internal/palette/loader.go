package palette

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"tmt/pkg/logging"
)

//go:embed data/*.json
var embeddedData embed.FS

// Data source base names. Each may be provided as .json, .yaml or .yml.
const (
	NamedColorsSource = "htmlcolors"
	ShadesSource      = "tailwindcolors"
	ThemesSource      = "themes"
)

var sourceExtensions = []string{".json", ".yaml", ".yml"}

// ErrSourceMissing is recorded when no file exists for a data source.
var ErrSourceMissing = errors.New("data source not found")

// colorsDocument is the {"colors": [...]} wrapper used by the color tables.
type colorsDocument[T any] struct {
	Colors []T `json:"colors" yaml:"colors"`
}

// LoadDefault builds a registry from the data compiled into the binary.
func LoadDefault() *Registry {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// Only reachable if the embed directive changes.
		panic(fmt.Sprintf("palette: embedded data missing: %v", err))
	}
	return Load(sub)
}

// LoadDir builds a registry from the files in dir. An empty dir means the
// embedded defaults.
func LoadDir(dir string) *Registry {
	if dir == "" {
		return LoadDefault()
	}
	logging.Debug(subsystem, "Loading palette data from %s", dir)
	return Load(os.DirFS(dir))
}

// Load reads the three datasets from fsys. A missing or unparseable source
// yields an empty collection and an issue on the returned registry; it never
// fails the load.
func Load(fsys fs.FS) *Registry {
	var loadIssues []error

	var named colorsDocument[NamedColor]
	if err := readSource(fsys, NamedColorsSource, &named); err != nil {
		loadIssues = append(loadIssues, err)
		named.Colors = nil
	}

	var shades colorsDocument[ShadePalette]
	if err := readSource(fsys, ShadesSource, &shades); err != nil {
		loadIssues = append(loadIssues, err)
		shades.Colors = nil
	}

	var themes themeDocument
	if err := readSource(fsys, ThemesSource, &themes); err != nil {
		loadIssues = append(loadIssues, err)
		themes = nil
	}

	r := NewRegistry(named.Colors, shades.Colors, themes)
	for _, err := range loadIssues {
		logging.Warn(subsystem, "Degraded load: %v", err)
	}
	r.issues = append(loadIssues, r.issues...)

	logging.Debug(subsystem, "Loaded %d named colors, %d class tokens per channel, %d themes",
		len(r.namedColors), r.ClassCount(), len(r.themes))
	return r
}

func readSource(fsys fs.FS, base string, out any) error {
	for _, ext := range sourceExtensions {
		name := base + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := decode(name, data, out); err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("%s: %w", base, ErrSourceMissing)
}

func decode(name string, data []byte, out any) error {
	if path.Ext(name) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		return dec.Decode(out)
	}
	return yaml.Unmarshal(data, out)
}

// themeDocument accepts either a bare list of themes or {"themes": [...]}.
type themeDocument []Theme

func (d *themeDocument) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Theme
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*d = list
		return nil
	}
	var wrapped struct {
		Themes []Theme `json:"themes"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	*d = wrapped.Themes
	return nil
}

func (d *themeDocument) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []Theme
		if err := node.Decode(&list); err != nil {
			return err
		}
		*d = list
		return nil
	}
	var wrapped struct {
		Themes []Theme `yaml:"themes"`
	}
	if err := node.Decode(&wrapped); err != nil {
		return err
	}
	*d = wrapped.Themes
	return nil
}
