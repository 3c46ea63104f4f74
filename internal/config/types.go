package config

// TmtConfig is the top-level configuration structure for tmt.
type TmtConfig struct {
	// DataDir overrides the embedded palette data. Empty means embedded.
	DataDir  string `yaml:"dataDir,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
	// Verbose turns on the command audit trace without passing --verbose.
	Verbose bool `yaml:"verbose,omitempty"`

	GSettings GSettingsConfig `yaml:"gsettings"`
	Font      FontConfig      `yaml:"font"`
	Defaults  DefaultsPreset  `yaml:"defaults"`

	// TrackedProperties are the profile keys shown by --print.
	TrackedProperties []string `yaml:"trackedProperties,omitempty"`
}

// GSettingsConfig locates the settings store and the gnome-terminal schemas.
type GSettingsConfig struct {
	Binary            string `yaml:"binary,omitempty"`
	ProfileListSchema string `yaml:"profileListSchema,omitempty"`
	ProfileSchema     string `yaml:"profileSchema,omitempty"`
	ProfilePathPrefix string `yaml:"profilePathPrefix,omitempty"`
	FontSchema        string `yaml:"fontSchema,omitempty"`
	FontKey           string `yaml:"fontKey,omitempty"`
}

// FontConfig controls the font name written by --fontsize.
type FontConfig struct {
	Family string `yaml:"family,omitempty"`
}

// DefaultsPreset is what --default writes. Zero numeric fields in an overlay
// keep the base value.
type DefaultsPreset struct {
	Background          string  `yaml:"background,omitempty"`
	Foreground          string  `yaml:"foreground,omitempty"`
	Transparent         *bool   `yaml:"transparent,omitempty"`
	TransparencyPercent *int    `yaml:"transparencyPercent,omitempty"`
	Rows                int     `yaml:"rows,omitempty"`
	Columns             int     `yaml:"columns,omitempty"`
	CellHeightScale     float64 `yaml:"cellHeightScale,omitempty"`
	CellWidthScale      float64 `yaml:"cellWidthScale,omitempty"`
}
