package config

import (
	"tmt/internal/gsettings"
	"tmt/internal/settings"
)

// GetDefaultConfig returns the built-in configuration: stock gnome-terminal
// schemas, the Monospace font family and white-on-black as the default preset.
func GetDefaultConfig() TmtConfig {
	transparent := false
	percent := 0
	return TmtConfig{
		LogLevel: "warn",
		GSettings: GSettingsConfig{
			Binary:            gsettings.DefaultBinary,
			ProfileListSchema: gsettings.DefaultProfileListSchema,
			ProfileSchema:     gsettings.DefaultProfileSchema,
			ProfilePathPrefix: gsettings.DefaultProfilePathPrefix,
			FontSchema:        gsettings.DefaultFontSchema,
			FontKey:           gsettings.DefaultFontKey,
		},
		Font: FontConfig{Family: "Monospace"},
		Defaults: DefaultsPreset{
			Background:          "#000",
			Foreground:          "#fff",
			Transparent:         &transparent,
			TransparencyPercent: &percent,
			Rows:                20,
			Columns:             120,
			CellHeightScale:     1.5,
			CellWidthScale:      1,
		},
		TrackedProperties: settings.TrackedProperties(),
	}
}

// Schema converts the gsettings section for the store boundary.
func (c TmtConfig) Schema() gsettings.Schema {
	return gsettings.Schema{
		Binary:            c.GSettings.Binary,
		ProfileListSchema: c.GSettings.ProfileListSchema,
		ProfileSchema:     c.GSettings.ProfileSchema,
		ProfilePathPrefix: c.GSettings.ProfilePathPrefix,
	}
}
