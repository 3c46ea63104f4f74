package app

import (
	"tmt/internal/color"
	"tmt/internal/config"
	"tmt/internal/mutation"
	"tmt/internal/palette"
	"tmt/internal/settings"
	"tmt/internal/theme"
	"tmt/internal/ui"
	"tmt/pkg/logging"
)

// Services holds the registry, the resolvers built on it and the settings
// layer. All of them are built once per invocation.
type Services struct {
	Registry *palette.Registry
	Colors   *color.Resolver
	Classes  *color.ClassResolver
	Themes   *theme.Selector
	Applier  *settings.Applier
	Printer  *ui.Printer
}

// InitializeServices loads the palette data and wires the resolvers and the
// settings layer.
func InitializeServices(cfg *Config) *Services {
	tc := cfg.TmtConfig

	registry := palette.LoadDir(tc.DataDir)
	if registry.Degraded() {
		logging.Warn("Bootstrap", "Palette data loaded with %d issue(s)", len(registry.Issues()))
	}
	logging.Debug("Bootstrap", "Loaded %d named colors, %d classes, %d themes",
		len(registry.NamedColors()), registry.ClassCount(), len(registry.Themes()))

	applier := settings.NewApplier(tc.Schema(), cfg.runner(), settings.Options{
		Verbose:    cfg.Verbose || tc.Verbose,
		Audit:      cfg.stdout(),
		AuditStyle: ui.AuditStyle,
	})

	return &Services{
		Registry: registry,
		Colors:   color.NewResolver(registry),
		Classes:  color.NewClassResolver(registry),
		Themes:   theme.NewSelector(registry.Themes()),
		Applier:  applier,
		Printer:  ui.NewPrinter(cfg.stdout()),
	}
}

// Preset converts the configured defaults into a mutation preset.
func Preset(tc config.TmtConfig) mutation.Preset {
	d := tc.Defaults
	p := mutation.Preset{
		Background:      d.Background,
		Foreground:      d.Foreground,
		Rows:            d.Rows,
		Columns:         d.Columns,
		CellHeightScale: d.CellHeightScale,
		CellWidthScale:  d.CellWidthScale,
	}
	if d.Transparent != nil {
		p.Transparent = *d.Transparent
	}
	if d.TransparencyPercent != nil {
		p.TransparencyPercent = *d.TransparencyPercent
	}
	return p
}

// Font returns the font target written by --fontsize.
func Font(tc config.TmtConfig) mutation.Font {
	return mutation.Font{
		Schema: tc.GSettings.FontSchema,
		Key:    tc.GSettings.FontKey,
		Family: tc.Font.Family,
	}
}
