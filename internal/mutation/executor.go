package mutation

import (
	"context"
	"errors"
	"fmt"

	"tmt/internal/color"
	"tmt/internal/palette"
	"tmt/internal/settings"
	"tmt/internal/theme"
	"tmt/pkg/logging"
)

const subsystem = "Mutation"

// Store is the part of the settings layer the executor writes through.
type Store interface {
	Apply(ctx context.Context, profile settings.Profile, property string, value settings.Value) error
	ApplyGlobal(ctx context.Context, schemaID, key string, value settings.Value) error
	Read(ctx context.Context, profile settings.Profile, property string) (string, error)
}

var _ Store = (*settings.Applier)(nil)

// Output receives user facing messages.
type Output interface {
	Success(msg string)
	Failure(msg string)
	Info(msg string)
	Themes(themes []palette.Theme)
	Profile(id string, values []PropertyValue)
}

// PropertyValue is one line of PrintProfile output. Err is set when the read
// failed.
type PropertyValue struct {
	Property string
	Value    string
	Err      error
}

// Font locates the global font setting written by SetFontSize.
type Font struct {
	Schema string
	Key    string
	Family string
}

// Name returns the font name for size, e.g. "Monospace 12".
func (f Font) Name(size int) string {
	return fmt.Sprintf("%s %d", f.Family, size)
}

// Executor applies mutations to one profile.
type Executor struct {
	store   Store
	profile settings.Profile
	colors  *color.Resolver
	classes *color.ClassResolver
	themes  *theme.Selector
	font    Font
	out     Output
}

// ExecutorConfig holds the collaborators of an Executor.
type ExecutorConfig struct {
	Store   Store
	Profile settings.Profile
	Colors  *color.Resolver
	Classes *color.ClassResolver
	Themes  *theme.Selector
	Font    Font
	Output  Output
}

// NewExecutor creates an Executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		store:   cfg.Store,
		profile: cfg.Profile,
		colors:  cfg.Colors,
		classes: cfg.Classes,
		themes:  cfg.Themes,
		font:    cfg.Font,
		out:     cfg.Output,
	}
}

// Run applies plan in order. A failed mutation never stops the ones after it.
func (e *Executor) Run(ctx context.Context, plan []Mutation) Report {
	report := Report{Outcomes: make([]Outcome, 0, len(plan))}
	for _, m := range plan {
		logging.Debug(subsystem, "Applying: %s", m.Describe())
		o := e.apply(ctx, m)
		if o.Err != nil {
			logging.Warn(subsystem, "%s failed: %v", m.Describe(), o.Err)
		}
		report.Outcomes = append(report.Outcomes, o)
	}
	return report
}

func (e *Executor) apply(ctx context.Context, m Mutation) Outcome {
	o := Outcome{Mutation: m}
	switch m := m.(type) {
	case SetColor:
		o.Writes, o.Err = e.setColor(ctx, m.Channel, m.Token)
	case ApplyDefaults:
		o.Writes, o.Err = e.applyDefaults(ctx, m.Preset)
	case ApplyClasses:
		o.Writes, o.Err = e.applyClasses(ctx, m.Tokens)
	case ListThemes:
		e.out.Themes(e.themes.List().Themes)
	case ApplyTheme:
		sel, err := e.themes.Resolve(m.Reference)
		if err != nil {
			e.out.Failure(fmt.Sprintf("Theme NOT found: '%s'", m.Reference))
			o.Err = err
			break
		}
		o.Writes, o.Err = e.ApplyTheme(ctx, sel.Theme)
	case RandomTheme:
		e.out.Info("Selecting a random theme . . .")
		sel, err := e.themes.Random()
		if err != nil {
			e.out.Failure("No themes available")
			o.Err = err
			break
		}
		o.Writes, o.Err = e.ApplyTheme(ctx, sel.Theme)
	case SetTransparency:
		o.Writes, o.Err = e.setTransparency(ctx, m.Transparency)
	case SetFontSize:
		o.Err = e.store.ApplyGlobal(ctx, e.font.Schema, e.font.Key, settings.String(e.font.Name(m.Size)))
		o.Writes = 1
		e.report(o.Err, fmt.Sprintf("Font size set to %d", m.Size))
	case SetCellHeight:
		o.Writes, o.Err = e.write(ctx, settings.CellHeightScale, settings.Float(m.Scale), "Line height set to "+formatFloat(m.Scale))
	case SetCellWidth:
		o.Writes, o.Err = e.write(ctx, settings.CellWidthScale, settings.Float(m.Scale), "Character width set to "+formatFloat(m.Scale))
	case SetRows:
		o.Writes, o.Err = e.write(ctx, settings.DefaultSizeRows, settings.Int(m.Count), fmt.Sprintf("Default row count set to %d", m.Count))
	case SetColumns:
		o.Writes, o.Err = e.write(ctx, settings.DefaultSizeColumns, settings.Int(m.Count), fmt.Sprintf("Default column count set to %d", m.Count))
	case PrintProfile:
		o.Err = e.printProfile(ctx, m.Properties)
	default:
		o.Err = fmt.Errorf("unknown mutation %T", m)
	}
	return o
}

// ApplyTheme writes the theme's background and then its foreground.
func (e *Executor) ApplyTheme(ctx context.Context, t palette.Theme) (int, error) {
	e.out.Info(fmt.Sprintf("Setting theme to %s:", t.Name))
	var errs []error
	if err := e.store.Apply(ctx, e.profile, settings.BackgroundColor, settings.String(t.Background)); err != nil {
		e.out.Failure(err.Error())
		errs = append(errs, err)
	} else {
		e.out.Success(fmt.Sprintf("\tBackground color set to '%s'", t.Background))
	}
	if err := e.store.Apply(ctx, e.profile, settings.ForegroundColor, settings.String(t.Foreground)); err != nil {
		e.out.Failure(err.Error())
		errs = append(errs, err)
	} else {
		e.out.Success(fmt.Sprintf("\tForeground color set to '%s'", t.Foreground))
	}
	return 2, errors.Join(errs...)
}

func (e *Executor) setColor(ctx context.Context, ch color.Channel, token string) (int, error) {
	hex, err := e.colors.Resolve(token)
	if err != nil {
		e.out.Failure(fmt.Sprintf("Invalid color: '%s'", token))
		return 0, err
	}
	return e.write(ctx, colorProperty(ch), settings.String(hex), fmt.Sprintf("%s color set to %s", channelTitle(ch), hex))
}

func (e *Executor) applyDefaults(ctx context.Context, p Preset) (int, error) {
	var (
		errs   []error
		writes int
	)
	apply := func(property string, v settings.Value) {
		writes++
		if err := e.store.Apply(ctx, e.profile, property, v); err != nil {
			e.out.Failure(err.Error())
			errs = append(errs, err)
		}
	}

	for _, c := range []struct {
		ch    color.Channel
		token string
	}{{color.Background, p.Background}, {color.Foreground, p.Foreground}} {
		hex, err := e.colors.Resolve(c.token)
		if err != nil {
			e.out.Failure(fmt.Sprintf("Invalid color: '%s'", c.token))
			errs = append(errs, err)
			continue
		}
		apply(colorProperty(c.ch), settings.String(hex))
	}
	apply(settings.UseTransparentBackground, settings.Bool(p.Transparent))
	apply(settings.BackgroundTransparencyPercent, settings.Int(p.TransparencyPercent))
	apply(settings.DefaultSizeRows, settings.Int(p.Rows))
	apply(settings.DefaultSizeColumns, settings.Int(p.Columns))
	apply(settings.CellHeightScale, settings.Float(p.CellHeightScale))
	apply(settings.CellWidthScale, settings.Float(p.CellWidthScale))

	if len(errs) == 0 {
		transparency := "no transparency"
		if p.Transparent {
			transparency = fmt.Sprintf("%d%% transparency", p.TransparencyPercent)
		}
		e.out.Success(fmt.Sprintf("Set colors to %s on %s with %s.", p.Foreground, p.Background, transparency))
	}
	return writes, errors.Join(errs...)
}

// applyClasses stops at the first class that does not resolve or fails to
// write. Earlier writes are kept.
func (e *Executor) applyClasses(ctx context.Context, tokens []string) (int, error) {
	writes := 0
	for _, token := range tokens {
		v, err := e.classes.Resolve(token)
		if err != nil {
			e.out.Failure(fmt.Sprintf("CSS class not found: '%s'", token))
			return writes, err
		}
		writes++
		if err := e.store.Apply(ctx, e.profile, colorProperty(v.Channel), settings.String(v.Hex)); err != nil {
			e.out.Failure(err.Error())
			return writes, err
		}
		e.out.Success(fmt.Sprintf("%s color set to '%s'", channelTitle(v.Channel), v.Hex))
	}
	return writes, nil
}

func (e *Executor) setTransparency(ctx context.Context, t Transparency) (int, error) {
	switch t.Mode {
	case TransparencyOff:
		return e.write(ctx, settings.UseTransparentBackground, settings.Bool(false), "Transparency turned off")
	case TransparencyOn:
		return e.write(ctx, settings.UseTransparentBackground, settings.Bool(true), "Transparency turned on")
	}
	if err := e.store.Apply(ctx, e.profile, settings.UseTransparentBackground, settings.Bool(true)); err != nil {
		e.out.Failure(err.Error())
		return 1, err
	}
	n, err := e.write(ctx, settings.BackgroundTransparencyPercent, settings.Int(t.Percent), fmt.Sprintf("Transparency set to %d%%", t.Percent))
	return n + 1, err
}

func (e *Executor) printProfile(ctx context.Context, properties []string) error {
	values := make([]PropertyValue, 0, len(properties))
	var errs []error
	for _, p := range properties {
		v, err := e.store.Read(ctx, e.profile, p)
		if err != nil {
			errs = append(errs, err)
		}
		values = append(values, PropertyValue{Property: p, Value: v, Err: err})
	}
	e.out.Profile(e.profile.ID, values)
	return errors.Join(errs...)
}

// write applies one profile property and reports msg on success.
func (e *Executor) write(ctx context.Context, property string, v settings.Value, msg string) (int, error) {
	err := e.store.Apply(ctx, e.profile, property, v)
	e.report(err, msg)
	return 1, err
}

func (e *Executor) report(err error, msg string) {
	if err != nil {
		e.out.Failure(err.Error())
		return
	}
	e.out.Success(msg)
}

func colorProperty(ch color.Channel) string {
	if ch == color.Foreground {
		return settings.ForegroundColor
	}
	return settings.BackgroundColor
}

func channelTitle(ch color.Channel) string {
	if ch == color.Foreground {
		return "Foreground"
	}
	return "Background"
}
