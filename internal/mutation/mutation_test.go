package mutation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmt/internal/color"
	"tmt/internal/gsettings"
	"tmt/internal/gsettings/gsettingstest"
	"tmt/internal/palette"
	"tmt/internal/settings"
	"tmt/internal/theme"
)

const profileID = "b1dcc9dd-5262-4d8d-a863-c897e6d979b9"

type recorder struct {
	successes []string
	failures  []string
	infos     []string
	themes    []palette.Theme
	profileID string
	values    []PropertyValue
}

func (r *recorder) Success(msg string)            { r.successes = append(r.successes, msg) }
func (r *recorder) Failure(msg string)            { r.failures = append(r.failures, msg) }
func (r *recorder) Info(msg string)               { r.infos = append(r.infos, msg) }
func (r *recorder) Themes(themes []palette.Theme) { r.themes = themes }
func (r *recorder) Profile(id string, values []PropertyValue) {
	r.profileID = id
	r.values = values
}

func testRegistry() *palette.Registry {
	return palette.NewRegistry(
		[]palette.NamedColor{{Name: "Red", Hex: "#FF0000"}, {Name: "Black", Hex: "#000000"}},
		[]palette.ShadePalette{{Name: "blue", Shades: []palette.Shade{{Shade: "500", Hex: "#3b82f6"}}}},
		[]palette.Theme{
			{Name: "Solarized", Background: "#002b36", Foreground: "#839496"},
			{Name: "Nord", Background: "#2e3440", Foreground: "#d8dee9"},
			{Name: "Dracula", Background: "#282a36", Foreground: "#f8f8f2"},
		},
	)
}

func newTestExecutor(t *testing.T, store *gsettingstest.Store, intN func(int) int) (*Executor, *recorder) {
	t.Helper()
	reg := testRegistry()
	applier := settings.NewApplier(gsettings.DefaultSchema(), store, settings.Options{})
	profile, err := applier.ResolveProfile(context.Background())
	require.NoError(t, err)

	out := &recorder{}
	opts := []theme.Option{}
	if intN != nil {
		opts = append(opts, theme.WithRandomSource(intN))
	}
	return NewExecutor(ExecutorConfig{
		Store:   applier,
		Profile: profile,
		Colors:  color.NewResolver(reg),
		Classes: color.NewClassResolver(reg),
		Themes:  theme.NewSelector(reg.Themes(), opts...),
		Font:    Font{Schema: gsettings.DefaultFontSchema, Key: gsettings.DefaultFontKey, Family: "Monospace"},
		Output:  out,
	}), out
}

func ptr[T any](v T) *T { return &v }

func defaultPreset() Preset {
	return Preset{
		Background: "#000", Foreground: "#fff",
		Rows: 20, Columns: 120, CellHeightScale: 1.5, CellWidthScale: 1,
	}
}

func TestParseTransparency(t *testing.T) {
	tests := []struct {
		in      string
		want    Transparency
		wantErr bool
	}{
		{in: "35", want: Transparency{Mode: TransparencyPercent, Percent: 35}},
		{in: "0", want: Transparency{Mode: TransparencyPercent, Percent: 0}},
		{in: "100", want: Transparency{Mode: TransparencyPercent, Percent: 100}},
		{in: "on", want: Transparency{Mode: TransparencyOn}},
		{in: "OFF", want: Transparency{Mode: TransparencyOff}},
		{in: "37", wantErr: true},
		{in: "105", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "half", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransparency(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_Order(t *testing.T) {
	req := Request{
		Print:        true,
		Columns:      ptr(100),
		Rows:         ptr(30),
		CellWidth:    ptr(1.0),
		CellHeight:   ptr(1.2),
		FontSize:     ptr(12),
		Transparency: ptr("35"),
		Theme:        ptr("3"),
		Classes:      []string{"bg-blue-500"},
		Default:      true,
		Foreground:   ptr("#fff"),
		Background:   ptr("red"),
	}
	plan, err := Plan(req, defaultPreset(), []string{settings.BackgroundColor})
	require.NoError(t, err)

	var kinds []string
	for _, m := range plan {
		kinds = append(kinds, fmt.Sprintf("%T", m))
	}
	assert.Equal(t, []string{
		"mutation.SetColor", "mutation.SetColor", "mutation.ApplyDefaults", "mutation.ApplyClasses",
		"mutation.ApplyTheme", "mutation.SetTransparency", "mutation.SetFontSize",
		"mutation.SetCellHeight", "mutation.SetCellWidth", "mutation.SetRows", "mutation.SetColumns",
		"mutation.PrintProfile",
	}, kinds)
	assert.Equal(t, color.Background, plan[0].(SetColor).Channel)
	assert.Equal(t, color.Foreground, plan[1].(SetColor).Channel)
}

func TestPlan_Empty(t *testing.T) {
	plan, err := Plan(Request{}, defaultPreset(), nil)
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestPlan_ThemePrecedence(t *testing.T) {
	plan, err := Plan(Request{ListThemes: true, Theme: ptr("nord"), Random: true}, defaultPreset(), nil)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.IsType(t, ListThemes{}, plan[0])

	plan, err = Plan(Request{Theme: ptr("nord"), Random: true}, defaultPreset(), nil)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, ApplyTheme{Reference: "nord"}, plan[0])
}

func TestPlan_TransparencyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want TransparencyMode
	}{
		{"opaque beats all", Request{Opaque: true, Transparent: true, Transparency: ptr("40")}, TransparencyOff},
		{"transparent beats value", Request{Transparent: true, Transparency: ptr("off")}, TransparencyOn},
		{"value", Request{Transparency: ptr("40")}, TransparencyPercent},
		{"off", Request{Transparency: ptr("off")}, TransparencyOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Plan(tt.req, defaultPreset(), nil)
			require.NoError(t, err)
			require.Len(t, plan, 1)
			assert.Equal(t, tt.want, plan[0].(SetTransparency).Transparency.Mode)
		})
	}
}

func TestPlan_RejectsInvalidArguments(t *testing.T) {
	req := Request{
		Background:   ptr("red"),
		Transparency: ptr("37"),
		Rows:         ptr(0),
		Columns:      ptr(-1),
		FontSize:     ptr(0),
		CellHeight:   ptr(-1.5),
		CellWidth:    ptr(0.0),
	}
	plan, err := Plan(req, defaultPreset(), nil)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "multiple of 5")
	assert.Contains(t, err.Error(), "rows must be positive")
	assert.Contains(t, err.Error(), "columns must be positive")
}

func TestExecutor_Transparency35(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	plan, err := Plan(Request{Transparency: ptr("35")}, defaultPreset(), nil)
	require.NoError(t, err)
	report := e.Run(context.Background(), plan)

	require.NoError(t, report.Err())
	assert.Equal(t, []string{
		"use-transparent-background=true",
		"background-transparency-percent=35",
	}, store.Sets())
	assert.Equal(t, 2, report.Writes())
	assert.Equal(t, []string{"Transparency set to 35%"}, out.successes)
}

func TestExecutor_ColorsAndContinueOnFailure(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	plan, err := Plan(Request{Background: ptr("notacolor"), Foreground: ptr("RED"), Rows: ptr(24)}, defaultPreset(), nil)
	require.NoError(t, err)
	report := e.Run(context.Background(), plan)

	assert.Equal(t, []string{"foreground-color='#FF0000'", "default-size-rows=24"}, store.Sets())
	assert.Equal(t, []string{"Invalid color: 'notacolor'"}, out.failures)
	assert.Equal(t, []string{"Foreground color set to #FF0000", "Default row count set to 24"}, out.successes)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0].Err, color.ErrUnresolvedColor)
	assert.ErrorIs(t, report.Err(), color.ErrUnresolvedColor)
}

func TestExecutor_HexColorKeepsCase(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, _ := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{SetColor{Channel: color.Background, Token: "AbC"}})
	require.NoError(t, report.Err())
	assert.Equal(t, []string{"background-color='#AbC'"}, store.Sets())
}

func TestExecutor_ClassBatchStopsWithoutRollback(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	plan := []Mutation{
		ApplyClasses{Tokens: []string{"bg-blue-500", "text-unknown-900", "text-blue-500"}},
		SetColumns{Count: 80},
	}
	report := e.Run(context.Background(), plan)

	assert.Equal(t, []string{"background-color='#3b82f6'", "default-size-columns=80"}, store.Sets())
	assert.Equal(t, []string{"CSS class not found: 'text-unknown-900'"}, out.failures)
	require.Len(t, report.Failed(), 1)
	assert.ErrorIs(t, report.Outcomes[0].Err, color.ErrUnresolvedClass)
	assert.Equal(t, 1, report.Outcomes[0].Writes)
}

func TestExecutor_ThemeByIndexAndName(t *testing.T) {
	for _, ref := range []string{"3", "dracula"} {
		t.Run(ref, func(t *testing.T) {
			store := gsettingstest.NewStore(profileID)
			e, out := newTestExecutor(t, store, nil)

			report := e.Run(context.Background(), []Mutation{ApplyTheme{Reference: ref}})
			require.NoError(t, report.Err())
			assert.Equal(t, []string{"background-color='#282a36'", "foreground-color='#f8f8f2'"}, store.Sets())
			assert.Equal(t, []string{"Setting theme to Dracula:"}, out.infos)
		})
	}
}

func TestExecutor_ThemeNotFoundContinues(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{ApplyTheme{Reference: "99"}, SetRows{Count: 10}})
	assert.Equal(t, []string{"Theme NOT found: '99'"}, out.failures)
	assert.Equal(t, []string{"default-size-rows=10"}, store.Sets())
	assert.ErrorIs(t, report.Outcomes[0].Err, theme.ErrUnresolvedTheme)
}

func TestExecutor_RandomTheme(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, _ := newTestExecutor(t, store, func(n int) int { return n - 1 })

	report := e.Run(context.Background(), []Mutation{RandomTheme{}})
	require.NoError(t, report.Err())
	assert.Equal(t, []string{"background-color='#282a36'", "foreground-color='#f8f8f2'"}, store.Sets())
}

func TestExecutor_ListThemesWritesNothing(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{ListThemes{}})
	require.NoError(t, report.Err())
	assert.Len(t, out.themes, 3)
	assert.Empty(t, store.Sets())
}

func TestExecutor_DefaultPreset(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{ApplyDefaults{Preset: defaultPreset()}})
	require.NoError(t, report.Err())
	assert.Equal(t, []string{
		"background-color='#000'",
		"foreground-color='#fff'",
		"use-transparent-background=false",
		"background-transparency-percent=0",
		"default-size-rows=20",
		"default-size-columns=120",
		"cell-height-scale=1.5",
		"cell-width-scale=1",
	}, store.Sets())
	assert.Equal(t, 8, report.Writes())
	assert.Equal(t, []string{"Set colors to #fff on #000 with no transparency."}, out.successes)
}

func TestExecutor_DefaultPresetIsIdempotent(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, _ := newTestExecutor(t, store, nil)
	plan := []Mutation{ApplyDefaults{Preset: defaultPreset()}}

	require.NoError(t, e.Run(context.Background(), plan).Err())
	path := gsettings.DefaultSchema().ProfileKeyPath(profileID)
	first := store.Value(path, settings.CellHeightScale)
	require.NoError(t, e.Run(context.Background(), plan).Err())
	assert.Equal(t, first, store.Value(path, settings.CellHeightScale))
}

func TestExecutor_WriteFailureIsReportedAndContinues(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	store.FailKeys[settings.CellHeightScale] = true
	e, out := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{SetCellHeight{Scale: 1.2}, SetCellWidth{Scale: 1.1}})
	assert.Equal(t, []string{"cell-width-scale=1.1"}, store.Sets())
	assert.Len(t, out.failures, 1)
	assert.ErrorIs(t, report.Err(), settings.ErrExternalWrite)
	assert.Equal(t, []string{"Character width set to 1.1"}, out.successes)
}

func TestExecutor_FontSize(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	report := e.Run(context.Background(), []Mutation{SetFontSize{Size: 14}})
	require.NoError(t, report.Err())
	assert.Equal(t, "'Monospace 14'", store.Value(gsettings.DefaultFontSchema, gsettings.DefaultFontKey))
	assert.Equal(t, []string{"Font size set to 14"}, out.successes)
}

func TestExecutor_PrintProfile(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	e, out := newTestExecutor(t, store, nil)

	plan := []Mutation{
		SetRows{Count: 40},
		PrintProfile{Properties: []string{settings.DefaultSizeRows, settings.CellWidthScale}},
	}
	report := e.Run(context.Background(), plan)
	require.NoError(t, report.Err())

	assert.Equal(t, profileID, out.profileID)
	require.Len(t, out.values, 2)
	assert.Equal(t, PropertyValue{Property: settings.DefaultSizeRows, Value: "40"}, out.values[0])
	assert.Equal(t, settings.CellWidthScale, out.values[1].Property)
}

func TestReport_ErrNilWhenClean(t *testing.T) {
	r := Report{Outcomes: []Outcome{{Mutation: ListThemes{}}}}
	assert.NoError(t, r.Err())
	assert.Empty(t, r.Failed())

	r.Outcomes = append(r.Outcomes, Outcome{Mutation: SetRows{Count: 1}, Writes: 1, Err: errors.New("boom")})
	assert.EqualError(t, r.Err(), "1 of 2 changes failed: set rows 1: boom")
}
