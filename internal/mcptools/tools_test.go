package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmt/internal/color"
	"tmt/internal/gsettings"
	"tmt/internal/gsettings/gsettingstest"
	"tmt/internal/mutation"
	"tmt/internal/palette"
	"tmt/internal/settings"
	"tmt/internal/theme"
)

const profileID = "b1dcc9dd-5262-4d8d-a863-c897e6d979b9"

func newTestTools(store *gsettingstest.Store) *Tools {
	reg := palette.NewRegistry(
		[]palette.NamedColor{{Name: "Tomato", Hex: "#FF6347"}},
		[]palette.ShadePalette{{Name: "blue", Shades: []palette.Shade{{Shade: "500", Hex: "#3b82f6"}}}},
		[]palette.Theme{
			{Name: "Nord", Background: "#2e3440", Foreground: "#d8dee9"},
			{Name: "Dracula", Background: "#282a36", Foreground: "#f8f8f2"},
		},
	)
	colors := color.NewResolver(reg)
	classes := color.NewClassResolver(reg)
	themes := theme.NewSelector(reg.Themes(), theme.WithRandomSource(func(int) int { return 0 }))

	factory := func(ctx context.Context, out mutation.Output) (*mutation.Executor, error) {
		applier := settings.NewApplier(gsettings.DefaultSchema(), store, settings.Options{})
		profile, err := applier.ResolveProfile(ctx)
		if err != nil {
			return nil, err
		}
		return mutation.NewExecutor(mutation.ExecutorConfig{
			Store: applier, Profile: profile,
			Colors: colors, Classes: classes, Themes: themes,
			Output: out,
		}), nil
	}
	return NewTools(colors, classes, themes, factory)
}

func call(t *testing.T, tools *Tools, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	for _, def := range tools.Definitions() {
		if def.Tool.Name != name {
			continue
		}
		req := mcp.CallToolRequest{}
		req.Params.Name = name
		req.Params.Arguments = args
		res, err := def.Handler(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, res)
		return res
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestDefinitions(t *testing.T) {
	var names []string
	for _, def := range newTestTools(gsettingstest.NewStore(profileID)).Definitions() {
		names = append(names, def.Tool.Name)
	}
	assert.Equal(t, []string{"resolve_color", "resolve_class", "list_themes", "apply_theme", "set_color"}, names)
}

func TestResolveColor(t *testing.T) {
	tools := newTestTools(gsettingstest.NewStore(profileID))

	res := call(t, tools, "resolve_color", map[string]any{"token": "tomato"})
	assert.False(t, res.IsError)
	assert.Equal(t, "#FF6347", text(t, res))

	res = call(t, tools, "resolve_color", map[string]any{"token": "12345"})
	assert.True(t, res.IsError)
	assert.Equal(t, "Invalid color: '12345'", text(t, res))

	res = call(t, tools, "resolve_color", map[string]any{})
	assert.True(t, res.IsError)
}

func TestResolveClass(t *testing.T) {
	tools := newTestTools(gsettingstest.NewStore(profileID))

	res := call(t, tools, "resolve_class", map[string]any{"token": "text-blue-500"})
	require.False(t, res.IsError)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, map[string]string{"token": "text-blue-500", "channel": "foreground", "hex": "#3b82f6"}, got)

	res = call(t, tools, "resolve_class", map[string]any{"token": "bg-nope-1"})
	assert.True(t, res.IsError)
}

func TestListThemes(t *testing.T) {
	res := call(t, newTestTools(gsettingstest.NewStore(profileID)), "list_themes", nil)
	require.False(t, res.IsError)

	var got []themeInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	require.Len(t, got, 2)
	assert.Equal(t, themeInfo{Index: 2, Name: "Dracula", Background: "#282a36", Foreground: "#f8f8f2"}, got[1])
}

func TestApplyTheme(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	res := call(t, newTestTools(store), "apply_theme", map[string]any{"reference": "dracula"})

	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "Setting theme to Dracula:")
	assert.Equal(t, []string{"background-color='#282a36'", "foreground-color='#f8f8f2'"}, store.Sets())
}

func TestApplyTheme_Random(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	res := call(t, newTestTools(store), "apply_theme", map[string]any{"reference": "random"})

	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, []string{"background-color='#2e3440'", "foreground-color='#d8dee9'"}, store.Sets())
}

func TestApplyTheme_NotFound(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	res := call(t, newTestTools(store), "apply_theme", map[string]any{"reference": "nope"})

	assert.True(t, res.IsError)
	assert.Equal(t, "Theme NOT found: 'nope'", text(t, res))
	assert.Empty(t, store.Sets())
}

func TestSetColor(t *testing.T) {
	store := gsettingstest.NewStore(profileID)
	tools := newTestTools(store)

	res := call(t, tools, "set_color", map[string]any{"channel": "foreground", "token": "fff"})
	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, []string{"foreground-color='#fff'"}, store.Sets())

	res = call(t, tools, "set_color", map[string]any{"channel": "sideways", "token": "fff"})
	assert.True(t, res.IsError)
}

func TestSetColor_ProfileUnavailable(t *testing.T) {
	store := gsettingstest.NewStore("")
	res := call(t, newTestTools(store), "set_color", map[string]any{"channel": "background", "token": "#000"})

	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), settings.ErrProfileUnavailable.Error())
	assert.Empty(t, store.Sets())
}

func TestNewServer(t *testing.T) {
	s := NewServer(newTestTools(gsettingstest.NewStore(profileID)), "1.2.3")
	assert.NotNil(t, s)
}
