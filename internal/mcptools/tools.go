// Package mcptools exposes the color resolvers and the theme/color mutations
// as MCP tools served over stdio.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tmt/internal/color"
	"tmt/internal/mutation"
	"tmt/internal/palette"
	"tmt/internal/theme"
	"tmt/pkg/logging"
)

const subsystem = "MCP"

// ExecutorFactory resolves the active profile and returns an executor that
// reports to out. It is called once per apply request.
type ExecutorFactory func(ctx context.Context, out mutation.Output) (*mutation.Executor, error)

// Tools implements the tmt MCP tools.
type Tools struct {
	colors      *color.Resolver
	classes     *color.ClassResolver
	themes      *theme.Selector
	newExecutor ExecutorFactory
}

// NewTools creates the tool set.
func NewTools(colors *color.Resolver, classes *color.ClassResolver, themes *theme.Selector, newExecutor ExecutorFactory) *Tools {
	return &Tools{colors: colors, classes: classes, themes: themes, newExecutor: newExecutor}
}

// Definitions returns every tool with its handler.
func (t *Tools) Definitions() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("resolve_color",
				mcp.WithDescription("Resolve a color name or 3/6 digit hex code to a canonical hex color"),
				mcp.WithString("token",
					mcp.Required(),
					mcp.Description("Color name (e.g. 'tomato') or hex code (e.g. '#fff', '282a36')"),
				),
			),
			Handler: t.handleResolveColor,
		},
		{
			Tool: mcp.NewTool("resolve_class",
				mcp.WithDescription("Resolve a Tailwind-style bg-<palette>-<shade> or text-<palette>-<shade> class"),
				mcp.WithString("token",
					mcp.Required(),
					mcp.Description("Class token, e.g. 'bg-blue-500'"),
				),
			),
			Handler: t.handleResolveClass,
		},
		{
			Tool: mcp.NewTool("list_themes",
				mcp.WithDescription("List every theme with its 1-based index and colors"),
			),
			Handler: t.handleListThemes,
		},
		{
			Tool: mcp.NewTool("apply_theme",
				mcp.WithDescription("Apply a theme to the default terminal profile"),
				mcp.WithString("reference",
					mcp.Required(),
					mcp.Description("Theme name, 1-based index or 'random'"),
				),
			),
			Handler: t.handleApplyTheme,
		},
		{
			Tool: mcp.NewTool("set_color",
				mcp.WithDescription("Set the background or foreground color of the default terminal profile"),
				mcp.WithString("channel",
					mcp.Required(),
					mcp.Description("Which color to set"),
					mcp.Enum("background", "foreground"),
				),
				mcp.WithString("token",
					mcp.Required(),
					mcp.Description("Color name or hex code"),
				),
			),
			Handler: t.handleSetColor,
		},
	}
}

// NewServer creates an MCP server carrying every tool.
func NewServer(t *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tmt",
		version,
		server.WithToolCapabilities(true),
	)
	s.AddTools(t.Definitions()...)
	return s
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func ServeStdio(t *Tools, version string) error {
	logging.Info(subsystem, "Serving MCP tools over stdio")
	return server.ServeStdio(NewServer(t, version))
}

func (t *Tools) handleResolveColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := request.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError("token parameter is required"), nil
	}
	hex, err := t.colors.Resolve(token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid color: '%s'", token)), nil
	}
	return mcp.NewToolResultText(hex), nil
}

func (t *Tools) handleResolveClass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := request.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError("token parameter is required"), nil
	}
	v, err := t.classes.Resolve(token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("CSS class not found: '%s'", token)), nil
	}
	return jsonResult(map[string]string{
		"token":   v.Token,
		"channel": v.Channel.String(),
		"hex":     v.Hex,
	})
}

type themeInfo struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

func (t *Tools) handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	themes := t.themes.List().Themes
	if len(themes) == 0 {
		return mcp.NewToolResultText("No themes available"), nil
	}
	list := make([]themeInfo, len(themes))
	for i, th := range themes {
		list[i] = themeInfo{Index: i + 1, Name: th.Name, Background: th.Background, Foreground: th.Foreground}
	}
	return jsonResult(list)
}

func (t *Tools) handleApplyTheme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := request.RequireString("reference")
	if err != nil {
		return mcp.NewToolResultError("reference parameter is required"), nil
	}
	var m mutation.Mutation = mutation.ApplyTheme{Reference: ref}
	if ref == theme.RandomReference {
		m = mutation.RandomTheme{}
	}
	return t.apply(ctx, m), nil
}

func (t *Tools) handleSetColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channelName, err := request.RequireString("channel")
	if err != nil {
		return mcp.NewToolResultError("channel parameter is required"), nil
	}
	ch, err := color.ParseChannel(channelName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	token, err := request.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError("token parameter is required"), nil
	}
	return t.apply(ctx, mutation.SetColor{Channel: ch, Token: token}), nil
}

// apply runs one mutation against a freshly resolved profile.
func (t *Tools) apply(ctx context.Context, m mutation.Mutation) *mcp.CallToolResult {
	out := &collector{}
	exec, err := t.newExecutor(ctx, out)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	report := exec.Run(ctx, []mutation.Mutation{m})
	text := strings.Join(out.lines, "\n")
	if err := report.Err(); err != nil {
		logging.Warn(subsystem, "%s failed: %v", m.Describe(), err)
		return mcp.NewToolResultError(text)
	}
	return mcp.NewToolResultText(text)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// collector gathers executor output as plain lines.
type collector struct {
	lines []string
}

func (c *collector) Success(msg string) { c.lines = append(c.lines, strings.TrimSpace(msg)) }
func (c *collector) Failure(msg string) { c.lines = append(c.lines, strings.TrimSpace(msg)) }
func (c *collector) Info(msg string)    { c.lines = append(c.lines, strings.TrimSpace(msg)) }

func (c *collector) Themes(themes []palette.Theme) {
	for i, th := range themes {
		c.lines = append(c.lines, fmt.Sprintf("%d. %s %s %s", i+1, th.Name, th.Background, th.Foreground))
	}
}

func (c *collector) Profile(id string, values []mutation.PropertyValue) {
	c.lines = append(c.lines, fmt.Sprintf("Profile Id: '%s'", id))
	for _, v := range values {
		c.lines = append(c.lines, v.Property+" = "+v.Value)
	}
}
