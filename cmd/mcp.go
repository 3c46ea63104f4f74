package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tmt/internal/app"
	"tmt/internal/mcptools"
	"tmt/internal/mutation"
)

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Serve tmt as an MCP server over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout so AI assistants can
resolve colors and change the terminal appearance.

Tools:
  resolve_color   resolve a color name or hex code
  resolve_class   resolve a bg-*/text-* class
  list_themes     list every theme
  apply_theme     apply a theme by name, number or "random"
  set_color       set the background or foreground color

Apply tools look up the default profile on every call. Logs and the
--verbose trace go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runMCPServe,
	}
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	cfg := newAppConfig(cmd)
	// stdout carries the protocol
	cfg.Stdout = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	svc := application.Services()

	tools := mcptools.NewTools(svc.Colors, svc.Classes, svc.Themes,
		func(ctx context.Context, out mutation.Output) (*mutation.Executor, error) {
			return application.NewExecutorWithOutput(ctx, out)
		})
	return mcptools.ServeStdio(tools, rootCmd.Version)
}
