package cmd

import (
	"github.com/spf13/cobra"

	"tmt/internal/app"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the bundled themes in their own colors",
		Long: `List every theme with its number, name and colors. Each row is painted
with the theme itself. The number or the name can be passed to --theme.`,
		Args: cobra.NoArgs,
		RunE: runThemes,
	}
}

func runThemes(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(newAppConfig(cmd))
	if err != nil {
		return err
	}
	svc := application.Services()
	svc.Printer.Themes(svc.Themes.List().Themes)
	return nil
}
