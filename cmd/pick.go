package cmd

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tmt/internal/app"
	"tmt/internal/mutation"
	"tmt/internal/tui"
	"tmt/pkg/logging"
)

// pickProgramOptions are passed to the picker program.
var pickProgramOptions = []tea.ProgramOption{tea.WithAltScreen()}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively",
		Long: `Open a filterable list of every theme, each shown in its own colors.

  ↑/↓ or j/k   move
  /            filter by name
  enter        apply the highlighted theme and exit
  esc, q       exit without changing anything`,
		Args: cobra.NoArgs,
		RunE: runPick,
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(newAppConfig(cmd))
	if err != nil {
		return err
	}

	// Resolve the profile before showing anything: without it nothing can be applied.
	exec, err := application.NewExecutor(cmd.Context())
	if err != nil {
		return err
	}

	item, ok, err := tui.Run(application.Services().Themes.List().Themes, pickProgramOptions...)
	if err != nil {
		return err
	}
	if !ok {
		logging.Debug("Pick", "No theme chosen")
		return nil
	}

	report := exec.Run(cmd.Context(), []mutation.Mutation{
		mutation.ApplyTheme{Reference: strconv.Itoa(item.Index)},
	})
	return report.Err()
}
