package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tmt/internal/app"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

var resolveCopy bool

// channelAny marks a color that is not bound to a channel.
const channelAny = "any"

func newResolveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "resolve <token>...",
		Short: "Resolve color names, hex codes and CSS classes without applying them",
		Long: `Resolve each token the way --background, --foreground and --css do and print
one line per token:

  <token>	<hex>	<channel>

Colors are tried first, then bg-*/text-* classes. Tokens that resolve to
nothing are reported and make the command exit with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}
	c.Flags().BoolVar(&resolveCopy, "copy", false, "Copy the resolved hex values to the clipboard")
	return c
}

func runResolve(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(newAppConfig(cmd))
	if err != nil {
		return err
	}
	svc := application.Services()

	var (
		hexes      []string
		unresolved []string
	)
	for _, token := range args {
		hex, channel := "", ""
		if h, err := svc.Colors.Resolve(token); err == nil {
			hex, channel = h, channelAny
		} else if v, err := svc.Classes.Resolve(token); err == nil {
			hex, channel = v.Hex, v.Channel.String()
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Invalid color: '%s'\n", token)
			unresolved = append(unresolved, token)
			continue
		}
		hexes = append(hexes, hex)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", token, hex, channel)
	}

	if resolveCopy && len(hexes) > 0 {
		if err := clipboardWriteAll(strings.Join(hexes, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	if len(unresolved) > 0 {
		return errors.New("unresolved: " + strings.Join(unresolved, ", "))
	}
	return nil
}
