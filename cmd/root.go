package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tmt/internal/app"
	"tmt/internal/mutation"
)

// themeListValue is what --theme holds when given without a value.
const themeListValue = "list"

// rootOptions holds the mutation flags of the root command.
type rootOptions struct {
	background   string
	foreground   string
	defaults     bool
	css          []string
	theme        string
	random       bool
	transparency string
	opaque       bool
	transparent  bool
	fontSize     int
	rows         int
	cols         int
	height       float64
	width        float64
	print        bool

	// sets records every flag set, in command-line order
	sets []flagSet
}

// flagSet records that a flag was set after pos positional arguments.
type flagSet struct {
	name string
	pos  int
}

// positionValue records where on the command line its flag was set, so that
// positional arguments can be attributed to the flag before them.
type positionValue struct {
	pflag.Value
	name string
	fs   *pflag.FlagSet
	o    *rootOptions
}

func (v *positionValue) Set(s string) error {
	if err := v.Value.Set(s); err != nil {
		return err
	}
	// during parsing Args holds the positional arguments seen so far
	v.o.sets = append(v.o.sets, flagSet{name: v.name, pos: len(v.fs.Args())})
	return nil
}

// ownerOf returns the last flag set before the positional argument at i.
func (o *rootOptions) ownerOf(i int) (flagSet, bool) {
	for j := len(o.sets) - 1; j >= 0; j-- {
		if o.sets[j].pos <= i {
			return o.sets[j], true
		}
	}
	return flagSet{}, false
}

// Persistent flags shared by every command
var (
	debug      bool
	verbose    bool
	configPath string
)

var rootOpts = &rootOptions{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tmt",
	Short: "Change GNOME Terminal colors, transparency, font size and geometry",
	Long: `tmt modifies the default GNOME Terminal profile through gsettings.

Colors can be given as HTML/CSS names ("tomato"), hex codes ("#282a36", "fff"),
Tailwind-style classes ("bg-slate-900 text-amber-300") or one of the bundled
themes, by name or number. Every change is applied independently: a color that
cannot be resolved is reported and the remaining changes still go through.`,
	Example: `  tmt -b black -f "#0f0"
  tmt -c bg-slate-900 text-amber-300
  tmt --theme dracula -t 20
  tmt --theme            # list themes
  tmt -R 30 -C 100 -H 1.2 -p`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unresolved colors, a missing profile)
	SilenceUsage: true,
	// extra words continue --css or name the theme of a bare --theme
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tmt version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newMCPServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print every gsettings command before running it")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Use this config file instead of ~/.config/tmt and ./.tmt")

	addMutationFlags(rootCmd.Flags(), rootOpts)
}

func addMutationFlags(fs *pflag.FlagSet, o *rootOptions) {
	fs.StringVarP(&o.background, "background", "b", "", "Set the background color (name or hex, e.g. '#000000')")
	fs.StringVarP(&o.foreground, "foreground", "f", "", "Set the foreground color (name or hex, e.g. '#ffffff')")
	fs.BoolVarP(&o.defaults, "default", "d", false, "Reset to the default preset (white on opaque black)")
	fs.StringSliceVarP(&o.css, "css", "c", nil, "Set colors via Tailwind CSS bg-* and text-* classes")
	fs.StringVar(&o.theme, "theme", "", "Set colors via theme name or number; without a value, list themes")
	fs.Lookup("theme").NoOptDefVal = themeListValue
	fs.BoolVar(&o.random, "random", false, "Set a random theme")
	fs.StringVarP(&o.transparency, "transparency", "t", "", "Set transparency: 0-100 in steps of 5, or 'on'/'off'")
	fs.BoolVar(&o.opaque, "opaque", false, "Turn off transparency")
	fs.BoolVar(&o.transparent, "transparent", false, "Turn on transparency")
	fs.IntVarP(&o.fontSize, "fontsize", "z", 0, "Set the monospace font size")
	fs.IntVarP(&o.rows, "rows", "R", 0, "Set the default row count")
	fs.IntVarP(&o.cols, "cols", "C", 0, "Set the default column count")
	fs.Float64VarP(&o.height, "height", "H", 0, "Set the line height scale")
	fs.Float64VarP(&o.width, "width", "W", 0, "Set the character width scale")
	fs.BoolVarP(&o.print, "print", "p", false, "Print the current profile settings")

	fs.VisitAll(func(f *pflag.Flag) {
		f.Value = &positionValue{Value: f.Value, name: f.Name, fs: fs, o: o}
	})
}

// request turns parsed flags into a mutation request. Positional arguments
// continue a --css list, or name the theme for a bare --theme.
func (o *rootOptions) request(fs *pflag.FlagSet, args []string) (mutation.Request, error) {
	var req mutation.Request

	if fs.Changed("background") {
		req.Background = &o.background
	}
	if fs.Changed("foreground") {
		req.Foreground = &o.foreground
	}
	req.Default = o.defaults
	req.Classes = append([]string(nil), o.css...)

	// A positional argument continues the --css list it follows, or names the
	// theme when it comes right after a bare --theme.
	themeRef := o.theme
	bareTheme := fs.Changed("theme") && themeRef == themeListValue
	var unexpected []string
	for i, arg := range args {
		owner, ok := o.ownerOf(i)
		switch {
		case ok && owner.name == "css":
			req.Classes = append(req.Classes, arg)
		case ok && owner.name == "theme" && bareTheme && owner.pos == i:
			themeRef = arg
		default:
			unexpected = append(unexpected, arg)
		}
	}
	if len(unexpected) > 0 {
		return mutation.Request{}, fmt.Errorf("unexpected argument(s): %v", unexpected)
	}

	if fs.Changed("theme") {
		if themeRef == themeListValue {
			req.ListThemes = true
		} else {
			req.Theme = &themeRef
		}
	}
	req.Random = o.random

	if fs.Changed("transparency") {
		req.Transparency = &o.transparency
	}
	req.Opaque = o.opaque
	req.Transparent = o.transparent

	if fs.Changed("fontsize") {
		req.FontSize = &o.fontSize
	}
	if fs.Changed("height") {
		req.CellHeight = &o.height
	}
	if fs.Changed("width") {
		req.CellWidth = &o.width
	}
	if fs.Changed("rows") {
		req.Rows = &o.rows
	}
	if fs.Changed("cols") {
		req.Columns = &o.cols
	}
	req.Print = o.print

	return req, nil
}

// newAppConfig builds the application config from the persistent flags.
func newAppConfig(cmd *cobra.Command) *app.Config {
	cfg := app.NewConfig(debug, verbose, configPath)
	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	return cfg
}

func runRoot(cmd *cobra.Command, args []string) error {
	req, err := rootOpts.request(cmd.Flags(), args)
	if err != nil {
		return err
	}

	cfg := newAppConfig(cmd)
	cfg.Request = req

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = application.Run(ctx)
	if errors.Is(err, app.ErrNoChanges) {
		return cmd.Help()
	}
	return err
}
