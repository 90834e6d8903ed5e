package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/distfile/internal/version"
	"github.com/arthur-debert/distfile/pkg/config"
	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/logging"
	"github.com/arthur-debert/distfile/pkg/ui/console"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries global flags and settings to the commands
type app struct {
	verbosity     int
	noInteraction bool
	skipExisting  bool
	color         string

	format   console.Format
	settings *config.Settings
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "distfile",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&a.noInteraction, "no-interaction", "n", false, MsgFlagNoInteraction)
	flags.BoolVar(&a.skipExisting, "skip-existing", false, MsgFlagSkipExisting)
	flags.StringVar(&a.color, "color", "auto", MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newProcessCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads settings, flags taking precedence, and configures logging
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("no-interaction") {
		overrides[config.KeyNoInteraction] = a.noInteraction
	}
	if flags.Changed("skip-existing") {
		overrides[config.KeySkipExisting] = a.skipExisting
	}
	if flags.Changed("verbose") {
		overrides[config.KeyVerbosity] = a.verbosity
	}

	logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())

	settings, err := config.LoadSettings(overrides)
	if err != nil {
		return err
	}
	a.settings = settings
	if settings.Verbosity != a.verbosity {
		logging.SetupLoggerWithOutput(settings.Verbosity, cmd.ErrOrStderr())
	}

	format, err := console.ParseFormat(a.color)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgErrColorFormat).WithDetail("value", a.color)
	}
	a.format = format

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// newConsole builds the IO used by processors. Messages and questions go
// to out.
func (a *app) newConsole(cmd *cobra.Command, out io.Writer) *console.Console {
	opts := []console.Option{
		console.WithInput(cmd.InOrStdin()),
		console.WithOutput(out),
		console.WithFormat(a.format),
		console.WithConfirmDefault(!a.settings.SkipExisting),
	}
	if a.settings.NoInteraction {
		opts = append(opts, console.NonInteractive())
	}
	return console.New(opts...)
}

// loadManifest loads path, or the first configured manifest found in the
// working directory when path is empty
func (a *app) loadManifest(path string) (*config.Manifest, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		path, err = config.FindManifest(cwd, a.settings.Manifests)
		if err != nil {
			return nil, err
		}
	}
	return config.LoadManifest(path)
}

func (a *app) extrasKey(flag string) string {
	if flag != "" {
		return flag
	}
	return a.settings.ExtrasKey
}
