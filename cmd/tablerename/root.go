package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tablerename/cmd/tablerename/commands"
	"github.com/walteh/tablerename/cmd/tablerename/opts"
	"github.com/walteh/tablerename/pkg/config"
	"github.com/walteh/tablerename/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	root       string
	debug      bool
	noColor    bool
}

// newRootCmd creates the command tree. Status lines go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{Stdout: stdout}

	cmd := &cobra.Command{
		Use:   "tablerename",
		Short: "Rewrite database table references in source files",
		Long: `tablerename applies a fixed list of literal replacements to a fixed list of
source files, rewriting table references such as from('items') to
from('jumpstart_manifest').

Run without arguments it performs the built-in migration in the current
directory and prints one line per file:

  SKIP: <path>        the file does not exist
  UPDATED: <path>     the file was rewritten
  NO CHANGE: <path>   nothing matched

followed by "Done!". Paths are printed exactly as configured. Labels are
colored only when stdout is a terminal; piped output is plain text.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags, rootOpts, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Rename(cmd.Context(), rootOpts)
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewPlanCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(stdout),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file (.yaml, .yml, .json or .hcl) replacing the built-in migration")
	cmd.PersistentFlags().StringVar(&flags.root, "root", "", "directory the target paths are relative to")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored status labels")
}

// setup configures logging and loads the configuration for every command
func setup(cmd *cobra.Command, flags *rootFlags, rootOpts *opts.RootOpts, stderr io.Writer) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, flags.debug || env.Debug)
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	if flags.noColor {
		color.NoColor = true
		pterm.DisableColor()
	}
	rootOpts.Formatter = status.NewColorFormatter()

	configFile := flags.configFile
	if configFile == "" {
		configFile = env.Config
	}

	cfg := config.Default()
	if configFile != "" {
		cfg, err = config.Load(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
	}

	env.Apply(cfg)
	if flags.root != "" {
		cfg.Root = flags.root
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration ready")
	rootOpts.Config = cfg
	return nil
}

// newLogger writes human readable logs, warnings only unless debug is set
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
