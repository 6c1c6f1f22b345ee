// Public domain.

// Package gbprog is the geobridge command.
package gbprog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"

	"github.com/geobridge/geobridge/internal/config"
	"github.com/geobridge/geobridge/internal/logger"
)

const versionString = "geobridge version 0.3 Go source."
const copyrightString = "Public domain."

// Main runs the command line and terminates through exit on error.
func Main() {
	defer exit.Handler()
	if err := newRootCmd().Execute(); err != nil {
		exit.Log(err)
	}
}

// env is the state shared by all subcommands, set up before each runs.
type env struct {
	cfgFile string
	debug   bool
	quiet   bool

	cfg config.Config
	log *slog.Logger
	out io.Writer
}

func newRootCmd() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:   "geobridge",
		Short: "Geometric bridge rotation curve tools",
		Long: `Geobridge predicts galaxy rotation curves from baryons with the
geometric bridge law g_obs = sqrt(g_bar² + a0·g_bar), fits stellar
mass-to-light ratios, and tests surface density formulas for the rotation
curve exponent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&e.cfgFile, "config", config.DefaultFile,
		"configuration file, optional unless given explicitly")
	pf.BoolVar(&e.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		benchmarkCmd(e),
		galaxyCmd(e),
		compareCmd(e),
		correlateCmd(e),
		validateCmd(e),
		selftestCmd(e),
		versionCmd(),
	)
	return cmd
}

func (e *env) setup(cmd *cobra.Command) error {
	e.out = cmd.OutOrStdout()
	logger.Setup(logger.Config{
		Debug: e.debug,
		Quiet: e.quiet,
		W:     cmd.ErrOrStderr(),
	})
	e.log = logger.L()
	cfg, err := config.Load(e.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log.Debug("config.loaded", "file", e.cfgFile, "a0", cfg.A0,
		"output", cfg.Output)
	return nil
}

// outputDir returns the -o flag if set, else the configured directory.
func (e *env) outputDir(dir string) string {
	if dir != "" {
		return dir
	}
	return e.cfg.Output
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString)
			fmt.Fprintln(cmd.OutOrStdout(), copyrightString)
		},
	}
}
