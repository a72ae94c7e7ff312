// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"leb.io/primetools/internal/config"
	"leb.io/primetools/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// options holds the flags shared by every command.
type options struct {
	cfgFile   string
	logLevel  string
	logFormat string
	rounds    int
	segment   uint64
	noColor   bool

	// output flags of below and between
	count  bool
	digest bool
	format string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "primetools",
		Short: "Prime sieves, factorization and primality from the command line",
		Long: `primetools generates primes below a bound or inside an offset range,
factors 32 bit integers and tests 64 bit integers for primality.

Numeric arguments may use exponent notation, e.g. 1e12.
Press ^T (SIGINFO) during a long listing to log progress.`,
		Version:       Version,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.noColor {
				color.Enable = false
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.cfgFile, "config", "c", "", "Path to configuration file (optional)")
	pf.StringVar(&o.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	pf.StringVar(&o.logFormat, "log-format", "", "Override log format (json, text)")
	pf.IntVar(&o.rounds, "rounds", 0, "Override probable prime rounds (0-12, 0 = trial division only)")
	pf.Uint64Var(&o.segment, "segment", 0, "Override walk segment size, also makes between stream")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newBelowCmd(o),
		newBetweenCmd(o),
		newNextCmd(o),
		newFactorCmd(o),
		newIsPrimeCmd(o),
		newVerifyCmd(o),
		newDiffCmd(o),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. ^C cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// overrides returns the flag values that override config file settings.
func (o *options) overrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{
		LogLevel:  o.logLevel,
		LogFormat: o.logFormat,
		Segment:   o.segment,
	}
	if cmd.Flags().Changed("rounds") {
		r := o.rounds
		ov.ProbableRounds = &r
	}
	return ov
}

// setup loads and validates the configuration and builds the command's logger.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(o.overrides(cmd))
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log.WithCommand(cmd.Name()), nil
}

// parseUint parses a decimal, hex or exponent notation argument that must fit in bits.
func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err == nil {
		return v, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f < 0 || f != math.Trunc(f) || f >= math.Ldexp(1, bits) {
		return 0, fmt.Errorf("invalid %d bit unsigned integer %q", bits, s)
	}
	return uint64(f), nil
}
