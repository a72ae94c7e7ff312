// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"leb.io/primetools/crosscheck"
)

var errVerifyFailed = errors.New("verification failed")

func newVerifyCmd(o *options) *cobra.Command {
	var (
		seed    int64
		trials  int
		workers int
		asJSON  bool
	)
	c := &cobra.Command{
		Use:   "verify",
		Short: "Cross check the sieves, trial division and factorization",
		Long: `Verify runs seeded random trials comparing the sieve, the offset sieve,
trial division, the probable prime checker and factorization against each other.
Trials run concurrently, by default one worker per physical core.
The verify section of the configuration file sizes each check.

Example:
  primetools verify --trials 16 --seed 7 --rounds 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			v := cfg.Verify
			if cmd.Flags().Changed("seed") {
				v.Seed = seed
			}
			if cmd.Flags().Changed("trials") {
				v.Trials = trials
			}
			if cmd.Flags().Changed("workers") {
				v.Workers = workers
			}
			if v.Workers == 0 {
				v.Workers = cpuid.CPU.PhysicalCores
			}
			if v.Workers < 1 {
				v.Workers = 1
			}

			plan := v.Plan()
			lib, err := crosscheck.NewLibrary(cfg.Check.CheckerConfig(), plan.FactorLimit)
			if err != nil {
				return err
			}
			log.Infow("verify", "seed", v.Seed, "trials", v.Trials, "workers", v.Workers, "rounds", cfg.Check.ProbableRounds)

			p := newProgress()
			reports, err := crosscheck.RunTrials(cmd.Context(), lib, plan, v.Seed, v.Trials, v.Workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, rep := range reports {
				if rep.Failed() {
					failed++
				}
				if asJSON {
					continue
				}
				for _, r := range rep.Results {
					fmt.Fprintf(out, "seed %d: %v\n", rep.Seed, r)
				}
			}
			if asJSON {
				b, err := gojson.Marshal(reports)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", b)
			}
			log.Infow("verified", "trials", len(reports), "failed", failed, "elapsed", p.elapsed())
			if failed > 0 {
				return fmt.Errorf("%d of %d trials: %w", failed, len(reports), errVerifyFailed)
			}
			if !asJSON {
				fmt.Fprintf(out, "ok: %d trials\n", len(reports))
			}
			return nil
		},
	}
	c.Flags().Int64Var(&seed, "seed", 1, "Seed of the first trial, trial i uses seed+i")
	c.Flags().IntVar(&trials, "trials", 4, "Number of trials")
	c.Flags().IntVar(&workers, "workers", 0, "Concurrent trials (0 = one per physical core)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the reports as JSON")
	return c
}
