// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leb.io/primetools"
)

func newBetweenCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "between MIN MAX",
		Short: "List the primes in [MIN, MAX)",
		Long: `Between prints every prime p with MIN <= p < MAX using the offset sieve.

With --segment the range is walked one window at a time so memory stays bounded
no matter how wide the range is. In that mode a MAX of 0 means no upper bound.

Example:
  primetools between 1e12 1e12+1000
  primetools between 1e15 0 --segment 65536 --count`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetween(cmd, o, args)
		},
	}
	addOutputFlags(c, o)
	return c
}

func runBetween(cmd *cobra.Command, o *options, args []string) error {
	min, err := parseUint(args[0], 64)
	if err != nil {
		return err
	}
	max, err := parseUint(args[1], 64)
	if err != nil {
		return err
	}
	cfg, log, err := o.setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := newSink(cmd.OutOrStdout(), o)
	if err != nil {
		return err
	}
	p := newProgress()

	if o.segment == 0 {
		list := primetools.PrimesBetween(min, max)
		log.Debugw("sieved", "min", min, "max", max, "primes", len(list), "elapsed", p.elapsed())
		for _, v := range list {
			if err := s.add(v); err != nil {
				return err
			}
			p.add(v)
		}
	} else {
		stop := p.watch(log)
		defer stop()

		ctx := cmd.Context()
		var werr error
		log.Debugw("walking", "min", min, "max", max, "segment", cfg.Walk.Segment)
		primetools.Walk(min, max, cfg.Walk.Segment, func(v uint64) bool {
			if werr = s.add(v); werr != nil {
				return false
			}
			p.add(v)
			if p.count.Load()%4096 == 0 && ctx.Err() != nil {
				werr = fmt.Errorf("walk stopped at %d: %w", v, ctx.Err())
				return false
			}
			return true
		})
		if werr != nil {
			_ = s.close()
			return werr
		}
	}

	if err := s.close(); err != nil {
		return err
	}
	p.report(log, "done")
	return nil
}
