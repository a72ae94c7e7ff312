// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"github.com/spf13/cobra"

	"leb.io/primetools"
)

func newBelowCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "below N",
		Short: "List the primes below N",
		Long: `Below sieves [0, N] and prints every prime p < N, one per line.
N must fit in 32 bits.

Example:
  primetools below 100
  primetools below 1e9 --count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBelow(cmd, o, args)
		},
	}
	addOutputFlags(c, o)
	return c
}

func runBelow(cmd *cobra.Command, o *options, args []string) error {
	n, err := parseUint(args[0], 32)
	if err != nil {
		return err
	}
	_, log, err := o.setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := newSink(cmd.OutOrStdout(), o)
	if err != nil {
		return err
	}
	p := newProgress()
	list := primetools.PrimesBelow(uint32(n))
	log.Debugw("sieved", "below", n, "primes", len(list), "elapsed", p.elapsed())
	for _, v := range list {
		if err := s.add(uint64(v)); err != nil {
			return err
		}
		p.add(uint64(v))
	}
	if err := s.close(); err != nil {
		return err
	}
	p.report(log, "done")
	return nil
}
