// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"leb.io/primetools"
)

func newIsPrimeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "isprime X...",
		Short: "Test 64 bit integers for primality",
		Long: `Isprime tests each X by trial division. With --rounds k, k strong probable
prime tests run first and settle the answer where k bases are known to be enough.
The answer is the same for every k, only the time differs.

Example:
  primetools isprime --rounds 12 18446744073709551557`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			c, err := primetools.NewChecker(cfg.Check.CheckerConfig())
			if err != nil {
				return err
			}
			for _, a := range args {
				x, err := parseUint(a, 64)
				if err != nil {
					return err
				}
				p := newProgress()
				prime := c.IsPrime(x)
				log.Debugw("isprime", "x", x, "prime", prime, "rounds", c.Rounds(), "elapsed", p.elapsed())
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", x, verdict(prime))
			}
			return nil
		},
	}
}

func verdict(prime bool) string {
	if prime {
		return color.Green.Sprint("prime")
	}
	return color.Red.Sprint("not prime")
}
