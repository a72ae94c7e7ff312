// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"leb.io/primetools"
)

var errNoPrime = errors.New("no prime fits in 64 bits")

func newNextCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "next N...",
		Short: "Print the smallest prime >= N",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			for _, a := range args {
				n, err := parseUint(a, 64)
				if err != nil {
					return err
				}
				p := primetools.NextPrime(n)
				if p == 0 {
					return fmt.Errorf("next %d: %w", n, errNoPrime)
				}
				log.Debugw("next", "n", n, "prime", p, "gap", p-n)
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p)
			}
			return nil
		},
	}
}
