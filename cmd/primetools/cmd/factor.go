// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"leb.io/primetools"
)

func newFactorCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factor X...",
		Short: "Factor 32 bit integers into prime powers",
		Long: `Factor prints each X as a product of prime powers, smallest prime first.

Example:
  primetools factor 360 4294967291
  360: 2^3 3^2 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			table := primetools.NewFactorTable(math.MaxUint32)
			log.Debugw("factor table", "limit", table.Limit(), "primes", len(table.Primes()))
			for _, a := range args {
				x, err := parseUint(a, 32)
				if err != nil {
					return err
				}
				m, err := table.Factorize(uint32(x))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", x, formatFactors(m))
			}
			return nil
		},
	}
}

// formatFactors renders m as "p^k q r^j" in ascending prime order.
func formatFactors(m map[uint32]uint32) string {
	ps := make([]uint32, 0, len(m))
	for p := range m {
		ps = append(ps, p)
	}
	slices.Sort(ps)

	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if k := m[p]; k > 1 {
			fmt.Fprintf(&sb, "%d^%d", p, k)
		} else {
			fmt.Fprintf(&sb, "%d", p)
		}
	}
	return sb.String()
}
