// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"leb.io/primetools/primelist"
)

var errListsDiffer = errors.New("lists differ")

func newDiffCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "Compare two binary prime lists",
		Long: `Diff reads two files written with --format binary and prints the primes found
in only one of them, "<" for A and ">" for B. It exits non-zero if they differ.

Example:
  primetools below 1e6 --format binary > a.bin
  primetools between 0 1e6 --segment 4096 --format binary > b.bin
  primetools diff a.bin b.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := readList(args[0])
			if err != nil {
				return err
			}
			b, err := readList(args[1])
			if err != nil {
				return err
			}
			log.Debugw("loaded", "a", a.Len(), "b", b.Len())

			out := cmd.OutOrStdout()
			if a.Equal(b) {
				fmt.Fprintf(out, "same: %d primes in [%d, %d]\n", a.Len(), a.Min(), a.Max())
				return nil
			}
			onlyA, onlyB := a.Difference(b), b.Difference(a)
			for _, p := range onlyA {
				fmt.Fprintf(out, "< %d\n", p)
			}
			for _, p := range onlyB {
				fmt.Fprintf(out, "> %d\n", p)
			}
			return fmt.Errorf("%d only in %s, %d only in %s: %w", len(onlyA), args[0], len(onlyB), args[1], errListsDiffer)
		},
	}
}

// readList decodes every list in the file at path into one set.
func readList(path string) (*primelist.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := primelist.NewSet(nil)
	dec := primelist.NewDecoder(f)
	for {
		list, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, p := range list {
			s.Add(p)
		}
	}
}
