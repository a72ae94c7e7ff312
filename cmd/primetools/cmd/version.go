// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"leb.io/primetools"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, build and CPU information.`,
		Run:   runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	cmd.Printf("primetools version %s\n", Version)
	cmd.Printf("  Commit: %s\n", Commit)
	cmd.Printf("  Go version: %s\n", runtime.Version())
	cmd.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	cmd.Printf("  CPU: %s\n", cpuid.CPU.BrandName)
	cmd.Printf("  Cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	cmd.Printf("  Walk segment: %d\n", primetools.DefaultSegment)
	cmd.Printf("  Max probable rounds: %d\n", primetools.MaxProbableRounds)
}
