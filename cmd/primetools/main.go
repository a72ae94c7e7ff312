// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// primetools lists, counts, checksums and factors primes from the command line.
package main

import "leb.io/primetools/cmd/primetools/cmd"

func main() {
	cmd.Execute()
}
