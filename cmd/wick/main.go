// Command wick contracts products of second-quantized operators from the
// command line.
//
// Usage:
//
//	wick spaces
//	wick operators
//	wick contract --text F T1
//	wick contract --commutator --factor 1/2 --min-rank 2 --max-rank 2 --equation r F T1 T1
//	wick partitions 5
//
// Without --config the single-reference setup is used: spaces o and v and
// the operators T1, T2, F and V.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
