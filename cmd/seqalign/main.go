// Command seqalign aligns two sequences from the command line.
//
//	seqalign --mode local --threshold 2 GATTACA GCATGCU
package main

import (
	"os"

	"github.com/katalvlaran/seqalign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
