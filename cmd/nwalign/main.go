// Command nwalign prints every optimal Needleman-Wunsch global alignment of
// two sequences, read either from the command line or from two-line files.
//
// Usage:
//
//	nwalign align ACGCTG CATGT
//	nwalign files                  # ./seqS.txt and ./seqT.txt
//	nwalign files a.txt b.txt --match 1 --mismatch -1 --gap -1
//	nwalign count GATTACA GCATGCU  # number of optimal alignments only
//
// Settings come from built-in defaults, then the YAML file given by --config,
// then explicitly set flags.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
