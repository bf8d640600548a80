package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/seqio"
	"github.com/spf13/cobra"
)

func newAlignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "align FIRST SECOND",
		Short: "Align two sequences given as arguments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1])
		},
	}
}

func newFilesCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "files [SEQS SEQT]",
		Short: "Align the sequences stored on line 2 of two files",
		Long: `Reads the first sequence from SEQS and the second from SEQT. Both files
hold a header on line 1 and the sequence on line 2. Without arguments the
files seqS.txt and seqT.txt inside --dir are used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("files: accepts 0 or 2 arg(s), received %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			firstPath, secondPath := seqio.DefaultPaths(dir)
			if len(args) == 2 {
				firstPath, secondPath = args[0], args[1]
			}
			first, second, err := seqio.ReadPair(firstPath, secondPath)
			if err != nil {
				return err
			}
			a.logger.Debug("sequences read", "first", firstPath, "second", secondPath)

			return a.run(cmd, first, second)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding the default sequence files")

	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count FIRST SECOND",
		Short: "Print the optimal score and the number of optimal alignments",
		Long: `Counts optimal alignments on the move graph of the score matrix without
listing them, so it stays fast when there are astronomically many.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := nw.NewMatrix(args[0], args[1], a.cfg.Scheme())
			g, err := nw.BuildMoveGraph(m)
			if err != nil {
				return err
			}

			return a.printer(cmd.OutOrStdout()).Count(m.Score(), g.CountPaths())
		},
	}
}

// run aligns first and second and prints the full report. A listing cut
// short by limits.max_paths is still printed, followed by a warning.
func (a *app) run(cmd *cobra.Command, first, second string) error {
	ctx := cmd.Context()
	if a.cfg.Limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Limits.Timeout)
		defer cancel()
	}
	opts := append(a.cfg.Options(), nw.WithContext(ctx), nw.WithLogger(a.logger))

	a.logger.Info("aligning",
		"first_len", len([]rune(first)),
		"second_len", len([]rune(second)),
		"scoring", a.cfg.Scheme().String(),
	)
	start := time.Now()
	res, err := nw.Align(first, second, a.cfg.Scheme(), opts...)
	elapsed := time.Since(start)

	limited := errors.Is(err, nw.ErrPathLimit)
	if err != nil && !limited {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	if err := p.Report(res, elapsed); err != nil {
		return err
	}
	if limited {
		a.logger.Warn("listing truncated", "max_paths", a.cfg.Limits.MaxPaths)

		return p.Warning(fmt.Sprintf(
			"listing stopped after %d alignments (max paths); run the count command for the total",
			res.Count()))
	}

	return nil
}
