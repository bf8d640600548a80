package nw

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Result is the output of Align: the filled matrix, every optimal trace path
// and the aligned pair reconstructed from each one. Paths[k] produced Pairs[k].
type Result struct {
	Matrix *Matrix
	Paths  []TracePath
	Pairs  []AlignedPair
}

// Score returns the optimal global alignment score.
func (r *Result) Score() int {
	return r.Matrix.Score()
}

// Count returns the number of optimal alignments found.
func (r *Result) Count() int {
	return len(r.Pairs)
}

// Align fills the matrix for first against second, enumerates every optimal
// trace path and reconstructs one AlignedPair per path.
//
// If enumeration stops with ErrPathLimit the Result still holds the paths
// found so far and their pairs, alongside the error. Any other failure
// returns the Result with only the Matrix set.
//
// Example:
//
//	res, err := Align("AATT", "ATAT", Scoring{Match: 1, Mismatch: -1, Gap: -1})
//	// res.Score() == 1, res.Count() == 4
func Align(first, second string, s Scoring, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	log := o.Logger.With(slog.Int("first_len", len([]rune(first))), slog.Int("second_len", len([]rune(second))))

	// 1. Fill
	t0 := time.Now()
	m := NewMatrix(first, second, s)
	log.Debug("nw: matrix filled",
		slog.Int("score", m.Score()),
		slog.Duration("elapsed", time.Since(t0)))
	res := &Result{Matrix: m}

	// 2. Enumerate
	t1 := time.Now()
	paths, err := enumerate(m, o)
	log.Debug("nw: paths enumerated",
		slog.Int("paths", len(paths)),
		slog.Duration("elapsed", time.Since(t1)))
	if err != nil && !errors.Is(err, ErrPathLimit) {
		return res, fmt.Errorf("nw: align: %w", err)
	}
	limitErr := err

	// 3. Reconstruct
	t2 := time.Now()
	pairs := make([]AlignedPair, len(paths))
	for k, p := range paths {
		if pairs[k], err = reconstruct(p, m.first, m.second, o.GapSymbol); err != nil {
			return res, fmt.Errorf("nw: align: path %d: %w", k, err)
		}
	}
	log.Debug("nw: alignments reconstructed",
		slog.Int("pairs", len(pairs)),
		slog.Duration("elapsed", time.Since(t2)))

	res.Paths, res.Pairs = paths, pairs

	return res, limitErr
}
