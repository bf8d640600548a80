// Package seqgen produces reproducible random symbol sequences and mutated
// copies of them, for property tests and benchmarks of the aligner.
//
// Determinism: the same seed and alphabet give the same sequences on every
// platform. A seed of 0 selects a fixed default seed.
//
// Concurrency: a Generator wraps a *rand.Rand and is NOT goroutine-safe.
// Create one Generator per goroutine.
package seqgen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// Common alphabets.
const (
	DNA     = "ACGT"
	RNA     = "ACGU"
	Protein = "ACDEFGHIKLMNPQRSTVWY"
)

// defaultSeed is used when New is called with seed==0.
const defaultSeed int64 = 1

var (
	// ErrEmptyAlphabet indicates an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("seqgen: alphabet must contain at least one symbol")

	// ErrBadLength indicates a negative length or a deletion longer than the sequence.
	ErrBadLength = errors.New("seqgen: length out of range")

	// ErrBadRate indicates a mutation rate outside [0,1].
	ErrBadRate = errors.New("seqgen: rate must be within [0,1]")
)

// Generator draws symbols uniformly from an alphabet.
type Generator struct {
	rng      *rand.Rand
	alphabet []rune
}

// New returns a Generator over the distinct symbols of alphabet, seeded with
// seed. Repeated symbols are kept once, in order of first appearance.
func New(seed int64, alphabet string) (*Generator, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		alphabet: distinct(alphabet),
	}, nil
}

// distinct drops repeated runes of s, keeping first occurrences.
func distinct(s string) []rune {
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	return out
}

// Random returns a sequence of n symbols.
func (g *Generator) Random(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: n=%d", ErrBadLength, n)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
	}

	return string(out), nil
}

// Mutate replaces each symbol of s with probability rate by a different
// symbol of the alphabet. It returns the mutated copy and the number of
// changed sites. With a single distinct symbol nothing can change.
func (g *Generator) Mutate(s string, rate float64) (string, int, error) {
	if rate < 0 || rate > 1 {
		return "", 0, fmt.Errorf("%w: rate=%v", ErrBadRate, rate)
	}
	if len(g.alphabet) < 2 {
		return s, 0, nil
	}
	out := []rune(s)
	changed := 0
	for i, r := range out {
		if g.rng.Float64() >= rate {
			continue
		}
		repl := r
		for repl == r {
			repl = g.alphabet[g.rng.Intn(len(g.alphabet))]
		}
		out[i] = repl
		changed++
	}

	return string(out), changed, nil
}

// Delete removes n symbols at random positions from s.
func (g *Generator) Delete(s string, n int) (string, error) {
	out := []rune(s)
	if n < 0 || n > len(out) {
		return "", fmt.Errorf("%w: delete %d of %d", ErrBadLength, n, len(out))
	}
	for ; n > 0; n-- {
		pos := g.rng.Intn(len(out))
		out = append(out[:pos], out[pos+1:]...)
	}

	return string(out), nil
}

// Pair returns a random sequence of length n and a relative of it with
// substitutions at the given rate and del random deletions.
func (g *Generator) Pair(n int, rate float64, del int) (first, second string, err error) {
	if first, err = g.Random(n); err != nil {
		return "", "", err
	}
	if second, _, err = g.Mutate(first, rate); err != nil {
		return "", "", err
	}
	if second, err = g.Delete(second, del); err != nil {
		return "", "", err
	}

	return first, second, nil
}

// WriteTwoLine writes seq in the two-line layout read by package seqio:
// a comment line followed by the raw sequence.
func WriteTwoLine(w io.Writer, comment, seq string) error {
	_, err := fmt.Fprintf(w, "> %s\n%s\n", comment, seq)

	return err
}
