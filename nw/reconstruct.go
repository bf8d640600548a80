package nw

import "fmt"

// Reconstruct converts one trace path into its aligned pair.
//
// The path is walked from the bottom-right cell towards the boundary and the
// columns are emitted back to front:
//   - Diagonal (i,j)→(i-1,j-1): first[i-1] over second[j-1]
//   - Up       (i,j)→(i-1,j):   first[i-1] over gap
//   - Left     (i,j)→(i,j-1):   gap over second[j-1]
//
// A path ending at (i,0) or (0,j) is completed with the forced boundary run:
// i columns of first[0..i) over gaps, or j columns of gaps over second[0..j).
// Both rows are then reversed, so they always have equal length.
//
// Returns ErrInvalidPath if p is empty, does not start at
// (len(first), len(second)), contains an illegal step, or does not end on the
// boundary.
func Reconstruct(p TracePath, first, second string, opts ...Option) (AlignedPair, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return AlignedPair{}, err
	}

	return reconstruct(p, []rune(first), []rune(second), o.GapSymbol)
}

func reconstruct(p TracePath, a, b []rune, gap rune) (AlignedPair, error) {
	// 1. Validate endpoints
	if len(p) == 0 {
		return AlignedPair{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if want := (Coord{Row: len(a), Col: len(b)}); p.Start() != want {
		return AlignedPair{}, fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p.Start(), want)
	}
	end := p.End()
	if !end.OnBoundary() || end.Row < 0 || end.Col < 0 {
		return AlignedPair{}, fmt.Errorf("%w: ends at %v, not on the boundary", ErrInvalidPath, end)
	}

	// 2. Emit columns back to front
	width := len(p) - 1 + end.Row + end.Col
	ra := make([]rune, 0, width)
	rb := make([]rune, 0, width)
	for k := 0; k+1 < len(p); k++ {
		from := p[k]
		mv, ok := stepMove(from, p[k+1])
		if !ok {
			return AlignedPair{}, fmt.Errorf("%w: %v -> %v", ErrInvalidPath, from, p[k+1])
		}
		switch mv {
		case Diagonal:
			ra = append(ra, a[from.Row-1])
			rb = append(rb, b[from.Col-1])
		case Up:
			ra = append(ra, a[from.Row-1])
			rb = append(rb, gap)
		case Left:
			ra = append(ra, gap)
			rb = append(rb, b[from.Col-1])
		}
	}

	// 3. Forced boundary run down to the origin
	for i := end.Row; i > 0; i-- {
		ra = append(ra, a[i-1])
		rb = append(rb, gap)
	}
	for j := end.Col; j > 0; j-- {
		ra = append(ra, gap)
		rb = append(rb, b[j-1])
	}

	// 4. Reverse in place
	reverseRunes(ra)
	reverseRunes(rb)

	return AlignedPair{First: string(ra), Second: string(rb)}, nil
}

// reverseRunes reverses r in place.
func reverseRunes(r []rune) {
	for l, h := 0, len(r)-1; l < h; l, h = l+1, h-1 {
		r[l], r[h] = r[h], r[l]
	}
}
