package nw

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultGapSymbol is the rune placed opposite a symbol that has no counterpart.
const DefaultGapSymbol = '-'

// Scoring is the immutable triple used to fill the matrix.
// No sign constraint is imposed, although the usual choice is Match > 0 > Mismatch, Gap.
type Scoring struct {
	Match    int // reward for equal symbols on a diagonal step
	Mismatch int // score for unequal symbols on a diagonal step
	Gap      int // score for a vertical or horizontal step
}

// DefaultScoring returns {Match: 5, Mismatch: -3, Gap: -5}.
func DefaultScoring() Scoring {
	return Scoring{Match: 5, Mismatch: -3, Gap: -5}
}

// Substitution returns Match if a == b and Mismatch otherwise.
func (s Scoring) Substitution(a, b rune) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// String renders the scheme as "match=5 mismatch=-3 gap=-5".
func (s Scoring) String() string {
	return fmt.Sprintf("match=%d mismatch=%d gap=%d", s.Match, s.Mismatch, s.Gap)
}

// Coord addresses one matrix cell. Row indexes the first sequence, Col the second.
type Coord struct {
	Row, Col int
}

// OnBoundary reports whether c lies in row 0 or column 0.
func (c Coord) OnBoundary() bool {
	return c.Row == 0 || c.Col == 0
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is one of the three legal predecessor steps.
type Move uint8

const (
	// Diagonal steps to (i-1, j-1): a match or mismatch column.
	Diagonal Move = 1 << iota
	// Up steps to (i-1, j): first[i-1] against a gap.
	Up
	// Left steps to (i, j-1): a gap against second[j-1].
	Left
)

// moveOrder is the preference order used when a cell forks.
var moveOrder = [...]Move{Diagonal, Up, Left}

// From returns the predecessor of c reached by mv.
func (mv Move) From(c Coord) Coord {
	switch mv {
	case Diagonal:
		return Coord{Row: c.Row - 1, Col: c.Col - 1}
	case Up:
		return Coord{Row: c.Row - 1, Col: c.Col}
	case Left:
		return Coord{Row: c.Row, Col: c.Col - 1}
	}

	return c
}

// String returns "diagonal", "up" or "left".
func (mv Move) String() string {
	switch mv {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	}

	return fmt.Sprintf("Move(%d)", uint8(mv))
}

// stepMove classifies the step from -> to, reporting false for anything illegal.
func stepMove(from, to Coord) (Move, bool) {
	dr, dc := from.Row-to.Row, from.Col-to.Col
	switch {
	case dr == 1 && dc == 1:
		return Diagonal, true
	case dr == 1 && dc == 0:
		return Up, true
	case dr == 0 && dc == 1:
		return Left, true
	}

	return 0, false
}

// MoveSet is a bit set of Moves. The zero value is the empty set.
type MoveSet uint8

// Has reports whether mv is in s.
func (s MoveSet) Has(mv Move) bool {
	return s&MoveSet(mv) != 0
}

// Len returns the number of moves in s.
func (s MoveSet) Len() int {
	n := 0
	for _, mv := range moveOrder {
		if s.Has(mv) {
			n++
		}
	}

	return n
}

// Moves lists the members of s in preference order: Diagonal, Up, Left.
func (s MoveSet) Moves() []Move {
	out := make([]Move, 0, len(moveOrder))
	for _, mv := range moveOrder {
		if s.Has(mv) {
			out = append(out, mv)
		}
	}

	return out
}

// String renders s as "{diagonal,left}".
func (s MoveSet) String() string {
	names := make([]string, 0, len(moveOrder))
	for _, mv := range s.Moves() {
		names = append(names, mv.String())
	}

	return "{" + strings.Join(names, ",") + "}"
}

// TracePath is a sequence of cells ordered from the bottom-right cell to a
// boundary cell. Consecutive cells differ by one legal Move.
type TracePath []Coord

// Start returns the first cell of the path.
func (p TracePath) Start() Coord {
	return p[0]
}

// End returns the boundary cell the path stops at.
func (p TracePath) End() Coord {
	return p[len(p)-1]
}

// Steps returns the move taken between each consecutive pair of cells.
// It returns ErrInvalidPath if any step is not a legal move.
func (p TracePath) Steps() ([]Move, error) {
	if len(p) == 0 {
		return nil, ErrInvalidPath
	}
	steps := make([]Move, 0, len(p)-1)
	for k := 0; k+1 < len(p); k++ {
		mv, ok := stepMove(p[k], p[k+1])
		if !ok {
			return nil, fmt.Errorf("%w: %v -> %v", ErrInvalidPath, p[k], p[k+1])
		}
		steps = append(steps, mv)
	}

	return steps, nil
}

// Clone returns an independent copy of p.
func (p TracePath) Clone() TracePath {
	out := make(TracePath, len(p))
	copy(out, p)

	return out
}

// AlignedPair holds one optimal alignment: two strings of equal rune length
// over the input alphabet plus the gap symbol.
type AlignedPair struct {
	First  string
	Second string
}

// Len returns the number of alignment columns.
func (p AlignedPair) Len() int {
	return utf8.RuneCountInString(p.First)
}

// Score recomputes the alignment score under s, treating gap as the gap symbol.
// A column with a gap on either side scores s.Gap. Rows of unequal length are
// scored over the shorter one's columns.
func (p AlignedPair) Score(s Scoring, gap rune) int {
	a, b := []rune(p.First), []rune(p.Second)
	total := 0
	for k := range min(len(a), len(b)) {
		if a[k] == gap || b[k] == gap {
			total += s.Gap
			continue
		}
		total += s.Substitution(a[k], b[k])
	}

	return total
}

// Ungapped strips gap from both rows, recovering the two input sequences.
func (p AlignedPair) Ungapped(gap rune) (first, second string) {
	drop := func(r rune) rune {
		if r == gap {
			return -1
		}
		return r
	}

	return strings.Map(drop, p.First), strings.Map(drop, p.Second)
}
