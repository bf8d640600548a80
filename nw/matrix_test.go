package nw_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrix_Golden checks every cell of the ACGCTG/CATGT grid.
func TestNewMatrix_Golden(t *testing.T) {
	m := nw.NewMatrix("ACGCTG", "CATGT", nw.Scoring{Match: 5, Mismatch: -3, Gap: -5})

	want := [][]int{
		{0, -5, -10, -15, -20, -25},
		{-5, -3, 0, -5, -10, -15},
		{-10, 0, -5, -3, -8, -13},
		{-15, -5, -3, -8, 2, -3},
		{-20, -10, -8, -6, -3, -1},
		{-25, -15, -13, -3, -8, 2},
		{-30, -20, -18, -8, 2, -3},
	}
	assert.Equal(t, 7, m.Rows())
	assert.Equal(t, 6, m.Cols())
	assert.Equal(t, want, m.Values())
	assert.Equal(t, -3, m.Score(), "score is the bottom-right cell")
	assert.Equal(t, nw.Coord{Row: 6, Col: 5}, m.Start())
}

// TestNewMatrix_EmptyFirst covers the degenerate single-row grid.
func TestNewMatrix_EmptyFirst(t *testing.T) {
	m := nw.NewMatrix("", "ABC", nw.Scoring{Match: 1, Mismatch: -1, Gap: -2})

	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, []int{0, -2, -4, -6}, m.Row(0))
	assert.Equal(t, -6, m.Score())
}

// TestNewMatrix_BothEmpty yields a lone origin cell scoring 0.
func TestNewMatrix_BothEmpty(t *testing.T) {
	m := nw.NewMatrix("", "", nw.DefaultScoring())

	assert.Equal(t, [][]int{{0}}, m.Values())
	assert.Equal(t, 0, m.Score())
}

// TestNewMatrix_Recurrence verifies the fill invariant on random inputs.
func TestNewMatrix_Recurrence(t *testing.T) {
	g, err := seqgen.New(11, seqgen.DNA)
	require.NoError(t, err)
	s := nw.Scoring{Match: 2, Mismatch: -1, Gap: -2}

	for round := 0; round < 20; round++ {
		a, b, err := g.Pair(12, 0.3, round%4)
		require.NoError(t, err)
		m := nw.NewMatrix(a, b, s)
		ra, rb := []rune(a), []rune(b)

		for i := 1; i < m.Rows(); i++ {
			for j := 1; j < m.Cols(); j++ {
				want := max(
					m.At(i-1, j)+s.Gap,
					m.At(i, j-1)+s.Gap,
					m.At(i-1, j-1)+s.Substitution(ra[i-1], rb[j-1]),
				)
				require.Equal(t, want, m.At(i, j), "cell (%d,%d) of %q/%q", i, j, a, b)
			}
		}
	}
}

// TestNewMatrix_Transpose checks matrix(A,B)[i][j] == matrix(B,A)[j][i].
func TestNewMatrix_Transpose(t *testing.T) {
	g, err := seqgen.New(23, seqgen.Protein)
	require.NoError(t, err)
	s := nw.Scoring{Match: 4, Mismatch: -2, Gap: -3}

	for round := 0; round < 10; round++ {
		a, err := g.Random(3 + round)
		require.NoError(t, err)
		b, err := g.Random(9 - round%5)
		require.NoError(t, err)

		ab := nw.NewMatrix(a, b, s)
		ba := nw.NewMatrix(b, a, s)
		require.Equal(t, ab.Rows(), ba.Cols())
		for i := 0; i < ab.Rows(); i++ {
			for j := 0; j < ab.Cols(); j++ {
				require.Equal(t, ab.At(i, j), ba.At(j, i), "cell (%d,%d)", i, j)
			}
		}
		assert.Equal(t, ab.Score(), ba.Score())
	}
}

// TestMatrix_Moves inspects tie detection on the AATT/ATAT grid.
func TestMatrix_Moves(t *testing.T) {
	m := nw.NewMatrix("AATT", "ATAT", nw.Scoring{Match: 1, Mismatch: -1, Gap: -1})

	// (4,4)=1: T/T from (3,3)=0, or T over a gap from (3,4)=2
	assert.Equal(t, nw.MoveSet(nw.Diagonal)|nw.MoveSet(nw.Up), m.Moves(nw.Coord{Row: 4, Col: 4}))
	// (3,3)=0: T/A mismatch loses, both gaps tie
	set := m.Moves(nw.Coord{Row: 3, Col: 3})
	assert.False(t, set.Has(nw.Diagonal))
	assert.True(t, set.Has(nw.Up))
	assert.True(t, set.Has(nw.Left))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "{up,left}", set.String())
	assert.Equal(t, nw.MoveSet(nw.Diagonal), m.Moves(nw.Coord{Row: 2, Col: 2}))

	assert.Zero(t, m.Moves(nw.Coord{Row: 0, Col: 2}), "boundary cells have no moves")
	assert.Zero(t, m.Moves(nw.Coord{Row: 3, Col: 0}))
}

// TestMatrix_MovesAllTies uses a flat scheme where every move always ties.
func TestMatrix_MovesAllTies(t *testing.T) {
	m := nw.NewMatrix("AC", "GT", nw.Scoring{})

	set := m.Moves(nw.Coord{Row: 2, Col: 2})
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []nw.Move{nw.Diagonal, nw.Up, nw.Left}, set.Moves())
	assert.Equal(t, "{diagonal,up,left}", set.String())
}

// TestMatrix_Accessors checks the sequence and scoring getters and copy semantics.
func TestMatrix_Accessors(t *testing.T) {
	s := nw.Scoring{Match: 3, Mismatch: -1, Gap: -2}
	m := nw.NewMatrix("αβγ", "βγ", s)

	assert.Equal(t, "αβγ", m.First())
	assert.Equal(t, "βγ", m.Second())
	assert.Equal(t, s, m.Scoring())
	assert.Equal(t, 4, m.Rows(), "rows count runes, not bytes")

	row := m.Row(1)
	row[0] = 999
	assert.NotEqual(t, 999, m.At(1, 0), "Row returns a copy")
}

// TestMatrix_ZeroValuePanics surfaces use of an unfilled matrix immediately.
func TestMatrix_ZeroValuePanics(t *testing.T) {
	var m nw.Matrix
	assert.PanicsWithValue(t, nw.ErrNilMatrix, func() { m.Score() })
	assert.PanicsWithValue(t, nw.ErrNilMatrix, func() { m.At(0, 0) })

	filled := nw.NewMatrix("A", "A", nw.DefaultScoring())
	assert.Panics(t, func() { filled.At(2, 0) }, "out of range")
}

// TestMatrix_RowOutOfRange reports the bad row the same way At reports a bad cell.
func TestMatrix_RowOutOfRange(t *testing.T) {
	m := nw.NewMatrix("AC", "A", nw.DefaultScoring())
	assert.PanicsWithValue(t, "nw: row 3 out of range 3x2", func() { m.Row(3) })
	assert.PanicsWithValue(t, "nw: row -1 out of range 3x2", func() { m.Row(-1) })
	assert.Equal(t, []int{-10, 0}, m.Row(2))
}
