package nw

import "fmt"

// Matrix: Needleman-Wunsch score grid
//
// Description:
//
//	Cell (i,j) holds the optimal global alignment score of the prefixes
//	first[0..i) and second[0..j). The grid is filled once by NewMatrix and
//	never changes afterwards, so concurrent reads need no locking.
//
// Algorithm Outline:
//  1. Let n = len(first), m = len(second). Allocate (n+1)×(m+1) cells.
//  2. Initialize:
//     M[i][0] = i·gap for i=0..n
//     M[0][j] = j·gap for j=0..m
//  3. For i = 1..n, j = 1..m (row-major):
//     top      = M[i-1][j]   + gap
//     left     = M[i][j-1]   + gap
//     diagonal = M[i-1][j-1] + (match if first[i-1]==second[j-1] else mismatch)
//     M[i][j]  = max(top, left, diagonal)
//  4. score = M[n][m].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Preconditions:
//   - none; empty sequences give a single boundary row or column.
//   - accessors on a zero Matrix panic with ErrNilMatrix (programmer error).
type Matrix struct {
	first, second []rune
	scoring       Scoring
	rows, cols    int
	cells         []int // row-major, rows*cols
}

// NewMatrix fills the score grid for first (rows) against second (columns).
// Symbols are compared per Unicode code point.
func NewMatrix(first, second string, s Scoring) *Matrix {
	a, b := []rune(first), []rune(second)
	rows, cols := len(a)+1, len(b)+1
	cells := make([]int, rows*cols)

	// Boundary column and row: cumulative gap penalty
	for i := 0; i < rows; i++ {
		cells[i*cols] = i * s.Gap
	}
	for j := 0; j < cols; j++ {
		cells[j] = j * s.Gap
	}

	// Interior cells depend on top, left and diagonal neighbours only
	for i := 1; i < rows; i++ {
		up := (i - 1) * cols
		cur := i * cols
		for j := 1; j < cols; j++ {
			top := cells[up+j] + s.Gap
			left := cells[cur+j-1] + s.Gap
			diagonal := cells[up+j-1] + s.Substitution(a[i-1], b[j-1])
			cells[cur+j] = max(top, left, diagonal)
		}
	}

	return &Matrix{
		first:   a,
		second:  b,
		scoring: s,
		rows:    rows,
		cols:    cols,
		cells:   cells,
	}
}

// filled reports whether m came out of NewMatrix.
func (m *Matrix) filled() bool {
	return m != nil && m.cells != nil
}

func (m *Matrix) mustBeFilled() {
	if !m.filled() {
		panic(ErrNilMatrix)
	}
}

// Rows returns len(first)+1.
func (m *Matrix) Rows() int {
	m.mustBeFilled()

	return m.rows
}

// Cols returns len(second)+1.
func (m *Matrix) Cols() int {
	m.mustBeFilled()

	return m.cols
}

// At returns cell (i,j). It panics if (i,j) is out of range.
func (m *Matrix) At(i, j int) int {
	m.mustBeFilled()
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("nw: cell (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}

	return m.cells[i*m.cols+j]
}

// Score returns the bottom-right cell: the optimal global alignment score.
func (m *Matrix) Score() int {
	m.mustBeFilled()

	return m.cells[len(m.cells)-1]
}

// Start returns the bottom-right coordinate every trace path begins at.
func (m *Matrix) Start() Coord {
	m.mustBeFilled()

	return Coord{Row: m.rows - 1, Col: m.cols - 1}
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []int {
	m.mustBeFilled()
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("nw: row %d out of range %dx%d", i, m.rows, m.cols))
	}
	out := make([]int, m.cols)
	copy(out, m.cells[i*m.cols:(i+1)*m.cols])

	return out
}

// Values returns a deep copy of the grid as [row][col].
func (m *Matrix) Values() [][]int {
	m.mustBeFilled()
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// First returns the row sequence.
func (m *Matrix) First() string {
	m.mustBeFilled()

	return string(m.first)
}

// Second returns the column sequence.
func (m *Matrix) Second() string {
	m.mustBeFilled()

	return string(m.second)
}

// Scoring returns the scheme the grid was filled with.
func (m *Matrix) Scoring() Scoring {
	m.mustBeFilled()

	return m.scoring
}

// Moves returns every predecessor move of c whose value equals the cell's own
// score. Boundary cells report the empty set: they terminate a trace path.
func (m *Matrix) Moves(c Coord) MoveSet {
	m.mustBeFilled()
	if c.OnBoundary() {
		return 0
	}
	i, j := c.Row, c.Col
	here := m.cells[i*m.cols+j]
	gap := m.scoring.Gap

	var set MoveSet
	if m.cells[(i-1)*m.cols+j-1]+m.scoring.Substitution(m.first[i-1], m.second[j-1]) == here {
		set |= MoveSet(Diagonal)
	}
	if m.cells[(i-1)*m.cols+j]+gap == here {
		set |= MoveSet(Up)
	}
	if m.cells[i*m.cols+j-1]+gap == here {
		set |= MoveSet(Left)
	}

	return set
}
