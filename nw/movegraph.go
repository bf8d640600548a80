package nw

import (
	"fmt"
	"math/big"
)

// MoveGraph treats a filled Matrix as a directed acyclic graph: each cell
// reachable from the bottom-right corner is a vertex, and each valid
// predecessor move is an edge. Boundary cells are the sinks. It is immutable
// once built.
//
// Every root-to-sink path is one optimal alignment, so the number of optimal
// alignments is known before any of them is enumerated.
type MoveGraph struct {
	rows, cols int
	start      Coord
	moves      []MoveSet // valid moves per cell, row-major; 0 for sinks and unreachable cells
	reachable  []bool    // cells lying on at least one optimal path
}

// BuildMoveGraph derives the move DAG of m.
// Returns ErrNilMatrix for a nil or unfilled matrix and ErrNoValidMove if a
// reachable interior cell has no consistent predecessor.
// Complexity: O(n·m) time and memory.
func BuildMoveGraph(m *Matrix) (*MoveGraph, error) {
	if !m.filled() {
		return nil, ErrNilMatrix
	}
	g := &MoveGraph{
		rows:      m.rows,
		cols:      m.cols,
		start:     m.Start(),
		moves:     make([]MoveSet, m.rows*m.cols),
		reachable: make([]bool, m.rows*m.cols),
	}
	g.reachable[g.index(g.start)] = true

	// Predecessors always sit earlier in row-major order, so a single
	// descending sweep sees every cell after all of its successors.
	for k := len(g.reachable) - 1; k >= 0; k-- {
		if !g.reachable[k] {
			continue
		}
		c := g.coord(k)
		if c.OnBoundary() {
			continue
		}
		set := m.Moves(c)
		if set == 0 {
			return nil, fmt.Errorf("%w at %v", ErrNoValidMove, c)
		}
		g.moves[k] = set
		for _, mv := range set.Moves() {
			g.reachable[g.index(mv.From(c))] = true
		}
	}

	return g, nil
}

func (g *MoveGraph) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

func (g *MoveGraph) coord(k int) Coord {
	return Coord{Row: k / g.cols, Col: k % g.cols}
}

// InBounds reports whether c lies within the grid.
func (g *MoveGraph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Start returns the root of the graph, the bottom-right cell.
func (g *MoveGraph) Start() Coord {
	return g.start
}

// Reachable reports whether c lies on at least one optimal trace path.
func (g *MoveGraph) Reachable(c Coord) bool {
	return g.InBounds(c) && g.reachable[g.index(c)]
}

// Moves returns the outgoing edges of c; empty for sinks and unreachable cells.
func (g *MoveGraph) Moves(c Coord) MoveSet {
	if !g.InBounds(c) {
		return 0
	}

	return g.moves[g.index(c)]
}

// Cells lists every reachable cell in descending row-major order.
func (g *MoveGraph) Cells() []Coord {
	out := make([]Coord, 0, len(g.reachable))
	for k := len(g.reachable) - 1; k >= 0; k-- {
		if g.reachable[k] {
			out = append(out, g.coord(k))
		}
	}

	return out
}

// Sinks lists the reachable boundary cells, where trace paths stop.
func (g *MoveGraph) Sinks() []Coord {
	var out []Coord
	for _, c := range g.Cells() {
		if c.OnBoundary() {
			out = append(out, c)
		}
	}

	return out
}

// Forks returns the number of reachable cells with more than one valid move.
func (g *MoveGraph) Forks() int {
	n := 0
	for _, set := range g.moves {
		if set.Len() > 1 {
			n++
		}
	}

	return n
}

// CountPaths returns the exact number of optimal trace paths. The count can
// be exponential in the number of ties, hence the arbitrary-precision result.
// Complexity: O(n·m) big-integer additions.
func (g *MoveGraph) CountPaths() *big.Int {
	ways := make([]*big.Int, len(g.reachable))
	ways[g.index(g.start)] = big.NewInt(1)
	total := new(big.Int)

	for k := len(ways) - 1; k >= 0; k-- {
		if ways[k] == nil {
			continue
		}
		c := g.coord(k)
		if c.OnBoundary() {
			total.Add(total, ways[k])
			continue
		}
		for _, mv := range g.moves[k].Moves() {
			p := g.index(mv.From(c))
			if ways[p] == nil {
				ways[p] = new(big.Int)
			}
			ways[p].Add(ways[p], ways[k])
		}
	}

	return total
}
