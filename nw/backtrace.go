package nw

// Enumerate: exhaustive traceback over every optimal path
//
// Description:
//
//	Starting at the bottom-right cell, each cell's valid predecessor moves
//	are recomputed from the matrix. One move extends the current path; two
//	or three fork it. A path is finished when it reaches row 0 or column 0.
//
// Work-list:
//
//	Instead of recursing per fork, cells are kept in an append-only node
//	table. Each node stores its coordinate and the index of its parent, so
//	sibling branches share their common prefix and never alias each other's
//	storage. A LIFO stack of node indices drives the search; moves are
//	pushed in reverse preference order so Diagonal is explored first, then
//	Up, then Left. A finished path is materialized by following parent
//	indices back to the root.
//
// Parallel mode:
//
//	With Parallelism > 1 the tree is first expanded breadth-wise until there
//	are enough independent prefixes, then each prefix is walked by its own
//	walker on an errgroup. Results are concatenated in prefix order, which
//	is the sequential order. Each walker keeps at most MaxPaths paths, and
//	the concatenation is cut to MaxPaths, so a capped run returns the same
//	prefix as a sequential one. OnPath runs after the walkers finish, in
//	output order.
//
// Complexity:
//
//	Time   = O(P·(n+m)) for P optimal paths
//	Memory = O(P·(n+m)) worst case for the node table and the result
//
// Errors:
//   - ErrNilMatrix: m is nil or unfilled.
//   - ErrBadOption: negative MaxPaths or Parallelism.
//   - ErrPathLimit: more than MaxPaths paths exist; found paths are returned.
//   - ErrNoValidMove: a cell with no consistent predecessor.
//   - ctx.Err(): cancelled or timed out.
//   - any error returned by OnPath.

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Enumerate returns every optimal trace path of m.
func Enumerate(m *Matrix, opts ...Option) ([]TracePath, error) {
	if !m.filled() {
		return nil, ErrNilMatrix
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return enumerate(m, o)
}

func enumerate(m *Matrix, o Options) ([]TracePath, error) {
	if o.Parallelism > 1 {
		return enumerateParallel(m, o)
	}
	w := newWalker(o.Ctx, m, &pathSink{max: o.MaxPaths, onPath: o.OnPath})
	err := w.walk(TracePath{m.Start()})

	return w.paths, err
}

// traceNode is one entry of the append-only node table.
type traceNode struct {
	at     Coord
	parent int // -1 for the root
	depth  int // cells from the root inclusive
}

// pathSink admits finished paths for one walker.
type pathSink struct {
	max    int
	found  int
	onPath func(TracePath) error
}

func (s *pathSink) admit(p TracePath) error {
	s.found++
	if s.max > 0 && s.found > s.max {
		return ErrPathLimit
	}

	return runHook(s.onPath, p)
}

// runHook calls onPath, if any, and wraps its error with the path end.
func runHook(onPath func(TracePath) error, p TracePath) error {
	if onPath == nil {
		return nil
	}
	if err := onPath(p); err != nil {
		return fmt.Errorf("nw: OnPath hook for path ending at %v: %w", p.End(), err)
	}

	return nil
}

// walker encapsulates the state of one depth-first sweep.
type walker struct {
	ctx   context.Context
	m     *Matrix
	sink  *pathSink
	nodes []traceNode
	stack []int
	paths []TracePath
}

func newWalker(ctx context.Context, m *Matrix, sink *pathSink) *walker {
	return &walker{ctx: ctx, m: m, sink: sink}
}

// walk explores every completion of seed, a path prefix starting at the root.
func (w *walker) walk(seed TracePath) error {
	// 1. Chain the seed into the node table
	parent := -1
	for _, c := range seed {
		depth := 1
		if parent >= 0 {
			depth = w.nodes[parent].depth + 1
		}
		w.nodes = append(w.nodes, traceNode{at: c, parent: parent, depth: depth})
		parent = len(w.nodes) - 1
	}
	w.stack = append(w.stack[:0], parent)

	for len(w.stack) > 0 {
		// 2. Cancellation check
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// 3. Pop
		idx := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		at := w.nodes[idx].at

		// 4. Boundary reached: the path is finished
		if at.OnBoundary() {
			p := w.materialize(idx)
			if err := w.sink.admit(p); err != nil {
				return err
			}
			w.paths = append(w.paths, p)
			continue
		}

		// 5. Push one child per valid move, reversed so Diagonal pops first
		set := w.m.Moves(at)
		if set == 0 {
			return fmt.Errorf("%w at %v", ErrNoValidMove, at)
		}
		depth := w.nodes[idx].depth + 1
		for k := len(moveOrder) - 1; k >= 0; k-- {
			mv := moveOrder[k]
			if !set.Has(mv) {
				continue
			}
			w.nodes = append(w.nodes, traceNode{at: mv.From(at), parent: idx, depth: depth})
			w.stack = append(w.stack, len(w.nodes)-1)
		}
	}

	return nil
}

// materialize copies the chain ending at node idx into a fresh root-first path.
func (w *walker) materialize(idx int) TracePath {
	p := make(TracePath, w.nodes[idx].depth)
	pos := len(p) - 1
	for k := idx; k >= 0; k = w.nodes[k].parent {
		p[pos] = w.nodes[k].at
		pos--
	}

	return p
}

func enumerateParallel(m *Matrix, o Options) ([]TracePath, error) {
	seeds := seedFrontier(m, o.Parallelism)
	results := make([][]TracePath, len(seeds))
	capped := make([]bool, len(seeds))

	// 1. Walk every seed with its own cap; a capped seed does not stop the others
	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Parallelism)
	for i, seed := range seeds {
		g.Go(func() error {
			w := newWalker(gctx, m, &pathSink{max: o.MaxPaths})
			err := w.walk(seed)
			results[i] = w.paths
			if errors.Is(err, ErrPathLimit) {
				capped[i] = true

				return nil
			}

			return err
		})
	}
	if err := g.Wait(); err != nil {
		var out []TracePath
		for _, r := range results {
			out = append(out, r...)
		}

		return out, err
	}

	// 2. Concatenate in seed order and cut to the cap
	var out []TracePath
	limited := false
	for i, r := range results {
		out = append(out, r...)
		if capped[i] || (o.MaxPaths > 0 && len(out) > o.MaxPaths) {
			limited = true
			break
		}
	}
	if limited {
		out = out[:o.MaxPaths]
	}

	// 3. Hook in output order
	for k, p := range out {
		if err := runHook(o.OnPath, p); err != nil {
			return out[:k], err
		}
	}
	if limited {
		return out, ErrPathLimit
	}

	return out, nil
}

// seedFrontier expands the path tree level by level until it holds at least
// want prefixes or nothing is left to expand. Prefixes stay in preorder.
func seedFrontier(m *Matrix, want int) []TracePath {
	frontier := []TracePath{{m.Start()}}
	for len(frontier) < want {
		next := make([]TracePath, 0, len(frontier)*len(moveOrder))
		grew := false
		for _, p := range frontier {
			at := p.End()
			set := m.Moves(at)
			if set == 0 {
				// finished, or malformed; the walker reports the latter
				next = append(next, p)
				continue
			}
			for _, mv := range set.Moves() {
				child := make(TracePath, len(p)+1)
				copy(child, p)
				child[len(p)] = mv.From(at)
				next = append(next, child)
			}
			grew = true
		}
		frontier = next
		if !grew {
			break
		}
	}

	return frontier
}
