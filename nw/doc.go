// Package nw computes optimal global alignments of two symbol sequences with
// the Needleman–Wunsch algorithm and enumerates every alignment that reaches
// the optimal score, not just one.
//
// 🚀 What is Needleman–Wunsch?
//
//	A dynamic-programming method that fills an (n+1)×(m+1) score grid for
//	prefixes of the two sequences and then walks back from the far corner
//	to recover the alignment. It is the classic global aligner used in:
//	  • DNA / protein comparison
//	  • Spelling and text collation
//	  • Any "edit script with rewards" problem over two strings
//
// ✨ Key features:
//   - exact integer scoring: match reward, mismatch and gap penalties
//   - tie-aware traceback: every optimal path is reported
//   - explicit work-list enumeration (no recursion), shared path prefixes
//   - optimal-path counting without enumeration (MoveGraph.CountPaths)
//   - cancellation, path caps and parallel sub-tree exploration via Options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nwalign/nw"
//
//	res, err := nw.Align("ACGCTG", "CATGT", nw.DefaultScoring(),
//	    nw.WithMaxPaths(1000),
//	)
//	if err != nil {
//	    // ErrPathLimit, context errors, ...
//	}
//	fmt.Println(res.Score(), res.Count())
//	for _, p := range res.Pairs {
//	    fmt.Println(p.First)
//	    fmt.Println(p.Second)
//	}
//
// Pipeline:
//
//	NewMatrix  → fill the grid (row-major, O(n·m))
//	Enumerate  → all boundary-terminated trace paths
//	Reconstruct→ one AlignedPair per path
//	Align      → all three, wrapped in a Result
//
// Boundary contract:
//
//	A trace path stops at the first cell with row==0 or col==0. The rest of
//	the way to the origin is forced (boundary cells have a single
//	predecessor), so Reconstruct emits it as leading gap columns.
//
// Performance:
//
//   - Fill:      O(n·m) time and memory
//   - Enumerate: O(P·(n+m)) where P is the number of optimal paths; P can be
//     exponential in the number of ties, bound it with WithMaxPaths or a
//     context deadline.
package nw
