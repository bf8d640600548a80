package nw_test

import (
	"fmt"

	"github.com/katalvlaran/nwalign/nw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two short DNA fragments scored with match=5, mismatch=-3, gap=-5.
//	Three different alignments reach the optimal score.
//
// Complexity: O(N·M) fill, O(P·(N+M)) enumeration.
func ExampleAlign() {
	res, err := nw.Align("ACGCTG", "CATGT", nw.Scoring{Match: 5, Mismatch: -3, Gap: -5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d alignments=%d\n", res.Score(), res.Count())
	for _, p := range res.Pairs {
		fmt.Println(p.First)
		fmt.Println(p.Second)
	}
	// Output:
	// score=-3 alignments=3
	// -ACGCTG
	// CATG-T-
	// ACGCTG-
	// -C-ATGT
	// ACGCTG-
	// -CA-TGT
}

// ExampleMoveGraph_CountPaths counts optimal alignments without building them.
func ExampleMoveGraph_CountPaths() {
	m := nw.NewMatrix("AATT", "ATAT", nw.Scoring{Match: 1, Mismatch: -1, Gap: -1})
	g, err := nw.BuildMoveGraph(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(g.CountPaths())
	// Output:
	// 4
}

// ExampleEnumerate_maxPaths bounds an all-tie search.
func ExampleEnumerate_maxPaths() {
	m := nw.NewMatrix("AAAA", "AAAA", nw.Scoring{})
	paths, err := nw.Enumerate(m, nw.WithMaxPaths(3))
	fmt.Println(len(paths), err)
	fmt.Println(paths[0])
	// Output:
	// 3 nw: optimal path limit exceeded
	// [(4,4) (3,3) (2,2) (1,1) (0,0)]
}
