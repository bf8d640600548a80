// Package nwalign finds every optimal global alignment of two sequences
// with the Needleman-Wunsch algorithm, not just one of them.
//
// 🚀 What is nwalign?
//
//	A small library plus CLI that brings together:
//		• Score matrix: linear gap penalty, match/mismatch substitution
//		• Move graph: the DAG of optimal predecessor moves, with exact path counts
//		• Exhaustive traceback: every tie is a fork, nothing is dropped
//		• Reconstruction: aligned string pairs with a configurable gap symbol
//		• Parallel traceback with deterministic output order
//
// ✨ Why nwalign?
//
//   - Ties are first-class: each co-optimal alignment is listed exactly once
//   - Bounded: context cancellation, a path cap and an up-front count
//   - Plain data out: the core never prints, callers render
//
// Packages:
//
//	nw/              score matrix, move graph, traceback, reconstruction, Align
//	seqgen/          reproducible random and mutated sequences
//	seqio/           two-line sequence files (header, then sequence)
//	render/          console report: matrix table, score, alignments
//	internal/config  YAML run configuration
//	cmd/nwalign      command-line front end
//
// Quick example:
//
//	ACGCTG vs CATGT, match=5 mismatch=-3 gap=-5, score -3:
//
//	    -ACGCTG    ACGCTG-    ACGCTG-
//	    CATG-T-    -C-ATGT    -CA-TGT
//
//	go install github.com/katalvlaran/nwalign/cmd/nwalign@latest
package nwalign
