// Package intervals identifies maximal runs of consecutive integers in an
// ordered sequence.
//
// 🚀 What is a run?
//
//	A run is a maximal contiguous subsequence whose every element equals
//	its predecessor plus one. Run detection is a common building block in:
//	  • Gap analysis of ID or offset sequences
//	  • Compacting index sets into ranges for display or storage
//	  • Segmenting time indexes before windowed processing
//
// ✨ Key features:
//   - Boundaries: report runs as inclusive (start, end) index pairs
//   - Values: report runs as materialized slices of the integers spanned
//   - Single O(N) scan shared by both forms
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqtab/intervals"
//
//	data := []int{2, 3, 4, 5, 12, 13, 14, 15, 16, 17, 20}
//	idx := intervals.Boundaries(data)
//	// [{0 3} {4 9} {10 10}]
//	runs := intervals.Values(data)
//	// [[2 3 4 5] [12 13 14 15 16 17] [20]]
//
// Contract:
//
//	Input is assumed monotonically non-decreasing; only successive
//	differences are inspected. Unsorted or duplicate-bearing input yields
//	garbage-in-garbage-out results (spurious single-element runs), never
//	a panic or an error. Empty input yields empty output.
//
// Performance: O(N) time, O(R) memory for R runs (Values additionally
// allocates the reconstructed values).
package intervals
