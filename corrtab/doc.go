// Package corrtab converts square, symmetric correlation matrices into
// sorted, deduplicated long-form tables of pairwise relationships.
//
// 🚀 Why unstack a correlation matrix?
//
//	A correlation matrix answers "how related are X and Y?" one cell at a
//	time; analysis usually wants the opposite view — "which pairs are the
//	most (or least) related?" — which is a table sorted by correlation.
//	Unstacking produces that table with self-correlations and mirrored
//	duplicates removed, so each unordered pair appears exactly once.
//
// ✨ Key features:
//   - Matrix: labeled square matrix with by-index and by-label access
//   - Correlation: Pearson correlation matrix from raw observation columns
//   - Unstack: matrix → Table of {label, label, correlation} edges,
//     sorted by value, exactly C(N,2) rows for N labels
//   - Deterministic output: stable sort over a fixed row-major flatten,
//     lexicographically smaller label always in the first column
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqtab/corrtab"
//
//	m, err := corrtab.Correlation(
//	  []string{"A", "B"},
//	  [][]float64{{1, 2, 3, 4}, {1.5, 2.3, 3.2, 4.1}},
//	)
//	// ...
//	tbl, err := corrtab.Unstack(m, corrtab.WithColumns("var_1", "var_2"))
//	// tbl.Edges == [{A B 0.9996...}]
//
// NaN policy: NaN entries are not rejected. They compare false against
// everything, so the stable sort leaves NaN rows wherever the row-major
// flatten put them; callers that care must sanitize upstream.
//
// Performance: Unstack is O(N² log N) time and O(N²) memory, dominated by
// the sort over the flattened triples.
package corrtab
