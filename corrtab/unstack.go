package corrtab

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is one pairwise relationship in long form: two labels and the
// correlation between them.
type Edge struct {
	A    string  // first label (lexicographically smaller of the pair)
	B    string  // second label
	Corr float64 // correlation between A and B
}

// Table is the long-form view of a correlation matrix: one Edge per
// unordered pair of distinct labels, sorted by correlation. ColA and ColB
// carry the caller-chosen names for the two label columns, used when the
// table is rendered.
type Table struct {
	ColA  string
	ColB  string
	Edges []Edge
}

// Len returns the number of edges.
func (t *Table) Len() int {
	return len(t.Edges)
}

// String renders the table as aligned text with a header row, mirroring
// the frame view the long form is usually inspected in.
func (t *Table) String() string {
	wa, wb := len(t.ColA), len(t.ColB)
	for _, e := range t.Edges {
		if len(e.A) > wa {
			wa = len(e.A)
		}
		if len(e.B) > wb {
			wb = len(e.B)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %-*s  %s\n", wa, t.ColA, wb, t.ColB, "corr")
	for _, e := range t.Edges {
		fmt.Fprintf(&sb, "%-*s  %-*s  %.6f\n", wa, e.A, wb, e.B, e.Corr)
	}
	return sb.String()
}

// Unstack flattens a square symmetric correlation matrix into a Table of
// unique pairwise relationships, sorted by correlation value.
//
// Algorithm Outline:
//  1. Flatten the matrix into (row, col, value) triples in row-major
//     label order, dropping self-pairs (row == col). Dropping before the
//     sort is equivalent to dropping after it and touches N²−N triples
//     instead of N².
//  2. Stable-sort the triples by value, direction per WithAscending.
//  3. Walk the sorted triples; for each, form the canonical unordered
//     label pair and keep only its first occurrence. Symmetry guarantees
//     each pair appears twice with equal value, so exactly C(N,2) edges
//     survive.
//  4. Orient every kept edge so the lexicographically smaller label lands
//     in the first column. The orientation is therefore a property of the
//     labels, not of sort internals.
//
// The fixed flatten order plus the stable sort make the full output
// deterministic, including the relative order of distinct pairs that tie
// on value (row-major order of their first appearance).
//
// NaN values are not rejected; they compare false against everything, so
// NaN edges stay in flatten order relative to each other and to their
// neighbors (see the package doc for the policy).
//
// The input matrix is read, never mutated.
//
// Errors:
//   - ErrNilMatrix — m is nil.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Unstack(m *Matrix, opts ...Option) (*Table, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	n := len(m.labels)
	triples := make([]Edge, 0, n*n-n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // self-correlation carries no information
			}
			triples = append(triples, Edge{A: m.labels[i], B: m.labels[j], Corr: m.data[i*n+j]})
		}
	}

	if o.ascending {
		sort.SliceStable(triples, func(a, b int) bool { return triples[a].Corr < triples[b].Corr })
	} else {
		sort.SliceStable(triples, func(a, b int) bool { return triples[a].Corr > triples[b].Corr })
	}

	// First occurrence per unordered pair wins; both orientations carry
	// the same value, so the choice only fixes position, not content.
	seen := make(map[[2]string]struct{}, n*(n-1)/2)
	edges := make([]Edge, 0, n*(n-1)/2)
	for _, tr := range triples {
		a, b := tr.A, tr.B
		if b < a {
			a, b = b, a
		}
		key := [2]string{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, Edge{A: a, B: b, Corr: tr.Corr})
	}

	return &Table{ColA: o.colA, ColB: o.colB, Edges: edges}, nil
}
