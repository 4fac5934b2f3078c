package corrtab

import (
	"fmt"
	"math"
)

// Matrix is a labeled square matrix of float64 values, stored row-major in
// a flat slice for cache friendliness. Rows and columns share one label
// set; entry (i, j) is the correlation between labels i and j.
//
// Matrix is assumed symmetric with a unit diagonal by the operations in
// this package; squareness and label uniqueness are enforced at
// construction, symmetry is not (the usual producer — Correlation — is
// symmetric by construction).
type Matrix struct {
	labels []string       // row/column labels, construction order
	index  map[string]int // label → position, for by-label access
	data   []float64      // flat backing storage, length == n*n
}

// NewMatrix builds a Matrix from labels and an N×N slice of rows.
//
// Errors:
//   - ErrNoLabels — empty label set.
//   - ErrDuplicateLabel — repeated label.
//   - ErrNonSquare — len(rows) != N or any row length != N.
//
// The rows are copied; the caller's slices are not retained.
// Complexity: O(N²) time and memory.
func NewMatrix(labels []string, rows [][]float64) (*Matrix, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrNoLabels
	}
	index, err := buildIndex(labels)
	if err != nil {
		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%d rows for %d labels: %w", len(rows), n, ErrNonSquare)
	}

	data := make([]float64, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(data[i*n:(i+1)*n], row)
	}

	return &Matrix{labels: append([]string(nil), labels...), index: index, data: data}, nil
}

// Correlation computes the Pearson correlation matrix of the given
// observation columns, one column per label. This is the usual producer
// of Unstack input: columns of raw observations in, an N×N symmetric
// matrix with unit diagonal out.
//
// A zero-variance column yields NaN against every peer (0/0), matching
// the conventional definition; such NaNs flow through Unstack under the
// documented NaN policy.
//
// Errors:
//   - ErrNoLabels, ErrDuplicateLabel — label set problems.
//   - ErrDimensionMismatch — len(columns) != len(labels), or columns of
//     unequal length.
//   - ErrShortColumn — fewer than two observations per column.
//
// Complexity: O(N²·M) time for N columns of M observations.
func Correlation(labels []string, columns [][]float64) (*Matrix, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrNoLabels
	}
	index, err := buildIndex(labels)
	if err != nil {
		return nil, err
	}
	if len(columns) != n {
		return nil, fmt.Errorf("%d columns for %d labels: %w", len(columns), n, ErrDimensionMismatch)
	}
	m := len(columns[0])
	if m < 2 {
		return nil, ErrShortColumn
	}
	for i, col := range columns {
		if len(col) != m {
			return nil, fmt.Errorf("column %d has %d observations, want %d: %w", i, len(col), m, ErrDimensionMismatch)
		}
	}

	// Column means, one deterministic pass each.
	means := make([]float64, n)
	for i, col := range columns {
		sum := 0.0
		for _, v := range col {
			sum += v
		}
		means[i] = sum / float64(m)
	}

	// Centered cross-products; fill both halves to keep the matrix
	// symmetric by construction.
	data := make([]float64, n*n)
	stds := make([]float64, n)
	for i := 0; i < n; i++ {
		ss := 0.0
		for _, v := range columns[i] {
			d := v - means[i]
			ss += d * d
		}
		stds[i] = math.Sqrt(ss)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dot := 0.0
			for k := 0; k < m; k++ {
				dot += (columns[i][k] - means[i]) * (columns[j][k] - means[j])
			}
			r := dot / (stds[i] * stds[j]) // NaN when either std is zero
			data[i*n+j] = r
			data[j*n+i] = r
		}
	}

	return &Matrix{labels: append([]string(nil), labels...), index: index, data: data}, nil
}

// buildIndex maps labels to positions, rejecting duplicates.
func buildIndex(labels []string) (map[string]int, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := index[l]; ok {
			return nil, fmt.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		index[l] = i
	}
	return index, nil
}

// Len returns the number of labels (matrix order N).
// Complexity: O(1).
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Labels returns a copy of the label set in construction order.
// Complexity: O(N).
func (m *Matrix) Labels() []string {
	return append([]string(nil), m.labels...)
}

// At retrieves the entry at (i, j).
// Returns ErrOutOfRange when either index is outside [0, N).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	n := len(m.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d) on %d×%d: %w", i, j, n, n, ErrOutOfRange)
	}
	return m.data[i*n+j], nil
}

// AtLabel retrieves the entry for the label pair (a, b).
// Returns ErrUnknownLabel when either label is absent.
// Complexity: O(1).
func (m *Matrix) AtLabel(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownLabel)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownLabel)
	}
	return m.data[i*len(m.labels)+j], nil
}
