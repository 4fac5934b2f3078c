package intervals_test

import (
	"testing"

	"github.com/katalvlaran/seqtab/intervals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundaries_Empty verifies the explicit empty-input special case:
// no intervals, no panic.
func TestBoundaries_Empty(t *testing.T) {
	assert.Nil(t, intervals.Boundaries(nil), "nil input must yield nil")
	assert.Nil(t, intervals.Boundaries([]int{}), "empty input must yield nil")
	assert.Nil(t, intervals.Values(nil), "nil input must yield nil values")
	assert.Nil(t, intervals.Values([]int{}), "empty input must yield nil values")
}

// TestBoundaries_SingleElement verifies that one element forms one run of
// length 1.
func TestBoundaries_SingleElement(t *testing.T) {
	got := intervals.Boundaries([]int{7})
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 0}}, got, "single element is one run [0,0]")
	assert.Equal(t, [][]int{{7}}, intervals.Values([]int{7}), "single element run carries its value")
}

// TestBoundaries_OneGiantRun verifies that a gap-free sequence collapses
// into the single interval [0, N-1].
func TestBoundaries_OneGiantRun(t *testing.T) {
	arr := []int{5, 6, 7, 8, 9, 10}
	got := intervals.Boundaries(arr)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 5}}, got, "no gaps means one run covering all indexes")
}

// TestBoundaries_Worked checks the canonical worked example.
func TestBoundaries_Worked(t *testing.T) {
	arr := []int{2, 3, 4, 5, 12, 13, 14, 15, 16, 17, 20}

	idx := intervals.Boundaries(arr)
	want := []intervals.Interval{
		{Start: 0, End: 3},
		{Start: 4, End: 9},
		{Start: 10, End: 10},
	}
	assert.Equal(t, want, idx, "boundary index pairs")

	runs := intervals.Values(arr)
	assert.Equal(t, [][]int{
		{2, 3, 4, 5},
		{12, 13, 14, 15, 16, 17},
		{20},
	}, runs, "materialized runs")
}

// TestBoundaries_AllSingletons verifies that a sequence with no
// consecutive neighbors yields one interval per element.
func TestBoundaries_AllSingletons(t *testing.T) {
	arr := []int{1, 3, 5, 9}
	got := intervals.Boundaries(arr)
	require.Len(t, got, len(arr), "every element forms its own run")
	for i, iv := range got {
		assert.Equal(t, intervals.Interval{Start: i, End: i}, iv, "run %d is a singleton", i)
	}
}

// TestBoundaries_NegativeValues verifies that runs crossing zero are
// detected like any other consecutive values.
func TestBoundaries_NegativeValues(t *testing.T) {
	arr := []int{-3, -2, -1, 0, 1, 5}
	got := intervals.Boundaries(arr)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 4}, {Start: 5, End: 5}}, got)
	assert.Equal(t, [][]int{{-3, -2, -1, 0, 1}, {5}}, intervals.Values(arr))
}

// TestBoundaries_Partition asserts the partition property on a spread of
// inputs: intervals are disjoint, ascending, and cover [0, N-1] exactly.
func TestBoundaries_Partition(t *testing.T) {
	inputs := [][]int{
		{0},
		{1, 2},
		{1, 3},
		{2, 3, 4, 5, 12, 13, 14, 15, 16, 17, 20},
		{10, 11, 12, 20, 21, 30, 40, 41, 42, 43},
		{-5, -4, -3, 7, 8, 100},
	}
	for _, arr := range inputs {
		got := intervals.Boundaries(arr)
		next := 0 // the index the next interval must start at
		for _, iv := range got {
			require.Equal(t, next, iv.Start, "intervals must be contiguous for %v", arr)
			require.LessOrEqual(t, iv.Start, iv.End, "interval must be non-empty for %v", arr)
			next = iv.End + 1
		}
		require.Equal(t, len(arr), next, "intervals must cover [0,N-1] for %v", arr)
	}
}

// TestValues_MatchesBoundaryExpansion verifies the round-trip property:
// expanding each (s,e) pair over arr equals the direct Values output.
func TestValues_MatchesBoundaryExpansion(t *testing.T) {
	arr := []int{3, 4, 5, 9, 10, 15, 16, 17, 18, 25}

	idx := intervals.Boundaries(arr)
	expanded := make([][]int, 0, len(idx))
	for _, iv := range idx {
		run := make([]int, 0, iv.Len())
		for v := arr[iv.Start]; v <= arr[iv.End]; v++ {
			run = append(run, v)
		}
		expanded = append(expanded, run)
	}

	assert.Equal(t, expanded, intervals.Values(arr), "Values must equal boundary expansion")
}

// TestInterval_Len checks the span arithmetic on inclusive pairs.
func TestInterval_Len(t *testing.T) {
	assert.Equal(t, 1, intervals.Interval{Start: 4, End: 4}.Len())
	assert.Equal(t, 6, intervals.Interval{Start: 4, End: 9}.Len())
}
