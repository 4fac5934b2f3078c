package intervals

// Interval delimits one maximal run of consecutive integers as a pair of
// inclusive, 0-based positions into the original sequence.
type Interval struct {
	Start int // index of the first element of the run
	End   int // index of the last element of the run (inclusive)
}

// Len returns the number of positions covered by the interval.
// Complexity: O(1).
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Boundaries scans arr and returns the inclusive (start, end) index pairs
// of every maximal run where each element equals its predecessor plus one.
//
// Algorithm Outline:
//  1. Walk the N-1 successive differences arr[i] - arr[i-1].
//  2. Every difference != 1 closes the current run at i-1 and opens the
//     next run at i.
//  3. The final run always closes at N-1.
//
// The returned intervals partition [0, N-1] exactly: disjoint, in
// ascending order, covering every index once. A single-element input
// yields one run [0,0]; an empty input yields nil.
//
// Boundaries does not validate that arr is sorted: a decreasing or
// duplicated element simply breaks the run there, producing a result that
// is well-formed as a partition of indexes but meaningless as runs. That
// is the caller's responsibility by contract.
//
// Complexity: O(N) time, O(R) memory for R runs.
func Boundaries(arr []int) []Interval {
	if len(arr) == 0 {
		return nil
	}

	res := make([]Interval, 0, 1)
	start := 0 // index opening the current run
	for i := 1; i < len(arr); i++ {
		if arr[i]-arr[i-1] != 1 {
			res = append(res, Interval{Start: start, End: i - 1})
			start = i
		}
	}

	// The last run is never closed by a difference; close it here.
	return append(res, Interval{Start: start, End: len(arr) - 1})
}

// Values scans arr like Boundaries and returns each run materialized as a
// slice of the integer values it spans, reconstructed by counting from
// arr[start] up to arr[end] inclusive.
//
// Reconstruction is by value, not by copying the subslice: it relies on
// the run being consecutive integers, which holds by construction for
// sorted input. For unsorted input the reconstructed runs silently
// diverge from the actual elements (documented limitation, not defended
// against). An empty input yields nil.
//
// Complexity: O(N) time, O(N) memory.
func Values(arr []int) [][]int {
	bounds := Boundaries(arr)
	if bounds == nil {
		return nil
	}

	res := make([][]int, 0, len(bounds))
	for _, iv := range bounds {
		lo, hi := arr[iv.Start], arr[iv.End]
		run := make([]int, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			run = append(run, v)
		}
		res = append(res, run)
	}

	return res
}
