package intervals_test

import (
	"testing"

	"github.com/katalvlaran/seqtab/intervals"
)

// benchSequence builds a length-n sequence with a gap every `period`
// elements, so run count scales predictably with n.
func benchSequence(n, period int) []int {
	arr := make([]int, n)
	v := 0
	for i := 0; i < n; i++ {
		if i > 0 && i%period == 0 {
			v += 10 // open a gap to break the run
		}
		arr[i] = v
		v++
	}
	return arr
}

// BenchmarkBoundaries_FewRuns benchmarks the scan on a sequence dominated
// by long runs.
func BenchmarkBoundaries_FewRuns(b *testing.B) {
	arr := benchSequence(100_000, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intervals.Boundaries(arr)
	}
}

// BenchmarkBoundaries_ManyRuns benchmarks the scan when runs are short.
func BenchmarkBoundaries_ManyRuns(b *testing.B) {
	arr := benchSequence(100_000, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intervals.Boundaries(arr)
	}
}

// BenchmarkValues_FewRuns benchmarks run materialization.
func BenchmarkValues_FewRuns(b *testing.B) {
	arr := benchSequence(100_000, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intervals.Values(arr)
	}
}
