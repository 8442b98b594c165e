package chains_test

import (
	"testing"

	"github.com/katalvlaran/ternopt/chains"
	"github.com/katalvlaran/ternopt/filter"
)

// benchSupports generates n contiguous bit ranges and returns their
// unique supports, a mix of chains and antichains. Start and length of
// each range depend only on i mod 8, so at most eight distinct supports
// remain whatever n is.
func benchSupports(n int) []filter.Support {
	ss := make([]filter.Support, 0, n)
	for i := 0; i < n; i++ {
		s := make(filter.Support, 0, i%8+1)
		for b := i % 4; b < i%4+i%8+1; b++ {
			s = append(s, b)
		}
		ss = append(ss, s)
	}

	return filter.SelectUnique(ss)
}

func BenchmarkMinChainPartition(b *testing.B) {
	ss := benchSupports(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chains.MinChainPartition(ss)
	}
}

func BenchmarkMaxAntichain(b *testing.B) {
	ss := benchSupports(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chains.MaxAntichain(ss)
	}
}
