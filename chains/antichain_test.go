package chains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternopt/chains"
	"github.com/katalvlaran/ternopt/filter"
)

// TestMaxAntichain_Incomparable: two incomparable supports form the
// whole antichain.
func TestMaxAntichain_Incomparable(t *testing.T) {
	ss := []filter.Support{{0, 2, 3}, {1, 2, 3}}

	antichain := chains.MaxAntichain(ss)
	assert.Equal(t, []int{0, 1}, antichain)
}

// TestMaxAntichain_Chain: a totally ordered set has antichains of size
// one only.
func TestMaxAntichain_Chain(t *testing.T) {
	ss := []filter.Support{{0, 1, 2, 3}, {1, 2, 3}, {2, 3}}

	antichain := chains.MaxAntichain(ss)
	assert.Len(t, antichain, 1)
}

// TestMaxAntichain_PairwiseIncomparable verifies the defining property
// of the returned indices on a mixed poset.
func TestMaxAntichain_PairwiseIncomparable(t *testing.T) {
	ss := []filter.Support{{0}, {1}, {0, 1}, {0, 1, 2}, {1, 3}}

	antichain := chains.MaxAntichain(ss)
	require.Len(t, antichain, 2, "Dilworth: antichain size equals chain count")
	for _, a := range antichain {
		for _, b := range antichain {
			if a == b {
				continue
			}
			assert.False(t, ss[a].SubsetOf(ss[b]),
				"antichain members must be incomparable: %v vs %v", ss[a], ss[b])
		}
	}
}
