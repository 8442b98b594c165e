package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternopt/matching"
)

// TestHopcroftKarp_Perfect verifies a graph with a perfect matching.
func TestHopcroftKarp_Perfect(t *testing.T) {
	// 0-{0,1}, 1-{0}, 2-{1,2}: perfect matching of size 3 exists.
	adj := [][]int{{0, 1}, {0}, {1, 2}}

	mateL, mateR, size := matching.HopcroftKarp(3, 3, adj)
	assert.Equal(t, 3, size)
	for i, j := range mateL {
		require.NotEqual(t, matching.Unmatched, j, "left %d must be matched", i)
		assert.Equal(t, i, mateR[j], "mate arrays must be mutually consistent")
	}
}

// TestHopcroftKarp_Augmenting forces an augmenting-path flip: the
// greedy assignment 0→0 must be undone to fit both left vertices.
func TestHopcroftKarp_Augmenting(t *testing.T) {
	adj := [][]int{{0, 1}, {0}}

	mateL, _, size := matching.HopcroftKarp(2, 2, adj)
	assert.Equal(t, 2, size)
	assert.Equal(t, 1, mateL[0], "left 0 must yield right 0 to left 1")
	assert.Equal(t, 0, mateL[1])
}

// TestHopcroftKarp_NoEdges verifies the degenerate empty graph.
func TestHopcroftKarp_NoEdges(t *testing.T) {
	mateL, mateR, size := matching.HopcroftKarp(2, 2, [][]int{nil, nil})
	assert.Zero(t, size)
	assert.Equal(t, []int{matching.Unmatched, matching.Unmatched}, mateL)
	assert.Equal(t, []int{matching.Unmatched, matching.Unmatched}, mateR)
}

// TestAlternatingReach_Seed verifies that the scan starts at free left
// vertices only and crosses matched edges backwards.
func TestAlternatingReach_Seed(t *testing.T) {
	// 0-{0}, 1-{0}: matching picks one of them; the free one reaches
	// right 0 and crosses back to the matched left.
	adj := [][]int{{0}, {0}}
	mateL, mateR, size := matching.HopcroftKarp(2, 1, adj)
	require.Equal(t, 1, size)

	reachedL, reachedR := matching.AlternatingReach(adj, mateL, mateR)
	assert.Equal(t, []bool{true, true}, reachedL, "both lefts reachable via the alternating path")
	assert.Equal(t, []bool{true}, reachedR)
}

// TestAlternatingReach_MatchedEdgeNotForward verifies that a matched
// edge is never crossed left→right.
func TestAlternatingReach_MatchedEdgeNotForward(t *testing.T) {
	// Single edge, matched: no free left vertex, nothing is reached.
	adj := [][]int{{0}}
	mateL, mateR, size := matching.HopcroftKarp(1, 1, adj)
	require.Equal(t, 1, size)

	reachedL, reachedR := matching.AlternatingReach(adj, mateL, mateR)
	assert.Equal(t, []bool{false}, reachedL)
	assert.Equal(t, []bool{false}, reachedR)
}
