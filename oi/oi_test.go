package oi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/oi"
)

// parseAll builds a filter list from ternary literals.
func parseAll(ss ...string) []filter.Filter {
	fs := make([]filter.Filter, len(ss))
	for i, s := range ss {
		fs[i] = filter.MustParse(s)
	}

	return fs
}

// TestFindMaximalOISubset_GreedyOrder: the scan keeps the first of any
// intersecting pair, so the input order decides the outcome.
func TestFindMaximalOISubset_GreedyOrder(t *testing.T) {
	fs := parseAll("1*0", "0*1", "11*", "00*")
	bits := []int{0, 1, 2}

	result := oi.FindMaximalOISubset(fs, bits)
	assert.Equal(t, []int{0, 1}, result,
		"11* intersects 1*0 and 00* intersects 0*1, so both are dropped")
}

// TestFindMaximalOISubset_Property verifies the OI invariant and
// maximality under greedy extension.
func TestFindMaximalOISubset_Property(t *testing.T) {
	fs := parseAll("10*1", "01*0", "1*11", "0000", "111*")
	bits := []int{0, 1, 2, 3}

	result := oi.FindMaximalOISubset(fs, bits)

	inResult := map[int]bool{}
	for _, i := range result {
		for _, j := range result {
			if i < j {
				assert.False(t, filter.Intersect(fs[i], fs[j], bits),
					"selected filters must be pairwise non-intersecting")
			}
		}
		inResult[i] = true
	}
	for i := range fs {
		if inResult[i] {
			continue
		}
		clashes := false
		for _, j := range result {
			if filter.Intersect(fs[i], fs[j], bits) {
				clashes = true

				break
			}
		}
		assert.True(t, clashes, "omitted filter %d must clash with the result", i)
	}
}

// TestFindMaximalOISubsetIndices restricts the scan to a subset and
// preserves its order.
func TestFindMaximalOISubsetIndices(t *testing.T) {
	fs := parseAll("1*0", "0*1", "11*", "00*")
	bits := []int{0, 1, 2}

	result := oi.FindMaximalOISubsetIndices(fs, []int{3, 2, 1}, bits)
	assert.Equal(t, []int{3, 2}, result,
		"scanning 3 first keeps 00* and 11*, then 0*1 clashes with 00*")
}

// TestIsOI agrees with the greedy scan and is deterministic across
// worker counts.
func TestIsOI(t *testing.T) {
	fs := parseAll("1*0", "0*1")
	bits := []int{0, 1, 2}
	require.True(t, oi.IsOI(fs, bits))

	clash := parseAll("1*0", "11*")
	assert.False(t, oi.IsOI(clash, bits))

	// Worker count must not change the verdict.
	oi.SetWorkers(1)
	one := oi.IsOI(fs, bits)
	oi.SetWorkers(4)
	four := oi.IsOI(fs, bits)
	oi.SetWorkers(0)
	assert.Equal(t, one, four)
}
