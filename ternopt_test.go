package ternopt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ternopt "github.com/katalvlaran/ternopt"
	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/oi"
)

// parseAll builds a rule table from ternary literals.
func parseAll(ss ...string) []filter.Filter {
	fs := make([]filter.Filter, len(ss))
	for i, s := range ss {
		fs[i] = filter.MustParse(s)
	}

	return fs
}

// TestMinChainPartition_SingleChain: three nested rules collapse into
// one chain, with every input rule bucketed under it.
func TestMinChainPartition_SingleChain(t *testing.T) {
	result, err := ternopt.MinChainPartition(parseAll("**00", "*100", "1100"))
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Chains, 1)
	assert.Equal(t,
		[]filter.Support{{2, 3}, {1, 2, 3}, {0, 1, 2, 3}},
		result.Chains[0])
	assert.Equal(t, [][]int{{0, 1, 2}}, result.Buckets)
}

// TestMinChainPartition_Antichain: two incomparable rules give two
// singleton chains.
func TestMinChainPartition_Antichain(t *testing.T) {
	result, err := ternopt.MinChainPartition(parseAll("1*00", "*100"))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Chains, 2)
	assert.Len(t, result.Buckets[0], 1)
	assert.Len(t, result.Buckets[1], 1)
}

// TestMinChainPartition_DuplicateRules: duplicate supports share one
// chain entry but every rule index lands in a bucket.
func TestMinChainPartition_DuplicateRules(t *testing.T) {
	result, err := ternopt.MinChainPartition(parseAll("**00", "**00", "1100"))
	require.NoError(t, err)
	require.NotNil(t, result)

	total := 0
	for _, bucket := range result.Buckets {
		total += len(bucket)
	}
	assert.Equal(t, 3, total, "every input rule must be bucketed")
}

// TestMinChainPartition_Empty returns the nil "no result" sentinel.
func TestMinChainPartition_Empty(t *testing.T) {
	result, err := ternopt.MinChainPartition(nil)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

// TestMinBoundedChainPartition_CapInfeasible mirrors the incomparable
// pair under a cap of one: the flow cannot synthesise comparability,
// so two chains remain.
func TestMinBoundedChainPartition_CapInfeasible(t *testing.T) {
	result, err := ternopt.MinBoundedChainPartition([][]filter.Filter{parseAll("1*00", "*100")}, 1)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Groups, 1)
	assert.Len(t, result.Groups[0].Chains, 2)
}

// TestMinBoundedChainPartition_EmptyGroupRejected: a present-but-empty
// group is a caller error.
func TestMinBoundedChainPartition_EmptyGroupRejected(t *testing.T) {
	_, err := ternopt.MinBoundedChainPartition([][]filter.Filter{nil}, 1)
	assert.ErrorIs(t, err, ternopt.ErrEmptyClassifier)

	result, err := ternopt.MinBoundedChainPartition(nil, 1)
	assert.NoError(t, err)
	assert.Nil(t, result, "an empty group list is the no-result sentinel")
}

// TestMinChainPartitionWithExpansion_Merges: supports {0,1} and {0,2}
// merge into {0,1,2} within a budget of 4; both rules report the
// expanded support and share one chain.
func TestMinChainPartitionWithExpansion_Merges(t *testing.T) {
	result, err := ternopt.MinChainPartitionWithExpansion([][]filter.Filter{parseAll("11*", "1*1")}, 4)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Groups, 1)
	group := result.Groups[0]
	require.Len(t, group.Chains, 1)
	assert.Equal(t, []filter.Support{{0, 1, 2}}, group.Chains[0])
	assert.Equal(t, [][]int{{0, 1}}, group.Buckets)
	assert.Equal(t, []filter.Support{{0, 1, 2}, {0, 1, 2}}, group.Expanded)
}

// TestMinChainPartitionWithExpansion_BudgetBlocks: Δ = 20 against one
// unit of headroom leaves the partition untouched.
func TestMinChainPartitionWithExpansion_BudgetBlocks(t *testing.T) {
	tables := [][]filter.Filter{parseAll(
		"11*", "11*", "11*", "11*", "11*", "11*", "11*", "11*", "11*", "11*",
		"1*1", "1*1", "1*1", "1*1", "1*1", "1*1", "1*1", "1*1", "1*1", "1*1",
	)}

	result, err := ternopt.MinChainPartitionWithExpansion(tables, 21)
	require.NoError(t, err)
	require.NotNil(t, result)

	group := result.Groups[0]
	assert.Len(t, group.Chains, 2, "no merge fits the remaining budget")
	for i, s := range group.Expanded {
		orig := filter.ToSupport(tables[0][i])
		assert.True(t, s.Equal(orig), "rule %d must keep its original support", i)
	}
}

// TestBestSubgroup_Blockers is the end-to-end width reduction of the
// four-rule, width-3 classifier.
func TestBestSubgroup_Blockers(t *testing.T) {
	result, err := ternopt.BestSubgroup(parseAll("1*0", "0*1", "11*", "00*"), 2, false, ternopt.AlgoBlockers)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, result.Bits)
	assert.Equal(t, []int{0, 1}, result.Indices)
}

// TestBestSubgroup_MinSimilarity picks columns first, then one maximal
// OI subset over them.
func TestBestSubgroup_MinSimilarity(t *testing.T) {
	result, err := ternopt.BestSubgroup(parseAll("1*0", "0*1", "11*", "00*"), 2, false, ternopt.AlgoMinSimilarity)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, result.Bits)
	assert.Equal(t, []int{0, 1}, result.Indices,
		"11* intersects 1*0 and 00* intersects 0*1 over bits {0, 1}")
}

// TestBestSubgroup_Validation covers the caller-error contracts.
func TestBestSubgroup_Validation(t *testing.T) {
	_, err := ternopt.BestSubgroup(nil, 1, false, ternopt.AlgoOI)
	assert.ErrorIs(t, err, ternopt.ErrEmptyClassifier)

	_, err = ternopt.BestSubgroup(parseAll("1*0", "10"), 1, false, ternopt.AlgoOI)
	assert.ErrorIs(t, err, ternopt.ErrRaggedWidths)

	_, err = ternopt.BestSubgroup(parseAll("1*0"), -1, false, ternopt.AlgoOI)
	assert.ErrorIs(t, err, oi.ErrTargetWidth)

	_, err = ternopt.BestSubgroup(parseAll("1*0"), 1, false, ternopt.Algo(99))
	assert.ErrorIs(t, err, ternopt.ErrUnknownAlgo)
}

// TestSetNumThreads_EndToEnd: the knob must not change any result.
func TestSetNumThreads_EndToEnd(t *testing.T) {
	table := parseAll("1*0", "0*1", "11*", "00*")

	ternopt.SetNumThreads(1)
	one, err := ternopt.BestSubgroup(table, 2, false, ternopt.AlgoBlockers)
	require.NoError(t, err)
	ternopt.SetNumThreads(6)
	six, err := ternopt.BestSubgroup(table, 2, false, ternopt.AlgoBlockers)
	require.NoError(t, err)
	ternopt.SetNumThreads(0)

	assert.Equal(t, one, six)
}
