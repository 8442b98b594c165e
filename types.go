package ternopt

import (
	"errors"

	"github.com/katalvlaran/ternopt/filter"
)

// Algo selects the bit-reduction strategy used by BestSubgroup.
type Algo int

const (
	// AlgoMinSimilarity picks columns by minimum similarity, then takes
	// one maximal OI subset over them.
	AlgoMinSimilarity Algo = iota

	// AlgoOI drops one column per round: the column whose removal
	// preserves the largest OI subset.
	AlgoOI

	// AlgoBlockers drops one column per round by blocker counting, with
	// the don't-care fallback for plateaued signals.
	AlgoBlockers
)

// Sentinel errors for the batch drivers.
var (
	// ErrEmptyClassifier is returned when a rule table that must be
	// non-empty contains no rules.
	ErrEmptyClassifier = errors.New("ternopt: classifier must contain at least one rule")

	// ErrRaggedWidths is returned when the rules of one table disagree
	// on width.
	ErrRaggedWidths = errors.New("ternopt: all rules of a classifier must share one width")

	// ErrUnknownAlgo is returned for an Algo value outside the declared
	// constants.
	ErrUnknownAlgo = errors.New("ternopt: unknown subgroup algorithm")
)

// Partition is the result of a chain partition over one rule table:
// the chains themselves, plus one bucket per chain holding the indices
// of the input rules whose support landed in that chain.
type Partition struct {
	Chains  [][]filter.Support
	Buckets [][]int
}

// BoundedPartition is the per-group result of the bounded partitioner.
type BoundedPartition struct {
	Groups []Partition
}

// ExpandedGroup is one group's result from the expanding partitioner:
// the partition of the expanded supports, and, for every input rule of
// the group, the support it was expanded to.
type ExpandedGroup struct {
	Partition
	Expanded []filter.Support
}

// ExpandedPartition is the per-group result of the expanding
// partitioner.
type ExpandedPartition struct {
	Groups []ExpandedGroup
}
