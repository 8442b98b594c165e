package ternopt

import (
	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/oi"
)

// Subgroup is the result of BestSubgroup: the selected bit columns and
// the indices of the rules that survive as an order-independent subset
// over them.
type Subgroup struct {
	Bits    []int
	Indices []int
}

// BestSubgroup reduces one rule table to l bit columns with the chosen
// strategy and returns the columns together with the surviving rule
// indices. onlyExact additionally demands that every returned column be
// exact — no surviving rule may have a don't-care there (honoured by
// the two reduction strategies; AlgoMinSimilarity ignores it).
//
// Returns ErrEmptyClassifier for an empty table, ErrRaggedWidths when
// the rules disagree on width, oi.ErrTargetWidth for a bad l, and
// ErrUnknownAlgo for an unrecognised strategy.
func BestSubgroup(table []filter.Filter, l int, onlyExact bool, algo Algo) (*Subgroup, error) {
	if len(table) == 0 {
		return nil, ErrEmptyClassifier
	}
	for _, f := range table {
		if f.Width() != table[0].Width() {
			return nil, ErrRaggedWidths
		}
	}

	switch algo {
	case AlgoMinSimilarity:
		bits, err := oi.BestMinSimilarityBits(table, l)
		if err != nil {
			return nil, err
		}

		return &Subgroup{Bits: bits, Indices: oi.FindMaximalOISubset(table, bits)}, nil

	case AlgoOI, AlgoBlockers:
		mode := oi.ModeMaxOI
		if algo == AlgoBlockers {
			mode = oi.ModeBlockers
		}
		bits, indices, err := oi.BestToStayMinME(table, l, mode, onlyExact)
		if err != nil {
			return nil, err
		}

		return &Subgroup{Bits: bits, Indices: indices}, nil

	default:
		return nil, ErrUnknownAlgo
	}
}

// SetNumThreads bounds the worker pool used by the parallel scans of
// the oi package. n ≤ 0 restores the implementation-chosen default.
func SetNumThreads(n int) {
	oi.SetWorkers(n)
}
