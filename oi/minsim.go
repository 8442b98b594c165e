package oi

import (
	"fmt"

	"github.com/katalvlaran/ternopt/filter"
)

// BestMinSimilarityBits picks l distinct bit columns, one at a time:
// a candidate column i scores max(countZero, countOne) where countOne
// counts filters with One or Any at i and countZero those with Zero or
// Any. The smallest score wins (first seen on ties) — the column along
// which the rule set is least similar.
//
// Returns ErrNoFilters for an empty filter list and ErrTargetWidth when
// l is negative or exceeds the filter width.
func BestMinSimilarityBits(filters []filter.Filter, l int) ([]int, error) {
	if len(filters) == 0 {
		return nil, ErrNoFilters
	}
	width := filters[0].Width()
	if l < 0 || l > width {
		return nil, fmt.Errorf("%w: %d of %d", ErrTargetWidth, l, width)
	}

	picked := make([]bool, width)
	var result []int
	for len(result) < l {
		bestBit := -1
		bestValue := -1
		for i := 0; i < width; i++ {
			if picked[i] {
				continue
			}
			countOne, countZero := 0, 0
			for _, f := range filters {
				b := f.Bit(i)
				if b == filter.Any || b == filter.One {
					countOne++
				}
				if b == filter.Any || b == filter.Zero {
					countZero++
				}
			}
			value := countZero
			if countOne > value {
				value = countOne
			}
			if bestBit == -1 || value < bestValue {
				bestBit = i
				bestValue = value
			}
		}
		if bestBit < 0 {
			panic("ternopt: no candidate bit left in min-similarity selection")
		}
		picked[bestBit] = true
		result = append(result, bestBit)
	}

	return result, nil
}
