package oi

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/logx"
)

// fallbackMinKeepRatio: the don't-care fallback is abandoned when it
// would keep fewer than this fraction of the surviving filters.
const fallbackMinKeepRatio = 0.001

// removal is the outcome of one bit-selection round: the column to
// drop, the filter indices that stay OI without it, and whether the
// don't-care fallback should be attempted instead.
type removal struct {
	bit       int
	oiIndices []int
	fallback  bool
}

// findBestBit scans the candidate bits in their bits-in-use order,
// preferring bits outside the avoid set; avoided bits are considered
// only when no other candidate exists. better(next, best) decides the
// direction of the optimum; the first-seen best wins ties. Returns -1
// only when allBits is empty.
func findBestBit(allBits, bitsToAvoid []int, score func(int) float64, better func(next, best float64) bool) int {
	avoid := mapset.NewThreadUnsafeSet[int](bitsToAvoid...)

	bestBit := -1
	var bestValue float64
	for _, bit := range allBits {
		if avoid.Contains(bit) {
			continue
		}
		if v := score(bit); bestBit == -1 || better(v, bestValue) {
			bestBit = bit
			bestValue = v
		}
	}
	if bestBit != -1 {
		return bestBit
	}

	for _, bit := range allBits {
		if !avoid.Contains(bit) {
			continue
		}
		if v := score(bit); bestBit == -1 || better(v, bestValue) {
			bestBit = bit
			bestValue = v
		}
	}

	return bestBit
}

// findExact returns the bits in use at which no filter is Any,
// preserving the bits-in-use order.
func findExact(filters []filter.Filter, bitsInUse []int) []int {
	var exact []int
	for _, bit := range bitsInUse {
		allExact := true
		for _, f := range filters {
			if f.Bit(bit) == filter.Any {
				allExact = false

				break
			}
		}
		if allExact {
			exact = append(exact, bit)
		}
	}

	return exact
}

// removeBitOI chooses the bit whose removal leaves the largest maximal
// OI subset, with the same avoid-set preference as the blocker variant.
func removeBitOI(filters []filter.Filter, bitsInUse, bitsToAvoid []int) removal {
	bestBit := findBestBit(bitsInUse, bitsToAvoid,
		func(bit int) float64 {
			remaining := make([]int, 0, len(bitsInUse)-1)
			for _, b := range bitsInUse {
				if b != bit {
					remaining = append(remaining, b)
				}
			}

			return float64(len(FindMaximalOISubset(filters, remaining)))
		},
		func(next, best float64) bool { return next > best },
	)
	if bestBit < 0 {
		panic("ternopt: no candidate bit left in max-OI selection")
	}

	return removal{bit: bestBit, oiIndices: FindMaximalOISubset(filters, bitsInUse)}
}

// BestToStayMinME reduces the classifier to l bit columns, dropping one
// column per round while restricting the filters to a maximal OI subset
// over the remaining columns. With onlyExact the loop additionally runs
// until every remaining column is exact (no surviving filter has Any
// there), preferring to drop non-exact columns.
//
// Per round:
//  1. Recompute the exact columns (the avoid set when onlyExact) and the
//     per-column Any counts.
//  2. Ask the mode's signal which column to drop (removeBitOI or
//     removeBitBlockers).
//  3. If the blocker signal requested the don't-care fallback, jump
//     directly to the l most masked-out columns, drop the filters that
//     are inexact there (when onlyExact), and finish — unless that would
//     keep almost nothing, in which case the fallback is abandoned and
//     the round proceeds as a normal removal.
//  4. Project the filter list and index map onto the surviving OI
//     subset.
//
// Returns the final columns and the original indices of the surviving
// filters. The result is verified to be OI; a violation is a bug and
// panics.
func BestToStayMinME(fs []filter.Filter, l int, mode Mode, onlyExact bool) (bitsInUse, indices []int, err error) {
	if len(fs) == 0 {
		return nil, nil, ErrNoFilters
	}
	if l < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrTargetWidth, l)
	}
	if mode != ModeMaxOI && mode != ModeBlockers {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	logx.L().Info("starting minme reduction", "mode", mode.String(), "only_exact", onlyExact)

	filters := append([]filter.Filter(nil), fs...)
	width := filters[0].Width()
	bitsInUse = make([]int, width)
	indices = make([]int, len(filters))
	for i := range bitsInUse {
		bitsInUse[i] = i
	}
	for i := range indices {
		indices[i] = i
	}

	exactBitsInUse := findExact(filters, bitsInUse)

	for len(bitsInUse) > l || (onlyExact && !equalInts(bitsInUse, exactBitsInUse)) {
		var bitsToAvoid []int
		if onlyExact {
			bitsToAvoid = exactBitsInUse
		}

		bitNumDontcare := make([]int, width)
		for _, f := range filters {
			for _, bit := range bitsInUse {
				if f.Bit(bit) == filter.Any {
					bitNumDontcare[bit]++
				}
			}
		}

		var rem removal
		switch mode {
		case ModeMaxOI:
			rem = removeBitOI(filters, bitsInUse, bitsToAvoid)
		case ModeBlockers:
			rem = removeBitBlockers(filters, bitsInUse, bitsToAvoid, bitNumDontcare, l)
		}

		oiIndices := rem.oiIndices
		useFallback := rem.fallback
		if useFallback {
			logx.L().Info("blocker signal plateaued, trying dont-care fallback")
			byDontcare := append([]int(nil), bitsInUse...)
			sort.SliceStable(byDontcare, func(a, b int) bool {
				return bitNumDontcare[byDontcare[a]] > bitNumDontcare[byDontcare[b]]
			})
			curInUse := append([]int(nil), byDontcare[:l]...)
			for _, bit := range curInUse {
				logx.L().Info("fallback bit", "bit", bit, "dontcare", bitNumDontcare[bit])
			}

			// Keep only filters exact at every fallback column.
			var keep []int
			for i, f := range filters {
				add := true
				if onlyExact {
					for _, bit := range curInUse {
						if f.Bit(bit) == filter.Any {
							add = false

							break
						}
					}
				}
				if add {
					keep = append(keep, i)
				}
			}

			if float64(len(keep)) < fallbackMinKeepRatio*float64(len(filters)) {
				logx.L().Info("dont-care fallback abandoned", "kept", len(keep))
				useFallback = false
			} else {
				bitsInUse = curInUse
				oiIndices = FindMaximalOISubsetIndices(filters, keep, curInUse)
				logx.L().Info("dont-care fallback applied",
					"bits", len(bitsInUse), "exact", len(keep), "oi", len(oiIndices))
			}
		}

		if !useFallback {
			bitsInUse = removeInt(bitsInUse, rem.bit)
		}

		newFilters := make([]filter.Filter, 0, len(oiIndices))
		newIndices := make([]int, 0, len(oiIndices))
		for _, i := range oiIndices {
			newFilters = append(newFilters, filters[i])
			newIndices = append(newIndices, indices[i])
		}
		filters, indices = newFilters, newIndices

		exactBitsInUse = findExact(filters, bitsInUse)

		logx.L().Info("bit removed",
			"bit", rem.bit,
			"bits_left", len(bitsInUse),
			"exact_left", len(exactBitsInUse),
			"entries_left", len(filters))

		if useFallback {
			break
		}
	}

	if !IsOI(filters, bitsInUse) {
		panic("ternopt: minme reduction produced a non-OI filter set")
	}

	return bitsInUse, indices, nil
}

// removeInt drops every occurrence of x, preserving order.
func removeInt(xs []int, x int) []int {
	out := make([]int, 0, len(xs))
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}

// equalInts reports element-wise equality.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
