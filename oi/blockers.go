package oi

import (
	"sort"

	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/logx"
)

// dontcareEpsilon breaks blocker-count ties in favour of columns that
// are already mostly don't-care.
const dontcareEpsilon = 1e-6

// plateauRatio triggers the don't-care fallback: when the smallest
// blocker count among bits in use is at least this fraction of the
// count at rank 2l, the blocker signal has gone flat.
const plateauRatio = 0.9

// findBlockers computes, for every filter i and bit b, whether some
// higher-priority filter j < i would start intersecting i once b is
// masked out:
//
//   - if i and j disagree at no bit in use, j already blocks i at every
//     bit: the whole row is set and the scan of further j stops;
//   - if they disagree at exactly one bit d, dropping d would make them
//     intersect: j blocks i at d;
//   - two or more disagreements leave room to drop any one bit, so j
//     contributes nothing.
//
// The per-filter scans run on the worker pool, one row per task.
func findBlockers(filters []filter.Filter, bitsInUse []int) [][]bool {
	width := filters[0].Width()
	blockers := make([][]bool, len(filters))
	for i := range blockers {
		blockers[i] = make([]bool, width)
	}

	parallelFor(len(filters), func(i int) {
		lower := filters[i]
		for j := 0; j < i; j++ {
			higher := filters[j]

			firstDifference := -1
			onlyDifference := true
			for _, bit := range bitsInUse {
				hb, lb := higher.Bit(bit), lower.Bit(bit)
				if hb != filter.Any && lb != filter.Any && hb != lb {
					if firstDifference != -1 {
						onlyDifference = false

						break
					}
					firstDifference = bit
				}
			}
			if firstDifference == -1 {
				for _, bit := range bitsInUse {
					blockers[i][bit] = true
				}

				break
			}
			if onlyDifference {
				blockers[i][firstDifference] = true
			}
		}
	})

	return blockers
}

// removeBitBlockers chooses the bit to drop by the blocker signal: the
// bit minimising blockerCount − ε·dontcare wins, preferring bits outside
// the avoid set. When the blocker counts have plateaued (see
// plateauRatio) the outcome additionally requests the don't-care
// fallback; the chosen bit and OI indices stay valid in case the caller
// abandons the fallback.
func removeBitBlockers(filters []filter.Filter, bitsInUse, bitsToAvoid, bitNumDontcare []int, l int) removal {
	blockers := findBlockers(filters, bitsInUse)

	bitNumBlockers := make([]int, filters[0].Width())
	for _, row := range blockers {
		for bit, blocked := range row {
			if blocked {
				bitNumBlockers[bit]++
			}
		}
	}

	fallback := false
	if len(bitsInUse) > 2*l {
		byBlockers := append([]int(nil), bitsInUse...)
		sort.SliceStable(byBlockers, func(a, b int) bool {
			return bitNumBlockers[byBlockers[a]] < bitNumBlockers[byBlockers[b]]
		})
		logx.L().Info("blocker profile",
			"lowest", bitNumBlockers[byBlockers[0]],
			"rank_2l", bitNumBlockers[byBlockers[2*l]])
		if float64(bitNumBlockers[byBlockers[0]]) >= plateauRatio*float64(bitNumBlockers[byBlockers[2*l]]) {
			fallback = true
		}
	}

	bestBit := findBestBit(bitsInUse, bitsToAvoid,
		func(bit int) float64 {
			return float64(bitNumBlockers[bit]) - dontcareEpsilon*float64(bitNumDontcare[bit])
		},
		func(next, best float64) bool { return next < best },
	)
	if bestBit < 0 {
		panic("ternopt: no candidate bit left in blocker selection")
	}

	var oiIndices []int
	for i := range blockers {
		if !blockers[i][bestBit] {
			oiIndices = append(oiIndices, i)
		}
	}

	logx.L().Info("blocker bit chosen",
		"bit", bestBit, "rules", len(oiIndices), "dontcare", bitNumDontcare[bestBit])

	return removal{bit: bestBit, oiIndices: oiIndices, fallback: fallback}
}
