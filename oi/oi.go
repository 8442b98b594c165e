package oi

import "github.com/katalvlaran/ternopt/filter"

// FindMaximalOISubset greedily selects filter indices in input order:
// index i joins the result iff it intersects none of the filters
// already selected, judged over bits. The result is maximal under
// greedy extension, not globally maximum — the input order decides.
func FindMaximalOISubset(filters []filter.Filter, bits []int) []int {
	var result []int
	for i := range filters {
		intersects := false
		for _, j := range result {
			if filter.Intersect(filters[j], filters[i], bits) {
				intersects = true

				break
			}
		}
		if !intersects {
			result = append(result, i)
		}
	}

	return result
}

// FindMaximalOISubsetIndices is FindMaximalOISubset restricted to a
// caller-supplied subset of indices, scanned in the given order. The
// returned values index the original filter list.
func FindMaximalOISubsetIndices(filters []filter.Filter, indices []int, bits []int) []int {
	var result []int
	for _, i := range indices {
		intersects := false
		for _, j := range result {
			if filter.Intersect(filters[j], filters[i], bits) {
				intersects = true

				break
			}
		}
		if !intersects {
			result = append(result, i)
		}
	}

	return result
}

// IsOI reports whether filters are pairwise non-intersecting over bits.
// The per-filter scans run on the worker pool; each writes only its own
// slot.
func IsOI(filters []filter.Filter, bits []int) bool {
	hasIntersection := make([]bool, len(filters))
	parallelFor(len(filters), func(i int) {
		for j := 0; j < i; j++ {
			if filter.Intersect(filters[i], filters[j], bits) {
				hasIntersection[i] = true

				return
			}
		}
	})

	for _, x := range hasIntersection {
		if x {
			return false
		}
	}

	return true
}
