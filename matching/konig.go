package matching

// AlternatingReach runs the König reachability scan over a maximum
// matching: a BFS that starts from every unmatched left vertex, crosses
// left→right only along unmatched edges and right→left only along the
// matched edge of the right vertex.
//
// It returns which left and right vertices the scan reached. On a
// maximum matching, the reached sets characterize a maximum antichain of
// the underlying poset: element i is in the antichain iff reachedL[i]
// and not reachedR[i] (see chains.MaxAntichain).
//
// Complexity: O(V + E) time, O(V) memory.
func AlternatingReach(adj [][]int, mateL, mateR []int) (reachedL, reachedR []bool) {
	reachedL = make([]bool, len(mateL))
	reachedR = make([]bool, len(mateR))

	// Seed the queue with every free left vertex.
	queue := make([]int, 0, len(mateL))
	for i, m := range mateL {
		if m == Unmatched {
			reachedL[i] = true
			queue = append(queue, i)
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		for _, j := range adj[i] {
			if j == mateL[i] || reachedR[j] {
				continue
			}
			reachedR[j] = true
			// Cross back along the matched edge of j, if any.
			if k := mateR[j]; k != Unmatched && !reachedL[k] {
				reachedL[k] = true
				queue = append(queue, k)
			}
		}
	}

	return reachedL, reachedR
}
