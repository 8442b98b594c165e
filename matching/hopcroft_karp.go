package matching

// Unmatched marks a vertex with no matching partner.
const Unmatched = -1

// HopcroftKarp computes a maximum-cardinality matching of the bipartite
// graph with nLeft left vertices, nRight right vertices and edges
// adj[i] (right endpoints of left vertex i, any order).
//
// It returns:
//   - mateL : mateL[i] = right partner of left i, or Unmatched
//   - mateR : mateR[j] = left partner of right j, or Unmatched
//   - size  : the number of matched edges
//
// Steps:
//  1. Initialize both mate arrays to Unmatched (O(V)).
//  2. Repeat until no augmenting path exists:
//     a. BFS from every free left vertex, layering left vertices by the
//     length of their shortest alternating path (O(V + E)).
//     b. DFS from each free left vertex along the layers, flipping one
//     vertex-disjoint shortest augmenting path per free vertex (O(E)).
//  3. Count matched left vertices.
//
// Complexity:
//
//	Time:   O(E * √V)
//	Memory: O(V) for layers and iteration state.
func HopcroftKarp(nLeft, nRight int, adj [][]int) (mateL, mateR []int, size int) {
	mateL = make([]int, nLeft)
	mateR = make([]int, nRight)
	for i := range mateL {
		mateL[i] = Unmatched
	}
	for j := range mateR {
		mateR[j] = Unmatched
	}

	const inf = int(^uint(0) >> 1)
	layer := make([]int, nLeft)
	queue := make([]int, 0, nLeft)

	// bfsLayers builds the alternating-path layering and reports whether
	// any free right vertex is reachable (i.e. an augmenting path exists).
	bfsLayers := func() bool {
		queue = queue[:0]
		for i := 0; i < nLeft; i++ {
			if mateL[i] == Unmatched {
				layer[i] = 0
				queue = append(queue, i)
			} else {
				layer[i] = inf
			}
		}

		found := false
		for head := 0; head < len(queue); head++ {
			i := queue[head]
			for _, j := range adj[i] {
				k := mateR[j]
				if k == Unmatched {
					// A free right vertex ends a shortest augmenting path.
					found = true
					continue
				}
				if layer[k] == inf {
					layer[k] = layer[i] + 1
					queue = append(queue, k)
				}
			}
		}

		return found
	}

	// augment flips one shortest augmenting path starting at left i.
	var augment func(i int) bool
	augment = func(i int) bool {
		for _, j := range adj[i] {
			k := mateR[j]
			if k == Unmatched || (layer[k] == layer[i]+1 && augment(k)) {
				mateL[i] = j
				mateR[j] = i

				return true
			}
		}
		// Dead end: exclude i from further DFS probes in this phase.
		layer[i] = inf

		return false
	}

	for bfsLayers() {
		for i := 0; i < nLeft; i++ {
			if mateL[i] == Unmatched {
				augment(i)
			}
		}
	}

	for i := 0; i < nLeft; i++ {
		if mateL[i] != Unmatched {
			size++
		}
	}

	return mateL, mateR, size
}
