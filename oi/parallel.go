package oi

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// workers is the configured pool size; 0 means implementation-chosen.
var workers atomic.Int32

// SetWorkers bounds the number of goroutines the parallel scans use.
// n ≤ 0 restores the default (GOMAXPROCS). Safe for concurrent use.
func SetWorkers(n int) {
	if n < 0 {
		n = 0
	}
	workers.Store(int32(n))
}

func workerCount() int {
	if n := workers.Load(); n > 0 {
		return int(n)
	}

	return runtime.GOMAXPROCS(0)
}

// parallelFor runs body(i) for every i in [0, n) on the bounded pool.
// Each body writes only to its own pre-allocated slot, so the result is
// independent of scheduling; the callers' reductions then iterate in
// index order, making any worker count bit-identical to workers = 1.
func parallelFor(n int, body func(i int)) {
	var g errgroup.Group
	g.SetLimit(workerCount())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			body(i)

			return nil
		})
	}
	_ = g.Wait() // bodies never return errors
}
