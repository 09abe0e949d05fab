package irradiance

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// runAccumulation sums every source sample's contribution into dst, using a
// parallel reduction when the workload justifies it. Each worker owns a
// disjoint range of source samples and a private buffer; buffers are combined
// by addition afterward, so no locking is needed and the result matches the
// sequential path up to float rounding.
func runAccumulation(dst []Real, xr, yr, xs, ys []Real, standoff, intensity Real) {
	m := len(xs) * len(ys)

	workers := runtime.NumCPU()
	if workers > m/minSamplesPerWorker {
		workers = m / minSamplesPerWorker
	}
	if ForceSequential || workers <= 1 {
		if Debug {
			fmt.Printf("[DEBUG] accumulating %d source samples sequentially\n", m)
		}
		accumulate(dst, xr, yr, xs, ys, 0, m, standoff, intensity)
		return
	}
	if Debug {
		fmt.Printf("[DEBUG] accumulating %d source samples on %d workers\n", m, workers)
	}

	// Spread source samples evenly, remainder to the first workers.
	per, rem := m/workers, m%workers

	var counter int64
	printEvery := int64(1)
	if m >= 100 {
		printEvery = int64(m / 100) // ~1%
	}

	partials := make([][]Real, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + per
		if w < rem {
			hi++
		}
		buf := make([]Real, len(dst))
		partials[w] = buf
		go func(lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				accumulate(buf, xr, yr, xs, ys, k, k+1, standoff, intensity)
				if Progress {
					done := atomic.AddInt64(&counter, 1)
					if done%printEvery == 0 {
						fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(m))
					}
				}
			}
		}(lo, hi)
		lo = hi
	}
	wg.Wait()

	for _, buf := range partials {
		floats.Add(dst, buf)
	}
}
