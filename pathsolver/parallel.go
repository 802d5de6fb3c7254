package pathsolver

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/tzaman/advent2021/gridgraph"
)

// band is a half-open range of row-major cell indices [lo, hi) owned by one worker.
type band struct {
	lo, hi int
}

// splitRows divides the rows of g into at most workers contiguous bands of
// whole rows, sized as evenly as possible.
func splitRows(g *gridgraph.Grid, workers int) []band {
	rows, cols := g.Rows(), g.Cols()
	if workers > rows {
		workers = rows
	}
	bands := make([]band, 0, workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := rows / workers
		if w < rows%workers {
			size++
		}
		bands = append(bands, band{lo: start * cols, hi: (start + size) * cols})
		start += size
	}
	return bands
}

// relaxParallel runs relaxation sweeps with the rows split across workers.
//
// Two cost tables alternate: during a sweep every worker reads the previous
// sweep's table (cur) and writes only its own band of the next one, so no
// cell is written by more than one goroutine and nothing written is read
// across bands. Inside its own band a worker also sees the values it has
// already produced this sweep. All workers join before the tables swap, and
// the per-worker "changed" results are OR-ed into one atomic flag that
// decides termination.
//
// Returns the converged cost table and the number of sweeps, counting the
// final unchanged one. The result equals relax's.
func relaxParallel(g *gridgraph.Grid, workers int, log logrus.FieldLogger) ([]int, int) {
	n := g.Len()
	cur := newCostTable(n)
	next := make([]int, n)
	copy(next, cur)

	bands := splitRows(g, workers)
	var changed atomic.Bool
	sweeps := 0

	for {
		sweeps++
		changed.Store(false)

		var wg sync.WaitGroup
		for w, b := range bands {
			wg.Add(1)
			go func(w int, b band) {
				defer wg.Done()
				updated := relaxBand(g, cur, next, b)
				if updated > 0 {
					changed.Store(true)
				}
				log.WithFields(logrus.Fields{
					"sweep":   sweeps,
					"worker":  w,
					"updated": updated,
				}).Debug("relaxation sweep")
			}(w, b)
		}
		wg.Wait()

		cur, next = next, cur
		if !changed.Load() {
			return cur, sweeps
		}
	}
}

// relaxBand writes next[i] for every cell i in b and returns how many cells
// improved on cur. Neighbours inside b are read from whichever table is
// lower; neighbours outside b are read from cur only.
func relaxBand(g *gridgraph.Grid, cur, next []int, b band) int {
	nbrs := make([]int, 0, 4)
	updated := 0
	for i := b.lo; i < b.hi; i++ {
		w := g.Cost(i)
		best := cur[i]
		nbrs = g.NeighborIndices(nbrs[:0], i)
		for _, nb := range nbrs {
			d := cur[nb]
			if nb >= b.lo && nb < b.hi && next[nb] < d {
				d = next[nb]
			}
			if d == inf {
				continue
			}
			if c := d + w; c < best {
				best = c
			}
		}
		next[i] = best
		if best < cur[i] {
			updated++
		}
	}
	return updated
}
