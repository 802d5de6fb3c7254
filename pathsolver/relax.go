package pathsolver

import (
	"github.com/sirupsen/logrus"
	"github.com/yourbasic/bit"

	"github.com/tzaman/advent2021/gridgraph"
)

// relax runs sequential relaxation sweeps over g until a sweep changes nothing.
//
// Each sweep visits cells in row-major order and lowers a cell's cost to
// min(neighbour cost) + own weight. Values written earlier in the sweep are
// visible to later cells. A neighbour is only consulted if it changed since
// the cell was last examined: the previous sweep's changes plus this sweep's
// changes so far. Unchanged neighbours cannot produce an improvement, so the
// fixed point and the sweep count match a full scan.
//
// Returns the converged cost table and the number of sweeps, counting the
// final unchanged one.
//
// Complexity: O(S×R×C) time for S sweeps (S ≤ R×C), O(R×C) memory.
func relax(g *gridgraph.Grid, log logrus.FieldLogger) ([]int, int) {
	n := g.Len()
	dist := newCostTable(n)

	lastChanged := bit.New(0)
	nbrs := make([]int, 0, 4)
	sweeps := 0

	for !lastChanged.Empty() {
		sweeps++
		changed := new(bit.Set)
		for i := 0; i < n; i++ {
			w := g.Cost(i)
			best := dist[i]
			nbrs = g.NeighborIndices(nbrs[:0], i)
			for _, nb := range nbrs {
				if dist[nb] == inf {
					continue
				}
				if !lastChanged.Contains(nb) && !changed.Contains(nb) {
					continue
				}
				if c := dist[nb] + w; c < best {
					best = c
				}
			}
			if best < dist[i] {
				dist[i] = best
				changed.Add(i)
			}
		}
		log.WithFields(logrus.Fields{
			"sweep":   sweeps,
			"updated": changed.Size(),
		}).Debug("relaxation sweep")
		lastChanged = changed
	}

	return dist, sweeps
}
