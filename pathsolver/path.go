package pathsolver

import (
	"github.com/yourbasic/bit"

	"github.com/tzaman/advent2021/gridgraph"
)

// followPredecessors walks prev back from target to the origin and returns
// the cells in travel order.
func followPredecessors(g *gridgraph.Grid, prev []int, target int) []gridgraph.Cell {
	var rev []int
	for at := target; at >= 0; at = prev[at] {
		rev = append(rev, at)
	}
	return toCells(g, rev, true)
}

// traceTightEdges rebuilds one optimal path from a converged cost table.
//
// An edge u→v is tight when dist[u] + w(v) == dist[v]. Every path made only
// of tight edges costs exactly dist[target], and the shortest-path tree is
// made of tight edges, so a breadth-first search from the origin over tight
// edges always reaches target. The search keeps a visited set because
// zero-cost cells can form tight cycles.
func traceTightEdges(g *gridgraph.Grid, dist []int, target int) []gridgraph.Cell {
	parent := make([]int, g.Len())
	seen := bit.New(0)
	queue := []int{0}
	parent[0] = -1
	nbrs := make([]int, 0, 4)

	for qi := 0; qi < len(queue) && !seen.Contains(target); qi++ {
		u := queue[qi]
		nbrs = g.NeighborIndices(nbrs[:0], u)
		for _, v := range nbrs {
			if seen.Contains(v) || dist[u]+g.Cost(v) != dist[v] {
				continue
			}
			seen.Add(v)
			parent[v] = u
			queue = append(queue, v)
		}
	}
	if !seen.Contains(target) {
		return nil
	}
	return followPredecessors(g, parent, target)
}

// toCells converts indices to cells, reversing them first if asked.
func toCells(g *gridgraph.Grid, idx []int, reverse bool) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(idx))
	for k, i := range idx {
		if reverse {
			k = len(idx) - 1 - k
		}
		r, c := g.Coordinate(i)
		out[k] = gridgraph.Cell{Row: r, Col: c}
	}
	return out
}
