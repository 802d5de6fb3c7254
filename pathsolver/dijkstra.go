package pathsolver

import (
	"container/heap"

	"github.com/yourbasic/bit"

	"github.com/tzaman/advent2021/gridgraph"
)

// dijkstra computes costs from the origin (index 0) outward in order of
// increasing tentative cost and stops as soon as the terminal cell is
// finalised. It returns the cost table and the predecessor table
// (prev[v] == -1 for the origin and for cells never reached).
//
// Costs of cells finalised before the terminal are exact; the rest are upper
// bounds. The predecessor chain from the terminal only passes through
// finalised cells.
//
// Complexity:
//
//   - Time:  O(N log N) for N = R×C cells (each cell has at most 4 edges).
//   - Space: O(N) for cost and predecessor tables, O(N) heap entries worst case.
func dijkstra(g *gridgraph.Grid) (dist, prev []int) {
	n := g.Len()
	r := &runner{
		g:       g,
		dist:    newCostTable(n),
		prev:    make([]int, n),
		visited: new(bit.Set),
		pq:      make(nodePQ, 0, n),
		target:  n - 1,
		nbrs:    make([]int, 0, 4),
	}
	r.init()
	r.process()

	return r.dist, r.prev
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // read-only input
	dist    []int           // best known cost per cell
	prev    []int           // predecessor on one shortest path, -1 if none
	visited *bit.Set        // cells whose cost is final
	pq      nodePQ          // min-heap with lazy decrease-key
	target  int             // terminal cell index
	nbrs    []int           // scratch buffer for neighbour indices
}

// init clears predecessors and pushes the origin with cost 0.
func (r *runner) init() {
	for i := range r.prev {
		r.prev[i] = -1
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: 0, dist: 0})
}

// process pops the cheapest cell until the heap drains or the target is final.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Stale entry from a lazy decrease-key.
		if r.visited.Contains(u) {
			continue
		}
		r.visited.Add(u)
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax offers every unfinalised neighbour v of u the cost dist[u] + w(v).
func (r *runner) relax(u int) {
	r.nbrs = r.g.NeighborIndices(r.nbrs[:0], u)
	for _, v := range r.nbrs {
		if r.visited.Contains(v) {
			continue
		}
		newDist := r.dist[u] + r.g.Cost(v)
		// Strictly better only; equal costs would just duplicate heap entries.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a cell index and its tentative cost at push time.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
