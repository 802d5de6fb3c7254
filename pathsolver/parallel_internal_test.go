package pathsolver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzaman/advent2021/gridgraph"
)

// TestSplitRows checks that bands are whole rows, contiguous, balanced and
// never outnumber the rows.
func TestSplitRows(t *testing.T) {
	cases := []struct {
		rows, cols, workers int
		wantRows            []int
	}{
		{10, 3, 3, []int{4, 3, 3}},
		{4, 5, 4, []int{1, 1, 1, 1}},
		{2, 7, 8, []int{1, 1}},
		{1, 9, 3, []int{1}},
		{7, 1, 1, []int{7}},
	}
	for _, tc := range cases {
		vals := make([][]int, tc.rows)
		for r := range vals {
			vals[r] = make([]int, tc.cols)
		}
		g, err := gridgraph.New(vals)
		require.NoError(t, err)

		bands := splitRows(g, tc.workers)
		require.Len(t, bands, len(tc.wantRows))
		next := 0
		for k, b := range bands {
			assert.Equal(t, next, b.lo, "band %d starts where the previous ended", k)
			assert.Equal(t, tc.wantRows[k]*tc.cols, b.hi-b.lo, "band %d size", k)
			next = b.hi
		}
		assert.Equal(t, g.Len(), next)
	}
}

// TestRelaxTablesMatch compares complete converged tables: sequential and
// banded sweeps must agree on every cell, not only the terminal one.
func TestRelaxTablesMatch(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		rows, cols := 1+r.Intn(20), 1+r.Intn(20)
		vals := make([][]int, rows)
		for y := range vals {
			vals[y] = make([]int, cols)
			for x := range vals[y] {
				vals[y][x] = r.Intn(10)
			}
		}
		g, err := gridgraph.New(vals)
		require.NoError(t, err)

		seq, _ := relax(g, discard)
		for _, workers := range []int{2, 3, 8} {
			par, _ := relaxParallel(g, workers, discard)
			require.Equal(t, seq, par, "trial %d, %d workers", trial, workers)
		}

		dist, _ := dijkstra(g)
		assert.Equal(t, seq[len(seq)-1], dist[len(dist)-1], "trial %d", trial)
	}
}

// TestDijkstraPredecessors checks the predecessor chain on a grid with a
// single cheap corridor.
func TestDijkstraPredecessors(t *testing.T) {
	g, err := gridgraph.FromLines([]string{"199", "199", "111"})
	require.NoError(t, err)

	dist, prev := dijkstra(g)
	assert.Equal(t, 4, dist[8])
	assert.Equal(t, -1, prev[0])

	path := followPredecessors(g, prev, 8)
	assert.Equal(t, []gridgraph.Cell{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, path)
}
