package pathsolver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tzaman/advent2021/gridgraph"
)

// chitonLines is the 10×10 reference map: 40 untiled, 315 tiled ×5.
var chitonLines = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

// mustLines builds a grid from digit lines or fails the test.
func mustLines(t testing.TB, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromLines(lines)
	require.NoError(t, err)
	return g
}

// uniformGrid builds an rows×cols grid where every cell costs w.
func uniformGrid(t testing.TB, rows, cols, w int) *gridgraph.Grid {
	t.Helper()
	vals := make([][]int, rows)
	for r := range vals {
		vals[r] = make([]int, cols)
		for c := range vals[r] {
			vals[r][c] = w
		}
	}
	g, err := gridgraph.New(vals)
	require.NoError(t, err)
	return g
}

// randomGrid builds a deterministic rows×cols grid with costs in [lo, 9].
func randomGrid(t testing.TB, seed int64, rows, cols, lo int) *gridgraph.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	vals := make([][]int, rows)
	for y := range vals {
		vals[y] = make([]int, cols)
		for x := range vals[y] {
			vals[y][x] = lo + r.Intn(10-lo)
		}
	}
	g, err := gridgraph.New(vals)
	require.NoError(t, err)
	return g
}

// pathCost sums the costs of every cell on path except the first.
func pathCost(t testing.TB, g *gridgraph.Grid, path []gridgraph.Cell) int {
	t.Helper()
	sum := 0
	for _, c := range path[1:] {
		v, err := g.At(c.Row, c.Col)
		require.NoError(t, err)
		sum += v
	}
	return sum
}

// requireValidPath checks that path runs from (0,0) to the bottom-right cell
// in unit orthogonal steps and costs exactly want.
func requireValidPath(t testing.TB, g *gridgraph.Grid, path []gridgraph.Cell, want int) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, path[0])
	require.Equal(t, gridgraph.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		dr, dc := path[k].Row-path[k-1].Row, path[k].Col-path[k-1].Col
		require.Equal(t, 1, dr*dr+dc*dc, "step %d: %v -> %v", k, path[k-1], path[k])
	}
	require.Equal(t, want, pathCost(t, g, path))
}
