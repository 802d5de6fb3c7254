package gridgraph

// WrapIncrement adds k to the cost v. A result above MaxCost wraps back to
// WrapFloor and keeps counting, so 9+1 is 1 and 8+3 is 2. Results that do
// not exceed MaxCost are returned as is, which keeps WrapIncrement(v, 0) == v
// for every v, including a raw 0.
//
// For v in [1, 9] and k ≥ 0 the result is ((v-1+k) mod 9) + 1.
// Complexity: O(1).
func WrapIncrement(v, k int) int {
	n := v + k
	if n <= MaxCost {
		return n
	}
	const span = MaxCost - WrapFloor + 1
	return (n-WrapFloor)%span + WrapFloor
}

// Tile returns a new grid made of factor×factor copies of g. The copy at
// tile offset (ti,tj) has every cost raised by ti+tj through WrapIncrement,
// so cell (ti·Rows + r, tj·Cols + c) holds WrapIncrement(g[r][c], ti+tj).
//
// Tile(1) returns a grid equal to g; g itself is never modified.
// Returns ErrInvalidTileFactor if factor < 1.
//
// Complexity: O(R×C×factor²) time and memory.
func (g *Grid) Tile(factor int) (*Grid, error) {
	if factor < 1 {
		return nil, wrapf(ErrInvalidTileFactor, "got %d", factor)
	}
	h, w := g.rows*factor, g.cols*factor
	cells := make([]uint8, h*w)

	// Each source value only ever needs 2·(factor-1)+1 distinct increments.
	var shifted [MaxCost + 1][]uint8
	for v := MinCost; v <= MaxCost; v++ {
		shifted[v] = make([]uint8, 2*factor-1)
		for k := range shifted[v] {
			shifted[v][k] = uint8(WrapIncrement(v, k))
		}
	}

	for ti := 0; ti < factor; ti++ {
		for r := 0; r < g.rows; r++ {
			src := g.cells[r*g.cols : (r+1)*g.cols]
			dst := cells[(ti*g.rows+r)*w:]
			for tj := 0; tj < factor; tj++ {
				k := ti + tj
				for c, v := range src {
					dst[tj*g.cols+c] = shifted[v][k]
				}
			}
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}
