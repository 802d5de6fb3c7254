// Package gridgraph provides a rectangular grid of traversal costs viewed as a
// 4-connected graph. It supports:
//
//   - Construction from integer rows or lines of decimal digits
//   - Orthogonal neighbour enumeration (up, down, left, right)
//   - Tiling the grid factor×factor times with wrap-around cost increments
//
// Every cell holds a small cost in [MinCost, MaxCost].
package gridgraph

import (
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It copies the input, so later changes to values do not affect the Grid.
// Every failure wraps ErrMalformedGrid together with ErrEmptyGrid,
// ErrNonRectangular or ErrCellRange.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "got %d rows", len(values))
	}
	h, w := len(values), len(values[0])
	cells := make([]uint8, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d cells, want %d", r, len(row), w)
		}
		for c, v := range row {
			if v < MinCost || v > MaxCost {
				return nil, malformed(ErrCellRange, "value %d at (%d,%d)", v, r, c)
			}
			cells = append(cells, uint8(v))
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// FromLines constructs a Grid from equal-length strings of decimal digits,
// one string per row. Any other character fails with ErrBadDigit.
// Complexity: O(R×C).
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "got %d lines", len(lines))
	}
	h, w := len(lines), len(lines[0])
	cells := make([]uint8, 0, h*w)
	for r, line := range lines {
		if len(line) != w {
			return nil, malformed(ErrNonRectangular, "line %d has %d digits, want %d", r, len(line), w)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, malformed(ErrBadDigit, "%q at (%d,%d)", ch, r, c)
			}
			cells = append(cells, ch-'0')
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells. A nil Grid has zero cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cost stored at (row,col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, wrapf(ErrOutOfRange, "(%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return int(g.cells[g.Index(row, col)]), nil
}

// Cost returns the cost at the row-major index i without bounds checks
// beyond the slice's own. Solvers use it in their inner loops.
func (g *Grid) Cost(i int) int {
	return int(g.cells[i])
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (row, col int) {
	return i / g.cols, i % g.cols
}

// Neighbors returns the in-bounds cells directly above, below, left of and
// right of (row,col), in that order. Diagonals are never included.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, Cell{Row: nr, Col: nc})
		}
	}
	return out
}

// NeighborIndices appends the row-major indices of the neighbours of cell i
// to dst and returns the extended slice. It follows the same order as
// Neighbors and lets hot loops avoid allocating.
func (g *Grid) NeighborIndices(dst []int, i int) []int {
	row, col := g.Coordinate(i)
	if row > 0 {
		dst = append(dst, i-g.cols)
	}
	if row < g.rows-1 {
		dst = append(dst, i+g.cols)
	}
	if col > 0 {
		dst = append(dst, i-1)
	}
	if col < g.cols-1 {
		dst = append(dst, i+1)
	}
	return dst
}

// Values returns a deep copy of the costs as a 2D slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = int(g.cells[g.Index(r, c)])
		}
	}
	return out
}

// Equal reports whether both grids have the same shape and costs.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as lines of digits separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range g.cells[r*g.cols : (r+1)*g.cols] {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}
