// Package gridgraph defines the cost grid, its cell coordinates and the
// constants governing cell values.
package gridgraph

import "fmt"

const (
	// MinCost is the smallest value accepted from raw input.
	MinCost = 0
	// MaxCost is the ceiling above which WrapIncrement wraps back to WrapFloor.
	MaxCost = 9
	// WrapFloor is the value a cell wraps to once it passes MaxCost.
	WrapFloor = 1
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets lists the 4-connected moves in enumeration order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular map of per-cell traversal costs.
// Cells are stored row-major in a single owned buffer; a Grid is read-only
// once built and Tile always returns a fresh Grid.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// wrapf attaches a formatted message to a sentinel cause.
func wrapf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, args...))
}
