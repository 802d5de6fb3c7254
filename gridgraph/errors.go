package gridgraph

import "errors"

var (
	// ErrMalformedGrid is the umbrella error for any input that cannot form a grid.
	// Every construction failure wraps it together with a more precise cause.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or a row with no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellRange indicates a cell value outside [MinCost, MaxCost].
	ErrCellRange = errors.New("gridgraph: cell value out of range")
	// ErrBadDigit indicates a character that is not a decimal digit.
	ErrBadDigit = errors.New("gridgraph: not a decimal digit")
	// ErrInvalidTileFactor indicates a tiling factor below 1.
	ErrInvalidTileFactor = errors.New("gridgraph: tile factor must be positive")
	// ErrOutOfRange indicates a (row, col) outside the grid.
	ErrOutOfRange = errors.New("gridgraph: cell index out of range")
)

// malformed joins the umbrella error with the precise cause and a context message.
func malformed(cause error, format string, args ...any) error {
	return errors.Join(ErrMalformedGrid, wrapf(cause, format, args...))
}
