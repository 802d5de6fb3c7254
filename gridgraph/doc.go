// Package gridgraph treats a rectangular map of per-cell traversal costs as a
// 4-connected graph and expands it by tiling.
//
// What:
//
//   - Grid wraps a rectangular cost map stored as a flat row-major buffer.
//   - Every cell holds a cost in [MinCost, MaxCost] (0..9 for raw input).
//   - Neighbors enumerates the orthogonal cells: up, down, left, right.
//   - Tile builds a factor×factor expansion whose tiles are shifted by
//     WrapIncrement(v, ti+tj), wrapping from above MaxCost back to WrapFloor.
//
// Why:
//
//   - Shortest-path engines (see package pathsolver) need cheap index-based
//     adjacency instead of string-keyed vertices.
//   - Tiling lets one small input describe a much larger map.
//
// Complexity:
//
//   - New / FromLines / Parse: O(R×C), Memory: O(R×C).
//   - Neighbors / NeighborIndices: O(1).
//   - Tile(f):                   O(R×C×f²), Memory: O(R×C×f²).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure, joined with
//     one of ErrEmptyGrid, ErrNonRectangular, ErrCellRange or ErrBadDigit.
//   - ErrInvalidTileFactor: Tile called with factor < 1.
//   - ErrOutOfRange: At called with coordinates outside the grid.
package gridgraph
