// Package pathsolver computes the minimum-cost route across a gridgraph.Grid
// from its top-left cell to its bottom-right cell.
//
// Overview:
//
//   - Moves go up, down, left or right; entering a cell costs the cell's value.
//   - The start cell is never counted, so a 1×1 grid costs 0.
//   - Two strategies produce identical costs:
//     StrategyRelax (default) repeats relaxation sweeps over a cost table
//     until a sweep changes nothing; StrategyDijkstra expands cells in order
//     of tentative cost with a min-heap and stops at the terminal cell.
//
// Key features:
//
//   - Functional options, as elsewhere in the module: WithStrategy,
//     WithWorkers, WithReturnPath, WithLogger.
//   - WithWorkers(n > 1) splits rows into bands relaxed concurrently, with a
//     join between sweeps and an atomic "changed" flag OR-ed across workers.
//   - WithReturnPath fills Result.Path with one optimal route.
//   - WithLogger emits Debug entries per sweep and per solve via logrus.
//
// Performance and complexity (N = R×C cells):
//
//   - Relax:    O(S×N) time for S sweeps, S ≤ N; O(N) space.
//   - Dijkstra: O(N log N) time; O(N) space.
//
// Termination: costs start at +∞ (origin 0), only ever decrease, are bounded
// below by 0 and move in integer steps, so the sweeps reach a fixed point.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGrid:       nil grid or zero cells.
//   - ErrUnreachable:     terminal cost still +∞ (cannot happen on a
//     4-connected rectangle, checked anyway).
//   - ErrUnknownStrategy: Strategy outside the declared constants.
//   - ErrBadWorkers:      WithWorkers(n < 1), reported via panic.
//
// Thread safety:
//
//   - Solve keeps all mutable state on its own call stack. Grids are
//     read-only, so concurrent Solve calls on the same grid are safe.
//
// Example:
//
//	g, _ := gridgraph.FromLines(lines)
//	big, _ := g.Tile(5)
//	cost, err := pathsolver.MinCost(big, pathsolver.WithStrategy(pathsolver.StrategyDijkstra))
package pathsolver
