// Package advent2021 is a weighted-grid shortest-path engine with map tiling.
//
// Given a rectangular map of per-cell costs (digits 0–9), it finds the
// cheapest route from the top-left cell to the bottom-right cell moving only
// up, down, left or right, where entering a cell costs that cell's value.
// The map can also be tiled factor×factor times, each tile's costs raised by
// its Manhattan offset and wrapped from 9 back to 1.
//
// Layout:
//
//	gridgraph/   Grid: construction, neighbours, Tile and WrapIncrement
//	pathsolver/  Solve / MinCost: relaxation sweeps (sequential or banded
//	             parallel) and a heap-based Dijkstra, identical results
//	cmd/chiton/  command-line entry point with YAML config and logrus logging
//
// Quick example:
//
//	g, _ := gridgraph.FromLines([]string{"116", "138", "213"})
//	cost, _ := pathsolver.MinCost(g)          // 7
//	big, _ := g.Tile(5)
//	cost, _ = pathsolver.MinCost(big, pathsolver.WithStrategy(pathsolver.StrategyDijkstra))
package advent2021
