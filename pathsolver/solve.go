package pathsolver

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tzaman/advent2021/gridgraph"
)

// Solve computes the minimum cost of travelling from the top-left cell of g
// to its bottom-right cell using up/down/left/right moves. Entering a cell
// costs that cell's value; the starting cell is never counted.
//
// Preconditions and validation (in order):
//  1. Options are applied; invalid values panic inside their constructors.
//  2. g must hold at least one cell (ErrEmptyGrid).
//  3. Strategy must be known (ErrUnknownStrategy).
//  4. The terminal cell must end with a finite cost (ErrUnreachable).
//
// Every strategy returns the same Cost for the same grid. Solve never
// modifies g, so calling it twice yields identical results.
func Solve(g *gridgraph.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.Len() == 0 {
		return Result{}, ErrEmptyGrid
	}

	log := cfg.Logger.WithFields(logrus.Fields{
		"strategy": cfg.Strategy.String(),
		"rows":     g.Rows(),
		"cols":     g.Cols(),
	})
	start := time.Now()

	var (
		dist   []int
		prev   []int
		sweeps int
	)
	switch cfg.Strategy {
	case StrategyRelax:
		if cfg.Workers > 1 {
			dist, sweeps = relaxParallel(g, cfg.Workers, log)
		} else {
			dist, sweeps = relax(g, log)
		}
	case StrategyDijkstra:
		dist, prev = dijkstra(g)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Strategy)
	}

	target := g.Len() - 1
	if dist[target] == inf {
		return Result{}, fmt.Errorf("%w: %dx%d grid", ErrUnreachable, g.Rows(), g.Cols())
	}

	res := Result{
		Cost:     dist[target],
		Sweeps:   sweeps,
		Strategy: cfg.Strategy,
	}
	if cfg.ReturnPath {
		if prev != nil {
			res.Path = followPredecessors(g, prev, target)
		} else {
			res.Path = traceTightEdges(g, dist, target)
		}
	}

	log.WithFields(logrus.Fields{
		"cost":    res.Cost,
		"sweeps":  res.Sweeps,
		"elapsed": time.Since(start),
	}).Debug("solved")

	return res, nil
}

// MinCost is Solve reduced to the scalar cost.
func MinCost(g *gridgraph.Grid, opts ...Option) (int, error) {
	res, err := Solve(g, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// newCostTable returns a table of n infinite costs with the origin at 0.
func newCostTable(n int) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[0] = 0
	return dist
}
