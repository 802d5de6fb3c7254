// Package pathsolver defines the options, strategies, results and sentinel
// errors shared by every corner-to-corner solver in this package.
package pathsolver

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tzaman/advent2021/gridgraph"
)

// Sentinel errors returned by Solve and MinCost.
var (
	// ErrEmptyGrid indicates a nil grid or a grid with zero cells.
	ErrEmptyGrid = errors.New("pathsolver: grid has no cells")

	// ErrUnreachable indicates the bottom-right cell kept an infinite cost.
	// A 4-connected rectangular grid never triggers it.
	ErrUnreachable = errors.New("pathsolver: terminal cell is unreachable")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("pathsolver: unknown strategy")

	// ErrBadWorkers indicates WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("pathsolver: workers must be at least 1")
)

// inf marks a cell whose cost is not yet known.
const inf = math.MaxInt

// Strategy selects the shortest-path algorithm.
type Strategy int

const (
	// StrategyRelax repeats full relaxation sweeps until one sweep changes nothing.
	StrategyRelax Strategy = iota

	// StrategyDijkstra expands cells in order of tentative cost using a min-heap.
	StrategyDijkstra
)

var strategyNames = map[Strategy]string{
	StrategyRelax:    "relax",
	StrategyDijkstra: "dijkstra",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name such as "relax" or "dijkstra" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures Solve.
//
// Workers above 1 split rows into bands that are swept concurrently; it is
// ignored by StrategyDijkstra.
type Options struct {
	Strategy   Strategy           // Algorithm to run
	Workers    int                // Relaxation workers, ≥ 1
	ReturnPath bool               // Whether Result.Path is filled
	Logger     logrus.FieldLogger // Receives Debug entries; silent by default
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithWorkers sets the number of concurrent relaxation workers.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithReturnPath requests the cells of one optimal path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithLogger attaches a structured logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// discard swallows log entries when no logger is configured.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns the defaults:
//   - Strategy:   StrategyRelax
//   - Workers:    1 (sequential sweeps)
//   - ReturnPath: false
//   - Logger:     a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Strategy:   StrategyRelax,
		Workers:    1,
		ReturnPath: false,
		Logger:     discard,
	}
}

// Result is the outcome of a single Solve call.
type Result struct {
	// Cost is the sum of entered-cell costs from (0,0) to the bottom-right cell.
	Cost int
	// Path lists one optimal route from origin to terminal, both included.
	// Nil unless WithReturnPath was given.
	Path []gridgraph.Cell
	// Sweeps counts relaxation sweeps, including the final unchanged one.
	// Always 0 for StrategyDijkstra.
	Sweeps int
	// Strategy records which algorithm produced the result.
	Strategy Strategy
}
