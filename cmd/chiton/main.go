// Command chiton reads a map of digit costs and prints the cheapest route
// cost from its top-left to its bottom-right corner, first for the map as
// given and then for the map tiled factor×factor times.
//
// Usage:
//
//	chiton -input day15.txt [-tile 5] [-strategy relax|dijkstra] [-workers N] [-path] [-v]
//	chiton -config chiton.yaml [flags that override the file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tzaman/advent2021/gridgraph"
	"github.com/tzaman/advent2021/pathsolver"
)

var log = logrus.New()

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.WithError(err).Fatal("chiton failed")
	}
}

// parseFlags builds a Config from defaults, an optional -config file and
// the flags actually present on the command line, in that order.
func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("chiton", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML config file")
		input      = fs.String("input", "", "map file, one row of digits per line")
		tile       = fs.Int("tile", 5, "tile factor for the second answer")
		strategy   = fs.String("strategy", "relax", "relax or dijkstra")
		workers    = fs.Int("workers", 1, "relaxation workers")
		verbose    = fs.Bool("v", false, "debug logging")
		path       = fs.Bool("path", false, "print the route of the untiled map")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "tile":
			cfg.Tile = *tile
		case "strategy":
			cfg.Strategy = *strategy
		case "workers":
			cfg.Workers = *workers
		case "v":
			cfg.Verbose = *verbose
		case "path":
			cfg.Path = *path
		}
	})
	return cfg, nil
}

// run solves the configured map twice and writes both answers to out.
func run(cfg Config, out io.Writer) error {
	strategy, err := cfg.Validate()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("chiton: opening input: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input": cfg.Input,
		"rows":  g.Rows(),
		"cols":  g.Cols(),
	}).Debugf("loaded map\n%s", g)

	opts := cfg.options(strategy)
	res, err := pathsolver.Solve(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Best path: %d\n", res.Cost)
	if cfg.Path {
		cells := make([]string, len(res.Path))
		for i, c := range res.Path {
			cells[i] = c.String()
		}
		fmt.Fprintf(out, "Route: %s\n", strings.Join(cells, " "))
	}

	big, err := g.Tile(cfg.Tile)
	if err != nil {
		return err
	}
	res, err = pathsolver.Solve(big, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Best path with tiling: %d\n", res.Cost)

	return nil
}
