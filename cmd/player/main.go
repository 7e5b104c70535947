package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/chromatile/player/config"
	"github.com/chromatile/player/evaluator"
	"github.com/chromatile/player/firstmove"
	"github.com/chromatile/player/logging"
	"github.com/chromatile/player/protocol"
	"github.com/chromatile/player/rng"
	"github.com/chromatile/player/search"
	"github.com/chromatile/player/selector"
)

const playerName = "chromatile"

func main() {
	logger := logging.New(os.Stderr, zerolog.InfoLevel)
	logger.ID('D', playerName)

	cfg := config.New()
	if err := cfg.Load(os.Args[1:]); err != nil || cfg.Help {
		fmt.Fprintln(os.Stderr, "\nOptions:")
		fmt.Fprintln(os.Stderr, "  --deep, --guess, --first-move-table, --extra-ply, --time-limit,")
		fmt.Fprintln(os.Stderr, "  --seed, --score-weights, --precompute-first-moves, --help")
		if cfg.Help {
			os.Exit(0)
		}
		os.Exit(1)
	}

	table := evaluator.NewTable(cfg.ScoreWeights)
	solver := search.NewSolver(table)

	if cfg.PrecomputeFirstMoves {
		mode := selector.Shallow
		if cfg.Deep {
			mode = selector.Deep
		}
		tbl, err := firstmove.Precompute(context.Background(), firstmove.Finder(solver, mode))
		if err != nil {
			logger.Fatal(1, "precompute-first-moves: %v", err)
		}
		fmt.Printf("computed %d first-move table entries (checksum %x)\n", tbl.Len(), tbl.Checksum())
		os.Exit(0)
	}

	seed, err := loadSeed(cfg.Seed)
	if err != nil {
		logger.Fatal(1, "%v", err)
	}
	logger.Seed(seed.String())

	var table1 *firstmove.Table
	if cfg.FirstMoveTable {
		mode := selector.Shallow
		if cfg.Deep {
			mode = selector.Deep
		}
		t, err := firstmove.Precompute(context.Background(), firstmove.Finder(solver, mode))
		if err != nil {
			logger.Warningf("could not build first-move table, falling back to live search: %v", err)
		} else {
			table1 = t
		}
	}

	session := &protocol.Session{
		In:     os.Stdin,
		Out:    os.Stdout,
		Log:    logger,
		Config: cfg,
		Solver: solver,
		Table:  table1,
		RNG:    rng.New(seed),
	}

	if err := session.Run(); err != nil {
		if errors.Is(err, protocol.ErrQuit) {
			os.Exit(0)
		}
		logger.Fatal(1, "%v", err)
	}
}

func loadSeed(hex string) (rng.Seed, error) {
	if hex == "" {
		return rng.NewSeed(), nil
	}
	return rng.ParseSeed(hex)
}
