// Package selector chooses the placement to play: it scores every legal
// placement with the configured search depth, keeps every placement
// tied for the best score, and samples uniformly among the ties.
package selector

import (
	"github.com/chromatile/player/board"
	"github.com/chromatile/player/rng"
	"github.com/chromatile/player/search"
)

// Mode selects how deep Select scores each candidate placement.
type Mode int

const (
	// Shallow scores a placement by immediate position value only.
	Shallow Mode = iota
	// Deep scores a placement by the second-ply (opponent-tile-averaged)
	// value.
	Deep
	// ExtraPly scores a placement with one further expectiminimax layer
	// beyond Deep. Requires a known opponent color.
	ExtraPly
)

// Result is the outcome of Select: every placement tied for the best
// score, and that score.
type Result struct {
	Best  []board.Placement
	Score int
}

const (
	minInt = -int(^uint(0)>>1) - 1
	maxInt = int(^uint(0) >> 1)
)

// Select places tile at every candidate in all on a scratch copy of g,
// scores the result with mode against my (and, if his is nonzero,
// specifically against that opponent color; otherwise against whichever
// of the other five colors scores highest), and returns every placement
// tied for the best score.
func Select(solver *search.Solver, mode Mode, my, his board.Color, g *board.Grid, tile board.Tile, all []board.Placement) Result {
	bestScore := minInt
	var best []board.Placement
	for _, p := range all {
		copy := board.Executed(g, tile, p)
		score := score(solver, mode, my, his, &copy)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, p)
		}
	}
	return Result{Best: best, Score: bestScore}
}

func score(solver *search.Solver, mode Mode, my, his board.Color, g *board.Grid) int {
	switch mode {
	case ExtraPly:
		return solver.ExtraPly(g, my, his)
	case Deep:
		if his == 0 {
			worst := maxInt
			for c := board.Color(1); c <= board.NumColors; c++ {
				if c == my {
					continue
				}
				v := solver.SecondPly(g, my, c)
				if v < worst {
					worst = v
				}
			}
			return worst
		}
		return solver.SecondPly(g, my, his)
	default:
		if his == 0 {
			return solver.EvaluateAll(g, my)
		}
		return solver.EvaluateAgainst(g, my, his)
	}
}

// Sample draws a uniformly random index among n tied candidates using
// src.
func Sample(src *rng.Source, n int) int {
	return src.Sample(n)
}
