// Package search implements the multi-ply position evaluation: scoring
// a grid against one or all opponent colors, and looking one or two
// placements deeper by averaging over the opponent's possible tiles.
package search

import (
	"math"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/evaluator"
	"github.com/chromatile/player/fixedmap"
	"github.com/chromatile/player/movegen"
)

// placeholderColor stands in for "some color of the opponent's not yet
// known tile" while scoring the squares that might still change once the
// opponent's tile is known.
const placeholderColor board.Color = board.NumColors + 1

// Solver evaluates positions using a fixed score table.
type Solver struct {
	Table *evaluator.Table
}

// NewSolver builds a Solver around t.
func NewSolver(t *evaluator.Table) *Solver {
	return &Solver{Table: t}
}

// EvaluateAgainst scores g for my_color alone against a specific
// opponent color.
func (s *Solver) EvaluateAgainst(g *board.Grid, my, his board.Color) int {
	fixed := fixedmap.Compute(g)
	return evaluator.EvaluateTwoColors(s.Table, g, &fixed, my, his)
}

// EvaluateAll scores g for my_color against the strongest of the other
// five colors (used when the opponent's secret color is unknown).
func (s *Solver) EvaluateAll(g *board.Grid, my board.Color) int {
	fixed := fixedmap.Compute(g)
	scores := evaluator.EvaluateAllColors(s.Table, g, &fixed)
	myScore := scores[my-1]
	maxOther := 0
	for c := board.Color(1); c <= board.NumColors; c++ {
		if c != my && scores[c-1] > maxOther {
			maxOther = scores[c-1]
		}
	}
	return myScore - maxOther
}

// SecondPlyNaive evaluates the second ply by brute force: for each of
// the 30 relevant tiles the opponent might draw, the opponent picks the
// placement that minimizes my resulting two-color score; the total is
// summed (not averaged) over all 30 tiles, since only the relative order
// of candidate placements matters to the caller.
func (s *Solver) SecondPlyNaive(g *board.Grid, my, his board.Color) int {
	placements := movegen.Generate(g)
	if len(placements) == 0 {
		allFixed := fixedmap.AllFixed()
		return len(RelevantTiles(my, his)) * evaluator.EvaluateTwoColors(s.Table, g, &allFixed, my, his)
	}
	tiles := RelevantTiles(my, his)
	total := 0
	for _, tile := range tiles {
		best := math.MaxInt
		for _, p := range placements {
			copy := board.Executed(g, tile, p)
			score := s.EvaluateAgainst(&copy, my, his)
			if score < best {
				best = score
			}
		}
		total += best
	}
	return total
}
