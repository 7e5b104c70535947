package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/evaluator"
	"github.com/chromatile/player/movegen"
	"github.com/chromatile/player/rng"
	"github.com/chromatile/player/search"
	"github.com/chromatile/player/selector"
)

func TestSelectShallowPicksMaximizingPlacement(t *testing.T) {
	solver := search.NewSolver(evaluator.NewTable(evaluator.DefaultWeights()))
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)
	all := movegen.Generate(&g)

	res := selector.Select(solver, selector.Shallow, 1, 2, &g, board.Tile{1, 2, 3, 4, 5, 6}, all)
	assert.NotEmpty(t, res.Best)
	for _, p := range res.Best {
		copy := board.Executed(&g, board.Tile{1, 2, 3, 4, 5, 6}, p)
		assert.Equal(t, res.Score, solver.EvaluateAgainst(&copy, 1, 2))
	}
}

func TestSelectDeepUnknownOpponentTakesWorstCase(t *testing.T) {
	solver := search.NewSolver(evaluator.NewTable(evaluator.DefaultWeights()))
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)
	all := movegen.Generate(&g)

	res := selector.Select(solver, selector.Deep, 1, 0, &g, board.Tile{2, 3, 4, 5, 6, 1}, all)
	assert.NotEmpty(t, res.Best)
}

func TestSampleWithinRange(t *testing.T) {
	src := rng.New(rng.NewSeed())
	for i := 0; i < 20; i++ {
		idx := selector.Sample(src, 5)
		assert.True(t, idx >= 0 && idx < 5)
	}
}
