package firstmove

import (
	"github.com/chromatile/player/board"
	"github.com/chromatile/player/search"
	"github.com/chromatile/player/selector"
)

// Finder adapts a Solver and Mode into the FindBestPlacements shape
// Precompute expects, searching against an unknown opponent (his=0)
// exactly as turn zero always does.
func Finder(solver *search.Solver, mode selector.Mode) FindBestPlacements {
	return func(color board.Color, grid *board.Grid, tile board.Tile, all []board.Placement) []board.Placement {
		return selector.Select(solver, mode, color, 0, grid, tile, all).Best
	}
}
