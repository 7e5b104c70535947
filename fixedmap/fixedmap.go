// Package fixedmap computes, for a grid, which cells can never again be
// covered by a legal placement. This is the "fixed-cell analysis" used
// only by the evaluator.
package fixedmap

import "github.com/chromatile/player/board"

// Map is a 16x20 matrix of 0/1: 1 means the corresponding grid cell is
// fixed (no remaining legal placement overlaps it).
type Map [board.Rows][board.Cols]byte

// At reports whether (r,c) is fixed.
func (m *Map) At(r, c int) bool {
	return m[r][c] != 0
}

// Compute derives the fixed map for g: starts all-fixed, then clears
// every cell under any 2x6 or 6x2 window whose current occupancy is
// <=4 (such a window could still legally overwrite those cells).
func Compute(g *board.Grid) Map {
	var m Map
	for r := range m {
		for c := range m[r] {
			m[r][c] = 1
		}
	}
	for r := 0; r+2 <= board.Rows; r++ {
		for c := 0; c+board.NumColors <= board.Cols; c++ {
			if windowOverlap(g, r, c, 2, board.NumColors) <= 4 {
				clear(&m, r, c, 2, board.NumColors)
			}
		}
	}
	for r := 0; r+board.NumColors <= board.Rows; r++ {
		for c := 0; c+2 <= board.Cols; c++ {
			if windowOverlap(g, r, c, board.NumColors, 2) <= 4 {
				clear(&m, r, c, board.NumColors, 2)
			}
		}
	}
	return m
}

// AllFixed returns a map with every cell marked fixed, used as the
// end-of-game short-circuit fixed map (no placements remain, so nothing
// can change).
func AllFixed() Map {
	var m Map
	for r := range m {
		for c := range m[r] {
			m[r][c] = 1
		}
	}
	return m
}

func windowOverlap(g *board.Grid, r, c, h, w int) int {
	n := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if g[r+i][c+j] != 0 {
				n++
			}
		}
	}
	return n
}

func clear(m *Map, r, c, h, w int) {
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			m[r+i][c+j] = 0
		}
	}
}
