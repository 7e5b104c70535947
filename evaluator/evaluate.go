// Package evaluator implements the static position evaluator: a sum
// over axis-aligned squares of per-corner color/fixed patterns, weighted
// by a memoized score table and a size-dependent multiplier.
package evaluator

import (
	"github.com/chromatile/player/board"
	"github.com/chromatile/player/fixedmap"
)

// Evaluate1 returns the single-cell (side-0) contribution of a cell,
// depending only on whether it is fixed.
func Evaluate1(t *Table, fixed *fixedmap.Map, r, c int) int {
	if fixed.At(r, c) {
		return t.Fixed1()
	}
	return t.Base1()
}

// EvaluateRectangle scores the square anchored at corners (r1,c1) and
// (r2,c2) for color, using t's memoized pattern base times the
// size-dependent (size+4) multiplier.
func EvaluateRectangle(t *Table, g *board.Grid, fixed *fixedmap.Map, color board.Color, r1, c1, r2, c2 int) int {
	a := g[r1][c1] == color
	b := g[r1][c2] == color
	c := g[r2][c1] == color
	d := g[r2][c2] == color
	fa := fixed.At(r1, c1)
	fb := fixed.At(r1, c2)
	fc := fixed.At(r2, c1)
	fd := fixed.At(r2, c2)
	base := t.SquareBase(a, b, c, d, fa, fb, fc, fd)
	size := r2 - r1
	return base * (size + 4)
}

// EvaluateAllColors returns, for each color 1..NumColors, the sum of its
// single-cell terms plus every square term anchored at (r1,c1) for all
// side lengths s>=1. Index i of the result corresponds to color i+1.
func EvaluateAllColors(t *Table, g *board.Grid, fixed *fixedmap.Map) [board.NumColors]int {
	var scores [board.NumColors]int
	for color := board.Color(1); color <= board.NumColors; color++ {
		score := 0
		for r1 := 0; r1 < board.Rows; r1++ {
			for c1 := 0; c1 < board.Cols; c1++ {
				if g[r1][c1] == color {
					score += Evaluate1(t, fixed, r1, c1)
				}
				for r2, c2 := r1+1, c1+1; r2 < board.Rows && c2 < board.Cols; r2, c2 = r2+1, c2+1 {
					score += EvaluateRectangle(t, g, fixed, color, r1, c1, r2, c2)
				}
			}
		}
		scores[color-1] = score
	}
	return scores
}

// EvaluateTwoColors returns EvaluateAllColors(g,fixed)[my-1] -
// EvaluateAllColors(g,fixed)[his-1], computed directly by visiting only
// cells colored my or his and, for each, the squares anchored at it in
// the three diagonal directions that don't double-count a square already
// visited from one of its other corners. See spec Open Questions: no
// square is ever anchored at its top-right corner, and the skip rules in
// diagonalSquares are what keep the correspondence with EvaluateAllColors
// exact (each square with two or more corners in a color is visited from
// exactly one of its four corners).
func EvaluateTwoColors(t *Table, g *board.Grid, fixed *fixedmap.Map, my, his board.Color) int {
	res := 0
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			switch g[r][c] {
			case my:
				res += Evaluate1(t, fixed, r, c)
			case his:
				res -= Evaluate1(t, fixed, r, c)
			}
		}
	}
	for r1 := 0; r1 < board.Rows; r1++ {
		for c1 := 0; c1 < board.Cols; c1++ {
			switch g[r1][c1] {
			case my:
				res += diagonalSquares(t, g, fixed, my, r1, c1, 1)
			case his:
				res -= diagonalSquares(t, g, fixed, his, r1, c1, 1)
			}
		}
	}
	return res
}

// diagonalSquares sums the square contributions for color anchored at
// (r1,c1) in the down-right, up-right, and up-left diagonal directions,
// de-duplicating squares that would otherwise be counted from more than
// one corner.
func diagonalSquares(t *Table, g *board.Grid, fixed *fixedmap.Map, color board.Color, r1, c1 int, _ int) int {
	sum := 0
	// Down-right: (r1,c1) is the top-left corner.
	for r2, c2 := r1+1, c1+1; r2 < board.Rows && c2 < board.Cols; r2, c2 = r2+1, c2+1 {
		sum += EvaluateRectangle(t, g, fixed, color, r1, c1, r2, c2)
	}
	// Up-right from (r1,c1) as bottom-left corner: skip if the top-left
	// corner is also `color`, since that square was already counted from
	// there in the down-right loop above.
	for r2, c2 := r1-1, c1+1; r2 >= 0 && c2 < board.Cols; r2, c2 = r2-1, c2+1 {
		if g[r2][c1] != color {
			sum += EvaluateRectangle(t, g, fixed, color, r2, c1, r1, c2)
		}
	}
	// Up-left from (r1,c1) as bottom-right corner: skip if either the
	// top-right or bottom-left corner is also `color` (already counted).
	for r2, c2 := r1-1, c1-1; r2 >= 0 && c2 >= 0; r2, c2 = r2-1, c2-1 {
		if g[r1][c2] != color && g[r2][c2] != color {
			sum += EvaluateRectangle(t, g, fixed, color, r2, c2, r1, c1)
		}
	}
	return sum
}

// EvaluateFinalScore counts only complete squares, weighted by side
// length, matching the official end-of-game scoring.
func EvaluateFinalScore(g *board.Grid) [board.NumColors]int {
	var scores [board.NumColors]int
	for r1 := 0; r1 < board.Rows; r1++ {
		for c1 := 0; c1 < board.Cols; c1++ {
			color := g[r1][c1]
			if color < 1 || color > board.NumColors {
				continue
			}
			for r2, c2 := r1+1, c1+1; r2 < board.Rows && c2 < board.Cols; r2, c2 = r2+1, c2+1 {
				if g[r1][c2] == color && g[r2][c1] == color && g[r2][c2] == color {
					scores[color-1] += r2 - r1
				}
			}
		}
	}
	return scores
}
