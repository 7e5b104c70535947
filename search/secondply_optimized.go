package search

import (
	"math"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/evaluator"
	"github.com/chromatile/player/fixedmap"
	"github.com/chromatile/player/movegen"
)

// square identifies one axis-aligned square by its two opposite corners.
type square struct {
	r1, c1, r2, c2 int
}

// placementData caches, for one of the opponent's legal placements,
// everything about the resulting position that does not depend on which
// tile the opponent eventually draws: the fixed-cell map, the portion of
// the score contributed by cells and squares that don't touch the
// placeholder tile, and the list of squares that do (and so must be
// rescored once the real tile is known).
type placementData struct {
	placement    board.Placement
	fixed        fixedmap.Map
	baseScore    int
	undecidedMy  []square
	undecidedHis []square
}

// SecondPly evaluates the second ply using the placeholder-tile
// precomputation: for each of the opponent's legal placements on g, the
// squares whose score cannot change once the opponent's tile is filled
// in are scored once, up front, using a placeholder color in place of
// the unknown tile. Only the tile's own cells and the squares that
// overlap the placeholder need rescoring per relevant tile, which is far
// fewer than the full board.
func (s *Solver) SecondPly(g *board.Grid, my, his board.Color) int {
	placements := movegen.Generate(g)
	if len(placements) == 0 {
		allFixed := fixedmap.AllFixed()
		return len(RelevantTiles(my, his)) * evaluator.EvaluateTwoColors(s.Table, g, &allFixed, my, his)
	}

	var placeholderTile board.Tile
	for i := range placeholderTile {
		placeholderTile[i] = placeholderColor
	}

	data := make([]placementData, 0, len(placements))
	for _, p := range placements {
		copy := board.Executed(g, placeholderTile, p)
		fixed := fixedmap.Compute(&copy)

		baseScore := 0
		var undecidedMy, undecidedHis []square
		for r1 := 0; r1 < board.Rows; r1++ {
			for c1 := 0; c1 < board.Cols; c1++ {
				switch copy[r1][c1] {
				case my:
					baseScore += evaluator.Evaluate1(s.Table, &fixed, r1, c1)
				case his:
					baseScore -= evaluator.Evaluate1(s.Table, &fixed, r1, c1)
				}
				for size := 1; ; size++ {
					r2, c2 := r1+size, c1+size
					if r2 >= board.Rows || c2 >= board.Cols {
						break
					}
					a, b, c, d := copy[r1][c1], copy[r1][c2], copy[r2][c1], copy[r2][c2]
					if a == placeholderColor || b == placeholderColor || c == placeholderColor || d == placeholderColor {
						if a == placeholderColor && d == placeholderColor {
							undecidedMy = append(undecidedMy, square{r1, c1, r2, c2})
							undecidedHis = append(undecidedHis, square{r1, c1, r2, c2})
							continue
						}
						if containsColor(a, b, c, d, my) &&
							okCorner(fixed.At(r1, c1), a, my) && okCorner(fixed.At(r1, c2), b, my) &&
							okCorner(fixed.At(r2, c1), c, my) && okCorner(fixed.At(r2, c2), d, my) {
							undecidedMy = append(undecidedMy, square{r1, c1, r2, c2})
						}
						if containsColor(a, b, c, d, his) &&
							okCorner(fixed.At(r1, c1), a, his) && okCorner(fixed.At(r1, c2), b, his) &&
							okCorner(fixed.At(r2, c1), c, his) && okCorner(fixed.At(r2, c2), d, his) {
							undecidedHis = append(undecidedHis, square{r1, c1, r2, c2})
						}
					} else {
						baseScore += evaluator.EvaluateRectangle(s.Table, &copy, &fixed, my, r1, c1, r2, c2)
						baseScore -= evaluator.EvaluateRectangle(s.Table, &copy, &fixed, his, r1, c1, r2, c2)
					}
				}
			}
		}
		data = append(data, placementData{
			placement:    p,
			fixed:        fixed,
			baseScore:    baseScore,
			undecidedMy:  undecidedMy,
			undecidedHis: undecidedHis,
		})
	}

	tiles := RelevantTiles(my, his)
	total := 0
	for _, tile := range tiles {
		best := math.MaxInt
		for i := range data {
			d := &data[i]
			copy := board.Executed(g, tile, d.placement)
			score := d.baseScore
			fp := d.placement.Rect()
			for r := fp.R1; r < fp.R2; r++ {
				for c := fp.C1; c < fp.C2; c++ {
					switch copy[r][c] {
					case my:
						score += evaluator.Evaluate1(s.Table, &d.fixed, r, c)
					case his:
						score -= evaluator.Evaluate1(s.Table, &d.fixed, r, c)
					}
				}
			}
			for _, sq := range d.undecidedMy {
				score += evaluator.EvaluateRectangle(s.Table, &copy, &d.fixed, my, sq.r1, sq.c1, sq.r2, sq.c2)
			}
			for _, sq := range d.undecidedHis {
				score -= evaluator.EvaluateRectangle(s.Table, &copy, &d.fixed, his, sq.r1, sq.c1, sq.r2, sq.c2)
			}
			if score < best {
				best = score
			}
		}
		total += best
	}
	return total
}

// containsColor reports whether at least one of the square's four
// corners already holds color, a prerequisite for that square to be
// able to contribute to color's score once the placeholder resolves.
func containsColor(a, b, c, d, color board.Color) bool {
	return a == color || b == color || c == color || d == color
}

// okCorner reports whether a corner with value v does not rule out the
// square eventually scoring for color: it must be unfixed, or already
// be color, or still be the undecided placeholder.
func okCorner(fixed bool, v, color board.Color) bool {
	return !fixed || v == color || v == placeholderColor
}
