// Package movegen enumerates legal placements on a grid, in the
// canonical (row, col, orientation) order the rest of the engine relies
// on for tie-breaking and precomputation ordering.
package movegen

import "github.com/chromatile/player/board"

// orientations lists Horizontal before Vertical, matching the
// lexicographic order the reference implementation enumerates in.
var orientations = [2]board.Orientation{board.Horizontal, board.Vertical}

// Generate returns every legal placement on g, in lexicographic order of
// (row, col, orientation).
func Generate(g *board.Grid) []board.Placement {
	placements := make([]board.Placement, 0, 64)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			for _, ori := range orientations {
				p := board.Placement{Row: row, Col: col, Orientation: ori}
				if board.IsValid(g, p) {
					placements = append(placements, p)
				}
			}
		}
	}
	return placements
}
