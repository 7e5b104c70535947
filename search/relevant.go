package search

import "github.com/chromatile/player/board"

// RelevantTiles builds the 30 tiles that matter when scoring a position
// for (my, his): every tile differing only in which positions hold my
// and his color, with the remaining four colors filling the other slots
// in increasing order. Averaging (equivalently, summing) the opponent's
// best response over exactly these 30 tiles is equivalent to averaging
// over all 720 permutations of a random tile, since permutations that
// only rearrange the other four colors among themselves always produce
// the same set of legal placements and the same two-color score.
func RelevantTiles(my, his board.Color) [30]board.Tile {
	var tiles [30]board.Tile
	pos := 0
	for i := 0; i < board.NumColors; i++ {
		for j := 0; j < board.NumColors; j++ {
			if i == j {
				continue
			}
			next := board.Color(1)
			for next == my || next == his {
				next++
			}
			var tile board.Tile
			for k := 0; k < board.NumColors; k++ {
				switch k {
				case i:
					tile[k] = my
				case j:
					tile[k] = his
				default:
					tile[k] = next
					next++
					for next == my || next == his {
						next++
					}
				}
			}
			tiles[pos] = tile
			pos++
		}
	}
	return tiles
}
