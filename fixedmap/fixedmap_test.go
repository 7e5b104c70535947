package fixedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/fixedmap"
)

func TestEmptyGridNothingFixed(t *testing.T) {
	var g board.Grid
	m := fixedmap.Compute(&g)
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			assert.False(t, m.At(r, c), "cell (%d,%d) should not be fixed on an empty grid", r, c)
		}
	}
}

func TestFullGridEverythingFixed(t *testing.T) {
	var g board.Grid
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			g[r][c] = 1
		}
	}
	m := fixedmap.Compute(&g)
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			assert.True(t, m.At(r, c))
		}
	}
}

func TestFixedImpliesNoLowOccupancyWindow(t *testing.T) {
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)
	m := fixedmap.Compute(&g)
	for r := 0; r+2 <= board.Rows; r++ {
		for c := 0; c+6 <= board.Cols; c++ {
			overlap := 0
			for i := 0; i < 2; i++ {
				for j := 0; j < 6; j++ {
					if g[r+i][c+j] != 0 {
						overlap++
					}
				}
			}
			if overlap <= 4 {
				for i := 0; i < 2; i++ {
					for j := 0; j < 6; j++ {
						assert.False(t, m.At(r+i, c+j), "window (%d,%d) has overlap %d but cell is marked fixed", r, c, overlap)
					}
				}
			}
		}
	}
}
