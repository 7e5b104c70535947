package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatile/player/board"
)

func TestExecuteHorizontalPattern(t *testing.T) {
	var g board.Grid
	tile := board.Tile{1, 2, 3, 4, 5, 6}
	board.Execute(&g, tile, board.Placement{Row: 7, Col: 7, Orientation: board.Horizontal})

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, g[7][7:13])
	assert.Equal(t, []byte{6, 5, 4, 3, 2, 1}, g[8][7:13])
}

func TestExecuteVerticalPattern(t *testing.T) {
	var g board.Grid
	tile := board.Tile{1, 2, 3, 4, 5, 6}
	board.Execute(&g, tile, board.Placement{Row: 3, Col: 3, Orientation: board.Vertical})

	for i := 0; i < 6; i++ {
		assert.Equal(t, tile[i], g[3+5-i][3], "col0 row %d", i)
		assert.Equal(t, tile[i], g[3+i][4], "col1 row %d", i)
	}
}

func TestExecutePreservesOutsideFootprint(t *testing.T) {
	var g board.Grid
	g[0][0] = 3
	g[15][19] = 4
	before := g
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)

	r := board.InitialPlacement.Rect()
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			if row >= r.R1 && row < r.R2 && col >= r.C1 && col < r.C2 {
				continue
			}
			assert.Equal(t, before[row][col], g[row][col], "cell (%d,%d)", row, col)
		}
	}
}

func TestInBounds(t *testing.T) {
	require.True(t, board.InBounds(board.Placement{Row: 14, Col: 14, Orientation: board.Horizontal}))
	require.False(t, board.InBounds(board.Placement{Row: 15, Col: 14, Orientation: board.Horizontal}))
	require.True(t, board.InBounds(board.Placement{Row: 10, Col: 18, Orientation: board.Vertical}))
	require.False(t, board.InBounds(board.Placement{Row: 10, Col: 19, Orientation: board.Vertical}))
	require.False(t, board.InBounds(board.Placement{Row: -1, Col: 0, Orientation: board.Horizontal}))
}

func TestIsValidFirstMoveUnconstrained(t *testing.T) {
	var g board.Grid
	assert.True(t, board.IsValid(&g, board.InitialPlacement))
}

func TestIsValidRequiresAdjacencyWhenNoOverlap(t *testing.T) {
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)

	// Far away, no overlap and not adjacent: invalid.
	assert.False(t, board.IsValid(&g, board.Placement{Row: 0, Col: 0, Orientation: board.Horizontal}))

	// Directly below the initial placement: adjacent, no overlap: valid.
	assert.True(t, board.IsValid(&g, board.Placement{Row: 9, Col: 7, Orientation: board.Horizontal}))
}

func TestIsValidOverlapLimit(t *testing.T) {
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)

	// Shifted by one column: overlaps 5 cells per row = 10 total (too many).
	assert.False(t, board.IsValid(&g, board.Placement{Row: 7, Col: 6, Orientation: board.Horizontal}))
	// Shifted by four columns: overlaps only 2 cells per row = 4 total: legal.
	assert.True(t, board.IsValid(&g, board.Placement{Row: 7, Col: 3, Orientation: board.Horizontal}))
}

func TestIsGameOverEmptyGrid(t *testing.T) {
	var g board.Grid
	assert.False(t, board.IsGameOver(&g))
}

func TestIsGameOverFullGrid(t *testing.T) {
	var g board.Grid
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			g[r][c] = 1
		}
	}
	assert.True(t, board.IsGameOver(&g))
}

func TestIsGameOverMonotone(t *testing.T) {
	var g board.Grid
	board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.InitialPlacement)
	require.False(t, board.IsGameOver(&g))

	// Fill the rest of the grid with placements chosen arbitrarily; once
	// over, filling more can't make it "not over" again.
	for r := 0; r+2 <= board.Rows; r += 2 {
		for c := 0; c+6 <= board.Cols; c += 6 {
			p := board.Placement{Row: r, Col: c, Orientation: board.Horizontal}
			if board.IsValid(&g, p) {
				board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, p)
			}
		}
	}
	if board.IsGameOver(&g) {
		board.Execute(&g, board.Tile{1, 2, 3, 4, 5, 6}, board.Placement{Row: 0, Col: 0, Orientation: board.Horizontal})
		assert.True(t, board.IsGameOver(&g))
	}
}

func TestTileDistinct(t *testing.T) {
	assert.True(t, board.Tile{1, 2, 3, 4, 5, 6}.Distinct())
	assert.False(t, board.Tile{1, 2, 3, 1, 5, 6}.Distinct())
	assert.False(t, board.Tile{0, 2, 3, 4, 5, 6}.Distinct())
}
