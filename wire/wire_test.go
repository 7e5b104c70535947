package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/wire"
)

func TestPlacementRoundTrip(t *testing.T) {
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			for _, ori := range [2]board.Orientation{board.Horizontal, board.Vertical} {
				p := board.Placement{Row: row, Col: col, Orientation: ori}
				if !board.InBounds(p) {
					continue
				}
				s := wire.FormatPlacement(p)
				got, ok := wire.ParsePlacement(s)
				if assert.True(t, ok, "parse failed for %q", s) {
					assert.Equal(t, p, got)
				}
			}
		}
	}
}

func TestTileRoundTrip(t *testing.T) {
	tile := board.Tile{3, 1, 4, 6, 5, 2}
	s := wire.FormatTile(tile)
	assert.Equal(t, "314652", s)
	got, ok := wire.ParseTile(s)
	assert.True(t, ok)
	assert.Equal(t, tile, got)
}

func TestMoveRoundTrip(t *testing.T) {
	m := board.Move{
		Tile:      board.Tile{1, 2, 3, 4, 5, 6},
		Placement: board.Placement{Row: 7, Col: 7, Orientation: board.Horizontal},
	}
	s := wire.FormatMove(m)
	assert.Equal(t, "Hh123456h", s)
	got, ok := wire.ParseMove(s)
	assert.True(t, ok)
	assert.Equal(t, m, got)
}

func TestParseTileRejectsDuplicateColors(t *testing.T) {
	_, ok := wire.ParseTile("112345")
	assert.False(t, ok)
}

func TestParseTileRejectsWrongLength(t *testing.T) {
	_, ok := wire.ParseTile("12345")
	assert.False(t, ok)
}

func TestParseMoveRejectsWrongLength(t *testing.T) {
	_, ok := wire.ParseMove("short")
	assert.False(t, ok)
}

func TestParsePlacementRejectsOutOfRangeRow(t *testing.T) {
	_, ok := wire.ParsePlacement("Qah")
	assert.False(t, ok)
}

func TestColorRoundTrip(t *testing.T) {
	for c := board.Color(1); c <= board.NumColors; c++ {
		s := wire.FormatColor(c)
		got, ok := wire.ParseColor(s)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
}
