// Package wire encodes and decodes the line protocol's fixed-width
// string formats: colors, tiles, placements, and moves.
package wire

import (
	"fmt"

	"github.com/chromatile/player/board"
)

// ParseColor parses a single digit '1'..'6' into a Color.
func ParseColor(s string) (board.Color, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '6' {
		return 0, false
	}
	return board.Color(s[0] - '0'), true
}

// FormatColor formats c as a single digit.
func FormatColor(c board.Color) string {
	return string(rune('0' + c))
}

// ParseTile parses six distinct digits 1-6 into a Tile.
func ParseTile(s string) (board.Tile, bool) {
	var t board.Tile
	if len(s) != board.NumColors {
		return t, false
	}
	for i := 0; i < board.NumColors; i++ {
		c, ok := ParseColor(s[i : i+1])
		if !ok {
			return t, false
		}
		t[i] = c
	}
	if !t.Distinct() {
		return t, false
	}
	return t, true
}

// FormatTile formats t as six digits.
func FormatTile(t board.Tile) string {
	buf := make([]byte, board.NumColors)
	for i, c := range t {
		buf[i] = '0' + byte(c)
	}
	return string(buf)
}

// ParseOrientation parses 'h' or 'v'.
func ParseOrientation(s string) (board.Orientation, bool) {
	switch s {
	case "h":
		return board.Horizontal, true
	case "v":
		return board.Vertical, true
	default:
		return 0, false
	}
}

// FormatOrientation formats o as 'h' or 'v'.
func FormatOrientation(o board.Orientation) string {
	if o == board.Vertical {
		return "v"
	}
	return "h"
}

// ParsePlacement parses a 3-character placement string: row 'A'-'P', col
// 'a'-'t', orientation 'h'/'v'.
func ParsePlacement(s string) (board.Placement, bool) {
	var p board.Placement
	if len(s) != 3 {
		return p, false
	}
	if s[0] < 'A' || s[0] > 'P' {
		return p, false
	}
	if s[1] < 'a' || s[1] > 't' {
		return p, false
	}
	ori, ok := ParseOrientation(s[2:3])
	if !ok {
		return p, false
	}
	p.Row = int(s[0] - 'A')
	p.Col = int(s[1] - 'a')
	p.Orientation = ori
	return p, true
}

// FormatPlacement formats p as a 3-character placement string.
func FormatPlacement(p board.Placement) string {
	return fmt.Sprintf("%c%c%s", byte('A'+p.Row), byte('a'+p.Col), FormatOrientation(p.Orientation))
}

// ParseMove parses a 9-character move string: row, col, 6 tile digits,
// orientation.
func ParseMove(s string) (board.Move, bool) {
	var m board.Move
	if len(s) != 9 {
		return m, false
	}
	if s[0] < 'A' || s[0] > 'P' {
		return m, false
	}
	if s[1] < 'a' || s[1] > 't' {
		return m, false
	}
	tile, ok := ParseTile(s[2:8])
	if !ok {
		return m, false
	}
	ori, ok := ParseOrientation(s[8:9])
	if !ok {
		return m, false
	}
	m.Tile = tile
	m.Placement = board.Placement{
		Row:         int(s[0] - 'A'),
		Col:         int(s[1] - 'a'),
		Orientation: ori,
	}
	return m, true
}

// FormatMove formats m as a 9-character move string.
func FormatMove(m board.Move) string {
	return fmt.Sprintf("%c%c%s%s",
		byte('A'+m.Placement.Row), byte('a'+m.Placement.Col),
		FormatTile(m.Tile), FormatOrientation(m.Placement.Orientation))
}
