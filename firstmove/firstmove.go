// Package firstmove precomputes and queries the table of best replies to
// every (secret color, drawn tile) pair on turn zero, when the grid
// holds nothing but the canonical initial placement. Because the
// initial tile's color layout is arbitrary, a query first relabels its
// color and tile through the permutation the actual initial tile
// induced relative to the canonical {1,2,3,4,5,6} tile the table was
// built from.
package firstmove

import (
	"context"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/movegen"
)

// Key identifies one table entry: a canonical secret color and a
// canonical drawn tile.
type Key struct {
	Color board.Color
	Tile  board.Tile
}

// Table maps canonical (color, tile) pairs to every placement tied for
// best.
type Table struct {
	entries map[Key][]board.Placement
}

// MapColor returns the 1-based position of color within firstTile. It
// panics if color does not appear, since firstTile is always a
// permutation of all six colors.
func MapColor(firstTile board.Tile, color board.Color) board.Color {
	for i, c := range firstTile {
		if c == color {
			return board.Color(i + 1)
		}
	}
	panic("firstmove: color not present in first tile")
}

// canonicalTile is the tile the table is built and keyed against: the
// identity permutation, so MapColor of it is the identity function.
func canonicalTile() board.Tile {
	return board.Tile{1, 2, 3, 4, 5, 6}
}

// FindBestPlacements mirrors the shape of the move selector used during
// play, so Precompute can drive it with whatever search mode the
// current configuration selects.
type FindBestPlacements func(color board.Color, grid *board.Grid, tile board.Tile, all []board.Placement) []board.Placement

// Precompute builds the full table by calling find once per (color,
// tile) pair, 6*720 = 4320 calls total, parallelized across the 6
// colors. This only ever runs once at startup, before any game begins,
// so it does not conflict with the engine's otherwise single-threaded,
// synchronous live search.
func Precompute(ctx context.Context, find FindBestPlacements) (*Table, error) {
	var grid board.Grid
	tile0 := canonicalTile()
	board.Execute(&grid, tile0, board.InitialPlacement)
	all := movegen.Generate(&grid)
	perms := permutations([board.NumColors]board.Color{1, 2, 3, 4, 5, 6})

	results := make([]map[Key][]board.Placement, board.NumColors)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < board.NumColors; i++ {
		i := i
		g.Go(func() error {
			color := board.Color(i + 1)
			m := make(map[Key][]board.Placement, len(perms))
			for _, tile := range perms {
				m[Key{Color: color, Tile: tile}] = find(color, &grid, tile, all)
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Table{entries: lo.Assign(results...)}, nil
}

// Query returns every placement tied for best when the secret color is
// secretColor, the first (centered) move was firstMove, and tile was
// just drawn. firstMove.Placement must equal board.InitialPlacement.
func (t *Table) Query(secretColor board.Color, firstMove board.Move, tile board.Tile) []board.Placement {
	mappedColor := MapColor(firstMove.Tile, secretColor)
	var mappedTile board.Tile
	for i, c := range tile {
		mappedTile[i] = MapColor(firstMove.Tile, c)
	}
	return t.entries[Key{Color: mappedColor, Tile: mappedTile}]
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Checksum returns a deterministic content hash of the table, independent
// of map iteration order, so a --precompute-first-moves run can be
// compared across builds to confirm the table only depends on the rules.
func (t *Table) Checksum() uint64 {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Color != keys[j].Color {
			return keys[i].Color < keys[j].Color
		}
		for k := 0; k < board.NumColors; k++ {
			if keys[i].Tile[k] != keys[j].Tile[k] {
				return keys[i].Tile[k] < keys[j].Tile[k]
			}
		}
		return false
	})
	h := xxhash.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%d|%v|%v\n", k.Color, k.Tile, t.entries[k])
	}
	return h.Sum64()
}

// permutations returns all 720 orderings of colors, via straightforward
// recursive swapping (Heap's algorithm).
func permutations(colors [board.NumColors]board.Color) [][board.NumColors]board.Color {
	var res [][board.NumColors]board.Color
	var generate func(k int, a *[board.NumColors]board.Color)
	generate = func(k int, a *[board.NumColors]board.Color) {
		if k == 1 {
			res = append(res, *a)
			return
		}
		generate(k-1, a)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
			generate(k-1, a)
		}
	}
	arr := colors
	generate(board.NumColors, &arr)
	return res
}
