package guesser_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/guesser"
)

func TestColorExcludesOwnAndPicksLargestDelta(t *testing.T) {
	is := is.New(t)
	var g guesser.Guesser
	g.Update([6]int{0, 0, 0, 0, 0, 0}, [6]int{0, 5, 0, 2, 0, 0})
	g.Update([6]int{0, 5, 0, 2, 0, 0}, [6]int{0, 3, 0, 1, 0, 0})
	g.Update([6]int{0, 3, 0, 1, 0, 0}, [6]int{0, 0, 0, 7, 0, 0})
	is.Equal(g.Color(2), board.Color(4))
}

func TestColorNeverReturnsOwnColor(t *testing.T) {
	is := is.New(t)
	var g guesser.Guesser
	g.Update([6]int{0, 0, 0, 0, 0, 0}, [6]int{100, 0, 0, 0, 0, 0})
	is.Equal(g.Color(1) != 1, true)
}

func TestColorBreaksTiesTowardSmallestIndex(t *testing.T) {
	is := is.New(t)
	var g guesser.Guesser
	g.Update([6]int{0, 0, 0, 0, 0, 0}, [6]int{0, 5, 5, 0, 0, 0})
	is.Equal(g.Color(1), board.Color(2))
}
