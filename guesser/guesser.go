// Package guesser infers the opponent's secret color from how each
// color's potential score moved between consecutive evaluations: the
// opponent, playing toward their own secret color, tends to grow that
// color's score the most.
package guesser

import (
	"math"

	"github.com/chromatile/player/board"
)

// Guesser accumulates, for each color, the running sum of score deltas
// observed between consecutive opponent turns.
type Guesser struct {
	diff [board.NumColors]int
}

// Update adds the deltas between prev and next to the running totals.
func (g *Guesser) Update(prev, next [board.NumColors]int) {
	for i := 0; i < board.NumColors; i++ {
		g.diff[i] += next[i] - prev[i]
	}
}

// Color returns the best-guess secret color, excluding my. Ties are
// broken toward the smallest color index, matching the reference
// player's strict ">" comparison during the scan.
func (g *Guesser) Color(my board.Color) board.Color {
	var best board.Color
	maxDiff := math.MinInt
	for i := 0; i < board.NumColors; i++ {
		color := board.Color(i + 1)
		if color == my {
			continue
		}
		if g.diff[i] > maxDiff {
			maxDiff = g.diff[i]
			best = color
		}
	}
	return best
}
