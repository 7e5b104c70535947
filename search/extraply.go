package search

import (
	"github.com/chromatile/player/board"
	"github.com/chromatile/player/movegen"
)

// ExtraPly wraps SecondPly with one more expectiminimax layer: after my
// candidate move produces g, the opponent's turn follows. For each of
// the opponent's 30 relevant tiles, the opponent picks whichever of
// their legal placements on g minimizes my SecondPly score (since they
// are minimizing on my behalf-turned-adversary); the per-tile minima are
// summed, so that a higher ExtraPly result still means "better for me",
// consistent with SecondPly and EvaluateTwoColors.
func (s *Solver) ExtraPly(g *board.Grid, my, his board.Color) int {
	placements := movegen.Generate(g)
	if len(placements) == 0 {
		return len(RelevantTiles(his, my)) * s.SecondPly(g, my, his)
	}
	tiles := RelevantTiles(his, my)
	total := 0
	for _, tile := range tiles {
		best := intMax
		for _, p := range placements {
			copy := board.Executed(g, tile, p)
			v := s.SecondPly(&copy, my, his)
			if v < best {
				best = v
			}
		}
		total += best
	}
	return total
}

// ShouldAttemptExtraPly decides whether the extra ply is worth its
// estimated cost of placements^4/50 milliseconds, given remaining
// placements, the configured threshold, and the time left in the
// advisory per-game budget. A zero threshold always disables the extra
// ply; a zero/negative remaining budget disables only the time check, so
// the threshold alone decides.
func ShouldAttemptExtraPly(placements, threshold int, remainingMillis int64) (needed int64, ok bool) {
	if threshold <= 0 || placements >= threshold {
		return 0, false
	}
	p := int64(placements)
	needed = p * p * p * p / 50
	if remainingMillis <= 0 {
		return needed, true
	}
	return needed, needed <= remainingMillis
}

const intMax = int(^uint(0) >> 1)
