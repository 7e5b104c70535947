package protocol

import (
	"fmt"
	"time"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/movegen"
	"github.com/chromatile/player/search"
	"github.com/chromatile/player/wire"
)

// readLine reads one line from stdin, logging it as received. "Quit"
// terminates the game immediately with ErrQuit, per the protocol, which
// permits Quit at any point a line is read.
func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)
		}
		return "", ErrUnexpectedEOF
	}
	line := s.scanner.Text()
	s.Log.Received(line)
	if line == "Quit" {
		s.Log.Info("Exiting.")
		return "", ErrQuit
	}
	return line, nil
}

func (s *Session) readSecretColor() (board.Color, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	color, ok := wire.ParseColor(line)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrParseSecretColor, line)
	}
	return color, nil
}

func (s *Session) readTile() (board.Tile, error) {
	line, err := s.readLine()
	if err != nil {
		return board.Tile{}, err
	}
	tile, ok := wire.ParseTile(line)
	if !ok {
		return board.Tile{}, fmt.Errorf("%w: %q", ErrParseTile, line)
	}
	return tile, nil
}

func (s *Session) readMove() (board.Move, error) {
	line, err := s.readLine()
	if err != nil {
		return board.Move{}, err
	}
	move, ok := parseMoveLine(line)
	if !ok {
		return board.Move{}, fmt.Errorf("%w: %q", ErrParseMove, line)
	}
	return move, nil
}

func parseMoveLine(line string) (board.Move, bool) {
	return wire.ParseMove(line)
}

func formatPlacement(p board.Placement) string {
	return wire.FormatPlacement(p)
}

func placementsOrEmpty(g *board.Grid) []board.Placement {
	return movegen.Generate(g)
}

// extraPlyBudget reports whether the extra search ply fits within the
// remaining advisory time budget, given the number of legal placements
// p has right now.
func extraPlyBudget(s *Session, placements int) (needed time.Duration, ok bool) {
	remaining := remainingBudgetMillis(s)
	n, okSearch := search.ShouldAttemptExtraPly(placements, s.Config.ExtraPly, remaining)
	return time.Duration(n) * time.Millisecond, okSearch
}

func remainingBudget(s *Session) time.Duration {
	return time.Duration(remainingBudgetMillis(s)) * time.Millisecond
}

func remainingBudgetMillis(s *Session) int64 {
	if s.Config.TimeLimit <= 0 {
		return 0
	}
	budgetMillis := int64(s.Config.TimeLimit) * 1000
	return budgetMillis - s.timer.Elapsed(true).Milliseconds()
}
