// Package protocol drives the line-oriented game loop against the
// referee: reading the secret color, the initial centered tile, and
// each subsequent tile or opponent move, and writing each chosen
// placement, while the Timer tracks time spent computing versus waiting.
package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chromatile/player/board"
	"github.com/chromatile/player/config"
	"github.com/chromatile/player/evaluator"
	"github.com/chromatile/player/firstmove"
	"github.com/chromatile/player/fixedmap"
	"github.com/chromatile/player/guesser"
	"github.com/chromatile/player/logging"
	"github.com/chromatile/player/rng"
	"github.com/chromatile/player/search"
	"github.com/chromatile/player/selector"
)

// Session plays one game to completion against an io.Reader/io.Writer
// pair standing in for stdin/stdout.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Log    *logging.Logger
	Config *config.Config
	Solver *search.Solver
	Table  *firstmove.Table // nil if first-move-table is disabled or unavailable
	RNG    *rng.Source

	scanner *bufio.Scanner
	timer   *Timer
}

// Run plays one complete game. It returns ErrQuit if the referee sent
// Quit at any point (the caller should exit 0), or one of the other
// sentinel errors on protocol failure (the caller should log and exit
// non-zero).
func (s *Session) Run() error {
	s.scanner = bufio.NewScanner(s.In)
	s.scanner.Buffer(make([]byte, 0, 64), 1024)
	s.timer = NewTimer(false)

	mySecret, err := s.readSecretColor()
	if err != nil {
		return err
	}

	startMove, err := s.readMove()
	if err != nil {
		return err
	}
	if startMove.Placement != board.InitialPlacement {
		return fmt.Errorf("%w: initial move not at the fixed starting placement", ErrInvariant)
	}
	var grid board.Grid
	board.Execute(&grid, startMove.Tile, startMove.Placement)

	line, err := s.readLine()
	if err != nil {
		return err
	}
	myPlayer := 0
	if line != "Start" {
		if err := s.applyOpponentLine(line, &grid); err != nil {
			return err
		}
		myPlayer = 1
	}

	var g guesser.Guesser
	var lastScores [board.NumColors]int
	hisSecret := board.Color(0)

	for turn := 0; !board.IsGameOver(&grid); turn++ {
		if s.Config.Guess {
			fixed := fixedmap.Compute(&grid)
			scores := evaluator.EvaluateAllColors(s.Solver.Table, &grid, &fixed)
			if turn > 0 && turn%2 == myPlayer {
				g.Update(lastScores, scores)
				hisSecret = g.Color(mySecret)
				s.Log.Guess(hisSecret)
			}
			lastScores = scores
		}

		if turn%2 == myPlayer {
			if err := s.playMyTurn(turn, mySecret, hisSecret, startMove, &grid); err != nil {
				return err
			}
		} else {
			if err := s.playOpponentTurn(turn, &grid); err != nil {
				return err
			}
		}
	}
	s.Log.Info("Game over.")
	return nil
}

// playMyTurn reads the drawn tile, computes and plays my move, and
// writes the chosen placement.
func (s *Session) playMyTurn(turn int, mySecret, hisSecret board.Color, startMove board.Move, grid *board.Grid) error {
	tile, err := s.readTile()
	if err != nil {
		return err
	}
	pauseDuration := s.timer.Resume()
	s.Log.Pause(pauseDuration, s.timer.Elapsed(false))

	var best []board.Placement
	if turn == 0 && s.Config.FirstMoveTable && s.Table != nil {
		best = s.Table.Query(mySecret, startMove, tile)
	}
	if len(best) == 0 {
		all := placementsOrEmpty(grid)
		mode := selector.Shallow
		if s.Config.Deep {
			mode = selector.Deep
		}
		if s.Config.ExtraPly > 0 && hisSecret != 0 && mode == selector.Deep {
			if needed, ok := extraPlyBudget(s, len(all)); ok {
				mode = selector.ExtraPly
				s.Log.ExtraPly(len(all), true, needed, remainingBudget(s))
			} else {
				s.Log.ExtraPly(len(all), false, needed, remainingBudget(s))
			}
		}
		res := selector.Select(s.Solver, mode, mySecret, hisSecret, grid, tile, all)
		best = res.Best
		s.Log.MoveCount(len(all), len(best), res.Score)
	}
	if len(best) == 0 {
		return fmt.Errorf("%w: no legal placement found on a non-terminal grid", ErrInvariant)
	}

	placement := best[s.RNG.Sample(len(best))]
	move := board.Move{Tile: tile, Placement: placement}
	if !board.IsValid(grid, move.Placement) {
		return fmt.Errorf("%w: computed placement is not legal", ErrInvariant)
	}
	board.Execute(grid, move.Tile, move.Placement)

	output := formatPlacement(move.Placement)
	s.Log.Send(output)
	turnDuration := s.timer.Pause()
	s.Log.Time(turnDuration, s.timer.Elapsed(true))
	if _, err := fmt.Fprintln(s.Out, output); err != nil {
		return fmt.Errorf("protocol: writing move: %w", err)
	}
	return nil
}

// playOpponentTurn reads and applies the opponent's move.
func (s *Session) playOpponentTurn(turn int, grid *board.Grid) error {
	line, err := s.readLine()
	if err != nil {
		return err
	}
	return s.applyOpponentLine(line, grid)
}

func (s *Session) applyOpponentLine(line string, grid *board.Grid) error {
	move, ok := parseMoveLine(line)
	if !ok {
		return fmt.Errorf("%w: %q", ErrParseMove, line)
	}
	if !board.IsValid(grid, move.Placement) {
		return fmt.Errorf("%w: %q", ErrIllegalOpponentMove, line)
	}
	board.Execute(grid, move.Tile, move.Placement)
	return nil
}
