// Package logging writes the player's stderr log stream: free-form
// INFO/WARNING/ERROR messages through zerolog, and the fixed-format
// tagged lines (SEED, IO, TIME, PAUSE, MOVES, GUESS, EXTRA_PLY, and the
// player identification line) written directly, since their positional
// layouts don't fit zerolog's key-value model.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/chromatile/player/board"
)

// Logger writes both the free-form and fixed-format lines of the
// player's stderr log stream.
type Logger struct {
	out io.Writer
	zl  zerolog.Logger
}

// New builds a Logger writing to out, at the given zerolog level.
func New(out io.Writer, level zerolog.Level) *Logger {
	console := zerolog.ConsoleWriter{Out: out, NoColor: true}
	console.PartsOrder = []string{zerolog.LevelFieldName, zerolog.MessageFieldName}
	console.FormatLevel = func(i interface{}) string {
		s, _ := i.(string)
		return strings.ToUpper(s)
	}
	console.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%v", i)
	}
	console.FormatTimestamp = func(i interface{}) string { return "" }
	zl := zerolog.New(console).Level(level)
	return &Logger{out: out, zl: zl}
}

func (l *Logger) Info(msg string)    { l.zl.Info().Msg(msg) }
func (l *Logger) Warning(msg string) { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string)   { l.zl.Error().Msg(msg) }

func (l *Logger) Infof(format string, args ...interface{})    { l.zl.Info().Msgf(format, args...) }
func (l *Logger) Warningf(format string, args ...interface{}) { l.zl.Warn().Msgf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{})   { l.zl.Error().Msgf(format, args...) }

func (l *Logger) raw(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// ID logs the player identification line: type character, name, and
// architecture bit width.
func (l *Logger) ID(typeChar byte, name string) {
	l.raw("%c %s (%d bit)", typeChar, name, 64)
}

// Seed logs the RNG seed in hexadecimal.
func (l *Logger) Seed(hex string) {
	l.raw("SEED %s", hex)
}

// Send logs an outgoing protocol line.
func (l *Logger) Send(line string) {
	l.raw("IO SEND [%s]", line)
}

// Received logs an incoming protocol line.
func (l *Logger) Received(line string) {
	l.raw("IO RCVD [%s]", line)
}

// Time logs the duration of the current turn and the running total.
func (l *Logger) Time(turn, total time.Duration) {
	l.raw("TIME %d %d", turn.Milliseconds(), total.Milliseconds())
}

// Pause logs the duration the timer was just paused and the running
// paused total.
func (l *Logger) Pause(interval, total time.Duration) {
	l.raw("PAUSE %d %d", interval.Milliseconds(), total.Milliseconds())
}

// MoveCount logs the number of legal placements considered, how many
// tied for best, and the winning score.
func (l *Logger) MoveCount(totalMoves, bestMoves, bestScore int) {
	l.raw("MOVES %d %d %d", totalMoves, bestMoves, bestScore)
}

// Guess logs the current best guess of the opponent's secret color.
func (l *Logger) Guess(color board.Color) {
	l.raw("GUESS %d", color)
}

// ExtraPly logs whether the extra search ply was attempted, and the
// time budget that decision was based on when timing is enabled.
func (l *Logger) ExtraPly(placements int, enabled bool, budget ...time.Duration) {
	flag := 0
	if enabled {
		flag = 1
	}
	if len(budget) == 2 {
		l.raw("EXTRA_PLY %d %d %d %d", placements, flag, budget[0].Milliseconds(), budget[1].Milliseconds())
		return
	}
	l.raw("EXTRA_PLY %d %d", placements, flag)
}

// Fatal writes an ERROR line and terminates the process with the given
// exit status, mirroring the reference player's exit(1)-on-error style.
func (l *Logger) Fatal(status int, format string, args ...interface{}) {
	l.Errorf(format, args...)
	os.Exit(status)
}
