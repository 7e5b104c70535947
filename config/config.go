// Package config parses and validates the player's command-line
// options, all of which are read once at startup before the game loop
// begins.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chromatile/player/evaluator"
)

// Config holds every recognized command-line option.
type Config struct {
	Deep                 bool
	Guess                bool
	FirstMoveTable       bool
	ExtraPly             int
	TimeLimit            int
	Seed                 string
	ScoreWeights         evaluator.Weights
	PrecomputeFirstMoves bool
	Help                 bool

	scoreWeightsRaw string
}

// New returns a Config with the reference player's defaults.
func New() *Config {
	return &Config{
		Deep:           true,
		Guess:          true,
		FirstMoveTable: true,
		ExtraPly:       0,
		TimeLimit:      28,
		ScoreWeights:   evaluator.DefaultWeights(),
	}
}

// Load parses args (excluding the program name) into c.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("player", pflag.ContinueOnError)
	fs.BoolVar(&c.Deep, "deep", c.Deep, "search deeper (second ply instead of default single ply)")
	fs.BoolVar(&c.Guess, "guess", c.Guess, "guess opponent's secret color instead of considering all possibilities")
	fs.BoolVar(&c.FirstMoveTable, "first-move-table", c.FirstMoveTable, "use the precomputed first move table")
	fs.IntVar(&c.ExtraPly, "extra-ply", c.ExtraPly, "attempt a third search ply once remaining placements drop below this value (0 disables)")
	fs.IntVar(&c.TimeLimit, "time-limit", c.TimeLimit, "advisory per-game time budget in seconds (0 disables time-based gating)")
	fs.StringVar(&c.Seed, "seed", c.Seed, "RNG seed in hexadecimal; empty picks one randomly")
	fs.StringVar(&c.scoreWeightsRaw, "score-weights", c.ScoreWeights.String(), "evaluation weights: base4,fixed4,base3,fixed3,base2,fixed2,base1,fixed1")
	fs.BoolVar(&c.PrecomputeFirstMoves, "precompute-first-moves", false, "compute the first-move table, print its entry count and checksum (not the entries), and exit")
	fs.BoolVar(&c.Help, "help", false, "show usage information")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Deep = v.GetBool("deep")
	c.Guess = v.GetBool("guess")
	c.FirstMoveTable = v.GetBool("first-move-table")
	c.ExtraPly = v.GetInt("extra-ply")
	c.TimeLimit = v.GetInt("time-limit")
	c.Seed = v.GetString("seed")
	c.scoreWeightsRaw = v.GetString("score-weights")
	c.PrecomputeFirstMoves = v.GetBool("precompute-first-moves")
	c.Help = v.GetBool("help")

	weights, err := evaluator.ParseWeights(c.scoreWeightsRaw)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.ScoreWeights = weights

	return c.Validate()
}

// Validate rejects configurations that the search cannot honor.
func (c *Config) Validate() error {
	if c.ExtraPly > 0 && !(c.Deep && c.Guess) {
		return fmt.Errorf("config: extra-ply requires both deep and guess to be enabled")
	}
	if c.ExtraPly < 0 {
		return fmt.Errorf("config: extra-ply must not be negative")
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("config: time-limit must not be negative")
	}
	return nil
}
