package evaluator

import (
	"fmt"
	"strconv"
	"strings"
)

// Weights are the tunable per-pattern scores fed into the square-base
// memo table.
type Weights struct {
	Base4, Fixed4 int
	Base3, Fixed3 int
	Base2, Fixed2 int
	Base1, Fixed1 int
}

// DefaultWeights reproduces the reference player's tuned constants.
func DefaultWeights() Weights {
	return Weights{
		Base4: 250, Fixed4: 2500,
		Base3: 100, Fixed3: 1000,
		Base2: 10, Fixed2: 100,
		Base1: 1, Fixed1: 10,
	}
}

// ParseWeights parses the "score-weights" option format: eight
// comma-separated integers base4,fixed4,base3,fixed3,base2,fixed2,base1,fixed1.
func ParseWeights(s string) (Weights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 8 {
		return Weights{}, fmt.Errorf("score-weights: expected 8 comma-separated integers, got %d", len(parts))
	}
	vals := make([]int, 8)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Weights{}, fmt.Errorf("score-weights: field %d (%q): %w", i, p, err)
		}
		vals[i] = n
	}
	return Weights{
		Base4: vals[0], Fixed4: vals[1],
		Base3: vals[2], Fixed3: vals[3],
		Base2: vals[4], Fixed2: vals[5],
		Base1: vals[6], Fixed1: vals[7],
	}, nil
}

// String formats w back into the "score-weights" option format.
func (w Weights) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d",
		w.Base4, w.Fixed4, w.Base3, w.Fixed3, w.Base2, w.Fixed2, w.Base1, w.Fixed1)
}
