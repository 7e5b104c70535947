package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromatile/player/search"
)

func TestShouldAttemptExtraPlyThresholdDisables(t *testing.T) {
	_, ok := search.ShouldAttemptExtraPly(10, 0, 1000)
	assert.False(t, ok)

	_, ok = search.ShouldAttemptExtraPly(10, 5, 1000)
	assert.False(t, ok, "10 placements should not qualify under a threshold of 5")
}

func TestShouldAttemptExtraPlyBudget(t *testing.T) {
	needed, ok := search.ShouldAttemptExtraPly(4, 10, 100)
	assert.Equal(t, int64(4*4*4*4/50), needed)
	assert.True(t, ok)

	_, ok = search.ShouldAttemptExtraPly(4, 10, 1)
	assert.False(t, ok)
}

func TestShouldAttemptExtraPlyNoBudgetAlwaysAllows(t *testing.T) {
	_, ok := search.ShouldAttemptExtraPly(4, 10, 0)
	assert.True(t, ok)
}
