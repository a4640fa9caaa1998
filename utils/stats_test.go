package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 10, 100*time.Millisecond)
	assert.Equal(t, 10.0, s.AveragePopulation)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)

	s.Update(1, 20, 0)
	assert.InDelta(t, 11.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)
	assert.Equal(t, 20, s.PeakPopulation)
	assert.Equal(t, 1, s.TotalGenerations)

	s.Update(2, 5, time.Second)
	assert.Equal(t, 20, s.PeakPopulation)
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}
