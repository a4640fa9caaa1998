package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellNeighbors(t *testing.T) {
	got := Cell{X: 0, Y: 0}.Neighbors()

	want := [8]Cell{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	assert.Equal(t, want, got)
}

func TestCellNeighborsAreDistinctAndAdjacent(t *testing.T) {
	c := Cell{X: -7, Y: 12}
	seen := map[Cell]bool{}
	for _, n := range c.Neighbors() {
		assert.NotEqual(t, c, n)
		assert.LessOrEqual(t, abs(n.X-c.X), 1)
		assert.LessOrEqual(t, abs(n.Y-c.Y), 1)
		seen[n] = true
	}
	assert.Len(t, seen, 8)
}

func TestCellAdd(t *testing.T) {
	assert.Equal(t, Cell{X: 3, Y: -1}, Cell{X: 1, Y: 1}.Add(2, -2))
	assert.Equal(t, "(3,-1)", Cell{X: 3, Y: -1}.String())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
