package model

import "fmt"

// Cell is a coordinate on the unbounded grid
type Cell struct {
	X, Y int
}

// Neighbors returns the 8 surrounding cells, row by row from the top-left
func (c Cell) Neighbors() [8]Cell {
	x, y := c.X, c.Y
	return [8]Cell{
		{x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1},
		{x - 1, y}, {x + 1, y},
		{x - 1, y + 1}, {x, y + 1}, {x + 1, y + 1},
	}
}

// Add returns the cell shifted by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
