// Package patterns builds the initial live sets of well known Life configurations.
package patterns

import "github.com/sheikhrachel/go-life/model"

var (
	gliderOffsets = []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}

	blinkerOffsets = []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	blockOffsets = []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	toadOffsets = []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}

	rPentominoOffsets = []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}

	gosperGliderGunOffsets = []model.Cell{
		// left block
		{X: 0, Y: 4}, {X: 0, Y: 5}, {X: 1, Y: 4}, {X: 1, Y: 5},
		// left ship
		{X: 10, Y: 4}, {X: 10, Y: 5}, {X: 10, Y: 6},
		{X: 11, Y: 3}, {X: 11, Y: 7},
		{X: 12, Y: 2}, {X: 12, Y: 8},
		{X: 13, Y: 2}, {X: 13, Y: 8},
		{X: 14, Y: 5},
		{X: 15, Y: 3}, {X: 15, Y: 7},
		{X: 16, Y: 4}, {X: 16, Y: 5}, {X: 16, Y: 6},
		{X: 17, Y: 5},
		// right ship
		{X: 20, Y: 2}, {X: 20, Y: 3}, {X: 20, Y: 4},
		{X: 21, Y: 2}, {X: 21, Y: 3}, {X: 21, Y: 4},
		{X: 22, Y: 1}, {X: 22, Y: 5},
		{X: 24, Y: 0}, {X: 24, Y: 1}, {X: 24, Y: 5}, {X: 24, Y: 6},
		// right block
		{X: 34, Y: 2}, {X: 34, Y: 3}, {X: 35, Y: 2}, {X: 35, Y: 3},
	}
)

// place anchors the offsets at (x, y)
func place(x, y int, offsets []model.Cell) model.LiveSet {
	return model.NewLiveSet(offsets...).Translate(x, y)
}

// Glider travels one cell right and one down every 4 generations
func Glider(x, y int) model.LiveSet { return place(x, y, gliderOffsets) }

// Blinker is a period 2 oscillator
func Blinker(x, y int) model.LiveSet { return place(x, y, blinkerOffsets) }

// Block is a still life
func Block(x, y int) model.LiveSet { return place(x, y, blockOffsets) }

// Toad is a period 2 oscillator
func Toad(x, y int) model.LiveSet { return place(x, y, toadOffsets) }

// RPentomino is a methuselah that grows chaotically for over a thousand generations
func RPentomino(x, y int) model.LiveSet { return place(x, y, rPentominoOffsets) }

// GosperGliderGun emits a new glider every 30 generations
func GosperGliderGun(x, y int) model.LiveSet { return place(x, y, gosperGliderGunOffsets) }

// Merge combines pattern instances, overlapping cells coalesce
func Merge(sets ...model.LiveSet) model.LiveSet {
	return model.Union(sets...)
}
