package patterns

import (
	"strings"

	"github.com/sheikhrachel/go-life/model"
)

// Preset is a ready to run demo: an initial live set with the viewport and
// generation limit it is meant to be watched with
type Preset struct {
	Key         string
	Name        string
	Description string
	Width       int
	Height      int
	Generations int

	build func() model.LiveSet
}

// Cells builds a fresh copy of the preset's initial live set
func (p Preset) Cells() model.LiveSet {
	return p.build()
}

var presets = []Preset{
	{
		Key: "1", Name: "glider", Description: "Glider (moves across screen)",
		Width: 50, Height: 25, Generations: 100,
		build: func() model.LiveSet { return Glider(5, 5) },
	},
	{
		Key: "2", Name: "oscillators", Description: "Oscillators (blinker and toad)",
		Width: 40, Height: 20, Generations: 50,
		build: func() model.LiveSet { return Merge(Blinker(10, 10), Toad(20, 10)) },
	},
	{
		Key: "3", Name: "r-pentomino", Description: "R-pentomino (chaotic growth)",
		Width: 60, Height: 30, Generations: 200,
		build: func() model.LiveSet { return RPentomino(30, 15) },
	},
	{
		Key: "4", Name: "glider-gun", Description: "Glider Gun (creates gliders)",
		Width: 80, Height: 40, Generations: 300,
		build: func() model.LiveSet { return GosperGliderGun(5, 10) },
	},
	{
		Key: "5", Name: "mixed", Description: "Mixed patterns",
		Width: 50, Height: 25, Generations: 150,
		build: func() model.LiveSet {
			return Merge(Glider(5, 5), Blinker(25, 12), Block(40, 18), Toad(15, 20))
		},
	},
}

// Presets lists the demos in menu order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup finds a preset by menu key or name. Unknown choices fall back to
// the glider demo with ok set to false.
func Lookup(choice string) (preset Preset, ok bool) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	for _, p := range presets {
		if choice == p.Key || choice == p.Name {
			return p, true
		}
	}
	return presets[0], false
}
