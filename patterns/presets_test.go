package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		choice string
		name   string
		ok     bool
	}{
		{"1", "glider", true},
		{"2", "oscillators", true},
		{" 3 ", "r-pentomino", true},
		{"4", "glider-gun", true},
		{"5", "mixed", true},
		{"Glider-Gun", "glider-gun", true},
		{"", "glider", false},
		{"9", "glider", false},
		{"spaceship", "glider", false},
	}
	for _, tt := range tests {
		p, ok := Lookup(tt.choice)
		assert.Equal(t, tt.ok, ok, "choice %q", tt.choice)
		assert.Equal(t, tt.name, p.Name, "choice %q", tt.choice)
	}
}

func TestPresetDefaults(t *testing.T) {
	want := map[string][3]int{
		"1": {50, 25, 100},
		"2": {40, 20, 50},
		"3": {60, 30, 200},
		"4": {80, 40, 300},
		"5": {50, 25, 150},
	}
	got := Presets()
	assert.Len(t, got, len(want))
	for _, p := range got {
		assert.Equal(t, want[p.Key], [3]int{p.Width, p.Height, p.Generations}, p.Name)
		assert.Positive(t, p.Cells().Len(), p.Name)
	}
}

func TestPresetCells(t *testing.T) {
	mixed, _ := Lookup("5")
	assert.Equal(t, 5+3+4+6, mixed.Cells().Len())

	osc, _ := Lookup("2")
	assert.True(t, osc.Cells().Equal(Merge(Blinker(10, 10), Toad(20, 10))))

	// every call builds a fresh set
	a := osc.Cells()
	a.Add(a.Cells()[0].Add(100, 100))
	assert.Equal(t, 9, osc.Cells().Len())
}
