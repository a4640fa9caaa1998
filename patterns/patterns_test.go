package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

func stepN(s model.LiveSet, n int) model.LiveSet {
	for i := 0; i < n; i++ {
		s = model.Step(s)
	}
	return s
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name string
		got  model.LiveSet
		want []model.Cell
	}{
		{"glider", Glider(0, 0), []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}},
		{"blinker", Blinker(0, 0), []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
		{"block", Block(0, 0), []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
		{"toad", Toad(0, 0), []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
		{"r-pentomino", RPentomino(0, 0), []model.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(model.NewLiveSet(tt.want...)), "got %v", tt.got.Cells())
		})
	}
}

func TestAnchorTranslates(t *testing.T) {
	for _, build := range []func(x, y int) model.LiveSet{Glider, Blinker, Block, Toad, RPentomino, GosperGliderGun} {
		assert.True(t, build(0, 0).Translate(-4, 9).Equal(build(-4, 9)))
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, anchor := range []model.Cell{{X: 0, Y: 0}, {X: -3, Y: 8}, {X: 100, Y: -50}} {
		b := Block(anchor.X, anchor.Y)
		assert.True(t, model.Step(b).Equal(b))
	}
}

func TestBlinkerHasPeriodTwo(t *testing.T) {
	b := Blinker(4, -2)
	once := model.Step(b)
	assert.False(t, once.Equal(b))
	assert.True(t, once.Equal(model.NewLiveSet(model.Cell{X: 5, Y: -3}, model.Cell{X: 5, Y: -2}, model.Cell{X: 5, Y: -1})))
	assert.True(t, model.Step(once).Equal(b))
}

func TestToadHasPeriodTwo(t *testing.T) {
	toad := Toad(7, 7)
	assert.False(t, model.Step(toad).Equal(toad))
	assert.True(t, stepN(toad, 2).Equal(toad))
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	for _, anchor := range []model.Cell{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: -10, Y: 3}} {
		g := Glider(anchor.X, anchor.Y)
		assert.True(t, stepN(g, 4).Equal(Glider(anchor.X+1, anchor.Y+1)))
		assert.True(t, stepN(g, 8).Equal(Glider(anchor.X+2, anchor.Y+2)))
	}
}

func TestGosperGliderGun(t *testing.T) {
	gun := GosperGliderGun(0, 0)
	require.Equal(t, 36, gun.Len())

	lo, hi, ok := gun.Bounds()
	require.True(t, ok)
	assert.Equal(t, model.Cell{X: 0, Y: 0}, lo)
	assert.Equal(t, model.Cell{X: 35, Y: 8}, hi)

	// every 30 generations the gun returns to its shape and has emitted a glider
	after := stepN(gun, 30)
	for c := range gun {
		assert.True(t, after.Contains(c), "gun cell %v missing after 30 generations", c)
	}
	assert.Greater(t, after.Len(), gun.Len())

	later := stepN(after, 30)
	for c := range gun {
		assert.True(t, later.Contains(c), "gun cell %v missing after 60 generations", c)
	}
	assert.Greater(t, later.Len(), after.Len())
}

func TestMerge(t *testing.T) {
	m := Merge(Block(0, 0), Block(1, 1))
	assert.Equal(t, 7, m.Len())
	assert.True(t, m.Contains(model.Cell{X: 2, Y: 2}))
}
