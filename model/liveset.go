package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sort"
)

// LiveSet holds every live cell of a generation. The grid has no bounds,
// so only live cells are stored.
type LiveSet map[Cell]struct{}

// NewLiveSet creates a set from the given cells, duplicates coalesce
func NewLiveSet(cells ...Cell) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add marks a cell alive. Adding a live cell is a no-op.
func (s LiveSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether the cell is alive
func (s LiveSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population
func (s LiveSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s LiveSet) Clone() LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new set with every cell shifted by (dx, dy)
func (s LiveSet) Translate(dx, dy int) LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		out.Add(c.Add(dx, dy))
	}
	return out
}

// LiveNeighbors counts how many of the 8 neighbors of c are alive
func (s LiveSet) LiveNeighbors(c Cell) (count int) {
	for _, n := range c.Neighbors() {
		if s.Contains(n) {
			count++
		}
	}
	return
}

// Cells returns the live cells ordered by row, then column
func (s LiveSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Bounds returns the bounding box of the live cells. ok is false for an empty set.
func (s LiveSet) Bounds() (minCell, maxCell Cell, ok bool) {
	for c := range s {
		if !ok {
			minCell, maxCell, ok = c, c, true
			continue
		}
		minCell.X = min(minCell.X, c.X)
		minCell.Y = min(minCell.Y, c.Y)
		maxCell.X = max(maxCell.X, c.X)
		maxCell.Y = max(maxCell.Y, c.Y)
	}
	return
}

// BoundingBoxSize returns the number of cells in the bounding box, 0 for an empty set
func (s LiveSet) BoundingBoxSize() int {
	lo, hi, ok := s.Bounds()
	if !ok {
		return 0
	}
	return (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1)
}

// Hash returns an MD5 digest of the set, independent of insertion order
func (s LiveSet) Hash() string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range s.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Union merges the sets into a new one
func Union(sets ...LiveSet) LiveSet {
	out := make(LiveSet)
	for _, s := range sets {
		for c := range s {
			out.Add(c)
		}
	}
	return out
}
