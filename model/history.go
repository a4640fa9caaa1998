package model

const historySize = 5

// History remembers the hashes of recent generations to detect still lifes
// and short cycles
type History struct {
	hashes []string
}

// Record adds the state of s and keeps only the most recent entries
func (h *History) Record(s LiveSet) {
	h.hashes = append(h.hashes, s.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Period reports the cycle length s repeats with, looking back over the
// recorded generations. 1 is a still life, 0 means no repetition was seen.
func (h *History) Period(s LiveSet) int {
	current := s.Hash()
	for back := 1; back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return back
		}
	}
	return 0
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
