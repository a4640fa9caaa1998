package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Step computes the next generation. The input set is left untouched.
func Step(s LiveSet) LiveSet {
	return NextGeneration(s, nil)
}

// collectCandidates fills into with every live cell and all of their neighbors.
// Any cell outside this set has no live neighbor and stays dead.
func collectCandidates(s LiveSet, into LiveSet) {
	for c := range s {
		into.Add(c)
		for _, n := range c.Neighbors() {
			into.Add(n)
		}
	}
}

// NextGeneration calculates the next generation, drawing its sets from pool when given
func NextGeneration(s LiveSet, pool *SetPool) LiveSet {
	candidates := getSet(pool, len(s)*9)
	collectCandidates(s, candidates)

	next := getSet(pool, len(s))
	for c := range candidates {
		if rules.ApplyConwayRules(s.LiveNeighbors(c), s.Contains(c)) {
			next.Add(c)
		}
	}

	SetToPool(candidates, pool)
	return next
}

// NextGenerationParallel calculates the next generation by sharding the
// candidate cells across workers. workers <= 0 uses one per CPU.
func NextGenerationParallel(s LiveSet, pool *SetPool, workers int) LiveSet {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	candidates := make([]Cell, 0, len(s)*9)
	seen := getSet(pool, len(s)*9)
	collectCandidates(s, seen)
	for c := range seen {
		candidates = append(candidates, c)
	}
	SetToPool(seen, pool)

	var (
		eg             errgroup.Group
		cellsPerWorker = (len(candidates) + workers - 1) / workers // Ceiling division
		survivors      = make([][]Cell, workers)
	)

	for i := 0; i < workers; i++ {
		i := i
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			for _, c := range candidates[start:end] {
				if rules.ApplyConwayRules(s.LiveNeighbors(c), s.Contains(c)) {
					survivors[i] = append(survivors[i], c)
				}
			}
			return nil
		})
	}

	// workers only read s and write their own slot, they cannot fail
	_ = eg.Wait()

	next := getSet(pool, len(s))
	for _, shard := range survivors {
		for _, c := range shard {
			next.Add(c)
		}
	}
	return next
}
