package model

import "sync"

// SetToPool returns a live set to the pool for reuse
func SetToPool(set LiveSet, pool *SetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// SetPool recycles the sets discarded after every generation
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(LiveSet)
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() LiveSet {
	return p.pool.Get().(LiveSet)
}

// Put returns a set to the pool, clearing its state
func (p *SetPool) Put(s LiveSet) {
	clear(s)
	p.pool.Put(s)
}

func getSet(pool *SetPool, sizeHint int) LiveSet {
	if pool != nil {
		return pool.Get()
	}
	return make(LiveSet, sizeHint)
}
