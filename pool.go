package stringpool

import (
	"sync"
	"weak"
)

// Pool provides a thread-safe pool of Allocator instances for callers that
// need one allocator per worker or task. The allocators themselves stay
// single-threaded; only checkout and return are synchronized.
//
// Pool items are stored as weak pointers, so the GC can collect idle
// allocators at any time. Before handing an item out we upgrade it to a
// strong pointer while removing it from the pool; Release turns it back
// into a weak pointer. This lets the GC settle on an appropriate pool size
// depending on available memory and GC pressure.
type Pool struct {
	pool  []weak.Pointer[PoolItem]
	sizes map[uint64]*poolItemSize
	mu    sync.Mutex
}

// poolItemSize tracks the memory required across the last 50 allocators
// released under one key.
type poolItemSize struct {
	count      int
	totalBytes int
}

// PoolItem wraps an Allocator checked out from the pool.
type PoolItem struct {
	Allocator *Allocator
	Key       uint64
}

// NewPool creates a new Pool instance.
func NewPool() *Pool {
	return &Pool{
		sizes: make(map[uint64]*poolItemSize),
	}
}

// Acquire gets an allocator from the pool or creates a new one if none are
// available. The key identifies the use case so that fresh allocators can
// be sized from the recorded peak usage of earlier ones.
func (p *Pool) Acquire(key uint64) *PoolItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Try to find an available allocator in the pool.
	for len(p.pool) > 0 {
		lastIdx := len(p.pool) - 1
		wp := p.pool[lastIdx]
		p.pool = p.pool[:lastIdx]

		v := wp.Value()
		if v != nil {
			v.Key = key
			return v
		}
		// Weak pointer was collected, continue to the next item.
	}

	return &PoolItem{
		Allocator: New(WithMinChunkSize(p.chunkSizeFor(key))),
		Key:       key,
	}
}

// Release returns an allocator to the pool for reuse. Its chunks are
// dropped and its peak usage is recorded to size future allocators for
// this key.
func (p *Pool) Release(item *PoolItem) {
	peak := item.Allocator.Peak()
	item.Allocator.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.recordPeak(item.Key, peak)
	item.Key = 0

	w := weak.Make(item)
	p.pool = append(p.pool, w)
}

// ReleaseMany returns a batch of allocators under a single lock.
func (p *Pool) ReleaseMany(items []*PoolItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, item := range items {
		peak := item.Allocator.Peak()
		item.Allocator.Reset()

		p.recordPeak(item.Key, peak)
		item.Key = 0

		w := weak.Make(item)
		p.pool = append(p.pool, w)
	}
}

// recordPeak folds one released allocator's peak into the rolling window
// for its key. Callers must hold p.mu.
func (p *Pool) recordPeak(key uint64, peak int) {
	if size, ok := p.sizes[key]; ok {
		if size.count == 50 {
			size.count = 1
			size.totalBytes = size.totalBytes / 50
		}
		size.count++
		size.totalBytes += peak
	} else {
		p.sizes[key] = &poolItemSize{
			count:      1,
			totalBytes: peak,
		}
	}
}

// chunkSizeFor returns the chunk size floor for a fresh allocator under
// the given key, based on recorded peaks. Callers must hold p.mu.
func (p *Pool) chunkSizeFor(key uint64) int {
	if size, ok := p.sizes[key]; ok {
		if avg := size.totalBytes / size.count; avg > 0 {
			return avg
		}
	}
	return defaultMinChunkSize
}
