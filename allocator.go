// SPDX-License-Identifier: Apache-2.0

package stringpool

import (
	"bytes"
	"unsafe"
)

const (
	// defaultMinChunkSize is the floor for a new chunk's total footprint,
	// in bytes (600 KiB). A generous floor amortizes the cost of a chunk
	// request over many cheap bump allocations.
	defaultMinChunkSize = 600 << 10

	// defaultMaxStringLength is the ceiling on a single allocation's byte
	// count (1 MiB). It bounds the worst-case memory spike one request can
	// cause.
	defaultMaxStringLength = 1 << 20
)

// chunkHeaderSize accounts for the per-chunk bookkeeping when sizing a new
// chunk, so the configured floor reflects the chunk's total footprint.
var chunkHeaderSize = int(unsafe.Sizeof(chunk{}))

// MemoryFunc requests a block of size bytes from an underlying memory
// provider. Returning nil signals allocation failure.
type MemoryFunc func(size int) []byte

// chunk is one fixed-size block of slot storage. Its backing memory never
// grows or moves, so views carved from it stay valid for the allocator's
// lifetime.
type chunk struct {
	buf  []byte
	next int // first free slot; next <= len(buf) always
}

// carve serves n slots from the chunk's free space by advancing the
// cursor. No heap call happens on this path.
func (c *chunk) carve(n int) ([]byte, bool) {
	if c.next+n > len(c.buf) {
		return nil, false
	}
	s := c.buf[c.next : c.next+n : c.next+n]
	c.next += n
	return s, true
}

// Allocator is a bump-pointer allocator for immutable text. It owns an
// insertion-ordered list of chunks and serves allocations by carving
// contiguous regions from the most recent chunk, appending a new chunk
// when the current one is exhausted. Individual strings are never freed;
// memory is reclaimed in bulk by Reset or by dropping the allocator.
//
// An Allocator is not safe for concurrent use. Use one allocator per
// worker, or a Pool.
type Allocator struct {
	chunks          []*chunk
	peak            int // high-water mark of carved bytes, survives Reset
	minChunkSize    int
	maxStringLength int
	memory          MemoryFunc
}

// Option represents a configuration option for an Allocator.
type Option func(*Allocator)

// WithMinChunkSize sets the floor for any new chunk's total size in bytes.
// Larger values trade memory headroom for fewer growth events.
func WithMinChunkSize(size int) Option {
	return func(a *Allocator) {
		a.minChunkSize = size
	}
}

// WithMaxStringLength sets the ceiling on a single allocation's byte count.
func WithMaxStringLength(n int) Option {
	return func(a *Allocator) {
		a.maxStringLength = n
	}
}

// WithMemoryFunc sets the provider used to obtain chunk storage. A provider
// returning nil makes the allocation fail with ErrOutOfMemory.
func WithMemoryFunc(fn MemoryFunc) Option {
	return func(a *Allocator) {
		a.memory = fn
	}
}

// New creates an empty Allocator. No chunk is allocated until the first
// allocation request.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		minChunkSize:    defaultMinChunkSize,
		maxStringLength: defaultMaxStringLength,
		memory: func(size int) []byte {
			return make([]byte, size)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AllocString copies s plus a terminating NUL into arena-owned memory and
// returns a String over the copied region. The returned handle's bytes are
// never moved or mutated by later allocations. May create a new chunk.
func (a *Allocator) AllocString(s string) (String, error) {
	region, err := a.allocSlots(len(s))
	if err != nil {
		return String{}, err
	}
	copy(region, s)
	region[len(s)] = 0
	return String{ptr: &region[0], length: len(s)}, nil
}

// AllocBytes is AllocString for a byte view. Half-open ranges are expressed
// as p[start:end].
func (a *Allocator) AllocBytes(p []byte) (String, error) {
	region, err := a.allocSlots(len(p))
	if err != nil {
		return String{}, err
	}
	copy(region, p)
	region[len(p)] = 0
	return String{ptr: &region[0], length: len(p)}, nil
}

// AllocTerminated allocates from a NUL-terminated buffer: the length is
// found by scanning for the first 0 byte. Absent a terminator, the whole
// slice is taken.
func (a *Allocator) AllocTerminated(p []byte) (String, error) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return a.AllocBytes(p)
}

// allocSlots returns a region of length+1 slots (text plus terminator),
// carving from the active chunk when it has room and growing by exactly one
// right-sized chunk otherwise. A failed grow leaves the allocator's state
// unchanged.
func (a *Allocator) allocSlots(length int) ([]byte, error) {
	if length > a.maxStringLength {
		return nil, ErrStringTooLarge
	}
	needed := length + 1
	if n := len(a.chunks); n > 0 {
		if region, ok := a.chunks[n-1].carve(needed); ok {
			a.trackPeak()
			return region, nil
		}
	}
	if err := a.grow(needed); err != nil {
		return nil, err
	}
	// The fresh chunk is sized to fit the request, so this carve cannot
	// fail.
	region, _ := a.chunks[len(a.chunks)-1].carve(needed)
	a.trackPeak()
	return region, nil
}

// grow appends one chunk holding at least needed slots, never smaller than
// the configured floor.
func (a *Allocator) grow(needed int) error {
	size := needed + chunkHeaderSize
	if size < a.minChunkSize {
		size = a.minChunkSize
	}
	buf := a.memory(size)
	if buf == nil {
		return ErrOutOfMemory
	}
	a.chunks = append(a.chunks, &chunk{buf: buf})
	return nil
}

func (a *Allocator) trackPeak() {
	if n := a.Len(); n > a.peak {
		a.peak = n
	}
}

// Reset drops every chunk and returns the allocator to its initial empty
// state. Every String previously returned becomes dangling; not using
// handles after Reset is the caller's obligation, the allocator does not
// detect it.
func (a *Allocator) Reset() {
	a.chunks = nil
}

// Len returns the total number of bytes carved so far, terminator slots
// included.
func (a *Allocator) Len() int {
	var total int
	for _, c := range a.chunks {
		total += c.next
	}
	return total
}

// Cap returns the total capacity of all chunks in bytes.
func (a *Allocator) Cap() int {
	var total int
	for _, c := range a.chunks {
		total += len(c.buf)
	}
	return total
}

// NumChunks returns the number of chunks currently owned by the allocator.
func (a *Allocator) NumChunks() int {
	return len(a.chunks)
}

// Peak returns the high-water mark of carved bytes. Unlike Len it is not
// reset by Reset, so it can be used to size a fresh allocator for the same
// workload.
func (a *Allocator) Peak() int {
	return a.peak
}
