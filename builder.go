// SPDX-License-Identifier: Apache-2.0

package stringpool

// Builder incrementally accumulates text that ends up as a single pool
// allocation. It provides a bytes.Buffer-like write surface; Finish copies
// the accumulated bytes into the allocator and returns the handle.
//
// The scratch space lives on the ordinary heap, not in the arena: arena
// memory is never reclaimed per allocation, so staging growable scratch
// there would leak every intermediate copy.
type Builder struct {
	alloc   *Allocator
	scratch []byte
}

// NewBuilder creates a Builder that finalizes into a.
func NewBuilder(a *Allocator) *Builder {
	return &Builder{alloc: a}
}

// Write implements io.Writer. It never returns an error.
func (b *Builder) Write(p []byte) (int, error) {
	b.scratch = append(b.scratch, p...)
	return len(p), nil
}

// WriteString appends s to the pending text.
func (b *Builder) WriteString(s string) (int, error) {
	b.scratch = append(b.scratch, s...)
	return len(s), nil
}

// WriteByte appends a single byte to the pending text.
func (b *Builder) WriteByte(c byte) error {
	b.scratch = append(b.scratch, c)
	return nil
}

// Len returns the number of pending bytes.
func (b *Builder) Len() int {
	return len(b.scratch)
}

// Reset discards the pending text. The scratch capacity is kept for reuse.
func (b *Builder) Reset() {
	b.scratch = b.scratch[:0]
}

// Finish allocates the pending text from the pool and resets the builder
// for reuse. On error the pending text is kept, so the caller may retry.
func (b *Builder) Finish() (String, error) {
	s, err := b.alloc.AllocBytes(b.scratch)
	if err != nil {
		return String{}, err
	}
	b.scratch = b.scratch[:0]
	return s, nil
}
