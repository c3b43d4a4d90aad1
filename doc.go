// SPDX-License-Identifier: Apache-2.0

// Package stringpool implements a bump-pointer arena allocator specialized
// for immutable, fixed-length text, plus a lightweight String handle over
// allocations from it.
//
// The Allocator owns a growable list of memory chunks and serves each
// request by carving a contiguous region from the current chunk via
// pointer advancement, falling back to a new chunk when the current one is
// exhausted. Individual strings are never freed: memory is reclaimed in
// bulk with Reset or when the allocator is dropped.
//
//	pool := stringpool.New()
//	s, err := pool.AllocString("hello")
//	if err != nil {
//		// ErrStringTooLarge or ErrOutOfMemory
//	}
//	_ = s.Len()        // 5
//	_ = s.Compare(s)   // 0
//	owned := s.Clone() // safe to outlive the pool
//	pool.Reset()       // s is now dangling, owned is fine
//
// A String is a (pointer, length) pair into arena memory. Copies are cheap
// and value-semantic; validity is tied to the owning allocator's lifetime
// and is the caller's responsibility after Reset.
//
// An Allocator is not safe for concurrent use. Callers needing concurrent
// allocation should use one allocator per worker; Pool hands out reusable,
// peak-sized allocators for that pattern.
package stringpool
