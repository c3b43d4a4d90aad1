// SPDX-License-Identifier: Apache-2.0

package stringpool

import (
	"bytes"
	"unsafe"
)

// nul backs the view of empty handles, so consumers that expect a
// terminated empty string still get one without arena-owned storage.
var nul [1]byte

// String is a non-owning view of text allocated from an Allocator: a
// pointer into a chunk plus a length. Copying a String copies the pair
// only, no data is copied and no allocation occurs.
//
// The view is valid only while the owning Allocator is alive and has not
// been Reset. A String does not track which allocator it came from;
// respecting its lifetime is the caller's obligation.
//
// The zero value is a usable empty string.
type String struct {
	ptr    *byte
	length int
}

// Len returns the number of bytes in the string, excluding the terminator.
func (s String) Len() int {
	return s.length
}

// IsEmpty reports whether the string has length zero.
func (s String) IsEmpty() bool {
	return s.length == 0
}

// Bytes returns a read-only view of the text. The view's capacity extends
// one byte past its length, covering the terminating NUL, so the region
// stays usable as a C-style string. Mutating the view is undefined
// behavior.
func (s String) Bytes() []byte {
	if s.ptr == nil {
		return nul[:0:1]
	}
	return unsafe.Slice(s.ptr, s.length+1)[: s.length : s.length+1]
}

// String returns the text as a string sharing the arena's memory, without
// copying. The result is only valid while the owning allocator is alive
// and not reset; use Clone for a copy that outlives the arena.
func (s String) String() string {
	if s.length == 0 {
		return ""
	}
	return unsafe.String(s.ptr, s.length)
}

// Clone returns an independent copy of the text, safe to use after the
// owning allocator has been reset or dropped.
func (s String) Clone() string {
	return string(s.Bytes())
}

// Compare returns -1, 0 or +1 ordering s against other byte-wise
// lexicographically, with the shorter string ordered first when one is a
// prefix of the other. Sorting handles with Compare yields the same order
// as sorting the equivalent Go strings.
func (s String) Compare(other String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// Equal reports whether s and other hold the same text.
func (s String) Equal(other String) bool {
	return s.Compare(other) == 0
}

// Less reports whether s orders before other.
func (s String) Less(other String) bool {
	return s.Compare(other) < 0
}

// Move transfers the view out of s and leaves s a usable empty string.
func (s *String) Move() String {
	moved := *s
	*s = String{}
	return moved
}
