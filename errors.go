// SPDX-License-Identifier: Apache-2.0

package stringpool

import (
	"errors"
)

var (
	// ErrOutOfMemory is returned when the underlying memory provider cannot
	// supply a new chunk. The allocator's existing state is left unchanged.
	ErrOutOfMemory = errors.New("stringpool: out of memory")

	// ErrStringTooLarge is returned when a single allocation exceeds the
	// configured maximum string length.
	ErrStringTooLarge = errors.New("stringpool: string exceeds maximum length")
)
