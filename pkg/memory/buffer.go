// Package memory models a bounded integer buffer with calloc/realloc/free
// semantics: allocation is zeroed, growth either succeeds with contents
// preserved or fails leaving the buffer as it was, and release is idempotent.
package memory

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when a request exceeds the buffer limit.
var ErrOutOfMemory = errors.New("out of memory")

// DefaultLimit bounds element counts when no limit is given.
const DefaultLimit = 1 << 20

// Buffer is a resizable slice of ints with an element limit.
type Buffer struct {
	data  []int
	limit int
}

// Alloc returns a zeroed buffer of n elements. limit <= 0 means DefaultLimit.
func Alloc(n, limit int) (*Buffer, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if n < 0 || n > limit {
		return nil, fmt.Errorf("alloc %d elements: %w", n, ErrOutOfMemory)
	}
	return &Buffer{data: make([]int, n), limit: limit}, nil
}

// Data exposes the live elements. It is nil after Release.
func (b *Buffer) Data() []int {
	return b.data
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Grow resizes the buffer to n elements, keeping the existing prefix. On
// failure the buffer is unchanged and still usable.
func (b *Buffer) Grow(n int) error {
	if n < 0 || n > b.limit {
		return fmt.Errorf("grow to %d elements: %w", n, ErrOutOfMemory)
	}
	grown := make([]int, n)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Release drops the backing storage. Calling it twice is safe.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.data = nil
}
