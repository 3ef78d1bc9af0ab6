// Package bits provides a 32-bit flag word and a packed configuration word.
package bits

import (
	"fmt"
	"strings"
)

// Flags is an unsigned 32-bit word used as a bitset. Every mutating method
// touches exactly one bit position.
type Flags uint32

func (f *Flags) Set(pos uint)    { *f |= 1 << pos }
func (f *Flags) Clear(pos uint)  { *f &^= 1 << pos }
func (f *Flags) Toggle(pos uint) { *f ^= 1 << pos }

// IsSet reports whether bit pos is set.
func (f Flags) IsSet(pos uint) bool {
	return f&(1<<pos) != 0
}

// Count returns the number of set bits.
func (f Flags) Count() int {
	count := 0
	for tmp := uint32(f); tmp != 0; tmp >>= 1 {
		count += int(tmp & 1)
	}
	return count
}

// Binary renders all 32 bits, most significant first, with a space between
// bytes.
func (f Flags) Binary() string {
	var sb strings.Builder
	sb.Grow(35)
	for i := 31; i >= 0; i-- {
		sb.WriteByte('0' + byte(f>>uint(i)&1))
		if i%8 == 0 && i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (f Flags) String() string {
	return fmt.Sprintf("0x%08X", uint32(f))
}
