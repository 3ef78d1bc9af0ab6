package demo

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/amirkhaki/gruvcrisp/pkg/bits"
	"github.com/amirkhaki/gruvcrisp/pkg/calc"
	"github.com/amirkhaki/gruvcrisp/pkg/memory"
	"github.com/amirkhaki/gruvcrisp/pkg/scratch"
	"go.uber.org/zap"
)

// Pointers prints array and pointer addresses, indexes the array three ways
// and calls Factorial through a function value.
func (r *Runner) Pointers() error {
	r.banner("Pointer Demonstration")

	numbers := [...]int{10, 20, 30, 40, 50}
	ptr := &numbers[0]
	view := &numbers

	fmt.Fprintf(r.out, "Array address: %p\n", &numbers)
	fmt.Fprintf(r.out, "Pointer value: %p\n", ptr)

	for i := range numbers {
		elem := *(*int)(unsafe.Add(unsafe.Pointer(ptr), uintptr(i)*unsafe.Sizeof(*ptr)))
		fmt.Fprintf(r.out, "numbers[%d] = %d, *(ptr+%d) = %d, ptr[%d] = %d\n",
			i, numbers[i], i, elem, i, view[i])
	}

	pp := &ptr
	fmt.Fprintf(r.out, "\nPointer to pointer: %p -> %p -> %d\n", pp, *pp, **pp)

	mathFunc := calc.Factorial
	f, err := mathFunc(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "\nFactorial of 5: %d\n", f)
	return nil
}

// DynamicMemory allocates a zeroed buffer, fills it with values in [0,100),
// summarizes it, doubles its size and releases it.
func (r *Runner) DynamicMemory() error {
	r.banner("Dynamic Memory Demo")

	count := r.cfg.ArrayLen
	buf, err := memory.Alloc(count, r.cfg.MemoryLimit)
	if err != nil {
		fmt.Fprintln(r.err, "Memory allocation failed")
		return err
	}
	defer buf.Release()

	data := buf.Data()
	for i := range data {
		data[i] = r.rng.Intn(100)
	}
	calc.PrintArray(r.out, data)

	count *= 2
	if err := buf.Grow(count); err != nil {
		r.log.Warn("resize failed, keeping original buffer",
			zap.Int("elements", buf.Len()), zap.Error(err))
		return nil
	}
	fmt.Fprintf(r.out, "Array resized to %d elements\n", count)
	return nil
}

// Bits walks a flag word through set, test, clear, toggle and count. The
// printed states depend on this exact order.
func (r *Runner) Bits() error {
	r.banner("Bit Manipulation")

	var flags bits.Flags
	flags.Set(0)
	flags.Set(3)
	flags.Set(7)
	fmt.Fprintf(r.out, "Flags: %s (binary: %s)\n", flags, flags.Binary())

	const bitPos = 3
	if flags.IsSet(bitPos) {
		fmt.Fprintf(r.out, "Bit %d is set\n", bitPos)
	}

	flags.Clear(bitPos)
	fmt.Fprintf(r.out, "After clearing bit %d: %s\n", bitPos, flags)

	flags.Toggle(5)
	fmt.Fprintf(r.out, "After toggling bit 5: %s\n", flags)

	fmt.Fprintf(r.out, "Number of set bits: %d\n", flags.Count())
	return nil
}

// FileOps writes the scratch file, echoes the text lines read back and
// removes it.
func (r *Runner) FileOps() error {
	r.banner("File Operations")

	hdr := scratch.Header{
		Title:    r.cfg.Title,
		Version:  r.cfg.Version,
		Platform: r.cfg.Platform,
	}
	lines, err := scratch.Cycle(r.cfg.ScratchFile, hdr)
	if errors.Is(err, scratch.ErrOpen) {
		fmt.Fprintf(r.err, "Error opening file: %v\n", err)
		return err
	}
	for _, line := range lines {
		fmt.Fprintf(r.out, "Read: %s\n", line)
	}
	return err
}
