// Package calc holds the small arithmetic and string helpers the demos are
// built from.
package calc

import "errors"

// ErrInvalidArgument is returned alongside a -1 result when an argument is
// outside the domain of a function.
var ErrInvalidArgument = errors.New("invalid argument")

// Factorial returns n! computed recursively.
// For negative n it returns -1 together with ErrInvalidArgument. Large n
// overflows silently.
func Factorial(n int) (int, error) {
	if n < 0 {
		return -1, ErrInvalidArgument
	}
	if n <= 1 {
		return 1, nil
	}
	f, err := Factorial(n - 1)
	if err != nil {
		return -1, err
	}
	return n * f, nil
}

// Swap exchanges the values a and b point to. It does nothing if either is nil.
func Swap(a, b *int) {
	if a == nil || b == nil {
		return
	}
	*a, *b = *b, *a
}

// Reverse reverses s in place and returns it.
func Reverse(s []byte) []byte {
	if len(s) == 0 {
		return s
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func Square(x int) int {
	return x * x
}
