package calc

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Stats summarizes an integer slice.
type Stats struct {
	Min  int
	Max  int
	Mean float64
}

// Summarize computes min, max and mean of arr in a single pass.
// The sum is accumulated in 64 bits. An empty slice yields Min=MaxInt,
// Max=MinInt and a NaN mean.
func Summarize(arr []int) Stats {
	st := Stats{Min: math.MaxInt, Max: math.MinInt}
	var sum int64
	for _, v := range arr {
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
		sum += int64(v)
	}
	st.Mean = float64(sum) / float64(len(arr))
	return st
}

// PrintArray writes the contents of arr followed by its summary line.
func PrintArray(w io.Writer, arr []int) Stats {
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(w, "Array contents: %s\n", strings.Join(parts, ", "))

	st := Summarize(arr)
	fmt.Fprintf(w, "Min: %d, Max: %d, Average: %.2f\n", st.Min, st.Max, st.Mean)
	return st
}
