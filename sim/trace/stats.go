package trace

import (
	"math"
	"slices"
)

type IntOrFloat64 interface {
	int | uint64 | float64
}

// Percentile returns the p-th percentile of data using linear interpolation
// between closest ranks. data must be sorted ascending; empty data gives 0.
func Percentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return float64(data[n-1])
	}
	if lowerIdx == upperIdx {
		return float64(data[lowerIdx])
	}
	lowerVal := float64(data[lowerIdx])
	upperVal := float64(data[upperIdx])
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// Mean returns the arithmetic mean of numbers, 0 for an empty slice.
func Mean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// queueLens returns the recorded queue lengths, sorted ascending.
func queueLens(st *SimulationTrace) []int {
	lens := make([]int, len(st.Ticks))
	for i, r := range st.Ticks {
		lens[i] = r.QueueLen
	}
	slices.Sort(lens)
	return lens
}
