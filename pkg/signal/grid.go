package signal

import (
	"gonum.org/v1/gonum/floats"
)

// Default time grid: 500 points over one second
const (
	DefaultSamples = 500
	DefaultStart   = 0.0
	DefaultStop    = 1.0
)

// Linspace returns n evenly spaced points over [start, stop], both ends
// included. n == 1 yields just start; n <= 0 yields an empty grid.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}

	return floats.Span(make([]float64, n), start, stop)
}

// DefaultGrid returns the default time grid
func DefaultGrid() []float64 {
	return Linspace(DefaultStart, DefaultStop, DefaultSamples)
}
