// Package transform applies point-wise and sequence-wide operations to
// sampled signals.
package transform

import (
	"gonum.org/v1/gonum/floats"
)

type seqFunc func(seq []float64) []float64

// OpNone is absent on purpose: it and unknown operations share the
// pass-through path in Apply.
var operations = map[Operation]seqFunc{
	OpScaleDouble:   func(seq []float64) []float64 { return scale(seq, 2) },
	OpAddOne:        func(seq []float64) []float64 { return offset(seq, 1) },
	OpSubtractOne:   func(seq []float64) []float64 { return offset(seq, -1) },
	OpDifferentiate: Gradient,
	OpIntegrate:     CumulativeSum,
}

// Apply runs op over seq. OpNone and unknown operations return seq itself;
// every other operation returns a new slice of the same length and leaves
// seq untouched.
func Apply(seq []float64, op Operation) []float64 {
	fn, ok := operations[op]
	if !ok {
		return seq
	}
	return fn(seq)
}

// Gradient returns the discrete derivative of seq assuming unit spacing:
// centred differences inside, one-sided differences at both ends.
// A single sample has zero gradient.
func Gradient(seq []float64) []float64 {
	n := len(seq)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	out[0] = seq[1] - seq[0]
	for i := 1; i < n-1; i++ {
		out[i] = (seq[i+1] - seq[i-1]) / 2
	}
	out[n-1] = seq[n-1] - seq[n-2]

	return out
}

// CumulativeSum returns the running total of seq, out[i] = seq[0] + ... + seq[i]
func CumulativeSum(seq []float64) []float64 {
	return floats.CumSum(make([]float64, len(seq)), seq)
}

func scale(seq []float64, c float64) []float64 {
	out := clone(seq)
	floats.Scale(c, out)
	return out
}

func offset(seq []float64, c float64) []float64 {
	out := clone(seq)
	floats.AddConst(c, out)
	return out
}

func clone(seq []float64) []float64 {
	out := make([]float64, len(seq))
	copy(out, seq)
	return out
}
