// Package signal synthesizes elementary periodic waveforms over a time grid.
package signal

import (
	"math"
)

// waveFunc evaluates one sample of a waveform at time t
type waveFunc func(t, frequency, amplitude float64) float64

var waveforms = map[Kind]waveFunc{
	KindSine:     sine,
	KindSquare:   square,
	KindSawtooth: sawtooth,
	KindTriangle: triangle,
}

// Generate evaluates the waveform of the given kind at every point of grid.
// Unknown kinds produce the zero signal rather than an error. The returned
// slice is always newly allocated and has the same length as grid.
func Generate(kind Kind, grid []float64, frequency, amplitude float64) []float64 {
	out := make([]float64, len(grid))

	wave, ok := waveforms[kind]
	if !ok {
		return out
	}

	for i, t := range grid {
		out[i] = wave(t, frequency, amplitude)
	}

	return out
}

func sine(t, frequency, amplitude float64) float64 {
	return amplitude * math.Sin(2*math.Pi*frequency*t)
}

func square(t, frequency, amplitude float64) float64 {
	return amplitude * sign(math.Sin(2*math.Pi*frequency*t))
}

// sawtooth ramps through [-amplitude, amplitude) once per period
func sawtooth(t, frequency, amplitude float64) float64 {
	return amplitude * (2 * (t*frequency - math.Floor(0.5+t*frequency)))
}

func triangle(t, frequency, amplitude float64) float64 {
	return amplitude * (2*math.Abs(2*(t*frequency-math.Floor(t*frequency+0.5))) - 1)
}

// sign returns -1, 0 or 1. NaN propagates.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// zero or NaN
		return x * 0
	}
}
