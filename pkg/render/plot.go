// Package render draws original and processed signals and writes their
// sample data.
package render

import (
	"fmt"

	"github.com/RyanBlaney/signal-plotter/pkg/signal"
	"github.com/RyanBlaney/signal-plotter/pkg/transform"
)

// Plot is one render request: a time grid with the signal sampled on it
// before and after a transform
type Plot struct {
	Title     string
	Kind      signal.Kind
	Operation transform.Operation
	Time      []float64
	Original  []float64
	Processed []float64
}

// Sink consumes a rendered plot. Stage encodes the plot and prepares its
// destination without publishing anything.
type Sink interface {
	Stage(p *Plot) (Staged, error)
}

// Title formats the plot title for a kind and operation
func Title(kind signal.Kind, op transform.Operation) string {
	return fmt.Sprintf("%s Signal with %s", kind, op)
}

// Validate checks that all three sequences share the time grid's length
func (p *Plot) Validate() error {
	if p == nil {
		return fmt.Errorf("plot is nil")
	}
	if len(p.Original) != len(p.Time) {
		return fmt.Errorf("original signal has %d samples, time grid has %d", len(p.Original), len(p.Time))
	}
	if len(p.Processed) != len(p.Time) {
		return fmt.Errorf("processed signal has %d samples, time grid has %d", len(p.Processed), len(p.Time))
	}
	return nil
}
