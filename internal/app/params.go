package app

import (
	"strconv"
	"strings"

	"github.com/RyanBlaney/signal-plotter/pkg/signal"
	"github.com/RyanBlaney/signal-plotter/pkg/transform"
)

// Input error notification shown to the user
const (
	InputErrorTitle   = "Input Error"
	InputErrorMessage = "Frequency and Amplitude must be numbers."
)

// InputError reports a parameter that failed to parse as a number
type InputError struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Cause error  `json:"-"`
}

func (e *InputError) Error() string {
	return InputErrorMessage
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// RenderRequest is a validated set of render parameters
type RenderRequest struct {
	Kind      signal.Kind
	Operation transform.Operation
	Frequency float64
	Amplitude float64
}

// ParseRequest validates the four user parameters. Only frequency and
// amplitude can fail; unknown kinds and operations fall back at render time.
func ParseRequest(kind, operation, frequencyText, amplitudeText string) (*RenderRequest, error) {
	frequency, err := parseNumber("frequency", frequencyText)
	if err != nil {
		return nil, err
	}

	amplitude, err := parseNumber("amplitude", amplitudeText)
	if err != nil {
		return nil, err
	}

	return &RenderRequest{
		Kind:      signal.Kind(kind),
		Operation: transform.Operation(operation),
		Frequency: frequency,
		Amplitude: amplitude,
	}, nil
}

func parseNumber(field, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &InputError{
			Field: field,
			Value: text,
			Cause: err,
		}
	}
	return value, nil
}
