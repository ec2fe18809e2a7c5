package transform

// Operation identifies a transform applied to a synthesized sequence
type Operation string

const (
	OpNone          Operation = "None"
	OpScaleDouble   Operation = "Scale x2"
	OpAddOne        Operation = "Add 1"
	OpSubtractOne   Operation = "Subtract 1"
	OpDifferentiate Operation = "Differentiate"
	OpIntegrate     Operation = "Integrate"
)

// Operations returns the supported operations in presentation order
func Operations() []Operation {
	return []Operation{OpNone, OpScaleDouble, OpAddOne, OpSubtractOne, OpDifferentiate, OpIntegrate}
}

// Supported reports whether op is a known operation. Unknown operations
// behave like OpNone.
func (op Operation) Supported() bool {
	if op == OpNone {
		return true
	}
	_, ok := operations[op]
	return ok
}

func (op Operation) String() string {
	return string(op)
}
