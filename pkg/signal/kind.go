package signal

// Kind identifies a waveform family
type Kind string

const (
	KindSine     Kind = "Sine"
	KindSquare   Kind = "Square"
	KindSawtooth Kind = "Sawtooth"
	KindTriangle Kind = "Triangle"
)

// Kinds returns the supported waveform kinds in presentation order
func Kinds() []Kind {
	return []Kind{KindSine, KindSquare, KindSawtooth, KindTriangle}
}

// Supported reports whether k has a waveform definition. Unsupported kinds
// still generate (as the zero signal).
func (k Kind) Supported() bool {
	_, ok := waveforms[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}
