// Package gene decodes the 64-bit packed gene wire format into typed
// connection fields. Decoding is pure and total: every uint64 value maps to
// either a resolved Decoded value or None, never an error.
package gene

import "evosim/neuron"

// Gene is one 64-bit packed description of a candidate neural connection.
type Gene uint64

// InputType is the 2-bit tag selecting which neuron bank raw_source resolves
// against.
type InputType uint8

const (
	InputSensory  InputType = 0
	InputInternal InputType = 1
	InputConstant InputType = 2
	InputInvalid  InputType = 3
)

// OutputType is the 2-bit tag selecting which neuron bank raw_dest resolves
// against.
type OutputType uint8

const (
	OutputSensoryInvalid OutputType = 0
	OutputInternal       OutputType = 1
	OutputConstantInvalid OutputType = 2
	OutputAction         OutputType = 3
)

// NumActivationFunctions bounds the activation_fn field; raw_activation mod
// this value selects ReLU, sigmoid or tanh (see package brain).
const NumActivationFunctions = 3

// Decoded is the fully resolved form of a non-inert gene.
type Decoded struct {
	Source     neuron.ID
	Dest       neuron.ID
	Weight     float64
	Activation uint8
}

// Decode extracts and resolves the fields of g against the given neuron
// bank sizes. It returns (Decoded{}, false) when the gene is inert: an
// invalid input/output type, or a bank of size zero after folding.
func Decode(g Gene, banks neuron.Banks) (Decoded, bool) {
	inputType := InputType(g >> 62)
	srcN, srcOffset, ok := sourceBank(inputType, banks)
	if !ok {
		return Decoded{}, false
	}
	rawSource := uint16(g>>52) & 0x3FF
	sourceID := neuron.ID(rawSource%srcN) + srcOffset

	outputType := OutputType((g >> 50) & 0x3)
	dstN, dstOffset, ok := destBank(outputType, banks)
	if !ok {
		return Decoded{}, false
	}
	rawDest := uint16(g>>40) & 0x3FF
	destID := neuron.ID(rawDest%dstN) + dstOffset

	rawWeight := uint32(g>>16) & 0xFFFFFF
	weight := (float64(rawWeight) - 8388608) / 2097152

	activation := uint8(g>>8) % NumActivationFunctions

	return Decoded{
		Source:     sourceID,
		Dest:       destID,
		Weight:     weight,
		Activation: activation,
	}, true
}

// sourceBank resolves the (count, offset) pair an input_type selects, and
// reports false when the type is invalid or the resolved bank is empty.
func sourceBank(t InputType, b neuron.Banks) (uint16, neuron.ID, bool) {
	switch t {
	case InputSensory:
		return uint16(b.Sensory), 0, b.Sensory > 0
	case InputInternal:
		return uint16(b.Internal), neuron.ID(b.Sensory), b.Internal > 0
	case InputConstant:
		return uint16(b.Constant), neuron.ID(b.Sensory + b.Internal), b.Constant > 0
	default:
		return 0, 0, false
	}
}

// destBank resolves the (count, offset) pair an output_type selects.
func destBank(t OutputType, b neuron.Banks) (uint16, neuron.ID, bool) {
	switch t {
	case OutputInternal:
		return uint16(b.Internal), neuron.ID(b.Sensory), b.Internal > 0
	case OutputAction:
		return uint16(b.Action), neuron.ID(b.Sensory + b.Internal + b.Constant), b.Action > 0
	default:
		return 0, 0, false
	}
}
