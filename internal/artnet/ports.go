package artnet

// Protocol is the data protocol a port speaks, held in the low six bits
// of the port-type byte.
type Protocol uint8

const (
	ProtocolDMX512       Protocol = 0
	ProtocolMIDI         Protocol = 1
	ProtocolAvab         Protocol = 2
	ProtocolColortranCMX Protocol = 3
	ProtocolADB62_5      Protocol = 4
	ProtocolArtNet       Protocol = 5
)

// PortType describes one of a node's four physical ports.
//
//	bit 7   port can output data from the Art-Net network
//	bit 6   port can input data onto the Art-Net network
//	bits 5-0  protocol
//
// The zero value is the documented default (DMX512, no input, no output).
type PortType struct {
	OutputSupported bool
	InputSupported  bool
	Protocol        Protocol
}

// Byte encodes the port type as its wire byte. Protocol values above six
// bits are masked.
func (t PortType) Byte() byte {
	b := byte(t.Protocol) & 0b00111111
	if t.OutputSupported {
		b |= 0b10000000
	}
	if t.InputSupported {
		b |= 0b01000000
	}
	return b
}

// PortTypeFromByte decodes a port-type byte. Defined for all 256 values;
// unrecognized protocol bits are preserved verbatim.
func PortTypeFromByte(b byte) PortType {
	return PortType{
		OutputSupported: b&0b10000000 != 0,
		InputSupported:  b&0b01000000 != 0,
		Protocol:        Protocol(b & 0b00111111),
	}
}

// InputStatus is the per-port "good input" flag byte.
type InputStatus struct {
	DataReceived        bool // bit 7
	IncludesTestPackets bool // bit 6
	IncludesSIPs        bool // bit 5
	IncludesTextPackets bool // bit 4
	InputDisabled       bool // bit 3
	ErrorsDetected      bool // bit 2
}

func (s InputStatus) Byte() byte {
	var b byte
	if s.DataReceived {
		b |= 0b10000000
	}
	if s.IncludesTestPackets {
		b |= 0b01000000
	}
	if s.IncludesSIPs {
		b |= 0b00100000
	}
	if s.IncludesTextPackets {
		b |= 0b00010000
	}
	if s.InputDisabled {
		b |= 0b00001000
	}
	if s.ErrorsDetected {
		b |= 0b00000100
	}
	return b
}

// InputStatusFromByte decodes an input-status byte. Bits 1-0 are reserved
// and dropped.
func InputStatusFromByte(b byte) InputStatus {
	return InputStatus{
		DataReceived:        b&0b10000000 != 0,
		IncludesTestPackets: b&0b01000000 != 0,
		IncludesSIPs:        b&0b00100000 != 0,
		IncludesTextPackets: b&0b00010000 != 0,
		InputDisabled:       b&0b00001000 != 0,
		ErrorsDetected:      b&0b00000100 != 0,
	}
}

// OutputStatus is the per-port "good output" flag byte.
type OutputStatus struct {
	DataTransmitted     bool // bit 7
	IncludesTestPackets bool // bit 6
	IncludesSIPs        bool // bit 5
	IncludesTextPackets bool // bit 4
	Merging             bool // bit 3
	DMXShortDetected    bool // bit 2
	MergeIsLTP          bool // bit 1
	OutputIsSACN        bool // bit 0
}

func (s OutputStatus) Byte() byte {
	var b byte
	if s.DataTransmitted {
		b |= 0b10000000
	}
	if s.IncludesTestPackets {
		b |= 0b01000000
	}
	if s.IncludesSIPs {
		b |= 0b00100000
	}
	if s.IncludesTextPackets {
		b |= 0b00010000
	}
	if s.Merging {
		b |= 0b00001000
	}
	if s.DMXShortDetected {
		b |= 0b00000100
	}
	if s.MergeIsLTP {
		b |= 0b00000010
	}
	if s.OutputIsSACN {
		b |= 0b00000001
	}
	return b
}

// OutputStatusFromByte decodes an output-status byte. Defined for all 256
// values.
func OutputStatusFromByte(b byte) OutputStatus {
	return OutputStatus{
		DataTransmitted:     b&0b10000000 != 0,
		IncludesTestPackets: b&0b01000000 != 0,
		IncludesSIPs:        b&0b00100000 != 0,
		IncludesTextPackets: b&0b00010000 != 0,
		Merging:             b&0b00001000 != 0,
		DMXShortDetected:    b&0b00000100 != 0,
		MergeIsLTP:          b&0b00000010 != 0,
		OutputIsSACN:        b&0b00000001 != 0,
	}
}
