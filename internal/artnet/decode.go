package artnet

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var (
	// ErrNotPollReply reports that a well-sized datagram carries a
	// different operation code. It is the routine outcome when
	// demultiplexing Art-Net packet types and not a failure.
	ErrNotPollReply = errors.New("artnet: not an ArtPollReply packet")

	// ErrTruncated reports a datagram shorter than the fixed
	// ArtPollReply size.
	ErrTruncated = errors.New("artnet: packet too short")
)

// DecodePollReply parses an inbound datagram into an immutable PollReply.
// It returns ErrTruncated for inputs shorter than 239 bytes and
// ErrNotPollReply when the operation code at offset 8 does not match; both
// are checked with errors.Is. The source buffer is copied, so the caller
// may reuse it after the call.
func DecodePollReply(data []byte) (*PollReply, error) {
	if len(data) < PollReplySize {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint16(data[8:10]) != OpPollReply {
		return nil, ErrNotPollReply
	}

	p := &PollReply{
		nodeVersion:             binary.BigEndian.Uint16(data[16:18]),
		netAddress:              data[18],
		subnetAddress:           data[19],
		product:                 ProductByCode(binary.BigEndian.Uint16(data[20:22])),
		ubeaVersion:             data[22],
		indicatorState:          IndicatorState(data[23] >> 6 & 0b00000011),
		portAddressingAuthority: PortAddressingAuthority(data[23] >> 4 & 0b00000011),
		bootedFromROM:           data[23]&0b00000100 != 0,
		rdmSupport:              data[23]&0b00000010 != 0,
		ubeaPresent:             data[23]&0b00000001 != 0,
		estaManufacturer:        trimString([]byte{data[25], data[24]}),
		shortName:               trimString(data[26:43]),
		longName:                trimString(data[44:108]),
		nodeReport:              trimString(data[108:173]),
		equipmentStyle:          EquipmentStyleFromByte(data[200]),
		bindIndex:               data[211],
		webConfigSupport:        data[212]&0b00000001 != 0,
		dhcpConfigured:          data[212]&0b00000010 != 0,
		dhcpSupport:             data[212]&0b00000100 != 0,
		longPortAddressSupport:  data[212]&0b00001000 != 0,
		canSwitchToSACN:         data[212]&0b00010000 != 0,
		squawking:               data[212]&0b00100000 != 0,
	}

	copy(p.ipAddress[:], data[10:14])
	copy(p.macAddress[:], data[201:207])
	copy(p.bindIP[:], data[207:211])

	for i := 0; i < 4; i++ {
		p.portTypes[i] = PortTypeFromByte(data[174+i])
		p.inputStatuses[i] = InputStatusFromByte(data[178+i])
		p.outputStatuses[i] = OutputStatusFromByte(data[182+i])
		p.inputUniverses[i] = data[186+i]
		p.outputUniverses[i] = data[190+i]
	}

	p.macrosActive = unpackBits(data[195])
	p.remotesActive = unpackBits(data[196])

	copy(p.data[:], data[:PollReplySize])

	return p, nil
}

// trimString decodes an ASCII window up to its first zero byte, or the
// full window when no terminator is present.
func trimString(window []byte) string {
	if i := bytes.IndexByte(window, 0); i >= 0 {
		window = window[:i]
	}
	return string(window)
}

func unpackBits(b byte) [8]bool {
	var flags [8]bool
	for i := range flags {
		flags[i] = b&(1<<i) != 0
	}
	return flags
}
