// Package artnet implements the Art-Net ArtPollReply packet: a builder with
// validated setters and cached encoding, and a decoder for inbound datagrams.
package artnet

// Art-Net protocol constants
const (
	// Port is the standard Art-Net UDP port.
	Port uint16 = 0x1936

	// OpPollReply is the operation code of the ArtPollReply packet,
	// transmitted little-endian at offset 8.
	OpPollReply uint16 = 0x2100

	// PollReplySize is the fixed size of an ArtPollReply packet.
	PollReplySize = 239
)

// PacketID is the 8-byte identifier at the start of every Art-Net packet.
var PacketID = []byte{'A', 'r', 't', '-', 'N', 'e', 't', 0x00}
