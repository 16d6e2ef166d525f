package artnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	b := NewPollReplyBuilder()
	require.NoError(t, b.SetIPAddress([]byte{2, 0, 0, 10}))
	b.SetNodeVersion(0x0102)
	require.NoError(t, b.SetNetAddress(101))
	require.NoError(t, b.SetSubnetAddress(7))
	b.SetProduct(ProductByCode(0x0431))
	require.NoError(t, b.SetUBEAVersion(3))
	require.NoError(t, b.SetIndicatorState(IndicatorMute))
	require.NoError(t, b.SetPortAddressingAuthority(AuthorityFrontPanel))
	b.SetBootedFromROM(true)
	b.SetRDMSupport(true)
	b.SetUBEAPresent(true)
	b.SetESTAManufacturer("GL")
	b.SetShortName("dimmer rack 3")
	b.SetLongName("dimmer rack 3, stage left riser")
	b.SetNodeReport("#0001 [0005] power on ok")
	require.NoError(t, b.SetPortType(0, PortType{OutputSupported: true, Protocol: ProtocolDMX512}))
	require.NoError(t, b.SetPortType(1, PortType{InputSupported: true, Protocol: ProtocolMIDI}))
	require.NoError(t, b.SetInputStatus(1, InputStatus{DataReceived: true, ErrorsDetected: true}))
	require.NoError(t, b.SetOutputStatus(0, OutputStatus{DataTransmitted: true, MergeIsLTP: true, OutputIsSACN: true}))
	require.NoError(t, b.SetInputUniverse(1, 12))
	require.NoError(t, b.SetOutputUniverse(0, 3))
	require.NoError(t, b.SetMacroActive(0, true))
	require.NoError(t, b.SetMacroActive(5, true))
	require.NoError(t, b.SetRemoteActive(2, true))
	require.NoError(t, b.SetEquipmentStyle(StyleNode))
	require.NoError(t, b.SetMACAddress([]byte{0x00, 0x0b, 0xbe, 0x01, 0x02, 0x03}))
	require.NoError(t, b.SetBindIP([]byte{2, 0, 0, 1}))
	require.NoError(t, b.SetBindIndex(2))
	b.SetWebConfigSupport(true)
	b.SetDHCPConfigured(true)
	b.SetCanSwitchToSACN(true)

	encoded := b.Build()
	decoded, err := DecodePollReply(encoded.Bytes())
	require.NoError(t, err)

	assert.Equal(t, encoded.IPAddress(), decoded.IPAddress())
	assert.Equal(t, encoded.NodeVersion(), decoded.NodeVersion())
	assert.Equal(t, encoded.NetAddress(), decoded.NetAddress())
	assert.Equal(t, encoded.SubnetAddress(), decoded.SubnetAddress())
	assert.Equal(t, encoded.Product(), decoded.Product())
	assert.Equal(t, encoded.UBEAVersion(), decoded.UBEAVersion())
	assert.Equal(t, encoded.IndicatorState(), decoded.IndicatorState())
	assert.Equal(t, encoded.PortAddressingAuthority(), decoded.PortAddressingAuthority())
	assert.Equal(t, encoded.BootedFromROM(), decoded.BootedFromROM())
	assert.Equal(t, encoded.SupportsRDM(), decoded.SupportsRDM())
	assert.Equal(t, encoded.UBEAPresent(), decoded.UBEAPresent())
	assert.Equal(t, encoded.ESTAManufacturer(), decoded.ESTAManufacturer())
	assert.Equal(t, encoded.ShortName(), decoded.ShortName())
	assert.Equal(t, encoded.LongName(), decoded.LongName())
	assert.Equal(t, encoded.NodeReport(), decoded.NodeReport())
	assert.Equal(t, encoded.PortTypes(), decoded.PortTypes())
	assert.Equal(t, encoded.InputStatuses(), decoded.InputStatuses())
	assert.Equal(t, encoded.OutputStatuses(), decoded.OutputStatuses())
	assert.Equal(t, encoded.InputUniverses(), decoded.InputUniverses())
	assert.Equal(t, encoded.OutputUniverses(), decoded.OutputUniverses())
	assert.Equal(t, encoded.MacrosActive(), decoded.MacrosActive())
	assert.Equal(t, encoded.RemotesActive(), decoded.RemotesActive())
	assert.Equal(t, encoded.EquipmentStyle(), decoded.EquipmentStyle())
	assert.Equal(t, encoded.MACAddress(), decoded.MACAddress())
	assert.Equal(t, encoded.BindIP(), decoded.BindIP())
	assert.Equal(t, encoded.BindIndex(), decoded.BindIndex())
	assert.Equal(t, encoded.SupportsWebConfig(), decoded.SupportsWebConfig())
	assert.Equal(t, encoded.DHCPConfigured(), decoded.DHCPConfigured())
	assert.Equal(t, encoded.SupportsDHCP(), decoded.SupportsDHCP())
	assert.Equal(t, encoded.SupportsLongPortAddresses(), decoded.SupportsLongPortAddresses())
	assert.Equal(t, encoded.CanSwitchToSACN(), decoded.CanSwitchToSACN())
	assert.Equal(t, encoded.Squawking(), decoded.Squawking())
	assert.Equal(t, encoded.Bytes(), decoded.Bytes())
}

func TestDecodeRecognitionMismatch(t *testing.T) {
	data := NewPollReplyBuilder().Build().Bytes()
	data[8] = 0x00
	data[9] = 0x50 // OpDmx

	decoded, err := DecodePollReply(data)
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrNotPollReply)
}

func TestDecodeTruncated(t *testing.T) {
	data := NewPollReplyBuilder().Build().Bytes()

	decoded, err := DecodePollReply(data[:238])
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrTruncated)

	decoded, err = DecodePollReply(nil)
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeOversizedInput(t *testing.T) {
	data := NewPollReplyBuilder().Build().Bytes()
	data = append(data, 0xff, 0xff, 0xff)

	decoded, err := DecodePollReply(data)
	require.NoError(t, err)
	assert.Len(t, decoded.Bytes(), PollReplySize)
}

func TestDecodeBitfieldsInIsolation(t *testing.T) {
	data := make([]byte, PollReplySize)
	copy(data[0:8], PacketID)
	data[8] = 0x00
	data[9] = 0x21
	data[195] = 0b00001000
	data[196] = 0b10000000

	decoded, err := DecodePollReply(data)
	require.NoError(t, err)

	wantMacros := [8]bool{3: true}
	wantRemotes := [8]bool{7: true}
	assert.Equal(t, wantMacros, decoded.MacrosActive())
	assert.Equal(t, wantRemotes, decoded.RemotesActive())
}

func TestDecodeStringWindows(t *testing.T) {
	b := NewPollReplyBuilder()
	b.SetShortName(strings.Repeat("n", 17)) // fills the window, no terminator
	b.SetLongName("front of house")
	b.SetNodeReport("")

	decoded, err := DecodePollReply(b.Build().Bytes())
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("n", 17), decoded.ShortName())
	assert.Equal(t, "front of house", decoded.LongName())
	assert.Equal(t, "", decoded.NodeReport())
}

func TestDecodeManufacturerSwap(t *testing.T) {
	data := make([]byte, PollReplySize)
	copy(data[0:8], PacketID)
	data[9] = 0x21
	data[24] = 'L'
	data[25] = 'G'

	decoded, err := DecodePollReply(data)
	require.NoError(t, err)
	assert.Equal(t, "GL", decoded.ESTAManufacturer())
}

func TestDecodeHighBytesUnsigned(t *testing.T) {
	data := make([]byte, PollReplySize)
	copy(data[0:8], PacketID)
	data[9] = 0x21
	data[16] = 0xff // node version high octet with sign bit set
	data[17] = 0xfe
	data[20] = 0x80 // product code high octet
	data[21] = 0x01
	data[22] = 0xff

	decoded, err := DecodePollReply(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(0xfffe), decoded.NodeVersion())
	assert.Equal(t, uint16(0x8001), decoded.Product().Code)
	assert.Equal(t, uint8(0xff), decoded.UBEAVersion())
}

func TestDecodeUnknownEquipmentStyle(t *testing.T) {
	data := make([]byte, PollReplySize)
	copy(data[0:8], PacketID)
	data[9] = 0x21
	data[200] = 0xc3

	decoded, err := DecodePollReply(data)
	require.NoError(t, err)
	assert.Equal(t, StyleConfig, decoded.EquipmentStyle())
}

func TestDecodeCopiesSourceBuffer(t *testing.T) {
	data := NewPollReplyBuilder().Build().Bytes()
	decoded, err := DecodePollReply(data)
	require.NoError(t, err)

	data[26] = 'X'
	assert.Equal(t, "LibArtNet", decoded.ShortName())
	assert.Equal(t, byte('L'), decoded.Bytes()[26])
}
