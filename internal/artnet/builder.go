package artnet

import (
	"encoding/binary"
	"fmt"
)

// ValidationError reports a setter value outside its protocol-defined
// domain. The builder's state is unchanged when one is returned.
type ValidationError struct {
	Field string
	Value interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("artnet: invalid %s: %v", e.Field, e.Value)
}

// Maximum widths of the ASCII string fields.
const (
	maxESTAManufacturerLen = 2
	maxShortNameLen        = 17
	maxLongNameLen         = 63
	maxNodeReportLen       = 63
)

// PollReplyBuilder assembles ArtPollReply packets. Fields are mutated
// through validated setters; Build encodes lazily and caches the result
// until the next accepted mutation, so repeated Build calls without
// intervening changes return the identical *PollReply.
//
// The builder is not safe for concurrent use; callers serialize access.
type PollReplyBuilder struct {
	ipAddress               [4]byte
	nodeVersion             uint16
	netAddress              uint8
	subnetAddress           uint8
	product                 Product
	ubeaVersion             uint8
	indicatorState          IndicatorState
	portAddressingAuthority PortAddressingAuthority
	bootedFromROM           bool
	rdmSupport              bool
	ubeaPresent             bool
	estaManufacturer        string
	shortName               string
	longName                string
	nodeReport              string
	portTypes               [4]PortType
	inputStatuses           [4]InputStatus
	outputStatuses          [4]OutputStatus
	inputUniverses          [4]uint8
	outputUniverses         [4]uint8
	macrosActive            [8]bool
	remotesActive           [8]bool
	equipmentStyle          EquipmentStyle
	macAddress              [6]byte
	bindIP                  [4]byte
	bindIndex               uint8
	webConfigSupport        bool
	dhcpConfigured          bool
	dhcpSupport             bool
	longPortAddressSupport  bool
	canSwitchToSACN         bool
	squawking               bool

	dirty  bool
	cached *PollReply
}

// NewPollReplyBuilder returns a builder holding the documented defaults:
// unknown product, unknown indicator state and addressing authority, ESTA
// manufacturer "D8", short and long name "LibArtNet", empty node report,
// default port descriptors and the Config equipment style.
func NewPollReplyBuilder() *PollReplyBuilder {
	return &PollReplyBuilder{
		product:                 UnknownProduct,
		indicatorState:          IndicatorUnknown,
		portAddressingAuthority: AuthorityUnknown,
		estaManufacturer:        "D8",
		shortName:               "LibArtNet",
		longName:                "LibArtNet",
		equipmentStyle:          StyleConfig,
		dirty:                   true,
	}
}

// Build encodes the current field set into a 239-byte packet. The result
// is cached: calling Build again without an accepted mutation returns the
// same instance.
func (b *PollReplyBuilder) Build() *PollReply {
	if !b.dirty {
		return b.cached
	}

	var buf [PollReplySize]byte

	copy(buf[0:8], PacketID)
	binary.LittleEndian.PutUint16(buf[8:10], OpPollReply)

	copy(buf[10:14], b.ipAddress[:])
	binary.LittleEndian.PutUint16(buf[14:16], Port)

	binary.BigEndian.PutUint16(buf[16:18], b.nodeVersion)

	buf[18] = b.netAddress
	buf[19] = b.subnetAddress

	binary.BigEndian.PutUint16(buf[20:22], b.product.Code)
	buf[22] = b.ubeaVersion

	buf[23] = byte(b.indicatorState)<<6 | byte(b.portAddressingAuthority)<<4
	if b.bootedFromROM {
		buf[23] |= 0b00000100
	}
	if b.rdmSupport {
		buf[23] |= 0b00000010
	}
	if b.ubeaPresent {
		buf[23] |= 0b00000001
	}

	// the two manufacturer characters are swapped on the wire
	if len(b.estaManufacturer) > 0 {
		if len(b.estaManufacturer) == 2 {
			buf[24] = b.estaManufacturer[1]
		}
		buf[25] = b.estaManufacturer[0]
	}

	copy(buf[26:43], b.shortName)
	copy(buf[44:108], b.longName)
	copy(buf[108:173], b.nodeReport)

	portCount := 0
	for _, t := range b.portTypes {
		if t.InputSupported || t.OutputSupported {
			portCount++
		}
	}
	buf[173] = byte(portCount)

	for i := 0; i < 4; i++ {
		buf[174+i] = b.portTypes[i].Byte()
		buf[178+i] = b.inputStatuses[i].Byte()
		buf[182+i] = b.outputStatuses[i].Byte()
		buf[186+i] = b.inputUniverses[i]
		buf[190+i] = b.outputUniverses[i]
	}

	buf[195] = packBits(b.macrosActive)
	buf[196] = packBits(b.remotesActive)

	buf[200] = byte(b.equipmentStyle)

	copy(buf[201:207], b.macAddress[:])
	copy(buf[207:211], b.bindIP[:])
	buf[211] = b.bindIndex

	if b.webConfigSupport {
		buf[212] |= 0b00000001
	}
	if b.dhcpConfigured {
		buf[212] |= 0b00000010
	}
	if b.dhcpSupport {
		buf[212] |= 0b00000100
	}
	if b.longPortAddressSupport {
		buf[212] |= 0b00001000
	}
	if b.canSwitchToSACN {
		buf[212] |= 0b00010000
	}
	if b.squawking {
		buf[212] |= 0b00100000
	}

	b.cached = &PollReply{
		ipAddress:               b.ipAddress,
		nodeVersion:             b.nodeVersion,
		netAddress:              b.netAddress,
		subnetAddress:           b.subnetAddress,
		product:                 b.product,
		ubeaVersion:             b.ubeaVersion,
		indicatorState:          b.indicatorState,
		portAddressingAuthority: b.portAddressingAuthority,
		bootedFromROM:           b.bootedFromROM,
		rdmSupport:              b.rdmSupport,
		ubeaPresent:             b.ubeaPresent,
		estaManufacturer:        b.estaManufacturer,
		shortName:               b.shortName,
		longName:                b.longName,
		nodeReport:              b.nodeReport,
		portTypes:               b.portTypes,
		inputStatuses:           b.inputStatuses,
		outputStatuses:          b.outputStatuses,
		inputUniverses:          b.inputUniverses,
		outputUniverses:         b.outputUniverses,
		macrosActive:            b.macrosActive,
		remotesActive:           b.remotesActive,
		equipmentStyle:          b.equipmentStyle,
		macAddress:              b.macAddress,
		bindIP:                  b.bindIP,
		bindIndex:               b.bindIndex,
		webConfigSupport:        b.webConfigSupport,
		dhcpConfigured:          b.dhcpConfigured,
		dhcpSupport:             b.dhcpSupport,
		longPortAddressSupport:  b.longPortAddressSupport,
		canSwitchToSACN:         b.canSwitchToSACN,
		squawking:               b.squawking,
		data:                    buf,
	}
	b.dirty = false

	return b.cached
}

func packBits(flags [8]bool) byte {
	var b byte
	for i, set := range flags {
		if set {
			b |= 1 << i
		}
	}
	return b
}

// SetIPAddress sets the node's IP address. A nil slice clears it to zeros;
// any other length than 4 is rejected.
func (b *PollReplyBuilder) SetIPAddress(ip []byte) error {
	var v [4]byte
	if ip != nil {
		if len(ip) != 4 {
			return &ValidationError{Field: "IP address", Value: ip}
		}
		copy(v[:], ip)
	}
	if b.ipAddress != v {
		b.ipAddress = v
		b.dirty = true
	}
	return nil
}

// IPAddress returns a copy of the stored IP address.
func (b *PollReplyBuilder) IPAddress() []byte {
	ip := b.ipAddress
	return ip[:]
}

// SetNodeVersion sets the node's 16-bit firmware revision.
func (b *PollReplyBuilder) SetNodeVersion(v uint16) {
	if b.nodeVersion != v {
		b.nodeVersion = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) NodeVersion() uint16 { return b.nodeVersion }

// SetNetAddress sets the node's net address (0-127).
func (b *PollReplyBuilder) SetNetAddress(v int) error {
	if v < 0 || v > 127 {
		return &ValidationError{Field: "net address", Value: v}
	}
	if b.netAddress != uint8(v) {
		b.netAddress = uint8(v)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) NetAddress() uint8 { return b.netAddress }

// SetSubnetAddress sets the node's subnet address (0-15).
func (b *PollReplyBuilder) SetSubnetAddress(v int) error {
	if v < 0 || v > 15 {
		return &ValidationError{Field: "subnet address", Value: v}
	}
	if b.subnetAddress != uint8(v) {
		b.subnetAddress = uint8(v)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) SubnetAddress() uint8 { return b.subnetAddress }

// SetProduct sets the node's product identity. The zero Product value is
// replaced with UnknownProduct.
func (b *PollReplyBuilder) SetProduct(p Product) {
	if p == (Product{}) {
		p = UnknownProduct
	}
	if b.product != p {
		b.product = p
		b.dirty = true
	}
}

func (b *PollReplyBuilder) Product() Product { return b.product }

// SetUBEAVersion sets the UBEA firmware version (0-255).
func (b *PollReplyBuilder) SetUBEAVersion(v int) error {
	if v < 0 || v > 255 {
		return &ValidationError{Field: "UBEA version", Value: v}
	}
	if b.ubeaVersion != uint8(v) {
		b.ubeaVersion = uint8(v)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) UBEAVersion() uint8 { return b.ubeaVersion }

// SetIndicatorState sets the indicator state. Values beyond the two-bit
// range are rejected.
func (b *PollReplyBuilder) SetIndicatorState(s IndicatorState) error {
	if s > IndicatorNormal {
		return &ValidationError{Field: "indicator state", Value: s}
	}
	if b.indicatorState != s {
		b.indicatorState = s
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) IndicatorState() IndicatorState { return b.indicatorState }

// SetPortAddressingAuthority sets the addressing authority. Values beyond
// the two-bit range are rejected.
func (b *PollReplyBuilder) SetPortAddressingAuthority(a PortAddressingAuthority) error {
	if a > AuthorityUnused {
		return &ValidationError{Field: "port addressing authority", Value: a}
	}
	if b.portAddressingAuthority != a {
		b.portAddressingAuthority = a
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) PortAddressingAuthority() PortAddressingAuthority {
	return b.portAddressingAuthority
}

func (b *PollReplyBuilder) SetBootedFromROM(v bool) {
	if b.bootedFromROM != v {
		b.bootedFromROM = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) BootedFromROM() bool { return b.bootedFromROM }

func (b *PollReplyBuilder) SetRDMSupport(v bool) {
	if b.rdmSupport != v {
		b.rdmSupport = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) SupportsRDM() bool { return b.rdmSupport }

func (b *PollReplyBuilder) SetUBEAPresent(v bool) {
	if b.ubeaPresent != v {
		b.ubeaPresent = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) UBEAPresent() bool { return b.ubeaPresent }

// SetESTAManufacturer sets the two-character ESTA manufacturer code.
// Longer strings are truncated to their first two characters.
func (b *PollReplyBuilder) SetESTAManufacturer(s string) {
	if len(s) > maxESTAManufacturerLen {
		s = s[:maxESTAManufacturerLen]
	}
	if b.estaManufacturer != s {
		b.estaManufacturer = s
		b.dirty = true
	}
}

func (b *PollReplyBuilder) ESTAManufacturer() string { return b.estaManufacturer }

// SetShortName sets the node's short name, truncated to 17 characters.
func (b *PollReplyBuilder) SetShortName(s string) {
	if len(s) > maxShortNameLen {
		s = s[:maxShortNameLen]
	}
	if b.shortName != s {
		b.shortName = s
		b.dirty = true
	}
}

func (b *PollReplyBuilder) ShortName() string { return b.shortName }

// SetLongName sets the node's long name, truncated to 63 characters.
func (b *PollReplyBuilder) SetLongName(s string) {
	if len(s) > maxLongNameLen {
		s = s[:maxLongNameLen]
	}
	if b.longName != s {
		b.longName = s
		b.dirty = true
	}
}

func (b *PollReplyBuilder) LongName() string { return b.longName }

// SetNodeReport sets the node's status report, truncated to 63 characters.
func (b *PollReplyBuilder) SetNodeReport(s string) {
	if len(s) > maxNodeReportLen {
		s = s[:maxNodeReportLen]
	}
	if b.nodeReport != s {
		b.nodeReport = s
		b.dirty = true
	}
}

func (b *PollReplyBuilder) NodeReport() string { return b.nodeReport }

// SetPortType sets the type descriptor of port index (0-3).
func (b *PollReplyBuilder) SetPortType(index int, t PortType) error {
	if index < 0 || index > 3 {
		return &ValidationError{Field: "port index", Value: index}
	}
	if b.portTypes[index] != t {
		b.portTypes[index] = t
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) PortTypes() [4]PortType { return b.portTypes }

// SetInputStatus sets the input status of port index (0-3).
func (b *PollReplyBuilder) SetInputStatus(index int, s InputStatus) error {
	if index < 0 || index > 3 {
		return &ValidationError{Field: "port index", Value: index}
	}
	if b.inputStatuses[index] != s {
		b.inputStatuses[index] = s
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) InputStatuses() [4]InputStatus { return b.inputStatuses }

// SetOutputStatus sets the output status of port index (0-3).
func (b *PollReplyBuilder) SetOutputStatus(index int, s OutputStatus) error {
	if index < 0 || index > 3 {
		return &ValidationError{Field: "port index", Value: index}
	}
	if b.outputStatuses[index] != s {
		b.outputStatuses[index] = s
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) OutputStatuses() [4]OutputStatus { return b.outputStatuses }

// SetInputUniverse sets the input universe address (0-15) of port index.
func (b *PollReplyBuilder) SetInputUniverse(index, universe int) error {
	if index < 0 || index > 3 {
		return &ValidationError{Field: "port index", Value: index}
	}
	if universe < 0 || universe > 15 {
		return &ValidationError{Field: "universe address", Value: universe}
	}
	if b.inputUniverses[index] != uint8(universe) {
		b.inputUniverses[index] = uint8(universe)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) InputUniverses() [4]uint8 { return b.inputUniverses }

// SetOutputUniverse sets the output universe address (0-15) of port index.
func (b *PollReplyBuilder) SetOutputUniverse(index, universe int) error {
	if index < 0 || index > 3 {
		return &ValidationError{Field: "port index", Value: index}
	}
	if universe < 0 || universe > 15 {
		return &ValidationError{Field: "universe address", Value: universe}
	}
	if b.outputUniverses[index] != uint8(universe) {
		b.outputUniverses[index] = uint8(universe)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) OutputUniverses() [4]uint8 { return b.outputUniverses }

// SetMacroActive marks macro index (0-7) as active or inactive.
func (b *PollReplyBuilder) SetMacroActive(index int, active bool) error {
	if index < 0 || index > 7 {
		return &ValidationError{Field: "macro index", Value: index}
	}
	if b.macrosActive[index] != active {
		b.macrosActive[index] = active
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) MacrosActive() [8]bool { return b.macrosActive }

// SetRemoteActive marks remote trigger index (0-7) as active or inactive.
func (b *PollReplyBuilder) SetRemoteActive(index int, active bool) error {
	if index < 0 || index > 7 {
		return &ValidationError{Field: "remote index", Value: index}
	}
	if b.remotesActive[index] != active {
		b.remotesActive[index] = active
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) RemotesActive() [8]bool { return b.remotesActive }

// SetEquipmentStyle sets the equipment style. Bytes outside the catalog
// are rejected.
func (b *PollReplyBuilder) SetEquipmentStyle(e EquipmentStyle) error {
	if e > StyleVisual {
		return &ValidationError{Field: "equipment style", Value: e}
	}
	if b.equipmentStyle != e {
		b.equipmentStyle = e
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) EquipmentStyle() EquipmentStyle { return b.equipmentStyle }

// SetMACAddress sets the node's MAC address. A nil slice clears it to
// zeros; any other length than 6 is rejected.
func (b *PollReplyBuilder) SetMACAddress(mac []byte) error {
	var v [6]byte
	if mac != nil {
		if len(mac) != 6 {
			return &ValidationError{Field: "MAC address", Value: mac}
		}
		copy(v[:], mac)
	}
	if b.macAddress != v {
		b.macAddress = v
		b.dirty = true
	}
	return nil
}

// MACAddress returns a copy of the stored MAC address.
func (b *PollReplyBuilder) MACAddress() []byte {
	mac := b.macAddress
	return mac[:]
}

// SetBindIP sets the root device's IP address. A nil slice clears it to
// zeros; any other length than 4 is rejected.
func (b *PollReplyBuilder) SetBindIP(ip []byte) error {
	var v [4]byte
	if ip != nil {
		if len(ip) != 4 {
			return &ValidationError{Field: "bind IP address", Value: ip}
		}
		copy(v[:], ip)
	}
	if b.bindIP != v {
		b.bindIP = v
		b.dirty = true
	}
	return nil
}

// BindIP returns a copy of the stored bind IP address.
func (b *PollReplyBuilder) BindIP() []byte {
	ip := b.bindIP
	return ip[:]
}

// SetBindIndex sets the order of this device within the root device (0-255).
func (b *PollReplyBuilder) SetBindIndex(v int) error {
	if v < 0 || v > 255 {
		return &ValidationError{Field: "bind index", Value: v}
	}
	if b.bindIndex != uint8(v) {
		b.bindIndex = uint8(v)
		b.dirty = true
	}
	return nil
}

func (b *PollReplyBuilder) BindIndex() uint8 { return b.bindIndex }

func (b *PollReplyBuilder) SetWebConfigSupport(v bool) {
	if b.webConfigSupport != v {
		b.webConfigSupport = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) SupportsWebConfig() bool { return b.webConfigSupport }

func (b *PollReplyBuilder) SetDHCPConfigured(v bool) {
	if b.dhcpConfigured != v {
		b.dhcpConfigured = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) DHCPConfigured() bool { return b.dhcpConfigured }

func (b *PollReplyBuilder) SetDHCPSupport(v bool) {
	if b.dhcpSupport != v {
		b.dhcpSupport = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) SupportsDHCP() bool { return b.dhcpSupport }

func (b *PollReplyBuilder) SetLongPortAddressSupport(v bool) {
	if b.longPortAddressSupport != v {
		b.longPortAddressSupport = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) SupportsLongPortAddresses() bool { return b.longPortAddressSupport }

func (b *PollReplyBuilder) SetCanSwitchToSACN(v bool) {
	if b.canSwitchToSACN != v {
		b.canSwitchToSACN = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) CanSwitchToSACN() bool { return b.canSwitchToSACN }

func (b *PollReplyBuilder) SetSquawking(v bool) {
	if b.squawking != v {
		b.squawking = v
		b.dirty = true
	}
}

func (b *PollReplyBuilder) Squawking() bool { return b.squawking }
