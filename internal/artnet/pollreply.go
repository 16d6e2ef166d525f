package artnet

// PollReply is an immutable ArtPollReply packet: the decoded field set plus
// the raw 239-byte wire representation. Instances come from
// PollReplyBuilder.Build or DecodePollReply and never change afterwards, so
// they are safe to share between goroutines. Accessors return copies of all
// array-backed fields.
type PollReply struct {
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

	data [PollReplySize]byte
}

// Bytes returns a copy of the raw wire representation.
func (p *PollReply) Bytes() []byte {
	d := p.data
	return d[:]
}

// IPAddress returns a copy of the node's 4-byte IP address.
func (p *PollReply) IPAddress() []byte {
	ip := p.ipAddress
	return ip[:]
}

func (p *PollReply) NodeVersion() uint16 { return p.nodeVersion }

func (p *PollReply) NetAddress() uint8 { return p.netAddress }

func (p *PollReply) SubnetAddress() uint8 { return p.subnetAddress }

func (p *PollReply) Product() Product { return p.product }

func (p *PollReply) UBEAVersion() uint8 { return p.ubeaVersion }

func (p *PollReply) IndicatorState() IndicatorState { return p.indicatorState }

func (p *PollReply) PortAddressingAuthority() PortAddressingAuthority {
	return p.portAddressingAuthority
}

func (p *PollReply) BootedFromROM() bool { return p.bootedFromROM }

func (p *PollReply) SupportsRDM() bool { return p.rdmSupport }

func (p *PollReply) UBEAPresent() bool { return p.ubeaPresent }

func (p *PollReply) ESTAManufacturer() string { return p.estaManufacturer }

func (p *PollReply) ShortName() string { return p.shortName }

func (p *PollReply) LongName() string { return p.longName }

func (p *PollReply) NodeReport() string { return p.nodeReport }

// PortTypes returns the four per-port type descriptors.
func (p *PollReply) PortTypes() [4]PortType { return p.portTypes }

func (p *PollReply) InputStatuses() [4]InputStatus { return p.inputStatuses }

func (p *PollReply) OutputStatuses() [4]OutputStatus { return p.outputStatuses }

func (p *PollReply) InputUniverses() [4]uint8 { return p.inputUniverses }

func (p *PollReply) OutputUniverses() [4]uint8 { return p.outputUniverses }

func (p *PollReply) MacrosActive() [8]bool { return p.macrosActive }

func (p *PollReply) RemotesActive() [8]bool { return p.remotesActive }

func (p *PollReply) EquipmentStyle() EquipmentStyle { return p.equipmentStyle }

// MACAddress returns a copy of the node's 6-byte MAC address.
func (p *PollReply) MACAddress() []byte {
	mac := p.macAddress
	return mac[:]
}

// BindIP returns a copy of the node's 4-byte bind IP address.
func (p *PollReply) BindIP() []byte {
	ip := p.bindIP
	return ip[:]
}

func (p *PollReply) BindIndex() uint8 { return p.bindIndex }

func (p *PollReply) SupportsWebConfig() bool { return p.webConfigSupport }

func (p *PollReply) DHCPConfigured() bool { return p.dhcpConfigured }

func (p *PollReply) SupportsDHCP() bool { return p.dhcpSupport }

func (p *PollReply) SupportsLongPortAddresses() bool { return p.longPortAddressSupport }

func (p *PollReply) CanSwitchToSACN() bool { return p.canSwitchToSACN }

func (p *PollReply) Squawking() bool { return p.squawking }

// PortCount reports how many of the four ports support input or output.
func (p *PollReply) PortCount() int {
	n := 0
	for _, t := range p.portTypes {
		if t.InputSupported || t.OutputSupported {
			n++
		}
	}
	return n
}
