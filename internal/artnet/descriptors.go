package artnet

// IndicatorState describes the state of a node's indicator lights.
// It occupies bits 7-6 of the status byte.
type IndicatorState uint8

const (
	IndicatorUnknown IndicatorState = iota
	IndicatorLocateIdentify
	IndicatorMute
	IndicatorNormal
)

func (s IndicatorState) String() string {
	switch s {
	case IndicatorLocateIdentify:
		return "locate/identify"
	case IndicatorMute:
		return "mute"
	case IndicatorNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// PortAddressingAuthority describes what currently governs a node's
// universe address assignment. It occupies bits 5-4 of the status byte.
type PortAddressingAuthority uint8

const (
	AuthorityUnknown PortAddressingAuthority = iota
	AuthorityFrontPanel
	AuthorityNetwork
	AuthorityUnused
)

func (a PortAddressingAuthority) String() string {
	switch a {
	case AuthorityFrontPanel:
		return "front panel"
	case AuthorityNetwork:
		return "network"
	case AuthorityUnused:
		return "unused"
	default:
		return "unknown"
	}
}

// EquipmentStyle is the coarse device classification reported at offset 200.
type EquipmentStyle uint8

const (
	StyleNode       EquipmentStyle = 0x00
	StyleController EquipmentStyle = 0x01
	StyleMedia      EquipmentStyle = 0x02
	StyleRoute      EquipmentStyle = 0x03
	StyleBackup     EquipmentStyle = 0x04
	StyleConfig     EquipmentStyle = 0x05
	StyleVisual     EquipmentStyle = 0x06
)

func (e EquipmentStyle) String() string {
	switch e {
	case StyleNode:
		return "node"
	case StyleController:
		return "controller"
	case StyleMedia:
		return "media"
	case StyleRoute:
		return "route"
	case StyleBackup:
		return "backup"
	case StyleConfig:
		return "config"
	case StyleVisual:
		return "visual"
	default:
		return "config"
	}
}

// EquipmentStyleFromByte maps a wire byte to an equipment style. Bytes
// outside the defined catalog map to StyleConfig so that decoding is
// defined for all 256 values.
func EquipmentStyleFromByte(b byte) EquipmentStyle {
	if b <= byte(StyleVisual) {
		return EquipmentStyle(b)
	}
	return StyleConfig
}
