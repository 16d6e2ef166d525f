package artnet

// Product identifies a node's hardware via its registered OEM code,
// transmitted big-endian at offset 20.
type Product struct {
	Code         uint16
	Name         string
	Manufacturer string
}

// UnknownProduct is the registered catch-all OEM code.
var UnknownProduct = Product{Code: 0x00ff, Name: "OemUnknown", Manufacturer: "Artistic Licence"}

// oemCodes is a subset of the registered Art-Net OEM code table, enough to
// resolve common hardware seen on the wire.
var oemCodes = map[uint16]Product{
	0x0000: {0x0000, "Dmx-Hub", "Artistic Licence"},
	0x0001: {0x0001, "Netgate XT", "ADB"},
	0x0002: {0x0002, "Down Lynx 2", "Artistic Licence"},
	0x0003: {0x0003, "Up Lynx 2", "Artistic Licence"},
	0x0004: {0x0004, "Truss Lynx 2", "Artistic Licence"},
	0x0005: {0x0005, "Net Lynx OP 2", "Artistic Licence"},
	0x0006: {0x0006, "Net Lynx IP 2", "Artistic Licence"},
	0x0010: {0x0010, "Down Link", "Artistic Licence"},
	0x0011: {0x0011, "Up Link", "Artistic Licence"},
	0x0012: {0x0012, "Truss Link OP", "Artistic Licence"},
	0x0013: {0x0013, "Truss Link IP", "Artistic Licence"},
	0x0014: {0x0014, "Net Link OP", "Artistic Licence"},
	0x0015: {0x0015, "Net Link IP", "Artistic Licence"},
	0x0030: {0x0030, "Ether-Lynx OP", "Doug Fleenor Design"},
	0x0031: {0x0031, "Ether-Lynx IP", "Doug Fleenor Design"},
	0x0050: {0x0050, "Data-Lynx OP", "Goldstage"},
	0x0051: {0x0051, "Data-Lynx IP", "Goldstage"},
	0x00ff: UnknownProduct,
	0x0431: {0x0431, "EtherStrobe", "Enttec"},
	0x0432: {0x0432, "Datagate", "Enttec"},
	0x0433: {0x0433, "Storm 8", "Enttec"},
	0x0434: {0x0434, "ODE", "Enttec"},
	0x08b0: {0x08b0, "Netron EN4", "Obsidian Control Systems"},
	0x2828: {0x2828, "LeDMX4 PRO", "DMXking"},
	0x6a6b: {0x6a6b, "eDMX1 PRO", "DMXking"},
}

// ProductByCode resolves an OEM code against the code table. Codes without
// a catalog entry yield a product carrying the code with empty metadata, so
// the lookup is defined for every 16-bit value and round-trips the code.
func ProductByCode(code uint16) Product {
	if p, ok := oemCodes[code]; ok {
		return p
	}
	return Product{Code: code}
}
