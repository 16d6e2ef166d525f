package monitor

import (
	"fmt"
	"io/ioutil"
	"net"

	"gopkg.in/yaml.v3"

	"github.com/lwgboy/LibArtNet/internal/artnet"
)

type conf struct {
	Listen confListen `yaml:"listen"`
	Node   confNode   `yaml:"node"`
}

type confListen struct {
	IP   net.IP `yaml:"ip"`
	Port int    `yaml:"port"`
}

type confNode struct {
	ShortName   string     `yaml:"shortName"`
	LongName    string     `yaml:"longName"`
	Report      string     `yaml:"report"`
	IP          net.IP     `yaml:"ip"`
	MAC         string     `yaml:"mac"`
	NodeVersion uint16     `yaml:"nodeVersion"`
	Net         int        `yaml:"net"`
	Subnet      int        `yaml:"subnet"`
	Esta        string     `yaml:"esta"`
	OemCode     uint16     `yaml:"oemCode"`
	Style       string     `yaml:"style"`
	RDM         bool       `yaml:"rdm"`
	DHCP        bool       `yaml:"dhcp"`
	WebConfig   bool       `yaml:"webConfig"`
	Ports       []confPort `yaml:"ports"`
	Broadcast   string     `yaml:"broadcast"`
	Interval    int        `yaml:"interval"`
}

type confPort struct {
	Input          bool `yaml:"input"`
	Output         bool `yaml:"output"`
	InputUniverse  int  `yaml:"inputUniverse"`
	OutputUniverse int  `yaml:"outputUniverse"`
}

func loadConf(path string) (*conf, error) {
	confBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	c := &conf{}
	err = yaml.Unmarshal(confBytes, c)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %v", err)
	}
	return c, nil
}

// builderFromConf fills a reply builder from the node description.
func builderFromConf(n confNode) (*artnet.PollReplyBuilder, error) {
	b := artnet.NewPollReplyBuilder()

	if n.ShortName != "" {
		b.SetShortName(n.ShortName)
	}
	if n.LongName != "" {
		b.SetLongName(n.LongName)
	}
	b.SetNodeReport(n.Report)

	if n.IP != nil {
		ip4 := n.IP.To4()
		if ip4 == nil {
			return nil, fmt.Errorf("node ip %v is not IPv4", n.IP)
		}
		if err := b.SetIPAddress(ip4); err != nil {
			return nil, err
		}
	}
	if n.MAC != "" {
		mac, err := net.ParseMAC(n.MAC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mac[%v]: %v", n.MAC, err)
		}
		if err := b.SetMACAddress(mac); err != nil {
			return nil, err
		}
	}

	b.SetNodeVersion(n.NodeVersion)
	if err := b.SetNetAddress(n.Net); err != nil {
		return nil, err
	}
	if err := b.SetSubnetAddress(n.Subnet); err != nil {
		return nil, err
	}
	if n.OemCode != 0 {
		b.SetProduct(artnet.ProductByCode(n.OemCode))
	}
	if n.Esta != "" {
		b.SetESTAManufacturer(n.Esta)
	}
	if n.Style != "" {
		style, err := styleFromString(n.Style)
		if err != nil {
			return nil, err
		}
		if err := b.SetEquipmentStyle(style); err != nil {
			return nil, err
		}
	}

	b.SetRDMSupport(n.RDM)
	b.SetDHCPConfigured(n.DHCP)
	b.SetDHCPSupport(n.DHCP)
	b.SetWebConfigSupport(n.WebConfig)

	if len(n.Ports) > 4 {
		return nil, fmt.Errorf("too many ports: %v", len(n.Ports))
	}
	for i, p := range n.Ports {
		pt := artnet.PortType{
			InputSupported:  p.Input,
			OutputSupported: p.Output,
		}
		if err := b.SetPortType(i, pt); err != nil {
			return nil, err
		}
		if err := b.SetInputUniverse(i, p.InputUniverse); err != nil {
			return nil, err
		}
		if err := b.SetOutputUniverse(i, p.OutputUniverse); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func styleFromString(s string) (artnet.EquipmentStyle, error) {
	switch s {
	case "node":
		return artnet.StyleNode, nil
	case "controller":
		return artnet.StyleController, nil
	case "media":
		return artnet.StyleMedia, nil
	case "route":
		return artnet.StyleRoute, nil
	case "backup":
		return artnet.StyleBackup, nil
	case "config":
		return artnet.StyleConfig, nil
	case "visual":
		return artnet.StyleVisual, nil
	default:
		return 0, fmt.Errorf("unknown equipment style: %v", s)
	}
}
