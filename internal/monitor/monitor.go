package monitor

import (
	"fmt"
	"io/ioutil"
	"net"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/lwgboy/LibArtNet/internal/artnet"
)

// Start listens for Art-Net datagrams and reports every ArtPollReply node
// it sees. Datagrams carrying other operation codes are skipped.
func Start(debug bool, config string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := loadConf(config)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	port := conf.Listen.Port
	if port == 0 {
		port = int(artnet.Port)
	}
	addr := net.JoinHostPort(conf.Listen.IP.String(), strconv.Itoa(port))

	udpServer, err := net.ListenPacket("udp", addr)
	if err != nil {
		log.Fatal(err)
	}
	defer udpServer.Close()

	log.Infof("listening on %v for ArtPollReply packets", addr)
	for {
		buf := make([]byte, 1024)
		n, raddr, err := udpServer.ReadFrom(buf)
		if err != nil {
			log.Errorf("error reading udp packet: %v", err)
			continue
		}

		reply, err := artnet.DecodePollReply(buf[:n])
		if err != nil {
			// other packet types and noise are routine on this port
			log.Debugf("ignoring %v byte datagram from %v: %v", n, raddr, err)
			continue
		}

		logReply(raddr.String(), reply)
	}
}

// DecodeFile decodes a raw ArtPollReply packet dump and reports its
// contents.
func DecodeFile(debug bool, path string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read packet dump: %v", err)
	}

	reply, err := artnet.DecodePollReply(data)
	if err != nil {
		return err
	}

	logReply(path, reply)
	return nil
}

func logReply(source string, reply *artnet.PollReply) {
	product := reply.Product()

	log.Infof("node %q from %v", reply.ShortName(), source)
	log.Infof("  long name: %v", reply.LongName())
	log.Infof("  address: %v (mac %v, bind %v#%v)",
		net.IP(reply.IPAddress()),
		net.HardwareAddr(reply.MACAddress()),
		net.IP(reply.BindIP()),
		reply.BindIndex())
	log.Infof("  firmware: %#04x, oem %#04x %v %v, esta %q, style %v",
		reply.NodeVersion(), product.Code, product.Manufacturer, product.Name,
		reply.ESTAManufacturer(), reply.EquipmentStyle())
	log.Infof("  net %v subnet %v, indicators %v, authority %v",
		reply.NetAddress(), reply.SubnetAddress(),
		reply.IndicatorState(), reply.PortAddressingAuthority())
	if report := reply.NodeReport(); report != "" {
		log.Infof("  report: %v", report)
	}

	portTypes := reply.PortTypes()
	inUniverses := reply.InputUniverses()
	outUniverses := reply.OutputUniverses()
	for i, pt := range portTypes {
		if !pt.InputSupported && !pt.OutputSupported {
			continue
		}
		log.Infof("  port %v: input=%v (universe %v) output=%v (universe %v)",
			i, pt.InputSupported, inUniverses[i], pt.OutputSupported, outUniverses[i])
	}

	log.Debugf("  rdm=%v dhcp=%v web=%v sacn=%v squawking=%v",
		reply.SupportsRDM(), reply.SupportsDHCP(), reply.SupportsWebConfig(),
		reply.CanSwitchToSACN(), reply.Squawking())
}
