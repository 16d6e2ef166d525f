package monitor

import (
	"net"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lwgboy/LibArtNet/internal/artnet"
)

const defaultAnnounceInterval = 3 * time.Second

// Announce broadcasts the configured node description as ArtPollReply
// packets at a fixed interval. The packet is encoded once and the cached
// encoding is reused on every tick.
func Announce(debug bool, config string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := loadConf(config)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	builder, err := builderFromConf(conf.Node)
	if err != nil {
		log.Fatalf("failed to build node description: %v", err)
	}

	broadcast := conf.Node.Broadcast
	if broadcast == "" {
		broadcast = "255.255.255.255"
	}
	baddr := net.JoinHostPort(broadcast, strconv.Itoa(int(artnet.Port)))

	conn, err := net.Dial("udp", baddr)
	if err != nil {
		log.Fatalf("failed to open broadcast socket: %v", err)
	}
	defer conn.Close()

	interval := time.Duration(conf.Node.Interval) * time.Second
	if interval <= 0 {
		interval = defaultAnnounceInterval
	}

	log.Infof("announcing %q to %v every %v", builder.ShortName(), baddr, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		pkt := builder.Build()
		if _, err := conn.Write(pkt.Bytes()); err != nil {
			log.Errorf("failed to send announcement: %v", err)
			continue
		}
		log.Debugf("announced %q (%v bytes)", pkt.ShortName(), len(pkt.Bytes()))
	}

	return nil
}
