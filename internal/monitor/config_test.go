package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwgboy/LibArtNet/internal/artnet"
)

const testConfig = `
listen:
  ip: 0.0.0.0
  port: 6454
node:
  shortName: rack 1
  longName: dimmer rack 1, upstage
  ip: 2.0.0.10
  mac: "00:0b:be:01:02:03"
  nodeVersion: 258
  net: 3
  subnet: 1
  esta: GL
  oemCode: 0x2828
  style: node
  rdm: true
  dhcp: true
  ports:
    - input: true
      inputUniverse: 4
    - output: true
      outputUniverse: 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConf(t *testing.T) {
	conf, err := loadConf(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 6454, conf.Listen.Port)
	assert.Equal(t, "rack 1", conf.Node.ShortName)
	assert.Equal(t, uint16(0x2828), conf.Node.OemCode)
	assert.Len(t, conf.Node.Ports, 2)
}

func TestLoadConfMissingFile(t *testing.T) {
	_, err := loadConf(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuilderFromConf(t *testing.T) {
	conf, err := loadConf(writeConfig(t, testConfig))
	require.NoError(t, err)

	builder, err := builderFromConf(conf.Node)
	require.NoError(t, err)

	pkt := builder.Build()
	assert.Equal(t, "rack 1", pkt.ShortName())
	assert.Equal(t, "dimmer rack 1, upstage", pkt.LongName())
	assert.Equal(t, []byte{2, 0, 0, 10}, pkt.IPAddress())
	assert.Equal(t, []byte{0x00, 0x0b, 0xbe, 0x01, 0x02, 0x03}, pkt.MACAddress())
	assert.Equal(t, uint16(258), pkt.NodeVersion())
	assert.Equal(t, uint8(3), pkt.NetAddress())
	assert.Equal(t, uint8(1), pkt.SubnetAddress())
	assert.Equal(t, "GL", pkt.ESTAManufacturer())
	assert.Equal(t, uint16(0x2828), pkt.Product().Code)
	assert.Equal(t, artnet.StyleNode, pkt.EquipmentStyle())
	assert.True(t, pkt.SupportsRDM())
	assert.True(t, pkt.SupportsDHCP())
	assert.True(t, pkt.DHCPConfigured())
	assert.Equal(t, 2, pkt.PortCount())
	assert.Equal(t, uint8(4), pkt.InputUniverses()[0])
	assert.Equal(t, uint8(5), pkt.OutputUniverses()[1])

	// the encoded bytes round-trip through the decoder
	decoded, err := artnet.DecodePollReply(pkt.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pkt.ShortName(), decoded.ShortName())
	assert.Equal(t, pkt.PortCount(), decoded.PortCount())
}

func TestBuilderFromConfRejectsBadValues(t *testing.T) {
	_, err := builderFromConf(confNode{Net: 128})
	assert.Error(t, err)

	_, err = builderFromConf(confNode{MAC: "not-a-mac"})
	assert.Error(t, err)

	_, err = builderFromConf(confNode{Style: "spaceship"})
	assert.Error(t, err)

	_, err = builderFromConf(confNode{Ports: make([]confPort, 5)})
	assert.Error(t, err)
}

func TestStyleFromString(t *testing.T) {
	style, err := styleFromString("visual")
	require.NoError(t, err)
	assert.Equal(t, artnet.StyleVisual, style)
}
