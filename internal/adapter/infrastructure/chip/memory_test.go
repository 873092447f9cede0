//go:build unit

package chip

import (
	"testing"

	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestMemoryChip_Registers(t *testing.T) {
	c := NewMemoryChip(IdentityW5500)
	assert.True(t, c.Init())

	mac := types.MAC{0x02, 0, 0, 0, 0, 1}
	c.SetMACAddress(mac)
	c.SetIPAddress(types.MustParseAddr("10.0.0.5"))
	c.SetGatewayIP(types.MustParseAddr("10.0.0.1"))
	c.SetSubnetMask(types.MustParseAddr("255.255.255.0"))

	assert.Equal(t, mac, c.GetMACAddress())
	assert.Equal(t, types.MustParseAddr("10.0.0.5"), c.GetIPAddress())
	assert.Equal(t, types.MustParseAddr("10.0.0.1"), c.GetGatewayIP())
	assert.Equal(t, types.MustParseAddr("255.255.255.0"), c.GetSubnetMask())
	assert.Equal(t, 4, c.Writes())
	assert.Equal(t, IdentityW5500, c.GetChip())
}

func TestMemoryChip_Init(t *testing.T) {
	t.Run("ResetsRegisters", func(t *testing.T) {
		c := NewMemoryChip(IdentityW5100)
		c.SetIPAddress(types.MustParseAddr("10.0.0.5"))
		c.SetRetransmissionTime(100)
		c.SetRetransmissionCount(3)

		assert.True(t, c.Init())
		assert.True(t, c.GetIPAddress().IsZero())
		assert.Equal(t, uint16(2000), c.RetransmissionTime())
		assert.Equal(t, uint8(8), c.RetransmissionCount())
	})

	t.Run("NotResponding", func(t *testing.T) {
		c := NewMemoryChip(IdentityW5100)
		c.SetIPAddress(types.MustParseAddr("10.0.0.5"))
		c.SetResponding(false)

		assert.False(t, c.Init())
		assert.Equal(t, types.MustParseAddr("10.0.0.5"), c.GetIPAddress())
	})
}

func TestMemoryChip_Link(t *testing.T) {
	c := NewMemoryChip(IdentityW5200)
	assert.Equal(t, port.ChipLinkOn, c.GetLinkStatus())

	c.SetLink(port.ChipLinkOff)
	assert.Equal(t, port.ChipLinkOff, c.GetLinkStatus())
}

func TestIdentityByName(t *testing.T) {
	tests := []struct {
		name     string
		expected uint8
	}{
		{"w5100", IdentityW5100},
		{"W5200", IdentityW5200},
		{"w5500", IdentityW5500},
		{"", IdentityW5500},
		{"none", IdentityNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := IdentityByName(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}

	_, err := IdentityByName("enc28j60")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chip model")
}
