package ethernet

import (
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"
)

// MaxRetransmissionTimeout is the largest timeout, in milliseconds, the chip register can hold.
const MaxRetransmissionTimeout uint16 = 6553

// MACAddress reads the chip's hardware address.
func (m *Manager) MACAddress() types.MAC {
	return read(&m.hw, port.ChipDriver.GetMACAddress)
}

// SetMACAddress writes the chip's hardware address.
func (m *Manager) SetMACAddress(mac types.MAC) {
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetMACAddress(mac)
	})
}

// LocalIP reads the chip's IP address.
func (m *Manager) LocalIP() types.Addr {
	return read(&m.hw, port.ChipDriver.GetIPAddress)
}

// SetLocalIP writes the chip's IP address.
func (m *Manager) SetLocalIP(ip types.Addr) {
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetIPAddress(ip)
	})
}

// SubnetMask reads the chip's subnet mask.
func (m *Manager) SubnetMask() types.Addr {
	return read(&m.hw, port.ChipDriver.GetSubnetMask)
}

// SetSubnetMask writes the chip's subnet mask.
func (m *Manager) SetSubnetMask(mask types.Addr) {
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetSubnetMask(mask)
	})
}

// GatewayIP reads the chip's gateway address.
func (m *Manager) GatewayIP() types.Addr {
	return read(&m.hw, port.ChipDriver.GetGatewayIP)
}

// SetGatewayIP writes the chip's gateway address.
func (m *Manager) SetGatewayIP(gateway types.Addr) {
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetGatewayIP(gateway)
	})
}

// DNSServerIP returns the cached DNS server address. It does not touch the chip.
func (m *Manager) DNSServerIP() types.Addr {
	return m.dnsServer
}

// SetDNSServerIP overrides the cached DNS server address until the next bring-up or lease republish.
func (m *Manager) SetDNSServerIP(dns types.Addr) {
	m.dnsServer = dns
}

// SetRetransmissionTimeout sets the chip's retry timeout. Values above MaxRetransmissionTimeout are clamped.
func (m *Manager) SetRetransmissionTimeout(milliseconds uint16) {
	if milliseconds > MaxRetransmissionTimeout {
		milliseconds = MaxRetransmissionTimeout
	}
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetRetransmissionTime(milliseconds * 10)
	})
}

// SetRetransmissionCount sets how many times the chip retries before giving up.
func (m *Manager) SetRetransmissionCount(count uint8) {
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetRetransmissionCount(count)
	})
}

// Config reads the chip-backed fields in one transaction and adds the cached DNS address.
func (m *Manager) Config() types.InterfaceConfig {
	var cfg types.InterfaceConfig
	m.hw.transaction(func(chip port.ChipDriver) {
		cfg.MAC = chip.GetMACAddress()
		cfg.Local = chip.GetIPAddress()
		cfg.Gateway = chip.GetGatewayIP()
		cfg.Subnet = chip.GetSubnetMask()
	})
	cfg.DNS = m.dnsServer
	return cfg
}
