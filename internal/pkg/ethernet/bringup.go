package ethernet

import (
	"time"

	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"
)

const (
	// DefaultDHCPTimeout bounds the whole lease acquisition.
	DefaultDHCPTimeout = 60 * time.Second
	// DefaultResponseTimeout bounds the wait for each server reply.
	DefaultResponseTimeout = 4 * time.Second
)

// DefaultSubnetMask is assumed when a static bring-up omits the mask.
var DefaultSubnetMask = types.AddrFrom4(255, 255, 255, 0)

// DHCPOutcome is the result of a DHCP bring-up. The numeric values are stable.
type DHCPOutcome int

const (
	// DHCPFailure means the chip did not respond or no lease was obtained.
	DHCPFailure DHCPOutcome = 0
	// DHCPSuccess means a lease was obtained and written to the chip.
	DHCPSuccess DHCPOutcome = 1
)

// String returns "success" or "failure".
func (o DHCPOutcome) String() string {
	if o == DHCPSuccess {
		return "success"
	}
	return "failure"
}

// StaticOutcome is the result of a static bring-up.
// StaticNoHardware means the chip did not respond and nothing was written;
// it is not an error, callers that care about the chip must check it.
type StaticOutcome int

const (
	// StaticApplied means the address set was written to the chip.
	StaticApplied StaticOutcome = iota
	// StaticNoHardware means the chip did not respond.
	StaticNoHardware
)

// String returns "applied" or "no-hardware".
func (o StaticOutcome) String() string {
	if o == StaticApplied {
		return "applied"
	}
	return "no-hardware"
}

// BeginDHCP initializes the chip and acquires the address set from a DHCP server.
//
// The lease negotiator is created on the first call and reused afterwards, even
// if this call fails. On failure the chip keeps the zero address.
func (m *Manager) BeginDHCP(mac types.MAC, timeout, responseTimeout time.Duration) DHCPOutcome {
	if m.negotiator == nil && m.newNegotiator != nil {
		m.negotiator = m.newNegotiator()
	}

	if !m.initChip() {
		m.logger.Warn("Ethernet controller not responding")
		return DHCPFailure
	}
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetMACAddress(mac)
		chip.SetIPAddress(types.Addr{})
	})

	if m.negotiator == nil {
		m.logger.Warn("No lease negotiator configured")
		return DHCPFailure
	}

	// The negotiator does its own bus transactions.
	if !m.negotiator.BeginWithDHCP(mac, timeout, responseTimeout) {
		m.logger.WithField("mac", mac.String()).Info("DHCP bring-up failed")
		return DHCPFailure
	}

	m.publishLease()
	m.ports.Seed(m.micros())

	m.logger.WithFields(map[string]interface{}{
		"ip":      m.negotiator.GetLocalIP().String(),
		"gateway": m.negotiator.GetGatewayIP().String(),
		"dns":     m.dnsServer.String(),
	}).Info("DHCP bring-up complete")
	return DHCPSuccess
}

// Begin configures a static address. DNS defaults to ip with the last octet set to 1.
func (m *Manager) Begin(mac types.MAC, ip types.Addr) StaticOutcome {
	dns := ip.WithOctet(3, 1)
	return m.BeginWithDNS(mac, ip, dns)
}

// BeginWithDNS configures a static address. The gateway defaults to ip with the last octet set to 1.
func (m *Manager) BeginWithDNS(mac types.MAC, ip, dns types.Addr) StaticOutcome {
	gateway := ip.WithOctet(3, 1)
	return m.BeginWithGateway(mac, ip, dns, gateway)
}

// BeginWithGateway configures a static address with a 255.255.255.0 mask.
func (m *Manager) BeginWithGateway(mac types.MAC, ip, dns, gateway types.Addr) StaticOutcome {
	return m.BeginStatic(mac, ip, dns, gateway, DefaultSubnetMask)
}

// BeginStatic initializes the chip and writes the full static address set.
// If the chip does not respond nothing is written, the cached DNS address included.
func (m *Manager) BeginStatic(mac types.MAC, ip, dns, gateway, subnet types.Addr) StaticOutcome {
	if !m.initChip() {
		m.logger.Warn("Ethernet controller not responding")
		return StaticNoHardware
	}
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetMACAddress(mac)
		chip.SetIPAddress(ip)
		chip.SetGatewayIP(gateway)
		chip.SetSubnetMask(subnet)
	})
	m.dnsServer = dns

	m.logger.WithFields(map[string]interface{}{
		"ip":      ip.String(),
		"gateway": gateway.String(),
		"netmask": subnet.String(),
		"dns":     dns.String(),
	}).Info("Static bring-up complete")
	return StaticApplied
}

// BringUpMode tells which path a BringUp call took.
type BringUpMode int

const (
	ModeDHCP BringUpMode = iota
	ModeStatic
)

// BringUpOptions holds the optional arguments of BringUp. A nil IP selects DHCP.
// A nil DNS, Gateway or Subnet is derived the same way as in Begin.
type BringUpOptions struct {
	IP      *types.Addr
	DNS     *types.Addr
	Gateway *types.Addr
	Subnet  *types.Addr

	Timeout         time.Duration
	ResponseTimeout time.Duration
}

// BringUpResult keeps the two outcome shapes apart; only the field matching Mode is meaningful.
type BringUpResult struct {
	Mode   BringUpMode
	DHCP   DHCPOutcome
	Static StaticOutcome
}

// OK reports whether the interface got an address set.
func (r BringUpResult) OK() bool {
	if r.Mode == ModeDHCP {
		return r.DHCP == DHCPSuccess
	}
	return r.Static == StaticApplied
}

// BringUp dispatches to BeginDHCP or to the static entry point matching the supplied options.
func (m *Manager) BringUp(mac types.MAC, opts BringUpOptions) BringUpResult {
	if opts.IP == nil {
		timeout, responseTimeout := opts.Timeout, opts.ResponseTimeout
		if timeout == 0 {
			timeout = DefaultDHCPTimeout
		}
		if responseTimeout == 0 {
			responseTimeout = DefaultResponseTimeout
		}
		return BringUpResult{Mode: ModeDHCP, DHCP: m.BeginDHCP(mac, timeout, responseTimeout)}
	}

	ip := *opts.IP
	dns := ip.WithOctet(3, 1)
	if opts.DNS != nil {
		dns = *opts.DNS
	}
	gateway := ip.WithOctet(3, 1)
	if opts.Gateway != nil {
		gateway = *opts.Gateway
	}
	subnet := DefaultSubnetMask
	if opts.Subnet != nil {
		subnet = *opts.Subnet
	}

	var outcome StaticOutcome
	switch {
	case opts.Subnet != nil:
		outcome = m.BeginStatic(mac, ip, dns, gateway, subnet)
	case opts.Gateway != nil:
		outcome = m.BeginWithGateway(mac, ip, dns, gateway)
	case opts.DNS != nil:
		outcome = m.BeginWithDNS(mac, ip, dns)
	default:
		outcome = m.Begin(mac, ip)
	}
	return BringUpResult{Mode: ModeStatic, Static: outcome}
}

func (m *Manager) initChip() bool {
	return read(&m.hw, func(chip port.ChipDriver) bool {
		return chip.Init()
	})
}

// publishLease copies the negotiated address set into the chip in one transaction and caches DNS.
func (m *Manager) publishLease() {
	local := m.negotiator.GetLocalIP()
	gateway := m.negotiator.GetGatewayIP()
	subnet := m.negotiator.GetSubnetMask()
	m.hw.transaction(func(chip port.ChipDriver) {
		chip.SetIPAddress(local)
		chip.SetGatewayIP(gateway)
		chip.SetSubnetMask(subnet)
	})
	m.dnsServer = m.negotiator.GetDNSServerIP()
}
