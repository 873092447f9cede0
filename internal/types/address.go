package types

import (
	"fmt"
	"net"
	"net/netip"
)

// Addr is an IPv4 address held as four octets in network order.
type Addr [4]byte

// AddrFrom4 builds an address from its four octets.
func AddrFrom4(a, b, c, d byte) Addr {
	return Addr{a, b, c, d}
}

// ParseAddr parses an IPv4 address in dotted decimal notation.
func ParseAddr(s string) (Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return Addr{}, fmt.Errorf("invalid IPv4 address %q: %w", s, err)
	}
	if !ip.Is4() {
		return Addr{}, fmt.Errorf("invalid IPv4 address %q: not an IPv4 address", s)
	}
	return Addr(ip.As4()), nil
}

// MustParseAddr is like ParseAddr but panics on error. Intended for tests and constants.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddrFromIP converts a net.IP. The second result is false if ip is not IPv4.
func AddrFromIP(ip net.IP) (Addr, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return Addr{}, false
	}
	return Addr{v4[0], v4[1], v4[2], v4[3]}, true
}

// Octet returns the i-th octet, 0 being the most significant.
func (a Addr) Octet(i int) byte {
	return a[i]
}

// WithOctet returns a copy of a with the i-th octet replaced by v.
func (a Addr) WithOctet(i int, v byte) Addr {
	a[i] = v
	return a
}

// IsZero reports whether a is 0.0.0.0.
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IP returns a as a 4-byte net.IP.
func (a Addr) IP() net.IP {
	return net.IPv4(a[0], a[1], a[2], a[3]).To4()
}

// Mask interprets a as a netmask.
func (a Addr) Mask() net.IPMask {
	return net.IPv4Mask(a[0], a[1], a[2], a[3])
}

// Netip returns a as a netip.Addr.
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a Addr) String() string {
	return a.Netip().String()
}

// MAC is a 48-bit hardware address.
type MAC [6]byte

// ParseMAC parses a colon or dash separated EUI-48 address.
func ParseMAC(s string) (MAC, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MAC{}, fmt.Errorf("invalid MAC address %q: %w", s, err)
	}
	if len(hw) != 6 {
		return MAC{}, fmt.Errorf("invalid MAC address %q: expected 6 bytes, got %d", s, len(hw))
	}
	return MACFromHardwareAddr(hw), nil
}

// MACFromHardwareAddr copies the first six bytes of hw. Shorter inputs are zero padded.
func MACFromHardwareAddr(hw net.HardwareAddr) MAC {
	var m MAC
	copy(m[:], hw)
	return m
}

// IsZero reports whether m is all zeros.
func (m MAC) IsZero() bool {
	return m == MAC{}
}

// HardwareAddr returns a copy of m as a net.HardwareAddr.
func (m MAC) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, len(m))
	copy(hw, m[:])
	return hw
}

func (m MAC) String() string {
	return m.HardwareAddr().String()
}
