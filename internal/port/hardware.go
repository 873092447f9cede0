// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"time"

	"golang-ethernetd/internal/types"
)

//go:generate mockgen -source=hardware.go -destination=../mock/hardware.go -package=mock

// BitOrder is the bit order of a serial bus transfer.
type BitOrder uint8

const (
	MSBFirst BitOrder = iota
	LSBFirst
)

// BusSettings is the signaling profile requested for a bus transaction.
type BusSettings struct {
	ClockHz  uint32
	BitOrder BitOrder
	Mode     uint8
}

// DefaultBusSettings is the fixed profile used for every Ethernet controller access.
var DefaultBusSettings = BusSettings{
	ClockHz:  14_000_000,
	BitOrder: MSBFirst,
	Mode:     0,
}

// Bus is a port for exclusive access to the serial bus shared with the Ethernet controller.
// BeginTransaction blocks until the bus is free.
type Bus interface {
	// BeginTransaction acquires the bus with the given profile
	BeginTransaction(settings BusSettings)

	// EndTransaction releases the bus
	EndTransaction()
}

// ChipLinkStatus is the link state as reported by the controller.
type ChipLinkStatus uint8

const (
	ChipLinkUnknown ChipLinkStatus = iota
	ChipLinkOn
	ChipLinkOff
)

// ChipDriver is a port for register-level access to the Ethernet controller.
// Calls must be made with the bus held. They complete or hang; none reports an error.
type ChipDriver interface {
	// Init resets and probes the controller. False means it did not respond.
	Init() bool

	SetMACAddress(mac types.MAC)
	GetMACAddress() types.MAC

	SetIPAddress(ip types.Addr)
	GetIPAddress() types.Addr

	SetGatewayIP(gateway types.Addr)
	GetGatewayIP() types.Addr

	SetSubnetMask(mask types.Addr)
	GetSubnetMask() types.Addr

	// GetLinkStatus returns the PHY link state
	GetLinkStatus() ChipLinkStatus

	// GetChip returns the controller identity code, zero if unknown
	GetChip() uint8

	// SetRetransmissionTime sets the retry timeout in units of 100us
	SetRetransmissionTime(units uint16)

	// SetRetransmissionCount sets the number of retries before a timeout is reported
	SetRetransmissionCount(count uint8)
}

// LeaseCheck is the outcome of a lease check. The numeric values are stable.
type LeaseCheck int

const (
	LeaseCheckNone    LeaseCheck = 0 // nothing was due
	LeaseRenewFailed  LeaseCheck = 1
	LeaseRenewed      LeaseCheck = 2
	LeaseRebindFailed LeaseCheck = 3
	LeaseRebound      LeaseCheck = 4
)

// IsError reports whether a renew or rebind attempt failed.
func (c LeaseCheck) IsError() bool {
	return c == LeaseRenewFailed || c == LeaseRebindFailed
}

// Republish reports whether the lease addresses may have changed.
func (c LeaseCheck) Republish() bool {
	return c == LeaseRenewed || c == LeaseRebound
}

func (c LeaseCheck) String() string {
	switch c {
	case LeaseCheckNone:
		return "none"
	case LeaseRenewFailed:
		return "renew-failed"
	case LeaseRenewed:
		return "renewed"
	case LeaseRebindFailed:
		return "rebind-failed"
	case LeaseRebound:
		return "rebound"
	default:
		return "invalid"
	}
}

// LeaseNegotiator is a port for DHCP lease acquisition and upkeep.
// It performs its own hardware access; callers must not hold the bus while calling it.
type LeaseNegotiator interface {
	// BeginWithDHCP acquires a lease for mac. It returns false if no lease was obtained within timeout.
	BeginWithDHCP(mac types.MAC, timeout, responseTimeout time.Duration) bool

	GetLocalIP() types.Addr
	GetGatewayIP() types.Addr
	GetSubnetMask() types.Addr
	GetDNSServerIP() types.Addr

	// CheckLease renews or rebinds the lease when due
	CheckLease() LeaseCheck
}
