// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"net"
	"time"

	"golang-ethernetd/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

// DHCPClient is a port for raw DHCP exchanges on an interface.
// Lease bookkeeping (timers, renew/rebind decisions) lives in the LeaseNegotiator built on top of it.
type DHCPClient interface {
	// RequestLease performs DHCP DISCOVER/OFFER/REQUEST/ACK sequence.
	// A non-zero requested address is sent as the requested IP option.
	RequestLease(ctx context.Context, interfaceName string, mac types.MAC, requested types.Addr, timeout time.Duration) (*dhcpv4.DHCPv4, error)

	// RenewLease sends a REQUEST for the address held in ack and returns the new ACK
	RenewLease(ctx context.Context, interfaceName string, mac types.MAC, ack *dhcpv4.DHCPv4, timeout time.Duration) (*dhcpv4.DHCPv4, error)

	// ReleaseLease gives the address held in ack back to the server
	ReleaseLease(interfaceName string, mac types.MAC, ack *dhcpv4.DHCPv4) error
}

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// AddAddress adds an IP address to the interface
	AddAddress(link netlink.Link, addr *netlink.Addr) error

	// DeleteAddress removes an IP address from the interface
	DeleteAddress(link netlink.Link, addr *netlink.Addr) error

	// ListRoutes returns IPv4 routes
	ListRoutes() ([]netlink.Route, error)

	// AddRoute adds a route
	AddRoute(route *netlink.Route) error

	// DeleteRoute removes a route
	DeleteRoute(route *netlink.Route) error

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetHardwareAddr changes the link's MAC address
	SetHardwareAddr(link netlink.Link, hwAddr net.HardwareAddr) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}
